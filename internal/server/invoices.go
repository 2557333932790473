package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	invoicespb "github.com/invox/invox/gen/proto/invoices/v1"
	"github.com/invox/invox/internal/async"
	"github.com/invox/invox/internal/common"
	"github.com/invox/invox/internal/entity"
	"github.com/invox/invox/internal/invoices"
	"github.com/invox/invox/internal/pipeline"
	"github.com/invox/invox/internal/schema"
	"github.com/invox/invox/internal/utils"
)

type InvoicesService struct {
	invoicespb.UnimplementedInvoicesServiceServer
	svc    *invoices.Service
	runner *async.Runner
	logger *slog.Logger
}

func NewInvoicesService(svc *invoices.Service, runner *async.Runner, logger *slog.Logger) *InvoicesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesService{svc: svc, runner: runner, logger: logger}
}

func (s *InvoicesService) ExtractInvoice(ctx context.Context, req *invoicespb.ExtractInvoiceRequest) (*invoicespb.ExtractInvoiceResponse, error) {
	fileID := strings.TrimSpace(req.GetFileId())
	fileName := strings.TrimSpace(req.GetFileName())
	if fileID == "" {
		return nil, common.InvalidArgumentError("file_id is required")
	}
	if fileName == "" {
		return nil, common.InvalidArgumentError("file_name is required")
	}

	res, err := s.runner.Submit(ctx, pipeline.Request{FileID: fileID, FileName: fileName})
	if err != nil {
		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			s.logger.Error("extraction failed",
				"file_name", fileName,
				"stage", string(stageErr.Stage),
				"state", string(stageErr.State),
				"artifact", stageErr.ArtifactPath,
				"error", err,
			)
			return nil, common.FailedPreconditionError(stageErr.Error())
		}
		s.logger.Error("extraction failed", "file_name", fileName, "error", err)
		return nil, common.InternalError(err.Error())
	}

	pb := utils.ToPBRecord(res.Record)
	if req.GetPersist() {
		stored, err := s.svc.CreateRecord(ctx, res.Record)
		if err != nil {
			s.logger.Error("persist after extraction failed", "file_name", fileName, "error", err)
			return nil, common.InternalError("failed to persist extracted invoice")
		}
		pb = utils.ToPBInvoice(stored)
	}

	return &invoicespb.ExtractInvoiceResponse{
		Invoice:       pb,
		RunState:      string(res.State),
		ExtractedText: res.Text,
	}, nil
}

func (s *InvoicesService) CreateInvoice(ctx context.Context, req *invoicespb.CreateInvoiceRequest) (*invoicespb.InvoiceResponse, error) {
	if len(req.GetPayload()) == 0 {
		return nil, common.InvalidArgumentError("payload is required")
	}
	stored, err := s.svc.Create(ctx, req.GetPayload())
	if err != nil {
		return nil, s.mapPayloadError("create invoice", err)
	}
	return &invoicespb.InvoiceResponse{Invoice: utils.ToPBInvoice(stored)}, nil
}

func (s *InvoicesService) GetInvoice(ctx context.Context, req *invoicespb.GetInvoiceRequest) (*invoicespb.InvoiceResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	stored, err := s.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("invoice not found")
		}
		s.logger.Error("get invoice failed", "id", id, "error", err)
		return nil, common.InternalError("get invoice failed")
	}
	return &invoicespb.InvoiceResponse{Invoice: utils.ToPBInvoice(stored)}, nil
}

func (s *InvoicesService) UpdateInvoice(ctx context.Context, req *invoicespb.UpdateInvoiceRequest) (*invoicespb.InvoiceResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if len(req.GetPayload()) == 0 {
		return nil, common.InvalidArgumentError("payload is required")
	}
	stored, err := s.svc.Update(ctx, id, req.GetPayload())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("invoice not found")
		}
		return nil, s.mapPayloadError("update invoice", err)
	}
	return &invoicespb.InvoiceResponse{Invoice: utils.ToPBInvoice(stored)}, nil
}

func (s *InvoicesService) DeleteInvoice(ctx context.Context, req *invoicespb.DeleteInvoiceRequest) (*invoicespb.DeleteInvoiceResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	deleted, err := s.svc.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete invoice failed", "id", id, "error", err)
		return nil, common.InternalError("delete invoice failed")
	}
	return &invoicespb.DeleteInvoiceResponse{Deleted: deleted}, nil
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	recs, err := s.svc.List(ctx, strings.TrimSpace(req.GetFilter()))
	if err != nil {
		s.logger.Error("list invoices failed", "error", err)
		return nil, common.InternalError("list invoices failed")
	}
	return &invoicespb.ListInvoicesResponse{
		Invoices: lo.Map(recs, func(r *entity.StoredInvoice, _ int) *invoicespb.Invoice { return utils.ToPBInvoice(r) }),
	}, nil
}

// mapPayloadError turns validation failures into InvalidArgument with the
// flattened field paths in the message; everything else is Internal.
func (s *InvoicesService) mapPayloadError(op string, err error) error {
	var synErr *schema.JSONSyntaxError
	if errors.As(err, &synErr) {
		return common.InvalidArgumentErrorf("invalid JSON: %s", synErr.Msg)
	}
	var valErr *schema.SchemaValidationError
	if errors.As(err, &valErr) {
		return common.InvalidArgumentError(valErr.Error())
	}
	s.logger.Error(op+" failed", "error", err)
	return common.InternalError(op + " failed")
}

func parseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("id must be a UUID")
	}
	return id, nil
}
