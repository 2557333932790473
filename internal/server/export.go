package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	invoicespb "github.com/invox/invox/gen/proto/invoices/v1"
	"github.com/invox/invox/internal/common"
	"github.com/invox/invox/internal/export"
)

type ExportServer struct {
	invoicespb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *invoicespb.ExportInvoicesRequest) (*invoicespb.ExportInvoicesResponse, error) {
	filter := strings.TrimSpace(req.GetFilter())
	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "filter", filter, "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &invoicespb.ExportInvoicesResponse{
		Workbook: xlsx,
		FileName: fmt.Sprintf("invoices-%s.xlsx", time.Now().UTC().Format("2006-01-02")),
	}, nil
}
