package invoices

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/invox/invox/constants"
	"github.com/invox/invox/internal/entity"
	"github.com/invox/invox/internal/schema"
)

// Gateway is the persistence collaborator. Implementations report missing
// records by wrapping common.ErrNotFound.
type Gateway interface {
	Create(ctx context.Context, rec entity.InvoiceRecord) (*entity.StoredInvoice, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.StoredInvoice, error)
	Update(ctx context.Context, id uuid.UUID, rec entity.InvoiceRecord) (*entity.StoredInvoice, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter string) ([]*entity.StoredInvoice, error)
}

// Service owns record lifecycle: create after validation, merge-then-revalidate
// updates, explicit deletes. A record never reaches the gateway without
// passing full schema validation.
type Service struct {
	gateway   Gateway
	validator *schema.Validator
	logger    *slog.Logger
}

func NewService(gw Gateway, v *schema.Validator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gateway: gw, validator: v, logger: logger}
}

// Create validates a raw payload (possibly wrapped as {data: ...}) and persists
// the canonical record.
func (s *Service) Create(ctx context.Context, payload []byte) (*entity.StoredInvoice, error) {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, &schema.JSONSyntaxError{Msg: err.Error(), Preview: bounded(payload)}
	}
	candidate, err := json.Marshal(UnwrapEnvelope(m))
	if err != nil {
		return nil, err
	}
	rec, err := s.validator.ValidateRecord(candidate)
	if err != nil {
		return nil, err
	}
	return s.CreateRecord(ctx, rec)
}

// CreateRecord persists an already-validated record, deriving the total when
// absent. This is the path the extraction pipeline hands its result to.
func (s *Service) CreateRecord(ctx context.Context, rec entity.InvoiceRecord) (*entity.StoredInvoice, error) {
	DeriveTotal(&rec)
	stored, err := s.gateway.Create(ctx, rec)
	if err != nil {
		s.logger.Error("invoices.create.failed", "file_name", rec.FileName, "error", err)
		return nil, err
	}
	s.logger.Info("invoices.create.ok",
		"id", stored.ID,
		"vendor", stored.Vendor.Name,
		"number", stored.Invoice.Number,
	)
	return stored, nil
}

// Get loads one record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.StoredInvoice, error) {
	return s.gateway.Get(ctx, id)
}

// List returns records matching a case-insensitive substring filter across
// vendor name and invoice number; an empty filter returns everything.
func (s *Service) List(ctx context.Context, filter string) ([]*entity.StoredInvoice, error) {
	return s.gateway.List(ctx, filter)
}

// Update applies a partial payload through merge-then-revalidate: load the
// existing record, overlay the incoming fields, re-validate the merged whole,
// and only then write. A validation failure aborts with no partial write.
//
// The load-merge-write sequence is not transactional: two concurrent updates
// on the same record race last-writer-wins.
func (s *Service) Update(ctx context.Context, id uuid.UUID, payload []byte) (*entity.StoredInvoice, error) {
	existing, err := s.gateway.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var incoming map[string]any
	if err := json.Unmarshal(payload, &incoming); err != nil {
		return nil, &schema.JSONSyntaxError{Msg: err.Error(), Preview: bounded(payload)}
	}
	incoming = UnwrapEnvelope(incoming)

	// Record() stringifies the stored timestamps so the merged candidate
	// validates against the string-typed schema.
	merged, err := MergeRecord(existing.Record(), incoming)
	if err != nil {
		return nil, err
	}
	candidate, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	rec, err := s.validator.ValidateRecord(candidate)
	if err != nil {
		s.logger.Warn("invoices.update.revalidation_failed", "id", id, "error", err)
		return nil, err
	}

	// Only the canonical field set is written; server-assigned timestamps are
	// never taken from client input.
	rec.CreatedAt, rec.UpdatedAt = "", ""

	stored, err := s.gateway.Update(ctx, id, rec)
	if err != nil {
		s.logger.Error("invoices.update.failed", "id", id, "error", err)
		return nil, err
	}
	s.logger.Info("invoices.update.ok", "id", id)
	return stored, nil
}

// Delete removes a record. There is no cascading side effect on the document
// store; the source blob stays where it is.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.gateway.Delete(ctx, id)
	if err != nil {
		s.logger.Error("invoices.delete.failed", "id", id, "error", err)
		return false, err
	}
	s.logger.Info("invoices.delete.ok", "id", id, "deleted", ok)
	return ok, nil
}

func bounded(b []byte) string {
	if len(b) > constants.MaxPreviewBytes {
		return string(b[:constants.MaxPreviewBytes])
	}
	return string(b)
}
