package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/invox/invox/gen/ent"
	"github.com/invox/invox/gen/ent/invoice"
	"github.com/invox/invox/internal/common"
	"github.com/invox/invox/internal/entity"
	"github.com/invox/invox/internal/utils"
)

// InvoiceRepository persists validated invoice records.
type InvoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) *InvoiceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceRepository{client: client, logger: logger}
}

func (r *InvoiceRepository) Create(ctx context.Context, rec entity.InvoiceRecord) (*entity.StoredInvoice, error) {
	row, err := r.client.Invoice.Create().
		SetFileID(rec.FileID).
		SetFileName(rec.FileName).
		SetVendorName(rec.Vendor.Name).
		SetNillableVendorAddress(rec.Vendor.Address).
		SetNillableVendorTaxID(rec.Vendor.TaxID).
		SetInvoiceNumber(rec.Invoice.Number).
		SetInvoiceDate(rec.Invoice.Date).
		SetNillableCurrency(rec.Invoice.Currency).
		SetNillableSubtotal(rec.Invoice.Subtotal).
		SetNillableTaxPercent(rec.Invoice.TaxPercent).
		SetNillableTotal(rec.Invoice.Total).
		SetNillablePoNumber(rec.Invoice.PONumber).
		SetNillablePoDate(rec.Invoice.PODate).
		SetLineItems(nonNilItems(rec.Invoice.LineItems)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice", "file_name", rec.FileName, "error", err)
		return nil, err
	}
	return utils.ToStoredInvoice(row), nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id uuid.UUID) (*entity.StoredInvoice, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get invoice", "id", id, "error", err)
		return nil, err
	}
	return utils.ToStoredInvoice(row), nil
}

// Update overwrites the record fields of an existing row. All columns are set,
// including optional ones cleared to NULL when absent, so the row always
// mirrors the validated record exactly.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, rec entity.InvoiceRecord) (*entity.StoredInvoice, error) {
	up := r.client.Invoice.UpdateOneID(id).
		SetFileID(rec.FileID).
		SetFileName(rec.FileName).
		SetVendorName(rec.Vendor.Name).
		SetInvoiceNumber(rec.Invoice.Number).
		SetInvoiceDate(rec.Invoice.Date).
		SetLineItems(nonNilItems(rec.Invoice.LineItems))

	up = setOrClearString(up.ClearVendorAddress, up.SetVendorAddress, rec.Vendor.Address)
	up = setOrClearString(up.ClearVendorTaxID, up.SetVendorTaxID, rec.Vendor.TaxID)
	up = setOrClearString(up.ClearCurrency, up.SetCurrency, rec.Invoice.Currency)
	up = setOrClearString(up.ClearPoNumber, up.SetPoNumber, rec.Invoice.PONumber)
	up = setOrClearString(up.ClearPoDate, up.SetPoDate, rec.Invoice.PODate)
	up = setOrClearFloat(up.ClearSubtotal, up.SetSubtotal, rec.Invoice.Subtotal)
	up = setOrClearFloat(up.ClearTaxPercent, up.SetTaxPercent, rec.Invoice.TaxPercent)
	up = setOrClearFloat(up.ClearTotal, up.SetTotal, rec.Invoice.Total)

	row, err := up.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to update invoice", "id", id, "error", err)
		return nil, err
	}
	return utils.ToStoredInvoice(row), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	err := r.client.Invoice.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		r.logger.Error("failed to delete invoice", "id", id, "error", err)
		return false, err
	}
	return true, nil
}

// List returns invoices newest first. A non-empty filter matches vendor name
// or invoice number, case-insensitively.
func (r *InvoiceRepository) List(ctx context.Context, filter string) ([]*entity.StoredInvoice, error) {
	q := r.client.Invoice.Query()
	if filter != "" {
		q = q.Where(invoice.Or(
			invoice.VendorNameContainsFold(filter),
			invoice.InvoiceNumberContainsFold(filter),
		))
	}
	rows, err := q.Order(ent.Desc(invoice.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "filter", filter, "error", err)
		return nil, err
	}

	result := make([]*entity.StoredInvoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToStoredInvoice(row)
	}
	return result, nil
}

func nonNilItems(items []entity.LineItem) []entity.LineItem {
	if items == nil {
		return []entity.LineItem{}
	}
	return items
}

func setOrClearString(clear func() *ent.InvoiceUpdateOne, set func(string) *ent.InvoiceUpdateOne, v *string) *ent.InvoiceUpdateOne {
	if v == nil {
		return clear()
	}
	return set(*v)
}

func setOrClearFloat(clear func() *ent.InvoiceUpdateOne, set func(float64) *ent.InvoiceUpdateOne, v *float64) *ent.InvoiceUpdateOne {
	if v == nil {
		return clear()
	}
	return set(*v)
}
