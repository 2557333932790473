package utils

import (
	"time"

	"github.com/invox/invox/gen/ent"
	invoicespb "github.com/invox/invox/gen/proto/invoices/v1"
	"github.com/invox/invox/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToStoredInvoice maps a database row into the transfer shape the service
// layer works with.
func ToStoredInvoice(e *ent.Invoice) *entity.StoredInvoice {
	items := e.LineItems
	if items == nil {
		items = []entity.LineItem{}
	}
	return &entity.StoredInvoice{
		ID:       e.ID,
		FileID:   e.FileID,
		FileName: e.FileName,
		Vendor: entity.Vendor{
			Name:    e.VendorName,
			Address: e.VendorAddress,
			TaxID:   e.VendorTaxID,
		},
		Invoice: entity.InvoiceDetails{
			Number:     e.InvoiceNumber,
			Date:       e.InvoiceDate,
			Currency:   e.Currency,
			Subtotal:   e.Subtotal,
			TaxPercent: e.TaxPercent,
			Total:      e.Total,
			PONumber:   e.PoNumber,
			PODate:     e.PoDate,
			LineItems:  items,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPBInvoice(s *entity.StoredInvoice) *invoicespb.Invoice {
	return &invoicespb.Invoice{
		Id:        s.ID.String(),
		FileId:    s.FileID,
		FileName:  s.FileName,
		Vendor:    toPBVendor(s.Vendor),
		Invoice:   toPBDetails(s.Invoice),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPBRecord maps a validated record that has not been persisted yet, so it
// carries no id or timestamps.
func ToPBRecord(r entity.InvoiceRecord) *invoicespb.Invoice {
	return &invoicespb.Invoice{
		FileId:   r.FileID,
		FileName: r.FileName,
		Vendor:   toPBVendor(r.Vendor),
		Invoice:  toPBDetails(r.Invoice),
	}
}

func toPBVendor(v entity.Vendor) *invoicespb.Vendor {
	return &invoicespb.Vendor{
		Name:    v.Name,
		Address: strOrEmpty(v.Address),
		TaxId:   strOrEmpty(v.TaxID),
	}
}

func toPBDetails(d entity.InvoiceDetails) *invoicespb.InvoiceDetails {
	items := make([]*invoicespb.LineItem, len(d.LineItems))
	for i, it := range d.LineItems {
		items[i] = &invoicespb.LineItem{
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    int32(it.Quantity),
			Total:       it.Total,
		}
	}
	return &invoicespb.InvoiceDetails{
		Number:     d.Number,
		Date:       d.Date,
		Currency:   strOrEmpty(d.Currency),
		Subtotal:   d.Subtotal,
		TaxPercent: d.TaxPercent,
		Total:      d.Total,
		PoNumber:   strOrEmpty(d.PONumber),
		PoDate:     strOrEmpty(d.PODate),
		LineItems:  items,
	}
}
