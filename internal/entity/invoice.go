package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor identifies the party that issued the invoice.
type Vendor struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	TaxID   *string `json:"taxId,omitempty"`
}

// LineItem is a single fully-populated invoice line. After normalization there
// are no partial items: every field is present.
type LineItem struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// InvoiceDetails carries the invoice body. LineItems preserves insertion order
// and defaults to an empty slice, never nil, once a record has been validated.
type InvoiceDetails struct {
	Number     string     `json:"number"`
	Date       string     `json:"date"`
	Currency   *string    `json:"currency,omitempty"`
	Subtotal   *float64   `json:"subtotal,omitempty"`
	TaxPercent *float64   `json:"taxPercent,omitempty"`
	Total      *float64   `json:"total,omitempty"`
	PONumber   *string    `json:"poNumber,omitempty"`
	PODate     *string    `json:"poDate,omitempty"`
	LineItems  []LineItem `json:"lineItems"`
}

// InvoiceRecord is the canonical on-the-wire shape of a record. Timestamps are
// ISO strings here because that is what the schema validates; they are
// server-assigned and ignored on writes.
type InvoiceRecord struct {
	FileID    string         `json:"fileId"`
	FileName  string         `json:"fileName"`
	Vendor    Vendor         `json:"vendor"`
	Invoice   InvoiceDetails `json:"invoice"`
	CreatedAt string         `json:"createdAt,omitempty"`
	UpdatedAt string         `json:"updatedAt,omitempty"`
}

// StoredInvoice is a persisted record for data transfer between layers.
type StoredInvoice struct {
	ID        uuid.UUID      `json:"id"`
	FileID    string         `json:"fileId"`
	FileName  string         `json:"fileName"`
	Vendor    Vendor         `json:"vendor"`
	Invoice   InvoiceDetails `json:"invoice"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Record converts a stored row back to the canonical wire shape, stringifying
// the server-assigned timestamps so the result revalidates cleanly.
func (s *StoredInvoice) Record() InvoiceRecord {
	return InvoiceRecord{
		FileID:    s.FileID,
		FileName:  s.FileName,
		Vendor:    s.Vendor,
		Invoice:   s.Invoice,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
