package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/invox/invox/internal/entity"
)

type stubGateway struct {
	invoices []*entity.StoredInvoice
}

func (g *stubGateway) Create(_ context.Context, _ entity.InvoiceRecord) (*entity.StoredInvoice, error) {
	panic("not used")
}
func (g *stubGateway) Get(_ context.Context, _ uuid.UUID) (*entity.StoredInvoice, error) {
	panic("not used")
}
func (g *stubGateway) Update(_ context.Context, _ uuid.UUID, _ entity.InvoiceRecord) (*entity.StoredInvoice, error) {
	panic("not used")
}
func (g *stubGateway) Delete(_ context.Context, _ uuid.UUID) (bool, error) { panic("not used") }

func (g *stubGateway) List(_ context.Context, filter string) ([]*entity.StoredInvoice, error) {
	if filter == "" {
		return g.invoices, nil
	}
	var out []*entity.StoredInvoice
	for _, inv := range g.invoices {
		if strings.Contains(strings.ToLower(inv.Vendor.Name), strings.ToLower(filter)) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func sampleInvoices() []*entity.StoredInvoice {
	sub := 100.0
	total := 118.0
	return []*entity.StoredInvoice{
		{
			ID:       uuid.New(),
			FileID:   "https://example.com/a.pdf",
			FileName: "a.pdf",
			Vendor:   entity.Vendor{Name: "Acme"},
			Invoice: entity.InvoiceDetails{
				Number:   "INV-001",
				Date:     "2026-01-15",
				Subtotal: &sub,
				Total:    &total,
				LineItems: []entity.LineItem{
					{Description: "Widget", UnitPrice: 50, Quantity: 2, Total: 100},
				},
			},
			CreatedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:       uuid.New(),
			FileID:   "https://example.com/b.pdf",
			FileName: "b.pdf",
			Vendor:   entity.Vendor{Name: "Globex"},
			Invoice: entity.InvoiceDetails{
				Number:    "INV-002",
				Date:      "2026-01-20",
				LineItems: []entity.LineItem{},
			},
			CreatedAt: time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportInvoicesXLSX(t *testing.T) {
	svc := NewService(&stubGateway{invoices: sampleInvoices()}, nil)

	data, err := svc.ExportInvoicesXLSX(context.Background(), "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two invoices
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-001", rows[1][0])
	assert.Equal(t, "Acme", rows[1][2])
	assert.Equal(t, "INV-002", rows[2][0])
	// Absent numerics stay blank rather than zero.
	assert.Empty(t, rows[2][4])
	assert.Empty(t, rows[2][6])

	items, err := f.GetRows("Line Items")
	require.NoError(t, err)
	require.Len(t, items, 2) // header + one line item
	assert.Equal(t, "Widget", items[1][2])
}

func TestExportInvoicesXLSX_Filter(t *testing.T) {
	svc := NewService(&stubGateway{invoices: sampleInvoices()}, nil)

	data, err := svc.ExportInvoicesXLSX(context.Background(), "globex")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Globex", rows[1][2])
}
