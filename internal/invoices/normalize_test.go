package invoices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invox/invox/internal/entity"
)

func f(v float64) *float64 { return &v }

func TestDeriveTotal_FromSubtotalAndTax(t *testing.T) {
	rec := entity.InvoiceRecord{
		Invoice: entity.InvoiceDetails{Subtotal: f(100), TaxPercent: f(18)},
	}
	DeriveTotal(&rec)
	require.NotNil(t, rec.Invoice.Total)
	assert.Equal(t, 118.00, *rec.Invoice.Total)
}

func TestDeriveTotal_NoTaxPercent(t *testing.T) {
	rec := entity.InvoiceRecord{
		Invoice: entity.InvoiceDetails{Subtotal: f(250.50)},
	}
	DeriveTotal(&rec)
	require.NotNil(t, rec.Invoice.Total)
	assert.Equal(t, 250.50, *rec.Invoice.Total)
}

func TestDeriveTotal_RoundsToTwoPlaces(t *testing.T) {
	rec := entity.InvoiceRecord{
		Invoice: entity.InvoiceDetails{Subtotal: f(33.33), TaxPercent: f(7.7)},
	}
	DeriveTotal(&rec)
	require.NotNil(t, rec.Invoice.Total)
	// 33.33 * 1.077 = 35.896... -> 35.90
	assert.Equal(t, 35.90, *rec.Invoice.Total)
}

func TestDeriveTotal_PresentTotalUntouched(t *testing.T) {
	rec := entity.InvoiceRecord{
		Invoice: entity.InvoiceDetails{Subtotal: f(100), TaxPercent: f(18), Total: f(99)},
	}
	DeriveTotal(&rec)
	assert.Equal(t, 99.0, *rec.Invoice.Total)
}

func TestDeriveTotal_NoSubtotal(t *testing.T) {
	rec := entity.InvoiceRecord{
		Invoice: entity.InvoiceDetails{TaxPercent: f(18)},
	}
	DeriveTotal(&rec)
	assert.Nil(t, rec.Invoice.Total)
}

func TestUnwrapEnvelope(t *testing.T) {
	inner := map[string]any{"fileId": "x"}

	assert.Equal(t, inner, UnwrapEnvelope(map[string]any{"data": inner}))

	// Non-object data passes through as-is.
	withScalar := map[string]any{"data": "nope", "fileId": "y"}
	assert.Equal(t, withScalar, UnwrapEnvelope(withScalar))

	// No envelope at all.
	plain := map[string]any{"fileId": "z"}
	assert.Equal(t, plain, UnwrapEnvelope(plain))

	// Only one level is unwrapped.
	nested := map[string]any{"data": map[string]any{"data": inner}}
	assert.Equal(t, map[string]any{"data": inner}, UnwrapEnvelope(nested))
}

func existingRecord() entity.InvoiceRecord {
	addr := "1 Main St"
	cur := "EUR"
	return entity.InvoiceRecord{
		FileID:   "https://example.com/inv.pdf",
		FileName: "inv.pdf",
		Vendor:   entity.Vendor{Name: "Acme", Address: &addr},
		Invoice: entity.InvoiceDetails{
			Number:   "INV-001",
			Date:     "2026-01-15",
			Currency: &cur,
			Subtotal: f(100),
			LineItems: []entity.LineItem{
				{Description: "Widget", UnitPrice: 50, Quantity: 2, Total: 100},
			},
		},
	}
}

func TestMergeRecord_VendorKeyLevelMerge(t *testing.T) {
	merged, err := MergeRecord(existingRecord(), map[string]any{
		"vendor": map[string]any{"name": "Acme International"},
	})
	require.NoError(t, err)

	vendor := merged["vendor"].(map[string]any)
	assert.Equal(t, "Acme International", vendor["name"])
	// Untouched vendor keys survive.
	assert.Equal(t, "1 Main St", vendor["address"])
	// Other sections survive wholesale.
	invoice := merged["invoice"].(map[string]any)
	assert.Equal(t, "INV-001", invoice["number"])
}

func TestMergeRecord_TopLevelOverlay(t *testing.T) {
	merged, err := MergeRecord(existingRecord(), map[string]any{
		"fileName": "renamed.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed.pdf", merged["fileName"])
	assert.Equal(t, "https://example.com/inv.pdf", merged["fileId"])
}

func TestMergeRecord_LineItemsReplacedWholesale(t *testing.T) {
	merged, err := MergeRecord(existingRecord(), map[string]any{
		"invoice": map[string]any{
			"lineItems": []any{
				map[string]any{"description": "Gadget", "unitPrice": 5.0, "quantity": 1.0, "total": 5.0},
			},
		},
	})
	require.NoError(t, err)

	invoice := merged["invoice"].(map[string]any)
	items := invoice["lineItems"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Gadget", items[0].(map[string]any)["description"])
	// Sibling invoice keys are untouched by the lineItems replacement.
	assert.Equal(t, "2026-01-15", invoice["date"])
}

func TestMergeRecord_NonObjectSectionPassedThrough(t *testing.T) {
	merged, err := MergeRecord(existingRecord(), map[string]any{
		"vendor": "not an object",
	})
	require.NoError(t, err)
	// Passed through so that revalidation rejects it, not silently dropped.
	assert.Equal(t, "not an object", merged["vendor"])
}
