package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator(nil)
	require.NoError(t, err)
	return v
}

func validPayload() map[string]any {
	return map[string]any{
		"fileId":   "https://example.com/inv.pdf",
		"fileName": "inv.pdf",
		"vendor":   map[string]any{"name": "Acme GmbH"},
		"invoice": map[string]any{
			"number": "INV-001",
			"date":   "2026-03-01",
			"lineItems": []any{
				map[string]any{"description": "Widget", "unitPrice": 10.0, "quantity": 2.0, "total": 20.0},
			},
		},
	}
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestValidateRecord_Valid(t *testing.T) {
	v := newTestValidator(t)

	rec, err := v.ValidateRecord(marshal(t, validPayload()))
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", rec.Vendor.Name)
	assert.Equal(t, "INV-001", rec.Invoice.Number)
	require.Len(t, rec.Invoice.LineItems, 1)
	assert.Equal(t, 2, rec.Invoice.LineItems[0].Quantity)
}

func TestValidateRecord_SyntaxError(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.ValidateRecord([]byte(`{"fileId": `))
	var synErr *JSONSyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Contains(t, synErr.Preview, "fileId")
}

func TestValidateRecord_NonObjectPayload(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.ValidateRecord([]byte(`[1, 2, 3]`))
	var valErr *SchemaValidationError
	require.True(t, errors.As(err, &valErr))
	require.Len(t, valErr.Fields, 1)
	assert.Equal(t, "$", valErr.Fields[0].Path)
}

func TestValidateRecord_MissingRequiredFields(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	delete(p, "vendor")
	_, err := v.ValidateRecord(marshal(t, p))

	var valErr *SchemaValidationError
	require.True(t, errors.As(err, &valErr))
	assert.NotEmpty(t, valErr.Fields)
}

func TestValidateRecord_EmptyVendorName(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["vendor"] = map[string]any{"name": ""}
	_, err := v.ValidateRecord(marshal(t, p))

	var valErr *SchemaValidationError
	require.True(t, errors.As(err, &valErr))
}

func TestValidateRecord_NumericStringsCoerced(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["invoice"].(map[string]any)["subtotal"] = "100.50"
	p["invoice"].(map[string]any)["taxPercent"] = " 19 "
	p["invoice"].(map[string]any)["lineItems"] = []any{
		map[string]any{"description": "Widget", "unitPrice": "10.5", "quantity": "2", "total": "21"},
	}

	rec, err := v.ValidateRecord(marshal(t, p))
	require.NoError(t, err)
	require.NotNil(t, rec.Invoice.Subtotal)
	assert.Equal(t, 100.50, *rec.Invoice.Subtotal)
	require.NotNil(t, rec.Invoice.TaxPercent)
	assert.Equal(t, 19.0, *rec.Invoice.TaxPercent)
	assert.Equal(t, 10.5, rec.Invoice.LineItems[0].UnitPrice)
	assert.Equal(t, 2, rec.Invoice.LineItems[0].Quantity)
}

func TestValidateRecord_EmptyStringNumericsCoerceToZero(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	// A present-but-empty numeric coerces to zero, both on the invoice and
	// inside line items. Only null or missing means absent.
	p["invoice"].(map[string]any)["subtotal"] = ""
	p["invoice"].(map[string]any)["total"] = ""
	p["invoice"].(map[string]any)["lineItems"] = []any{
		map[string]any{"description": "Widget", "unitPrice": "", "quantity": "", "total": ""},
	}

	rec, err := v.ValidateRecord(marshal(t, p))
	require.NoError(t, err)
	require.NotNil(t, rec.Invoice.Subtotal)
	assert.Zero(t, *rec.Invoice.Subtotal)
	require.NotNil(t, rec.Invoice.Total)
	assert.Zero(t, *rec.Invoice.Total)
	assert.Zero(t, rec.Invoice.LineItems[0].UnitPrice)
	assert.Zero(t, rec.Invoice.LineItems[0].Quantity)
}

func TestValidateRecord_PartialLineItemRejected(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["invoice"].(map[string]any)["lineItems"] = []any{
		map[string]any{"description": "Widget"},
	}

	_, err := v.ValidateRecord(marshal(t, p))
	var valErr *SchemaValidationError
	require.True(t, errors.As(err, &valErr))
	require.NotEmpty(t, valErr.Fields)
	assert.Contains(t, valErr.Fields[0].Path, "lineItems")
	assert.Contains(t, err.Error(), "unitPrice")
}

func TestValidateRecord_NullLineItemNumericsBecomeZero(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["invoice"].(map[string]any)["lineItems"] = []any{
		map[string]any{"description": "Widget", "unitPrice": nil, "quantity": nil, "total": nil},
	}

	rec, err := v.ValidateRecord(marshal(t, p))
	require.NoError(t, err)
	assert.Zero(t, rec.Invoice.LineItems[0].UnitPrice)
	assert.Zero(t, rec.Invoice.LineItems[0].Quantity)
	assert.Zero(t, rec.Invoice.LineItems[0].Total)
}

func TestValidateRecord_NullsDropped(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["invoice"].(map[string]any)["currency"] = nil
	p["invoice"].(map[string]any)["subtotal"] = nil
	p["vendor"].(map[string]any)["address"] = nil

	rec, err := v.ValidateRecord(marshal(t, p))
	require.NoError(t, err)
	assert.Nil(t, rec.Invoice.Currency)
	assert.Nil(t, rec.Invoice.Subtotal)
	assert.Nil(t, rec.Vendor.Address)
}

func TestValidateRecord_MissingLineItemsDefaultsToEmpty(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	delete(p["invoice"].(map[string]any), "lineItems")

	rec, err := v.ValidateRecord(marshal(t, p))
	require.NoError(t, err)
	require.NotNil(t, rec.Invoice.LineItems)
	assert.Empty(t, rec.Invoice.LineItems)
}

func TestValidateRecord_UnknownKeysStripped(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["confidence"] = 0.93
	p["vendor"].(map[string]any)["phone"] = "555-0100"
	p["invoice"].(map[string]any)["notes"] = "thanks"

	rec, err := v.ValidateRecord(marshal(t, p))
	require.NoError(t, err)

	// Round-trip the record and confirm the extras are gone.
	out := marshal(t, rec)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "confidence")
	assert.NotContains(t, m["vendor"].(map[string]any), "phone")
	assert.NotContains(t, m["invoice"].(map[string]any), "notes")
}

func TestValidateRecord_NonNumericStringRejected(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["invoice"].(map[string]any)["subtotal"] = "about a hundred"
	_, err := v.ValidateRecord(marshal(t, p))

	var valErr *SchemaValidationError
	require.True(t, errors.As(err, &valErr))
}

func TestValidateRecord_NegativeLineItemRejected(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["invoice"].(map[string]any)["lineItems"] = []any{
		map[string]any{"description": "Refund", "unitPrice": -5.0, "quantity": 1.0, "total": -5.0},
	}
	_, err := v.ValidateRecord(marshal(t, p))

	var valErr *SchemaValidationError
	require.True(t, errors.As(err, &valErr))
	// Both negative fields should surface, with their instance paths.
	assert.GreaterOrEqual(t, len(valErr.Fields), 2)
}

func TestValidateRecord_Idempotent(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload()
	p["invoice"].(map[string]any)["subtotal"] = "100"

	first, err := v.ValidateRecord(marshal(t, p))
	require.NoError(t, err)

	second, err := v.ValidateRecord(marshal(t, first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCoerce_DoesNotMutateInput(t *testing.T) {
	p := validPayload()
	p["invoice"].(map[string]any)["subtotal"] = "100"

	_ = Coerce(p)
	assert.Equal(t, "100", p["invoice"].(map[string]any)["subtotal"])
}
