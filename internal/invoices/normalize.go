package invoices

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/shopspring/decimal"

	"github.com/invox/invox/internal/entity"
)

// DeriveTotal fills invoice.total when it is absent but subtotal is present:
// total = subtotal + subtotal * taxPercent/100, rounded to 2 decimal places.
// Present totals are left alone.
func DeriveTotal(rec *entity.InvoiceRecord) {
	inv := &rec.Invoice
	if inv.Total != nil || inv.Subtotal == nil {
		return
	}
	subtotal := decimal.NewFromFloat(*inv.Subtotal)
	total := subtotal
	if inv.TaxPercent != nil {
		tax := subtotal.Mul(decimal.NewFromFloat(*inv.TaxPercent)).Div(decimal.NewFromInt(100))
		total = subtotal.Add(tax)
	}
	f, _ := total.Round(2).Float64()
	inv.Total = &f
}

// UnwrapEnvelope performs the single-level discriminated check for wrapped
// payloads: if a field named "data" exists and is itself an object, that object
// is the payload. Anything else passes through untouched.
func UnwrapEnvelope(m map[string]any) map[string]any {
	if d, ok := m["data"]; ok {
		if dm, ok := d.(map[string]any); ok {
			return dm
		}
	}
	return m
}

// MergeRecord produces the merged update candidate: top-level scalars from the
// incoming payload overlay the existing record, while vendor and invoice are
// independently merged at key level (incoming keys override existing keys
// within each sub-object only). lineItems lives inside invoice, so an incoming
// lineItems key replaces the stored sequence wholesale. The result still has
// to pass full schema validation before it is accepted.
func MergeRecord(existing entity.InvoiceRecord, incoming map[string]any) (map[string]any, error) {
	base, err := recordToMap(existing)
	if err != nil {
		return nil, err
	}
	merged := maps.Clone(base)
	for k, v := range incoming {
		if k == "vendor" || k == "invoice" {
			continue
		}
		merged[k] = v
	}
	merged["vendor"] = mergeSection(base["vendor"], incoming["vendor"])
	merged["invoice"] = mergeSection(base["invoice"], incoming["invoice"])
	return merged, nil
}

// mergeSection is the one-level deep merge for a sub-object. This is NOT a
// recursive merge of arbitrarily nested structures.
func mergeSection(existing, incoming any) any {
	em, _ := existing.(map[string]any)
	out := make(map[string]any, len(em))
	maps.Copy(out, em)
	if im, ok := incoming.(map[string]any); ok {
		maps.Copy(out, im)
	} else if incoming != nil {
		// non-object incoming value; let validation flag it
		return incoming
	}
	return out
}

func recordToMap(rec entity.InvoiceRecord) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return m, nil
}
