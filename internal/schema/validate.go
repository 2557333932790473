package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/invox/invox/constants"
	"github.com/invox/invox/internal/entity"
)

// Validator turns a candidate JSON substring into a typed InvoiceRecord, or a
// tagged failure. Two sequential fallible steps: syntactic parse
// (*JSONSyntaxError), then coercion + schema validation
// (*SchemaValidationError). No failure escapes as a panic.
type Validator struct {
	compiled *jsonschema.Schema
	logger   *slog.Logger
}

func NewValidator(logger *slog.Logger) (*Validator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b, err := json.Marshal(BuildInvoiceJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("invoice.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("invoice.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{compiled: compiled, logger: logger}, nil
}

// ValidateRecord parses, coerces, and validates candidate. On success the
// returned record is fully normalized: numeric-looking strings became numbers,
// nulls were dropped, lineItems is never nil, unknown keys are gone.
// Re-validating an already-valid record yields a deep-equal value.
func (v *Validator) ValidateRecord(candidate []byte) (entity.InvoiceRecord, error) {
	var raw any
	if err := json.Unmarshal(candidate, &raw); err != nil {
		return entity.InvoiceRecord{}, &JSONSyntaxError{Msg: err.Error(), Preview: preview(candidate)}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return entity.InvoiceRecord{}, &SchemaValidationError{
			Fields: []FieldError{{Path: "$", Reason: "payload must be a JSON object"}},
		}
	}

	coerced := Coerce(m)

	if err := v.compiled.Validate(coerced); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			fields := flatten(ve)
			v.logger.Warn("schema.validation_failed", "failures", len(fields))
			return entity.InvoiceRecord{}, &SchemaValidationError{Fields: fields}
		}
		return entity.InvoiceRecord{}, fmt.Errorf("validate: %w", err)
	}

	buf, err := json.Marshal(coerced)
	if err != nil {
		return entity.InvoiceRecord{}, fmt.Errorf("encode coerced payload: %w", err)
	}
	var rec entity.InvoiceRecord
	if err := json.Unmarshal(buf, &rec); err != nil {
		return entity.InvoiceRecord{}, fmt.Errorf("decode record: %w", err)
	}
	if rec.Invoice.LineItems == nil {
		rec.Invoice.LineItems = []entity.LineItem{}
	}
	return rec, nil
}

// Coerce applies the lenient-input rules ahead of strict validation:
// numeric-looking strings become numbers, empty strings coerce to zero for
// numeric fields, nulls and unknown keys are dropped (except line-item
// numerics, where null means zero), lineItems defaults to an empty array.
// Missing required fields stay missing so validation reports them. It never
// mutates its input.
func Coerce(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for _, k := range []string{"fileId", "fileName", "createdAt", "updatedAt"} {
		if val, ok := m[k]; ok && val != nil {
			out[k] = val
		}
	}
	if vv, ok := m["vendor"]; ok && vv != nil {
		if vm, ok := vv.(map[string]any); ok {
			out["vendor"] = coerceVendor(vm)
		} else {
			out["vendor"] = vv
		}
	}
	if iv, ok := m["invoice"]; ok && iv != nil {
		if im, ok := iv.(map[string]any); ok {
			out["invoice"] = coerceInvoice(im)
		} else {
			out["invoice"] = iv
		}
	}
	return out
}

func coerceVendor(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for _, k := range []string{"name", "address", "taxId"} {
		if val, ok := m[k]; ok && val != nil {
			out[k] = val
		}
	}
	return out
}

func coerceInvoice(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for _, k := range []string{"number", "date", "currency", "poNumber", "poDate"} {
		if val, ok := m[k]; ok && val != nil {
			out[k] = val
		}
	}
	for _, k := range []string{"subtotal", "taxPercent", "total"} {
		if val, ok := m[k]; ok && val != nil {
			if n, ok := coerceNumber(val); ok {
				out[k] = n
			} else if s, isStr := val.(string); isStr && strings.TrimSpace(s) == "" {
				// present but empty coerces to zero; only null/missing is absent
				out[k] = float64(0)
			} else {
				out[k] = val
			}
		}
	}

	items, ok := m["lineItems"]
	if !ok || items == nil {
		out["lineItems"] = []any{}
		return out
	}
	arr, ok := items.([]any)
	if !ok {
		out["lineItems"] = items
		return out
	}
	coercedItems := make([]any, 0, len(arr))
	for _, it := range arr {
		im, ok := it.(map[string]any)
		if !ok {
			coercedItems = append(coercedItems, it)
			continue
		}
		ci := make(map[string]any, len(im))
		if d, ok := im["description"]; ok && d != nil {
			ci["description"] = d
		}
		for _, k := range []string{"unitPrice", "quantity", "total"} {
			val, present := im[k]
			if !present {
				// required by the schema; leaving it absent lets validation
				// report the missing field instead of inventing a zero
				continue
			}
			if val == nil {
				ci[k] = float64(0)
				continue
			}
			if n, ok := coerceNumber(val); ok {
				ci[k] = n
			} else if s, isStr := val.(string); isStr && strings.TrimSpace(s) == "" {
				ci[k] = float64(0)
			} else {
				ci[k] = val
			}
		}
		coercedItems = append(coercedItems, ci)
	}
	out["lineItems"] = coercedItems
	return out
}

// coerceNumber accepts numbers and numeric-looking strings.
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// flatten collects the leaf causes of a validation error as field-path/reason
// pairs.
func flatten(ve *jsonschema.ValidationError) []FieldError {
	var out []FieldError
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			path := e.InstanceLocation
			if path == "" {
				path = "$"
			}
			out = append(out, FieldError{Path: path, Reason: e.Message})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}

func preview(b []byte) string {
	if len(b) > constants.MaxPreviewBytes {
		return string(b[:constants.MaxPreviewBytes])
	}
	return string(b)
}
