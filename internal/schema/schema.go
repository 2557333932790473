package schema

// BuildInvoiceJSONSchema returns the canonical InvoiceRecord schema
// (draft 2020-12 subset) as a generic map. It is compiled once per validator
// and mirrors the field set the extraction prompt promises.
func BuildInvoiceJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"unitPrice":   map[string]any{"type": "number", "minimum": 0},
			"quantity":    map[string]any{"type": "integer", "minimum": 0},
			"total":       map[string]any{"type": "number", "minimum": 0},
		},
		"required": []any{"description", "unitPrice", "quantity", "total"},
	}

	vendor := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1},
			"address": map[string]any{"type": "string"},
			"taxId":   map[string]any{"type": "string"},
		},
		"required": []any{"name"},
	}

	invoice := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"number":     map[string]any{"type": "string", "minLength": 1},
			"date":       map[string]any{"type": "string", "minLength": 1},
			"currency":   map[string]any{"type": "string"},
			"subtotal":   map[string]any{"type": "number"},
			"taxPercent": map[string]any{"type": "number"},
			"total":      map[string]any{"type": "number"},
			"poNumber":   map[string]any{"type": "string"},
			"poDate":     map[string]any{"type": "string"},
			"lineItems":  map[string]any{"type": "array", "items": lineItem},
		},
		"required": []any{"number", "date"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fileId":    map[string]any{"type": "string", "minLength": 1},
			"fileName":  map[string]any{"type": "string", "minLength": 1},
			"vendor":    vendor,
			"invoice":   invoice,
			"createdAt": map[string]any{"type": "string"},
			"updatedAt": map[string]any{"type": "string"},
		},
		"required": []any{"fileId", "fileName", "vendor", "invoice"},
	}
}
