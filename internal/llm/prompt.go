package llm

import "strings"

// BuildExtractionPrompt renders the fixed instruction + schema template for one
// document. Pure function: same inputs always produce the same prompt. The
// embedded field set is part of the public contract and must match the invoice
// schema exactly, because JSON recovery depends on the reply being
// JSON-object-shaped.
func BuildExtractionPrompt(fileID, fileName, extractedText string) string {
	var b strings.Builder
	b.WriteString("You must return a single JSON object and NOTHING ELSE (no commentary, no code fences).\n")
	b.WriteString("Return valid JSON matching this structure (use empty string or 0 if missing; lineItems may be an empty array):\n\n")
	b.WriteString("{\n")
	b.WriteString("  \"fileId\": \"" + fileID + "\",\n")
	b.WriteString("  \"fileName\": \"" + fileName + "\",\n")
	b.WriteString("  \"vendor\": { \"name\": \"\", \"address\": \"\", \"taxId\": \"\" },\n")
	b.WriteString("  \"invoice\": {\n")
	b.WriteString("    \"number\": \"\", \"date\": \"\", \"currency\": \"\",\n")
	b.WriteString("    \"subtotal\": 0, \"taxPercent\": 0, \"total\": 0,\n")
	b.WriteString("    \"poNumber\": \"\", \"poDate\": \"\",\n")
	b.WriteString("    \"lineItems\": [\n")
	b.WriteString("      { \"description\": \"\", \"unitPrice\": 0, \"quantity\": 0, \"total\": 0 }\n")
	b.WriteString("    ]\n")
	b.WriteString("  }\n")
	b.WriteString("}\n\n")
	b.WriteString("Use ISO-8601 dates (YYYY-MM-DD) where the document allows it.\n\n")
	b.WriteString("PDF TEXT:\n")
	b.WriteString(extractedText)
	return b.String()
}
