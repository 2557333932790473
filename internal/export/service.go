package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/invox/invox/internal/entity"
	"github.com/invox/invox/internal/invoices"
)

// Service produces XLSX bytes from stored invoice records.
type Service struct {
	gateway invoices.Gateway
	logger  *slog.Logger
}

func NewService(gw invoices.Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gateway: gw, logger: logger}
}

// ExportInvoicesXLSX returns a two-sheet workbook: one row per invoice on the
// first sheet, one row per line item on the second. The filter matches the
// same way ListInvoices does.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, filter string) ([]byte, error) {
	start := time.Now()

	recs, err := s.gateway.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const invoiceSheet = "Invoices"
	const itemSheet = "Line Items"
	if index, _ := f.GetSheetIndex(invoiceSheet); index == -1 {
		if _, err := f.NewSheet(invoiceSheet); err != nil {
			return nil, err
		}
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(invoiceSheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice Number",
		"Invoice Date",
		"Vendor",
		"Currency",
		"Subtotal",
		"Tax %",
		"Total",
		"PO Number",
		"Line Items",
		"File Name",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(invoiceSheet, cell, h)
	}

	itemHeaders := []string{"Invoice Number", "Vendor", "Description", "Unit Price", "Quantity", "Total"}
	for i, h := range itemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemSheet, cell, h)
	}

	row := 2
	itemRow := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(invoiceSheet, cell, v)
		}

		write(1, r.Invoice.Number)
		write(2, r.Invoice.Date)
		write(3, r.Vendor.Name)
		write(4, lo.FromPtr(r.Invoice.Currency))
		writeOptional(f, invoiceSheet, 5, row, r.Invoice.Subtotal)
		writeOptional(f, invoiceSheet, 6, row, r.Invoice.TaxPercent)
		writeOptional(f, invoiceSheet, 7, row, r.Invoice.Total)
		write(8, lo.FromPtr(r.Invoice.PONumber))
		write(9, len(r.Invoice.LineItems))
		write(10, r.FileName)
		write(11, r.CreatedAt.UTC().Format(time.RFC3339))
		row++

		for _, it := range r.Invoice.LineItems {
			cells := []any{r.Invoice.Number, r.Vendor.Name, it.Description, it.UnitPrice, it.Quantity, it.Total}
			for col, v := range cells {
				cell, _ := excelize.CoordinatesToCellName(col+1, itemRow)
				_ = f.SetCellValue(itemSheet, cell, v)
			}
			itemRow++
		}
	}

	_ = f.SetColWidth(invoiceSheet, "A", "B", 16)
	_ = f.SetColWidth(invoiceSheet, "C", "C", 32)
	_ = f.SetColWidth(invoiceSheet, "D", "I", 12)
	_ = f.SetColWidth(invoiceSheet, "J", "K", 28)
	_ = f.SetColWidth(itemSheet, "C", "C", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"line_items", lo.SumBy(recs, func(r *entity.StoredInvoice) int { return len(r.Invoice.LineItems) }),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// writeOptional leaves the cell empty for absent numerics instead of writing 0.
func writeOptional(f *excelize.File, sheet string, col, row int, v *float64) {
	if v == nil {
		return
	}
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, *v)
}
