package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/query"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Référence", "Date", "Fournisseur", "Articles", "Statut", "Montant total"}

// ExportOrders renders the filtered (unpaginated) order list as an xlsx
// workbook.
func (s *OrderService) ExportOrders(ctx context.Context, q query.ListQuery) (*excelize.File, error) {
	orders := s.FilterOrders(ctx, q)
	catalog := s.catalog.Lookup(ctx)

	f := excelize.NewFile()
	sheet := "Approvisionnements"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, h := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	colWidths := []float64{14, 12, 22, 44, 12, 14}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	for i, o := range orders {
		row := i + 2
		supplierName := ""
		if o.Supplier != nil {
			supplierName = o.Supplier.Name
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.Reference)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), o.Date.Format(dateLayout))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), supplierName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), describeLines(o.Lines, catalog))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), statusText(o.Status))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), o.TotalAmount)
	}

	return f, nil
}

func describeLines(lines []entity.OrderLine, catalog map[int64]entity.Item) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		label := fmt.Sprintf("Article %d", l.ItemID)
		if it, ok := catalog[l.ItemID]; ok {
			label = it.Label
		}
		parts = append(parts, fmt.Sprintf("%d × %s", l.Quantity, label))
	}
	return strings.Join(parts, "; ")
}

func statusText(status string) string {
	if status == entity.OrderStatusReceived {
		return "Reçu"
	}
	return "En attente"
}
