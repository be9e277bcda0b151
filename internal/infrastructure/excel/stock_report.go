// Package excel implementa el relatório de estoque en XLSX.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/application/reports"
)

var _ reports.StockReportRenderer = (*StockReportRenderer)(nil)

const (
	sheetProducts = "Estoque"
	sheetAlerts   = "Alertas"
)

var productHeader = []interface{}{"ID", "Produto", "Descrição", "Unidade", "Validade", "Estoque mínimo", "Estoque atual", "Status"}

// StockReportRenderer implementa reports.StockReportRenderer con excelize.
// Hoja "Estoque": todos los productos; hoja "Alertas": solo los de estoque baixo.
type StockReportRenderer struct{}

// NewStockReportRenderer construye el generador.
func NewStockReportRenderer() *StockReportRenderer { return &StockReportRenderer{} }

func (g *StockReportRenderer) Format() string { return "xlsx" }
func (g *StockReportRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render genera el libro y devuelve sus bytes.
func (g *StockReportRenderer) Render(_ context.Context, report *dto.StockReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetProducts); err != nil {
		return nil, fmt.Errorf("xlsx: renomear planilha: %w", err)
	}
	if _, err := f.NewSheet(sheetAlerts); err != nil {
		return nil, fmt.Errorf("xlsx: criar planilha: %w", err)
	}

	if err := writeProducts(f, sheetProducts, report.Products); err != nil {
		return nil, err
	}
	if err := writeProducts(f, sheetAlerts, report.Alerts); err != nil {
		return nil, err
	}

	// Pie con metadatos del snapshot
	footerRow := len(report.Products) + 3
	cell, err := excelize.CoordinatesToCellName(1, footerRow)
	if err != nil {
		return nil, fmt.Errorf("xlsx: célula: %w", err)
	}
	meta := []interface{}{"Gerado em", report.GeneratedAt.Format("02/01/2006 15:04"), "por", report.GeneratedBy}
	if err := f.SetSheetRow(sheetProducts, cell, &meta); err != nil {
		return nil, fmt.Errorf("xlsx: rodapé: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: gravar arquivo: %w", err)
	}
	return buf.Bytes(), nil
}

func writeProducts(f *excelize.File, sheet string, products []dto.ProductResponse) error {
	header := productHeader
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: cabeçalho: %w", err)
	}
	for i, p := range products {
		validade := ""
		if p.ExpirationDate != nil {
			validade = p.ExpirationDate.Format("2006-01-02")
		}
		status := "OK"
		if p.LowStock {
			status = "Baixo"
		}
		excelRow := []interface{}{
			p.ID,
			p.Name,
			p.Description,
			p.Unit,
			validade,
			p.MinimumStock,
			p.CurrentStock,
			status,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: célula: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return fmt.Errorf("xlsx: linha %d: %w", i+2, err)
		}
	}
	return nil
}
