package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/domain"
)

const stockReportTitle = "Relatório de Estoque"

// StockReportUseCase exporta el snapshot del estoque en los formatos registrados.
type StockReportUseCase struct {
	products  ProductLister
	renderers map[string]StockReportRenderer
	now       func() time.Time
}

// NewStockReportUseCase construye el caso de uso con los renderers disponibles.
func NewStockReportUseCase(products ProductLister, renderers ...StockReportRenderer) *StockReportUseCase {
	byFormat := make(map[string]StockReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &StockReportUseCase{products: products, renderers: byFormat, now: time.Now}
}

// Build arma el snapshot: todos los productos, las alertas y la fecha de generación.
func (uc *StockReportUseCase) Build(ctx context.Context, generatedBy string) (*dto.StockReportDTO, error) {
	products, err := uc.products.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("relatório: produtos: %w", err)
	}
	alerts, err := uc.products.LowStockAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: alertas: %w", err)
	}
	report := &dto.StockReportDTO{
		Title:       stockReportTitle,
		GeneratedAt: uc.now(),
		GeneratedBy: generatedBy,
		Products:    make([]dto.ProductResponse, 0, len(products)),
		Alerts:      make([]dto.ProductResponse, 0, len(alerts)),
	}
	for _, p := range products {
		report.Products = append(report.Products, *p)
	}
	for _, p := range alerts {
		report.Alerts = append(report.Alerts, *p)
	}
	return report, nil
}

// Export genera el archivo en el formato pedido.
//
// Retorna:
//   - (data, filename, contentType, nil) si todo sale bien.
//   - *domain.ValidationError{Field: "formato"} si no hay renderer para el formato.
func (uc *StockReportUseCase) Export(
	ctx context.Context,
	format, generatedBy string,
) (data []byte, filename, contentType string, err error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, "", "", domain.NewValidationError("formato", "formato de relatório não suportado")
	}
	report, err := uc.Build(ctx, generatedBy)
	if err != nil {
		return nil, "", "", err
	}
	data, err = renderer.Render(ctx, report)
	if err != nil {
		return nil, "", "", fmt.Errorf("relatório: gerar %s: %w", format, err)
	}
	filename = fmt.Sprintf("estoque-%s.%s", report.GeneratedAt.Format("20060102-1504"), format)
	return data, filename, renderer.ContentType(), nil
}
