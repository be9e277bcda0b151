package reports

import (
	"context"

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
)

// StockReportRenderer genera la representación de un snapshot de estoque (PDF, XLSX...).
// Implementado en infraestructura; Format es la clave usada en la URL (ej: "pdf").
type StockReportRenderer interface {
	Format() string
	ContentType() string
	Render(ctx context.Context, report *dto.StockReportDTO) ([]byte, error)
}

// ProductLister fuente de productos y alertas del reporte.
type ProductLister interface {
	List(ctx context.Context, search string) ([]*dto.ProductResponse, error)
	LowStockAlerts(ctx context.Context) ([]*dto.ProductResponse, error)
}
