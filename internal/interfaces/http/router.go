package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	appanalytics "github.com/jhoicas/sistema-estoque/internal/application/analytics"
	"github.com/jhoicas/sistema-estoque/internal/application/auth"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/application/inventory"
	"github.com/jhoicas/sistema-estoque/internal/application/reports"
	"github.com/jhoicas/sistema-estoque/internal/application/usecase"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/metrics"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	Ledger       *inventory.RecordMovementUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	ReportsUC    *reports.StockReportUseCase
	Log          *logger.Logger
	Metrics      *metrics.Metrics // nil = sin /metrics
	CookieSecure bool
	SessionTTL   time.Duration
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use("/static", filesystem.New(filesystem.Config{Root: staticFiles()}))

	app.Get("/health", Health)
	if deps.Metrics != nil {
		app.Get("/metrics", Metrics(deps.Metrics))
	}

	// Páginas públicas
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log, deps.Metrics, deps.CookieSecure, deps.SessionTTL)
	app.Get("/", authHandler.Index)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren sesión)
	protected := app.Group("/", RequireAuth(deps.AuthUC))
	protected.Get("/logout", authHandler.Logout)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	protected.Get("/dashboard", dashboardHandler.Dashboard)
	protected.Get("/documentos", dashboardHandler.Documents)

	productHandler := NewProductHandler(deps.ProductUC, deps.Log, deps.Metrics)
	protected.Get("/produtos", productHandler.List)
	protected.Post("/api/produtos", productHandler.Create)

	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.ProductUC, deps.Log, deps.Metrics)
	protected.Get("/estoque", inventoryHandler.Stock)
	protected.Post("/api/movimentacao", inventoryHandler.RecordMovement)

	reportHandler := NewReportHandler(deps.ReportsUC, deps.Log)
	protected.Get("/estoque/relatorio.:format", reportHandler.Download)
}

// Health godoc
// @Summary      Estado do serviço
// @Tags         infra
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}

// Metrics godoc
// @Summary      Métricas Prometheus
// @Tags         infra
// @Produce      plain
// @Success      200  {string}  string  "Exposição Prometheus"
// @Router       /metrics [get]
func Metrics(m *metrics.Metrics) fiber.Handler {
	return adaptor.HTTPHandler(m.Handler())
}
