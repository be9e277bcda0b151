package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	appanalytics "github.com/jhoicas/sistema-estoque/internal/application/analytics"
	"github.com/jhoicas/sistema-estoque/internal/application/auth"
	"github.com/jhoicas/sistema-estoque/internal/application/inventory"
	"github.com/jhoicas/sistema-estoque/internal/application/reports"
	"github.com/jhoicas/sistema-estoque/internal/application/usecase"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/excel"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/memory"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/sistema-estoque/internal/infrastructure/pdf"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/sistema-estoque/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/sistema-estoque/internal/interfaces/http"
	"github.com/jhoicas/sistema-estoque/pkg/config"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.DB.DatabaseURL); err != nil {
			return err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	sessions, closeSessions, err := newSessionStore(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeSessions()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := inventory.NewRecordMovementUseCase(txRunner, movementRepo, inventory.Policy{
		AllowNegativeStock: cfg.Stock.AllowNegative,
	})
	productUC := usecase.NewProductUseCase(productRepo, txRunner, ledger, usecase.ProductOptions{
		OpeningViaLedger: cfg.Stock.OpeningViaLedger,
	})
	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.SessionConfig{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
		Issuer: cfg.Session.Issuer,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, movementRepo)
	reportsUC := reports.NewStockReportUseCase(productUC,
		infrapdf.NewStockReportRenderer(),
		excel.NewStockReportRenderer(),
	)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		SwaggerFile:    cfg.App.SwaggerFile,
	}, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		Ledger:       ledger,
		DashboardUC:  dashboardUC,
		ReportsUC:    reportsUC,
		Log:          log,
		Metrics:      m,
		CookieSecure: cfg.Session.CookieSecure,
		SessionTTL:   cfg.Session.TTL,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	if err := waitForShutdown(ctx, errCh, quit); err != nil {
		log.Error().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP finalizado")
		return fmt.Errorf("servidor HTTP: %w", err)
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

// waitForShutdown bloquea hasta una señal, la cancelación de ctx o el fin de Listen.
// Devuelve el error de Listen (puerto ocupado, dirección inválida); nil en un apagado normal.
func waitForShutdown(ctx context.Context, errCh <-chan error, quit <-chan os.Signal) error {
	select {
	case err := <-errCh:
		return err
	case <-quit:
		return nil
	case <-ctx.Done():
		return nil
	}
}

// newSessionStore Redis si REDIS_ADDR está configurado; si no, memoria del proceso.
func newSessionStore(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (repository.SessionStore, func(), error) {
	if cfg.Addr == "" {
		log.Warn().Msg("REDIS_ADDR vacío: sesiones en memoria (se pierden al reiniciar)")
		return memory.NewSessionStore(), func() {}, nil
	}
	client, err := infraredis.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("addr", cfg.Addr).Msg("sesiones en Redis")
	return infraredis.NewSessionStore(client), func() { _ = client.Close() }, nil
}
