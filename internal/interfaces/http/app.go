package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

// AppConfig parámetros del servidor Fiber.
type AppConfig struct {
	Name           string
	RequestTimeout time.Duration
	SwaggerFile    string // vacío o inexistente = sin /docs
}

// NewApp construye la aplicación Fiber con vistas, middlewares y rutas.
// Orden: recover → request id → log/métricas → timeout → sesión → rutas.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		Views:        NewViewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler(deps.Log),
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log, deps.Metrics))
	app.Use(RequestTimeout(cfg.RequestTimeout))
	app.Use(SessionMiddleware(deps.AuthUC, deps.Log))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    "Sistema de Gestão de Estoque",
			}))
		}
	}

	Router(app, deps)
	return app
}

// errorHandler último recurso para errores no tratados por los handlers.
// La app es HTML: el error se convierte en aviso y redirección, nunca en JSON.
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		message := "Página não encontrada."
		if code != fiber.StatusNotFound {
			log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Path()).Msg("error no tratado")
			message = "Erro interno do servidor."
		}

		target := "/dashboard"
		if GetUser(c) == nil {
			target = "/login"
		}
		// La propia página de destino falló: redirigir otra vez haría un bucle.
		if c.Path() == target {
			return c.Status(code).SendString(message)
		}
		addFlash(c, dto.FlashError, message)
		return c.Redirect(target)
	}
}
