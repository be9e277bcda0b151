package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sistema-estoque/internal/application/auth"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

// Locals keys.
const (
	LocalUser      = "user"
	LocalRequestID = "request_id"
)

// SessionCookie nombre del cookie con el token de sesión firmado.
const SessionCookie = "estoque_session"

// SessionMiddleware resuelve la identidad del cookie de sesión en cada request y la deja en c.Locals.
// Sin cookie, o con sesión inválida, el request sigue como anónimo.
func SessionMiddleware(uc *auth.AuthUseCase, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Next()
		}
		identity, err := uc.LoadSessionUser(c.UserContext(), token)
		if err != nil {
			log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("no se pudo cargar la sesión")
			return c.Next()
		}
		if identity != nil {
			c.Locals(LocalUser, identity)
		}
		return c.Next()
	}
}

// RequireAuth redirige a /login con aviso cuando no hay usuario autenticado.
func RequireAuth(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := uc.RequireAuthenticated(GetUser(c)); err != nil {
			addFlash(c, dto.FlashInfo, "Por favor, faça login para acessar esta página.")
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// GetUser devuelve la identidad del request (después de SessionMiddleware) o nil.
func GetUser(c *fiber.Ctx) *dto.UserIdentity {
	u, _ := c.Locals(LocalUser).(*dto.UserIdentity)
	return u
}

// GetUserID devuelve el ID del usuario autenticado o 0.
func GetUserID(c *fiber.Ctx) int64 {
	if u := GetUser(c); u != nil {
		return u.ID
	}
	return 0
}

// GetRequestID devuelve el ID asignado por RequestID.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
