package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sistema-estoque/internal/application/auth"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/metrics"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	log          *logger.Logger
	metrics      *metrics.Metrics
	cookieSecure bool
	sessionTTL   time.Duration
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger, m *metrics.Metrics, cookieSecure bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, log: log, metrics: m, cookieSecure: cookieSecure, sessionTTL: sessionTTL}
}

// Index godoc
// @Summary      Página inicial
// @Description  Redireciona para /dashboard com sessão, senão para /login.
// @Tags         auth
// @Success      302
// @Router       / [get]
func (h *AuthHandler) Index(c *fiber.Ctx) error {
	if GetUser(c) != nil {
		return c.Redirect("/dashboard")
	}
	return c.Redirect("/login")
}

// LoginPage godoc
// @Summary      Página de login
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string  "Formulário de login"
// @Success      302  {string}  string  "Já autenticado: redireciona para /dashboard"
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if GetUser(c) != nil {
		return c.Redirect("/dashboard")
	}
	return render(c, "login", fiber.Map{"Title": "Login"})
}

// Login godoc
// @Summary      Inicia a sessão
// @Description  Credenciais válidas criam a sessão (cookie estoque_session) e redirecionam para /dashboard.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email  formData  string  true  "Email"
// @Param        senha  formData  string  true  "Senha"
// @Success      302  {string}  string  "Sessão criada"
// @Failure      200  {string}  string  "Credenciais inválidas: formulário com aviso"
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.loginFailed(c, in.Email, "Email ou senha inválidos.")
	}
	res, err := h.uc.Authenticate(c.UserContext(), in.Email, in.Password)
	if err != nil {
		h.metrics.LoginAttempt(false)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.loginFailed(c, in.Email, "Email ou senha inválidos.")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("login")
		return h.loginFailed(c, in.Email, "Erro no sistema: "+userMessage(err))
	}
	h.metrics.LoginAttempt(true)

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	addFlash(c, dto.FlashSuccess, "Login realizado com sucesso!")
	return c.Redirect("/dashboard")
}

// Logout godoc
// @Summary      Encerra a sessão
// @Description  Elimina la sesión del servidor y el cookie; redireciona para /login.
// @Tags         auth
// @Security     SessionCookie
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), c.Cookies(SessionCookie)); err != nil {
		h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("logout")
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	addFlash(c, dto.FlashSuccess, "Logout realizado com sucesso!")
	return c.Redirect("/login")
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, email, message string) error {
	return render(c, "login", fiber.Map{
		"Title":   "Login",
		"Email":   email,
		"Flashes": []dto.Flash{{Kind: dto.FlashError, Message: message}},
	})
}
