package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/sistema-estoque/internal/application/analytics"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

// DashboardHandler maneja la página principal y las páginas estáticas (protegido).
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Dashboard godoc
// @Summary      Resumo do estoque e últimas movimentações
// @Description  Si los contadores fallan, la página se muestra igual con los datos del usuario.
// @Tags         páginas
// @Security     SessionCookie
// @Produce      html
// @Success      200  {string}  string  "Página"
// @Failure      302  {string}  string  "Sem sessão: redireciona para /login"
// @Router       /dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	user := GetUser(c)
	data := fiber.Map{"Title": "Dashboard"}

	summary, err := h.uc.GetSummary(c.UserContext(), *user)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("dashboard")
		summary = &dto.DashboardSummaryDTO{User: *user}
		data["Flashes"] = []dto.Flash{{Kind: dto.FlashError, Message: "Erro ao carregar indicadores: " + userMessage(err)}}
	}
	data["Summary"] = summary
	return render(c, "dashboard", data)
}

// Documents godoc
// @Summary      Documentação de uso
// @Tags         páginas
// @Security     SessionCookie
// @Produce      html
// @Success      200  {string}  string  "Página"
// @Failure      302  {string}  string  "Sem sessão: redireciona para /login"
// @Router       /documentos [get]
func (h *DashboardHandler) Documents(c *fiber.Ctx) error {
	return render(c, "documentos", fiber.Map{"Title": "Documentos"})
}
