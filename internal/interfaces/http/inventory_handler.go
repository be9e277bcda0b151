package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/application/inventory"
	"github.com/jhoicas/sistema-estoque/internal/application/usecase"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/metrics"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

const estoqueRecentMovements = 20

// InventoryHandler maneja la página de estoque y el registro de movimientos (protegido).
type InventoryHandler struct {
	ledger   *inventory.RecordMovementUseCase
	products *usecase.ProductUseCase
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.RecordMovementUseCase, products *usecase.ProductUseCase, log *logger.Logger, m *metrics.Metrics) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, products: products, log: log, metrics: m}
}

// Stock godoc
// @Summary      Saldos, alertas de estoque baixo e últimas movimentações
// @Description  Un fallo del datastore muestra la página vacía con aviso de error.
// @Tags         estoque
// @Security     SessionCookie
// @Produce      html
// @Success      200  {string}  string  "Página"
// @Failure      302  {string}  string  "Sem sessão: redireciona para /login"
// @Router       /estoque [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	ctx := c.UserContext()
	data := fiber.Map{"Title": "Estoque"}

	products, err := h.products.List(ctx, "")
	var alerts []*dto.ProductResponse
	if err == nil {
		alerts, err = h.products.LowStockAlerts(ctx)
	}
	var movements []dto.MovementResponse
	if err == nil {
		movements, err = h.ledger.ListRecent(ctx, estoqueRecentMovements)
	}
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("carregar estoque")
		products, alerts, movements = nil, nil, nil
		data["Flashes"] = []dto.Flash{{Kind: dto.FlashError, Message: "Erro ao carregar estoque: " + userMessage(err)}}
	}

	data["Products"] = products
	data["Alerts"] = alerts
	data["Movements"] = movements
	return render(c, "estoque", data)
}

// RecordMovement godoc
// @Summary      Registra uma entrada ou saída
// @Tags         estoque
// @Security     SessionCookie
// @Accept       x-www-form-urlencoded
// @Param        produto_id  formData  integer  true   "Produto"
// @Param        tipo        formData  string   true   "Tipo"  Enums(entrada, saida)
// @Param        quantidade  formData  integer  true   "Quantidade"  minimum(1)
// @Param        data        formData  string   false  "Data (opcional; padrão: agora)"
// @Success      302  {string}  string  "Redireciona para /estoque com aviso de sucesso ou erro"
// @Router       /api/movimentacao [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		addFlash(c, dto.FlashError, "Erro ao registrar movimentação: formulário inválido")
		return c.Redirect("/estoque")
	}
	if _, err := h.ledger.RecordMovementFromRequest(c.UserContext(), GetUserID(c), in); err != nil {
		h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("registrar movimentação")
		addFlash(c, dto.FlashError, "Erro ao registrar movimentação: "+userMessage(err))
		return c.Redirect("/estoque")
	}
	tipo := strings.ToLower(strings.TrimSpace(in.Type))
	h.metrics.MovementRecorded(tipo)
	addFlash(c, dto.FlashSuccess, "Movimentação de "+tipo+" registrada com sucesso!")
	return c.Redirect("/estoque")
}
