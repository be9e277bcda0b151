package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/application/usecase"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/metrics"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

// ProductHandler maneja las páginas y formularios del catálogo (protegido).
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{uc: uc, log: log, metrics: m}
}

// List godoc
// @Summary      Lista de produtos ordenada por nome
// @Tags         produtos
// @Security     SessionCookie
// @Produce      html
// @Param        search  query  string  false  "Filtro por nome (sem distinção de maiúsculas)"
// @Success      200  {string}  string  "Página"
// @Failure      302  {string}  string  "Sem sessão: redireciona para /login"
// @Router       /produtos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	data := fiber.Map{"Title": "Produtos", "Search": search}

	products, err := h.uc.List(c.UserContext(), search)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar produtos")
		products = nil
		data["Flashes"] = []dto.Flash{{Kind: dto.FlashError, Message: "Erro ao carregar produtos: " + userMessage(err)}}
	}
	data["Products"] = products
	return render(c, "produtos", data)
}

// Create godoc
// @Summary      Cadastra um produto
// @Tags         produtos
// @Security     SessionCookie
// @Accept       x-www-form-urlencoded
// @Param        nome            formData  string   true   "Nome"
// @Param        descricao       formData  string   false  "Descrição"
// @Param        validade        formData  string   false  "Validade (AAAA-MM-DD)"
// @Param        unidade         formData  string   true   "Unidade"
// @Param        estoque_minimo  formData  integer  true   "Estoque mínimo"  minimum(0)
// @Param        estoque_atual   formData  integer  true   "Estoque inicial"  minimum(0)
// @Success      302  {string}  string  "Redireciona para /produtos com aviso de sucesso ou erro"
// @Router       /api/produtos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		addFlash(c, dto.FlashError, "Erro ao adicionar produto: formulário inválido")
		return c.Redirect("/produtos")
	}
	if _, err := h.uc.Create(c.UserContext(), GetUserID(c), in); err != nil {
		h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("adicionar produto")
		addFlash(c, dto.FlashError, "Erro ao adicionar produto: "+userMessage(err))
		return c.Redirect("/produtos")
	}
	h.metrics.ProductCreated()
	addFlash(c, dto.FlashSuccess, "Produto adicionado com sucesso!")
	return c.Redirect("/produtos")
}
