package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/application/reports"
	"github.com/jhoicas/sistema-estoque/pkg/logger"
)

// ReportHandler descarga del relatório de estoque (protegido).
type ReportHandler struct {
	uc  *reports.StockReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.StockReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Download godoc
// @Summary      Relatório de estoque
// @Tags         estoque
// @Security     SessionCookie
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format  path  string  true  "Formato"  Enums(pdf, xlsx)
// @Success      200  {file}    file    "Arquivo (Content-Disposition: attachment)"
// @Failure      302  {string}  string  "Formato desconhecido ou falha: redireciona para /estoque com aviso"
// @Router       /estoque/relatorio.{format} [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	generatedBy := ""
	if u := GetUser(c); u != nil {
		generatedBy = u.Name
	}
	data, filename, contentType, err := h.uc.Export(c.UserContext(), c.Params("format"), generatedBy)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("relatório de estoque")
		addFlash(c, dto.FlashError, "Erro ao gerar relatório: "+userMessage(err))
		return c.Redirect("/estoque")
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
