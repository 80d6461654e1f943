package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/application/reports"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

// ReportHandler trata os dashboards de relatório (protegido, somente leitura).
type ReportHandler struct {
	uc  *reports.ReportUseCase
	log *logger.Logger
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// General godoc
// @Summary      Relatório geral
// @Tags         relatorio
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GeneralReportResponse
// @Router       /api/relatorio/geral [get]
func (h *ReportHandler) General(c *fiber.Ctx) error {
	report, err := h.uc.General(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.GeneralReportResponse{Success: true, Relatorio: *report})
}

// Sales godoc
// @Summary      Relatório de vendas
// @Tags         relatorio
// @Security     Bearer
// @Produce      json
// @Param        periodo   query  string  false  "Mês no formato YYYY-MM"
// @Param        vendedor  query  string  false  "Filtrar por vendedor (ID)"
// @Success      200  {object}  dto.SalesReportResponse
// @Router       /api/relatorio/vendas [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	var periodo, vendedor *string
	if v := c.Query("periodo"); v != "" {
		periodo = &v
	}
	if v := c.Query("vendedor"); v != "" {
		vendedor = &v
	}
	report, err := h.uc.Sales(c.Context(), periodo, vendedor)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.SalesReportResponse{Success: true, Relatorio: *report})
}

// Deliveries godoc
// @Summary      Relatório de entregas
// @Tags         relatorio
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeliveriesReportResponse
// @Router       /api/relatorio/entregas [get]
func (h *ReportHandler) Deliveries(c *fiber.Ctx) error {
	report, err := h.uc.Deliveries(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.DeliveriesReportResponse{Success: true, Relatorio: *report})
}

// Users godoc
// @Summary      Relatório de usuários
// @Tags         relatorio
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsersReportResponse
// @Router       /api/relatorio/usuarios [get]
func (h *ReportHandler) Users(c *fiber.Ctx) error {
	report, err := h.uc.Users(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.UsersReportResponse{Success: true, Relatorio: *report})
}
