package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/application/fleet"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

// FleetHandler trata os fluxos de entrega do motorista autenticado (protegido).
type FleetHandler struct {
	uc  *fleet.FleetUseCase
	log *logger.Logger
}

// NewFleetHandler constrói o handler.
func NewFleetHandler(uc *fleet.FleetUseCase, log *logger.Logger) *FleetHandler {
	return &FleetHandler{uc: uc, log: log}
}

// StartFlow godoc
// @Summary      Iniciar fluxo de entrega
// @Tags         fluxo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartFlowRequest  true  "veiculoId"
// @Success      201   {object}  dto.StartFlowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fluxo/iniciar [post]
func (h *FleetHandler) StartFlow(c *fiber.Ctx) error {
	var in dto.StartFlowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Corpo da requisição inválido"))
	}
	flowID, err := h.uc.StartFlow(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("veiculoId é obrigatório"))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("Veículo não encontrado"))
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StartFlowResponse{
		Success: true,
		Message: "Fluxo iniciado com sucesso",
		FluxoID: flowID,
	})
}

// ListFlows godoc
// @Summary      Listar fluxos do motorista autenticado
// @Tags         fluxo
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FlowListResponse
// @Router       /api/fluxo [get]
func (h *FleetHandler) ListFlows(c *fiber.Ctx) error {
	flows, err := h.uc.ListFlows(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, h.log, err)
	}
	out := dto.FlowListResponse{Success: true, Fluxos: make([]dto.FlowDTO, 0, len(flows))}
	for _, fw := range flows {
		out.Fluxos = append(out.Fluxos, toFlowDTO(fw))
	}
	return c.JSON(out)
}
