package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/application/inventory"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

// InventoryHandler trata itens de estoque e movimentações (protegido).
type InventoryHandler struct {
	items     *inventory.ItemUseCase
	movements *inventory.RegisterMovementUseCase
	log       *logger.Logger
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(items *inventory.ItemUseCase, movements *inventory.RegisterMovementUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{items: items, movements: movements, log: log}
}

// CreateItem godoc
// @Summary      Cadastrar item de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "produto, quantidade, unidade, localizacao"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estoque [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Corpo da requisição inválido"))
	}
	item, err := h.items.CreateItem(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Produto, quantidade e unidade são obrigatórios"))
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ItemResponse{
		Success: true,
		Message: "Item cadastrado com sucesso",
		Item:    toItemDTO(item),
	})
}

// ListItems godoc
// @Summary      Listar itens de estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/estoque [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.items.ListItems(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	out := dto.ItemListResponse{Success: true, Estoque: make([]dto.ItemDTO, 0, len(items))}
	for _, item := range items {
		out.Estoque = append(out.Estoque, toItemDTO(item))
	}
	return c.JSON(out)
}

// GetItem godoc
// @Summary      Buscar item de estoque por ID
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.items.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("Item não encontrado"))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Item: toItemDTO(item)})
}

// UpdateItem godoc
// @Summary      Atualizar item de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID do item"
// @Param        body  body  dto.ItemRequest  true  "produto, quantidade, unidade, localizacao"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estoque/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Corpo da requisição inválido"))
	}
	item, err := h.items.UpdateItem(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Produto, quantidade e unidade são obrigatórios"))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("Item não encontrado"))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.ItemResponse{
		Success: true,
		Message: "Item atualizado com sucesso",
		Item:    toItemDTO(item),
	})
}

// DeleteItem godoc
// @Summary      Remover item de estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	err := h.items.DeleteItem(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("Item não encontrado"))
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Item possui movimentações ou vendas vinculadas"))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Item removido com sucesso"})
}

// RegisterEntrada godoc
// @Summary      Registrar entrada de estoque
// @Tags         movimentacao
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "estoqueId, quantidade, motivo, observacao"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacao/entrada [post]
func (h *InventoryHandler) RegisterEntrada(c *fiber.Ctx) error {
	return h.registerMovement(c, entity.MovementTypeEntrada, "Entrada registrada com sucesso")
}

// RegisterSaida godoc
// @Summary      Registrar saída de estoque
// @Tags         movimentacao
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "estoqueId, quantidade, motivo, observacao"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacao/saida [post]
func (h *InventoryHandler) RegisterSaida(c *fiber.Ctx) error {
	return h.registerMovement(c, entity.MovementTypeSaida, "Saída registrada com sucesso")
}

func (h *InventoryHandler) registerMovement(c *fiber.Ctx, movType, successMsg string) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Corpo da requisição inválido"))
	}
	created, err := h.movements.RegisterMovement(c.Context(), inventory.MovementInput{
		ItemID:   in.EstoqueID,
		Type:     movType,
		Quantity: in.Quantidade,
		Reason:   in.Motivo,
		Notes:    in.Observacao,
		ActorID:  GetUserID(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("estoqueId, quantidade e motivo são obrigatórios"))
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err(err.Error()))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("Item de estoque não encontrado"))
		}
		return internalError(c, h.log, err)
	}
	// Relê com joins para devolver o lançamento completo
	mv, err := h.items.GetMovement(c.Context(), created.ID)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Success:      true,
		Message:      successMsg,
		Movimentacao: toMovementDTO(mv),
	})
}

// ListMovements godoc
// @Summary      Listar movimentações
// @Tags         movimentacao
// @Security     Bearer
// @Produce      json
// @Param        estoqueId  query  string  false  "Filtrar por item"
// @Param        tipo       query  string  false  "ENTRADA ou SAIDA"
// @Param        dataInicio  query  string  false  "Data inicial (RFC 3339 ou YYYY-MM-DD)"
// @Param        dataFim     query  string  false  "Data final (RFC 3339 ou YYYY-MM-DD)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movimentacao [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var filter repository.MovementFilter
	if v := c.Query("estoqueId"); v != "" {
		filter.ItemID = &v
	}
	if v := c.Query("tipo"); v != "" {
		filter.Type = &v
	}
	if t, ok := parseQueryTime(c.Query("dataInicio")); ok {
		filter.From = &t
	}
	if t, ok := parseQueryTime(c.Query("dataFim")); ok {
		filter.To = &t
	}
	movements, err := h.items.ListMovements(c.Context(), filter)
	if err != nil {
		return internalError(c, h.log, err)
	}
	out := dto.MovementListResponse{Success: true, Movimentacoes: make([]dto.MovementDTO, 0, len(movements))}
	for _, mv := range movements {
		out.Movimentacoes = append(out.Movimentacoes, toMovementDTO(mv))
	}
	return c.JSON(out)
}

// GetMovement godoc
// @Summary      Buscar movimentação por ID
// @Tags         movimentacao
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da movimentação"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacao/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	mv, err := h.items.GetMovement(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("Movimentação não encontrada"))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.MovementResponse{Success: true, Movimentacao: toMovementDTO(mv)})
}

// StockReport godoc
// @Summary      Relatório de estoque
// @Description  Totais de itens com/sem saldo e as últimas movimentações de cada item.
// @Tags         movimentacao
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReportResponse
// @Router       /api/movimentacao/relatorio/estoque [get]
func (h *InventoryHandler) StockReport(c *fiber.Ctx) error {
	report, err := h.items.StockReport(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.StockReportResponse{Success: true, Relatorio: *report})
}

// parseQueryTime aceita RFC 3339 ou YYYY-MM-DD.
func parseQueryTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
