package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/application/sales"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

// SaleHandler trata o registro e consulta de vendas (protegido).
type SaleHandler struct {
	uc  *sales.SaleUseCase
	log *logger.Logger
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *sales.SaleUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar venda
// @Description  Valida saldo, calcula totais, persiste a venda e baixa o estoque
//
//	em uma única transação; qualquer falha desfaz tudo.
//
// @Tags         venda
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "clienteId, observacao, itens"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/venda [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Corpo da requisição inválido"))
	}
	sale, err := h.uc.CreateSale(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Informe ao menos um item com quantidade e preço válidos"))
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err(err.Error()))
		}
		if errors.Is(err, domain.ErrNotFound) {
			// A mensagem do erro tipado identifica qual item não existe
			return c.Status(fiber.StatusNotFound).JSON(dto.Err(err.Error()))
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleResponse{
		Success: true,
		Message: "Venda registrada com sucesso",
		Venda:   toSaleDTO(sale),
	})
}

// List godoc
// @Summary      Listar vendas
// @Tags         venda
// @Security     Bearer
// @Produce      json
// @Param        status      query  string  false  "pendente, aprovada ou cancelada"
// @Param        vendedorId  query  string  false  "Filtrar por vendedor"
// @Param        dataInicio  query  string  false  "Data inicial (RFC 3339 ou YYYY-MM-DD)"
// @Param        dataFim     query  string  false  "Data final (RFC 3339 ou YYYY-MM-DD)"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/venda [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var filter repository.SaleFilter
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("vendedorId"); v != "" {
		filter.SellerID = &v
	}
	if v := c.Query("clienteId"); v != "" {
		filter.BuyerID = &v
	}
	if t, ok := parseQueryTime(c.Query("dataInicio")); ok {
		filter.From = &t
	}
	if t, ok := parseQueryTime(c.Query("dataFim")); ok {
		filter.To = &t
	}
	list, err := h.uc.ListSales(c.Context(), filter)
	if err != nil {
		return internalError(c, h.log, err)
	}
	out := dto.SaleListResponse{Success: true, Vendas: make([]dto.SaleDTO, 0, len(list))}
	for _, sw := range list {
		out.Vendas = append(out.Vendas, toSaleDTO(sw))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar venda por ID
// @Tags         venda
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/venda/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("Venda não encontrada"))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.SaleResponse{Success: true, Venda: toSaleDTO(sale)})
}

// UpdateStatus godoc
// @Summary      Atualizar status da venda
// @Description  Status aceitos: pendente, aprovada, cancelada. Cancelar não devolve estoque.
// @Tags         venda
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID da venda"
// @Param        body  body  dto.UpdateSaleStatusRequest  true  "status"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/venda/{id}/status [patch]
func (h *SaleHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateSaleStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Corpo da requisição inválido"))
	}
	sale, err := h.uc.UpdateSaleStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Status inválido. Use: pendente, aprovada ou cancelada"))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("Venda não encontrada"))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.SaleResponse{
		Success: true,
		Message: "Status atualizado com sucesso",
		Venda:   toSaleDTO(sale),
	})
}
