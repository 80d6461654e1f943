package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest linha da venda no request.
type SaleLineRequest struct {
	EstoqueID     string          `json:"estoqueId"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
}

// CreateSaleRequest registro de venda com seus itens.
type CreateSaleRequest struct {
	ClienteID  *string           `json:"clienteId"`
	Observacao *string           `json:"observacao"`
	Itens      []SaleLineRequest `json:"itens"`
}

// SaleLineDTO linha da venda na resposta, com resumo do item.
type SaleLineDTO struct {
	ID            string          `json:"id"`
	Estoque       MovementItemDTO `json:"estoque"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// SaleDTO venda completa na API.
type SaleDTO struct {
	ID         string          `json:"id"`
	ClienteID  *string         `json:"clienteId,omitempty"`
	Vendedor   ActorDTO        `json:"vendedor"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	Observacao *string         `json:"observacao,omitempty"`
	DataVenda  time.Time       `json:"dataVenda"`
	Itens      []SaleLineDTO   `json:"itens"`
}

// SaleResponse resposta com uma única venda.
type SaleResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Venda   SaleDTO `json:"venda"`
}

// SaleListResponse resposta da listagem de vendas.
type SaleListResponse struct {
	Success bool      `json:"success"`
	Vendas  []SaleDTO `json:"vendas"`
}

// UpdateSaleStatusRequest mudança de status da venda.
type UpdateSaleStatusRequest struct {
	Status string `json:"status"`
}
