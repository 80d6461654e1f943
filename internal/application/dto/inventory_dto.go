package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest criação/atualização de item de estoque.
type ItemRequest struct {
	Produto     string          `json:"produto"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	Unidade     string          `json:"unidade"`
	Localizacao *string         `json:"localizacao"`
}

// ItemDTO item de estoque na API.
type ItemDTO struct {
	ID           string          `json:"id"`
	Produto      string          `json:"produto"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	Unidade      string          `json:"unidade"`
	Localizacao  *string         `json:"localizacao,omitempty"`
	CriadoEm     time.Time       `json:"criadoEm"`
	AtualizadoEm time.Time       `json:"atualizadoEm"`
}

// ItemResponse resposta com um único item.
type ItemResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Item    ItemDTO `json:"item"`
}

// ItemListResponse resposta da listagem de estoque.
type ItemListResponse struct {
	Success bool      `json:"success"`
	Estoque []ItemDTO `json:"estoque"`
}

// MovementRequest registro de entrada ou saída (o tipo vem da rota).
type MovementRequest struct {
	EstoqueID  string          `json:"estoqueId"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Motivo     string          `json:"motivo"`
	Observacao *string         `json:"observacao"`
}

// MovementItemDTO resumo do item referenciado pela movimentação.
type MovementItemDTO struct {
	ID      string `json:"id"`
	Produto string `json:"produto"`
	Unidade string `json:"unidade"`
}

// ActorDTO resumo do usuário responsável.
type ActorDTO struct {
	ID        string `json:"id"`
	Matricula string `json:"matricula"`
}

// MovementDTO lançamento do ledger com joins de item e responsável.
type MovementDTO struct {
	ID               string          `json:"id"`
	Tipo             string          `json:"tipo"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	Motivo           string          `json:"motivo"`
	Observacao       *string         `json:"observacao,omitempty"`
	Estoque          MovementItemDTO `json:"estoque"`
	Responsavel      ActorDTO        `json:"responsavel"`
	DataMovimentacao time.Time       `json:"dataMovimentacao"`
}

// MovementResponse resposta do registro de movimentação.
type MovementResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message,omitempty"`
	Movimentacao MovementDTO `json:"movimentacao"`
}

// MovementListResponse resposta da listagem de movimentações.
type MovementListResponse struct {
	Success       bool          `json:"success"`
	Movimentacoes []MovementDTO `json:"movimentacoes"`
}

// StockReportItemDTO item do relatório de estoque com as últimas movimentações.
type StockReportItemDTO struct {
	ItemDTO
	Movimentacoes []StockReportMovementDTO `json:"movimentacoes"`
}

// StockReportMovementDTO lançamento resumido dentro do relatório de estoque.
type StockReportMovementDTO struct {
	ID               string          `json:"id"`
	Tipo             string          `json:"tipo"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	Motivo           string          `json:"motivo"`
	DataMovimentacao time.Time       `json:"dataMovimentacao"`
}

// StockReportDTO agregado do relatório de estoque.
type StockReportDTO struct {
	TotalItens      int                  `json:"totalItens"`
	ItensComEstoque int                  `json:"itensComEstoque"`
	ItensSemEstoque int                  `json:"itensSemEstoque"`
	Estoque         []StockReportItemDTO `json:"estoque"`
}

// StockReportResponse resposta do relatório de estoque.
type StockReportResponse struct {
	Success   bool           `json:"success"`
	Relatorio StockReportDTO `json:"relatorio"`
}
