package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque (valores gravados no banco e na API).
const (
	MovementTypeEntrada = "ENTRADA"
	MovementTypeSaida   = "SAIDA"
)

// Motivo gravado nas saídas geradas por uma venda.
const MovementReasonVenda = "VENDA"

// StockMovement é um lançamento imutável do ledger de estoque: referencia o
// item, a direção, a quantidade e o usuário responsável. Nunca é atualizado
// nem removido; o saldo do item é a soma assinada dos seus movimentos.
type StockMovement struct {
	ID        string
	ItemID    string
	Type      string // ENTRADA | SAIDA
	Quantity  decimal.Decimal
	Reason    string
	Notes     *string
	CreatedBy string // UserID do responsável
	Date      time.Time
}
