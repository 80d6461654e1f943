package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa um item de estoque do almoxarifado.
// Quantity é o único campo mutado com frequência e nunca pode ficar negativo;
// toda alteração de quantidade passa pelo ledger de movimentações.
type StockItem struct {
	ID        string
	Product   string
	Quantity  decimal.Decimal
	Unit      string
	Location  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
