package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Sale. Status é o único campo mutável após a criação.
const (
	SaleStatusPendente  = "pendente"
	SaleStatusAprovada  = "aprovada"
	SaleStatusCancelada = "cancelada"
)

// ValidSaleStatus informa se s pertence ao conjunto enumerado.
func ValidSaleStatus(s string) bool {
	return s == SaleStatusPendente || s == SaleStatusAprovada || s == SaleStatusCancelada
}

// Sale representa uma venda com seus itens. Total é a soma dos subtotais das
// linhas no momento da criação.
type Sale struct {
	ID       string
	BuyerID  *string // cliente, opcional
	SellerID string  // vendedor (usuário autenticado)
	Total    decimal.Decimal
	Status   string
	Notes    *string
	Date     time.Time
	Lines    []SaleLine
}

// SaleLine é uma linha da venda: pertence à Sale e nunca é criada de forma
// independente.
type SaleLine struct {
	ID        string
	SaleID    string
	ItemID    string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
