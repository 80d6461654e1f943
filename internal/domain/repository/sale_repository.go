package repository

import (
	"time"

	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
)

// SaleFilter filtros opcionais para listagem de vendas.
type SaleFilter struct {
	From     *time.Time
	To       *time.Time
	Status   *string
	SellerID *string
	BuyerID  *string
}

// SaleLineWithItem linha da venda com o resumo do item.
type SaleLineWithItem struct {
	Line entity.SaleLine
	Item ItemSummary
}

// SaleWithRefs venda com linhas e resumo do vendedor.
type SaleWithRefs struct {
	Sale   entity.Sale
	Seller ActorSummary
	Lines  []SaleLineWithItem
}

// SaleRepository define o porto de persistência para vendas.
// Create grava a venda e suas linhas; UpdateStatus é a única mutação
// permitida após a criação.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*SaleWithRefs, error)
	List(filter SaleFilter) ([]*SaleWithRefs, error)
	UpdateStatus(id, status string) (*SaleWithRefs, error)
}
