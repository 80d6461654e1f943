package repository

import (
	"time"

	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
)

// MovementFilter filtros opcionais para listagem de movimentações.
type MovementFilter struct {
	ItemID *string
	Type   *string // ENTRADA | SAIDA
	From   *time.Time
	To     *time.Time
}

// ItemSummary resumo do item de estoque para linhas com join.
type ItemSummary struct {
	ID      string
	Product string
	Unit    string
}

// ActorSummary resumo do usuário responsável pela movimentação.
type ActorSummary struct {
	ID        string
	Matricula string
}

// MovementWithRefs movimentação com os resumos de item e responsável.
type MovementWithRefs struct {
	Movement entity.StockMovement
	Item     ItemSummary
	Actor    ActorSummary
}

// StockMovementRepository define o porto de persistência do ledger de
// movimentações. Apenas inserção e leitura: lançamentos nunca são alterados.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*MovementWithRefs, error)
	List(filter MovementFilter) ([]*MovementWithRefs, error)
	// ListRecentByItem devolve os últimos lançamentos de um item (data desc).
	ListRecentByItem(itemID string, limit int) ([]*entity.StockMovement, error)
}
