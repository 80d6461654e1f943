package repository

import "github.com/jpcardoso/almoxarifado-api/internal/domain/entity"

// StockItemRepository define o porto de persistência para itens de estoque.
// GetForUpdate bloqueia a linha (SELECT FOR UPDATE) e só deve ser chamado
// dentro de uma transação.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetForUpdate(id string) (*entity.StockItem, error)
	List() ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	UpdateQuantity(item *entity.StockItem) error
	Delete(id string) error
}
