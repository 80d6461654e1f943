package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = "id, product, quantity, unit, location, created_at, updated_at"

// StockItemRepo implementação de StockItemRepository sobre PostgreSQL
// (usável com pool ou tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository constrói o adaptador de itens. Aceita pool ou tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create insere um item de estoque.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, product, quantity, unit, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Product, item.Quantity, item.Unit, item.Location, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock item: %w", err)
	}
	return nil
}

// GetByID busca um item por ID. Devolve nil se não existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	return scanStockItem(r.q.QueryRow(context.Background(), query, id), "get stock item")
}

// GetForUpdate busca o item bloqueando a linha (SELECT FOR UPDATE). Só faz
// sentido dentro de uma transação.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return scanStockItem(r.q.QueryRow(context.Background(), query, id), "get stock item for update")
}

// List devolve todos os itens por criação descendente.
func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.StockItem, 0)
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(&it.ID, &it.Product, &it.Quantity, &it.Unit, &it.Location, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Update substitui os campos mutáveis do item.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET product = $2, quantity = $3, unit = $4, location = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Product, item.Quantity, item.Unit, item.Location, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// UpdateQuantity grava apenas quantidade e updated_at (usado nas movimentações).
func (r *StockItemRepo) UpdateQuantity(item *entity.StockItem) error {
	query := `UPDATE stock_items SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Quantity, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock item quantity: %w", err)
	}
	return nil
}

// Delete remove um item. Item referenciado por movimentações ou vendas
// devolve domain.ErrConflict (FK restrict).
func (r *StockItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

func scanStockItem(row pgx.Row, op string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := row.Scan(&it.ID, &it.Product, &it.Quantity, &it.Unit, &it.Location, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
