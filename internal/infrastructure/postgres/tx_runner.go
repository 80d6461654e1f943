package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpcardoso/almoxarifado-api/internal/application/inventory"
	"github.com/jpcardoso/almoxarifado-api/internal/application/sales"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.SaleTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewStockItemRepository(tx)
	movRepo := NewStockMovementRepository(tx)

	if err := fn(itemRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia uma transação com os repos de estoque, ledger e venda (para CreateSale).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewStockItemRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(itemRepo, movRepo, saleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
