package inventory

import (
	"context"

	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante que lançamento no ledger e
// atualização de quantidade sejam uma unidade atômica (commit ou rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
