package sales

import (
	"context"

	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

// SaleTxRunner executa uma função dentro de uma transação de BD com os
// repositórios de item, ledger e venda atados a ela. CreateSale depende disso
// para que venda, baixas de estoque e lançamentos sejam tudo-ou-nada.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
