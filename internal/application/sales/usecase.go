package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/application/inventory"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

// SaleUseCase motor de vendas: compõe validação de saldo, persistência da
// venda com linhas, baixa de estoque e lançamentos de SAIDA em uma única
// transação.
type SaleUseCase struct {
	txRunner  SaleTxRunner
	saleRepo  repository.SaleRepository
	movements *inventory.RegisterMovementUseCase
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(txRunner SaleTxRunner, saleRepo repository.SaleRepository, movements *inventory.RegisterMovementUseCase) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, movements: movements}
}

// CreateSale registra uma venda. Passos dentro de UMA transação:
//  1. bloquear cada item (FOR UPDATE) e validar existência e saldo;
//  2. calcular subtotal por linha e total;
//  3. persistir a venda e suas linhas;
//  4. baixar a quantidade de cada item e gravar o lançamento SAIDA/VENDA.
//
// Qualquer falha após a validação desfaz tudo: não existe venda sem as baixas
// e os lançamentos completos.
func (uc *SaleUseCase) CreateSale(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*repository.SaleWithRefs, error) {
	if len(in.Itens) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Itens {
		if l.EstoqueID == "" || !l.Quantidade.GreaterThan(decimal.Zero) || !l.PrecoUnitario.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *repository.SaleWithRefs
	err := uc.txRunner.RunSale(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		now := time.Now()
		saleID := uuid.New().String()
		total := decimal.Zero
		lines := make([]entity.SaleLine, 0, len(in.Itens))
		items := make([]*entity.StockItem, 0, len(in.Itens))

		for _, l := range in.Itens {
			item, err := itemRepo.GetForUpdate(l.EstoqueID)
			if err != nil {
				return err
			}
			if item == nil {
				return &domain.ItemNotFoundError{ItemID: l.EstoqueID}
			}
			if item.Quantity.LessThan(l.Quantidade) {
				return &domain.InsufficientStockError{Product: item.Product, Available: item.Quantity, Unit: item.Unit}
			}
			subtotal := l.PrecoUnitario.Mul(l.Quantidade)
			total = total.Add(subtotal)
			lines = append(lines, entity.SaleLine{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ItemID:    item.ID,
				Quantity:  l.Quantidade,
				UnitPrice: l.PrecoUnitario,
				Subtotal:  subtotal,
			})
			items = append(items, item)
		}

		sale := &entity.Sale{
			ID:       saleID,
			BuyerID:  in.ClienteID,
			SellerID: sellerID,
			Total:    total,
			Status:   entity.SaleStatusPendente,
			Notes:    in.Observacao,
			Date:     now,
			Lines:    lines,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for i, line := range lines {
			if err := uc.movements.RegisterSaleOutInTx(itemRepo, movRepo, items[i], line.Quantity, sellerID, saleID, now); err != nil {
				return err
			}
		}

		created, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListSales lista vendas por data descendente com linhas e resumos.
func (uc *SaleUseCase) ListSales(ctx context.Context, filter repository.SaleFilter) ([]*repository.SaleWithRefs, error) {
	return uc.saleRepo.List(filter)
}

// GetSale busca uma venda por ID.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*repository.SaleWithRefs, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// UpdateSaleStatus troca o status da venda (pendente/aprovada/cancelada).
// Cancelar NÃO devolve estoque: a compensação é decisão de produto fora
// deste escopo.
func (uc *SaleUseCase) UpdateSaleStatus(ctx context.Context, id, status string) (*repository.SaleWithRefs, error) {
	if !entity.ValidSaleStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}
