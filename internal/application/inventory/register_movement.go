package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimentações de estoque (ENTRADA/SAIDA)
// de forma transacional, com bloqueio de linha (SELECT FOR UPDATE) e
// Commit/Rollback. O lançamento no ledger e a atualização da quantidade do
// item nunca são observáveis separadamente.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar uma movimentação.
type MovementInput struct {
	ItemID   string
	Type     string // ENTRADA | SAIDA
	Quantity decimal.Decimal
	Reason   string
	Notes    *string
	ActorID  string // usuário autenticado responsável
}

// RegisterMovement abre uma transação, bloqueia a linha do item, valida o
// saldo em SAIDA, grava o lançamento imutável e aplica a quantidade.
// Em SAIDA com saldo insuficiente devolve InsufficientStockError com o saldo
// disponível e a unidade; nenhum estado parcial persiste.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if input.ItemID == "" || input.Reason == "" || input.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeEntrada && input.Type != entity.MovementTypeSaida {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloqueia a linha do item para serializar saídas concorrentes
		item, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if input.Type == entity.MovementTypeSaida && item.Quantity.LessThan(input.Quantity) {
			return &domain.InsufficientStockError{Available: item.Quantity, Unit: item.Unit}
		}

		now := time.Now()
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
			Notes:     input.Notes,
			CreatedBy: input.ActorID,
			Date:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		if input.Type == entity.MovementTypeEntrada {
			item.Quantity = item.Quantity.Add(input.Quantity)
		} else {
			item.Quantity = item.Quantity.Sub(input.Quantity)
		}
		item.UpdatedAt = now
		if err := itemRepo.UpdateQuantity(item); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RegisterSaleOutInTx grava a saída de uma linha de venda usando os
// repositórios da transação do caller (o motor de vendas abre a transação e
// já bloqueou a linha do item). Motivo fixo VENDA, observação "Venda #<id>".
func (uc *RegisterMovementUseCase) RegisterSaleOutInTx(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
	item *entity.StockItem,
	quantity decimal.Decimal,
	actorID, saleID string,
	now time.Time,
) error {
	note := fmt.Sprintf("Venda #%s", saleID)
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		Type:      entity.MovementTypeSaida,
		Quantity:  quantity,
		Reason:    entity.MovementReasonVenda,
		Notes:     &note,
		CreatedBy: actorID,
		Date:      now,
	}
	if err := movRepo.Create(mov); err != nil {
		return err
	}
	item.Quantity = item.Quantity.Sub(quantity)
	item.UpdatedAt = now
	return itemRepo.UpdateQuantity(item)
}
