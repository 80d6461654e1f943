package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

const stockReportRecentMovements = 5 // últimas movimentações por item no relatório

// ItemUseCase CRUD de itens de estoque e consultas sobre o ledger de
// movimentações. Mutações de quantidade NÃO passam por aqui fora do
// UpdateItem (substituição completa); o caminho normal é RegisterMovement.
type ItemUseCase struct {
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(itemRepo repository.StockItemRepository, movRepo repository.StockMovementRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// CreateItem valida e persiste um novo item. produto, quantidade e unidade
// são obrigatórios; quantidade não pode ser negativa.
func (uc *ItemUseCase) CreateItem(ctx context.Context, in dto.ItemRequest) (*entity.StockItem, error) {
	if in.Produto == "" || in.Unidade == "" || in.Quantidade.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:        uuid.New().String(),
		Product:   in.Produto,
		Quantity:  in.Quantidade,
		Unit:      in.Unidade,
		Location:  in.Localizacao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems lista os itens por criação descendente.
func (uc *ItemUseCase) ListItems(ctx context.Context) ([]*entity.StockItem, error) {
	return uc.itemRepo.List()
}

// GetItem busca um item por ID.
func (uc *ItemUseCase) GetItem(ctx context.Context, id string) (*entity.StockItem, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// UpdateItem substitui os campos mutáveis do item (replace completo).
func (uc *ItemUseCase) UpdateItem(ctx context.Context, id string, in dto.ItemRequest) (*entity.StockItem, error) {
	if in.Produto == "" || in.Unidade == "" || in.Quantidade.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Product = in.Produto
	item.Quantity = in.Quantidade
	item.Unit = in.Unidade
	item.Location = in.Localizacao
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem remove um item. Política: restrict — um item referenciado por
// movimentações ou linhas de venda devolve ErrConflict (o ledger é imutável;
// cascade destruiria o histórico).
func (uc *ItemUseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// ListMovements lista o ledger com filtros opcionais (item, tipo, período),
// por data descendente, com resumos de item e responsável.
func (uc *ItemUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*repository.MovementWithRefs, error) {
	return uc.movRepo.List(filter)
}

// GetMovement busca um lançamento por ID, com joins.
func (uc *ItemUseCase) GetMovement(ctx context.Context, id string) (*repository.MovementWithRefs, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// StockReport monta o relatório de estoque: totais, itens ordenados por nome
// de produto (collation pt-BR) e as últimas movimentações de cada item.
func (uc *ItemUseCase) StockReport(ctx context.Context) (*dto.StockReportDTO, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}

	cl := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(items, func(i, j int) bool {
		return cl.CompareString(items[i].Product, items[j].Product) < 0
	})

	report := &dto.StockReportDTO{
		TotalItens: len(items),
		Estoque:    make([]dto.StockReportItemDTO, 0, len(items)),
	}
	for _, item := range items {
		if item.Quantity.GreaterThan(decimal.Zero) {
			report.ItensComEstoque++
		}
		movs, err := uc.movRepo.ListRecentByItem(item.ID, stockReportRecentMovements)
		if err != nil {
			return nil, err
		}
		entry := dto.StockReportItemDTO{
			ItemDTO: dto.ItemDTO{
				ID:           item.ID,
				Produto:      item.Product,
				Quantidade:   item.Quantity,
				Unidade:      item.Unit,
				Localizacao:  item.Location,
				CriadoEm:     item.CreatedAt,
				AtualizadoEm: item.UpdatedAt,
			},
			Movimentacoes: make([]dto.StockReportMovementDTO, 0, len(movs)),
		}
		for _, m := range movs {
			entry.Movimentacoes = append(entry.Movimentacoes, dto.StockReportMovementDTO{
				ID:               m.ID,
				Tipo:             m.Type,
				Quantidade:       m.Quantity,
				Motivo:           m.Reason,
				DataMovimentacao: m.Date,
			})
		}
		report.Estoque = append(report.Estoque, entry)
	}
	report.ItensSemEstoque = report.TotalItens - report.ItensComEstoque
	return report, nil
}
