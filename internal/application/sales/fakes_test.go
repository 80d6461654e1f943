package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

// Fakes em memória com snapshot/rollback, espelhando a semântica da
// transação real: nada persiste quando o callback falha.

type fakeStore struct {
	items     map[string]entity.StockItem
	movements []entity.StockMovement
	sales     map[string]entity.Sale
	actors    map[string]string // userID -> matricula
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:  make(map[string]entity.StockItem),
		sales:  make(map[string]entity.Sale),
		actors: map[string]string{"seller-1": "V100"},
	}
}

func (s *fakeStore) addItem(id, product string, qty int64, unit string) {
	now := time.Now()
	s.items[id] = entity.StockItem{
		ID: id, Product: product, Quantity: decimal.NewFromInt(qty), Unit: unit,
		CreatedAt: now, UpdatedAt: now,
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{
		items:     make(map[string]entity.StockItem, len(s.items)),
		movements: append([]entity.StockMovement(nil), s.movements...),
		sales:     make(map[string]entity.Sale, len(s.sales)),
		actors:    s.actors,
	}
	for k, v := range s.items {
		cp.items[k] = v
	}
	for k, v := range s.sales {
		cp.sales[k] = v
	}
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.items = snap.items
	s.movements = snap.movements
	s.sales = snap.sales
}

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(item *entity.StockItem) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.StockItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := it
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) List() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.StockItem) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(item *entity.StockItem) error {
	stored := r.s.items[item.ID]
	stored.Quantity = item.Quantity
	stored.UpdatedAt = item.UpdatedAt
	r.s.items[item.ID] = stored
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.s.items, id)
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, *movement)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*repository.MovementWithRefs, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			return &repository.MovementWithRefs{Movement: m}, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithRefs, error) {
	out := make([]*repository.MovementWithRefs, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		out = append(out, &repository.MovementWithRefs{Movement: m})
	}
	return out, nil
}

func (r *fakeMovementRepo) ListRecentByItem(itemID string, limit int) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0, limit)
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.movements[i].ItemID == itemID {
			cp := r.s.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales[sale.ID] = *sale
	return nil
}

func (r *fakeSaleRepo) withRefs(sale entity.Sale) *repository.SaleWithRefs {
	lines := make([]repository.SaleLineWithItem, 0, len(sale.Lines))
	for _, l := range sale.Lines {
		item := r.s.items[l.ItemID]
		lines = append(lines, repository.SaleLineWithItem{
			Line: l,
			Item: repository.ItemSummary{ID: item.ID, Product: item.Product, Unit: item.Unit},
		})
	}
	return &repository.SaleWithRefs{
		Sale:   sale,
		Seller: repository.ActorSummary{ID: sale.SellerID, Matricula: r.s.actors[sale.SellerID]},
		Lines:  lines,
	}
}

func (r *fakeSaleRepo) GetByID(id string) (*repository.SaleWithRefs, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return r.withRefs(sale), nil
}

func (r *fakeSaleRepo) List(filter repository.SaleFilter) ([]*repository.SaleWithRefs, error) {
	out := make([]*repository.SaleWithRefs, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		if filter.Status != nil && sale.Status != *filter.Status {
			continue
		}
		if filter.SellerID != nil && sale.SellerID != *filter.SellerID {
			continue
		}
		out = append(out, r.withRefs(sale))
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateStatus(id, status string) (*repository.SaleWithRefs, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	sale.Status = status
	r.s.sales[id] = sale
	return r.withRefs(sale), nil
}

type fakeSaleTxRunner struct {
	s *fakeStore
	// failAfterSale força um erro depois de persistir a venda, para exercer
	// o rollback no meio do fluxo.
	failAfterSale bool
}

func (t *fakeSaleTxRunner) RunSale(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := t.s.snapshot()
	var saleRepo repository.SaleRepository = &fakeSaleRepo{s: t.s}
	if t.failAfterSale {
		saleRepo = &failingSaleRepo{inner: saleRepo.(*fakeSaleRepo)}
	}
	if err := fn(&fakeItemRepo{s: t.s}, &fakeMovementRepo{s: t.s}, saleRepo); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// failingSaleRepo persiste a venda mas falha na releitura, simulando uma
// falha de infraestrutura no fim da transação.
type failingSaleRepo struct{ inner *fakeSaleRepo }

func (r *failingSaleRepo) Create(sale *entity.Sale) error { return r.inner.Create(sale) }

func (r *failingSaleRepo) GetByID(id string) (*repository.SaleWithRefs, error) {
	return nil, domain.ErrConflict
}

func (r *failingSaleRepo) List(filter repository.SaleFilter) ([]*repository.SaleWithRefs, error) {
	return r.inner.List(filter)
}

func (r *failingSaleRepo) UpdateStatus(id, status string) (*repository.SaleWithRefs, error) {
	return r.inner.UpdateStatus(id, status)
}
