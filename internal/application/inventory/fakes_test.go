package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória com semântica transacional (snapshot + rollback)
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado compartilhado pelos fakes. O txRunner tira um snapshot
// antes do callback e restaura em caso de erro, imitando o Rollback real.
type fakeStore struct {
	items     map[string]entity.StockItem
	movements []entity.StockMovement
	actors    map[string]string // userID -> matricula
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:  make(map[string]entity.StockItem),
		actors: map[string]string{"user-1": "A001"},
	}
}

func (s *fakeStore) addItem(id, product string, qty int64, unit string) {
	now := time.Now()
	s.items[id] = entity.StockItem{
		ID:        id,
		Product:   product,
		Quantity:  decimal.NewFromInt(qty),
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{
		items:     make(map[string]entity.StockItem, len(s.items)),
		movements: append([]entity.StockMovement(nil), s.movements...),
		actors:    s.actors,
	}
	for k, v := range s.items {
		cp.items[k] = v
	}
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.items = snap.items
	s.movements = snap.movements
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
	for _, m := range r.s.movements {
		if m.ItemID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.items, id)
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, *movement)
	return nil
}

func (r *fakeMovementRepo) withRefs(m entity.StockMovement) *repository.MovementWithRefs {
	item := r.s.items[m.ItemID]
	return &repository.MovementWithRefs{
		Movement: m,
		Item:     repository.ItemSummary{ID: item.ID, Product: item.Product, Unit: item.Unit},
		Actor:    repository.ActorSummary{ID: m.CreatedBy, Matricula: r.s.actors[m.CreatedBy]},
	}
}

func (r *fakeMovementRepo) GetByID(id string) (*repository.MovementWithRefs, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			return r.withRefs(m), nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithRefs, error) {
	out := make([]*repository.MovementWithRefs, 0)
	for _, m := range r.s.movements {
		if filter.ItemID != nil && m.ItemID != *filter.ItemID {
			continue
		}
		if filter.Type != nil && m.Type != *filter.Type {
			continue
		}
		out = append(out, r.withRefs(m))
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

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	snap := t.s.snapshot()
	if err := fn(&fakeItemRepo{s: t.s}, &fakeMovementRepo{s: t.s}); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}
