package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcardoso/almoxarifado-api/internal/application/fleet"
	"github.com/jpcardoso/almoxarifado-api/internal/application/inventory"
	"github.com/jpcardoso/almoxarifado-api/internal/application/sales"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
	apphttp "github.com/jpcardoso/almoxarifado-api/internal/interfaces/http"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para exercitar as rotas de ponta a ponta
// ──────────────────────────────────────────────────────────────────────────────

type routerStore struct {
	items     map[string]entity.StockItem
	movements []repository.MovementWithRefs
	flows     []entity.DeliveryFlow
	vehicles  map[string]entity.Vehicle
}

type routerItemRepo struct{ s *routerStore }

func (r *routerItemRepo) Create(item *entity.StockItem) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r *routerItemRepo) GetByID(id string) (*entity.StockItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := it
	return &cp, nil
}

func (r *routerItemRepo) GetForUpdate(id string) (*entity.StockItem, error) { return r.GetByID(id) }

func (r *routerItemRepo) List() ([]*entity.StockItem, error) { return nil, nil }

func (r *routerItemRepo) Update(item *entity.StockItem) error         { return nil }
func (r *routerItemRepo) UpdateQuantity(item *entity.StockItem) error { return nil }
func (r *routerItemRepo) Delete(id string) error                      { return nil }

type routerMovementRepo struct{ s *routerStore }

func (r *routerMovementRepo) Create(mov *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, repository.MovementWithRefs{Movement: *mov})
	return nil
}

func (r *routerMovementRepo) GetByID(id string) (*repository.MovementWithRefs, error) {
	for _, m := range r.s.movements {
		if m.Movement.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

// List aplica os filtros de período como o repositório real.
func (r *routerMovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithRefs, error) {
	out := make([]*repository.MovementWithRefs, 0, len(r.s.movements))
	for i := range r.s.movements {
		m := r.s.movements[i]
		if filter.From != nil && m.Movement.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Movement.Date.After(*filter.To) {
			continue
		}
		out = append(out, &m)
	}
	return out, nil
}

func (r *routerMovementRepo) ListRecentByItem(itemID string, limit int) ([]*entity.StockMovement, error) {
	return nil, nil
}

type routerSaleRepo struct{ sales map[string]entity.Sale }

func (r *routerSaleRepo) Create(sale *entity.Sale) error {
	r.sales[sale.ID] = *sale
	return nil
}

func (r *routerSaleRepo) GetByID(id string) (*repository.SaleWithRefs, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	return &repository.SaleWithRefs{Sale: sale}, nil
}

func (r *routerSaleRepo) List(filter repository.SaleFilter) ([]*repository.SaleWithRefs, error) {
	return nil, nil
}

func (r *routerSaleRepo) UpdateStatus(id, status string) (*repository.SaleWithRefs, error) {
	return nil, nil
}

type routerFlowRepo struct{ s *routerStore }

func (r *routerFlowRepo) Create(flow *entity.DeliveryFlow) error {
	r.s.flows = append(r.s.flows, *flow)
	return nil
}

func (r *routerFlowRepo) ListByDriver(driverID string) ([]*repository.FlowWithVehicle, error) {
	return nil, nil
}

type routerVehicleRepo struct{ s *routerStore }

func (r *routerVehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := v
	return &cp, nil
}

type routerSaleTxRunner struct{ s *routerStore }

func (t *routerSaleTxRunner) RunSale(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(&routerItemRepo{s: t.s}, &routerMovementRepo{s: t.s}, &routerSaleRepo{sales: map[string]entity.Sale{}})
}

func buildRouterApp(s *routerStore) *fiber.App {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:    inventory.NewItemUseCase(&routerItemRepo{s: s}, &routerMovementRepo{s: s}),
		SaleUC:    sales.NewSaleUseCase(&routerSaleTxRunner{s: s}, &routerSaleRepo{sales: map[string]entity.Sale{}}, inventory.NewRegisterMovementUseCase(nil)),
		FleetUC:   fleet.NewFleetUseCase(&routerFlowRepo{s: s}, &routerVehicleRepo{s: s}),
		JWTSecret: testJWTSecret,
		Logger:    log,
	})
	return app
}

func newRouterStore() *routerStore {
	return &routerStore{
		items:    map[string]entity.StockItem{},
		vehicles: map[string]entity.Vehicle{"veh-1": {ID: "veh-1", Plate: "ABC1D23", Model: "Fiorino"}},
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato das rotas
// ──────────────────────────────────────────────────────────────────────────────

// POST /api/fluxo/iniciar é o caminho documentado para abrir um fluxo.
func TestRouter_IniciarFluxo_CaminhoDocumentado(t *testing.T) {
	s := newRouterStore()
	app := buildRouterApp(s)

	resp := doJSON(t, app, http.MethodPost, "/api/fluxo/iniciar", `{"veiculoId":"veh-1"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["fluxoId"])

	require.Len(t, s.flows, 1)
	assert.Equal(t, testUserID, s.flows[0].DriverID, "o motorista vem do token")
}

// GET /api/movimentacao filtra por dataInicio e dataFim.
func TestRouter_ListarMovimentacoes_FiltraPorDataInicioEDataFim(t *testing.T) {
	s := newRouterStore()
	antiga := entity.StockMovement{
		ID: "mov-antiga", ItemID: "item-1", Type: entity.MovementTypeEntrada,
		Quantity: decimal.NewFromInt(10), Reason: "COMPRA",
		Date: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	recente := entity.StockMovement{
		ID: "mov-recente", ItemID: "item-1", Type: entity.MovementTypeSaida,
		Quantity: decimal.NewFromInt(3), Reason: "USO_INTERNO",
		Date: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	}
	s.movements = []repository.MovementWithRefs{{Movement: antiga}, {Movement: recente}}
	app := buildRouterApp(s)

	resp := doJSON(t, app, http.MethodGet, "/api/movimentacao?dataInicio=2026-08-10&dataFim=2026-08-31", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success       bool `json:"success"`
		Movimentacoes []struct {
			ID string `json:"id"`
		} `json:"movimentacoes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	require.Len(t, body.Movimentacoes, 1, "só a movimentação dentro do período entra")
	assert.Equal(t, "mov-recente", body.Movimentacoes[0].ID)
}

// POST /api/venda com item inexistente: o 404 identifica qual id está ausente.
func TestRouter_CriarVenda_ItemInexistente_MensagemNomeiaItem(t *testing.T) {
	s := newRouterStore()
	app := buildRouterApp(s)

	resp := doJSON(t, app, http.MethodPost, "/api/venda",
		`{"itens":[{"estoqueId":"item-fantasma","quantidade":1,"precoUnitario":10}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Item de estoque item-fantasma não encontrado", body["message"])
}
