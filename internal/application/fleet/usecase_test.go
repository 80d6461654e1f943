package fleet_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/application/fleet"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

type fakeFlowRepo struct {
	flows    []entity.DeliveryFlow
	vehicles map[string]entity.Vehicle
}

func (r *fakeFlowRepo) Create(flow *entity.DeliveryFlow) error {
	r.flows = append(r.flows, *flow)
	return nil
}

func (r *fakeFlowRepo) ListByDriver(driverID string) ([]*repository.FlowWithVehicle, error) {
	out := make([]*repository.FlowWithVehicle, 0)
	for i := len(r.flows) - 1; i >= 0; i-- {
		f := r.flows[i]
		if f.DriverID != driverID {
			continue
		}
		out = append(out, &repository.FlowWithVehicle{Flow: f, Vehicle: r.vehicles[f.VehicleID]})
	}
	return out, nil
}

type fakeVehicleRepo struct{ vehicles map[string]entity.Vehicle }

func (r *fakeVehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := v
	return &cp, nil
}

func newFleetUC() (*fleet.FleetUseCase, *fakeFlowRepo) {
	vehicles := map[string]entity.Vehicle{
		"veh-1": {ID: "veh-1", Plate: "ABC1D23", Model: "Fiorino", CreatedAt: time.Now()},
	}
	flowRepo := &fakeFlowRepo{vehicles: vehicles}
	return fleet.NewFleetUseCase(flowRepo, &fakeVehicleRepo{vehicles: vehicles}), flowRepo
}

func TestStartFlow_VeiculoExistente_CriaFluxo(t *testing.T) {
	uc, repo := newFleetUC()

	flowID, err := uc.StartFlow(context.Background(), "driver-1", dto.StartFlowRequest{VeiculoID: "veh-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, flowID)

	require.Len(t, repo.flows, 1)
	assert.Equal(t, "driver-1", repo.flows[0].DriverID)
	assert.Equal(t, "veh-1", repo.flows[0].VehicleID)
}

func TestStartFlow_SemVeiculo_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := newFleetUC()

	_, err := uc.StartFlow(context.Background(), "driver-1", dto.StartFlowRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStartFlow_VeiculoInexistente_RetornaErrNotFound(t *testing.T) {
	uc, repo := newFleetUC()

	_, err := uc.StartFlow(context.Background(), "driver-1", dto.StartFlowRequest{VeiculoID: "veh-999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.flows, "fluxo não pode ser criado com veículo inexistente")
}

func TestListFlows_SomenteDoMotorista(t *testing.T) {
	uc, repo := newFleetUC()

	_, err := uc.StartFlow(context.Background(), "driver-1", dto.StartFlowRequest{VeiculoID: "veh-1"})
	require.NoError(t, err)
	_, err = uc.StartFlow(context.Background(), "driver-2", dto.StartFlowRequest{VeiculoID: "veh-1"})
	require.NoError(t, err)
	require.Len(t, repo.flows, 2)

	flows, err := uc.ListFlows(context.Background(), "driver-1")
	require.NoError(t, err)
	require.Len(t, flows, 1)
	assert.Equal(t, "driver-1", flows[0].Flow.DriverID)
	assert.Equal(t, "ABC1D23", flows[0].Vehicle.Plate, "a listagem traz o detalhe do veículo")
}
