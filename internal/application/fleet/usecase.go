package fleet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/domain"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

// FleetUseCase rastreamento de fluxos de entrega (sessões motorista/veículo).
type FleetUseCase struct {
	flowRepo    repository.DeliveryFlowRepository
	vehicleRepo repository.VehicleRepository
}

// NewFleetUseCase constrói o caso de uso.
func NewFleetUseCase(flowRepo repository.DeliveryFlowRepository, vehicleRepo repository.VehicleRepository) *FleetUseCase {
	return &FleetUseCase{flowRepo: flowRepo, vehicleRepo: vehicleRepo}
}

// StartFlow inicia um fluxo para o motorista autenticado. O veículo precisa
// existir (validação antes de qualquer mutação).
func (uc *FleetUseCase) StartFlow(ctx context.Context, driverID string, in dto.StartFlowRequest) (string, error) {
	if in.VeiculoID == "" {
		return "", domain.ErrInvalidInput
	}
	vehicle, err := uc.vehicleRepo.GetByID(in.VeiculoID)
	if err != nil {
		return "", err
	}
	if vehicle == nil {
		return "", domain.ErrNotFound
	}
	flow := &entity.DeliveryFlow{
		ID:        uuid.New().String(),
		DriverID:  driverID,
		VehicleID: vehicle.ID,
		CreatedAt: time.Now(),
	}
	if err := uc.flowRepo.Create(flow); err != nil {
		return "", err
	}
	return flow.ID, nil
}

// ListFlows lista os fluxos do motorista por criação descendente, com o
// detalhe do veículo.
func (uc *FleetUseCase) ListFlows(ctx context.Context, driverID string) ([]*repository.FlowWithVehicle, error) {
	return uc.flowRepo.ListByDriver(driverID)
}
