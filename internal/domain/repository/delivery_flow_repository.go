package repository

import "github.com/jpcardoso/almoxarifado-api/internal/domain/entity"

// FlowWithVehicle fluxo de entrega com os dados do veículo.
type FlowWithVehicle struct {
	Flow    entity.DeliveryFlow
	Vehicle entity.Vehicle
}

// DeliveryFlowRepository define o porto de persistência para fluxos de
// entrega (append-only).
type DeliveryFlowRepository interface {
	Create(flow *entity.DeliveryFlow) error
	ListByDriver(driverID string) ([]*FlowWithVehicle, error)
}

// VehicleRepository consulta de veículos (cadastro mantido fora desta API).
type VehicleRepository interface {
	GetByID(id string) (*entity.Vehicle, error)
}
