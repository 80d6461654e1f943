package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

var _ repository.DeliveryFlowRepository = (*DeliveryFlowRepo)(nil)
var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// DeliveryFlowRepo implementação de DeliveryFlowRepository sobre PostgreSQL.
type DeliveryFlowRepo struct {
	q Querier
}

// NewDeliveryFlowRepository constrói o adaptador de fluxos de entrega.
func NewDeliveryFlowRepository(q Querier) *DeliveryFlowRepo {
	return &DeliveryFlowRepo{q: q}
}

// Create insere um fluxo de entrega.
func (r *DeliveryFlowRepo) Create(flow *entity.DeliveryFlow) error {
	query := `
		INSERT INTO delivery_flows (id, driver_id, vehicle_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, flow.ID, flow.DriverID, flow.VehicleID, flow.CreatedAt)
	if err != nil {
		return fmt.Errorf("create delivery flow: %w", err)
	}
	return nil
}

// ListByDriver devolve os fluxos do motorista por criação descendente, com os
// dados do veículo.
func (r *DeliveryFlowRepo) ListByDriver(driverID string) ([]*repository.FlowWithVehicle, error) {
	query := `
		SELECT f.id, f.driver_id, f.vehicle_id, f.created_at,
		       v.id, v.plate, v.model, v.created_at
		FROM delivery_flows f
		JOIN vehicles v ON v.id = f.vehicle_id
		WHERE f.driver_id = $1
		ORDER BY f.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, driverID)
	if err != nil {
		return nil, fmt.Errorf("list delivery flows: %w", err)
	}
	defer rows.Close()

	flows := make([]*repository.FlowWithVehicle, 0)
	for rows.Next() {
		var fw repository.FlowWithVehicle
		err := rows.Scan(
			&fw.Flow.ID, &fw.Flow.DriverID, &fw.Flow.VehicleID, &fw.Flow.CreatedAt,
			&fw.Vehicle.ID, &fw.Vehicle.Plate, &fw.Vehicle.Model, &fw.Vehicle.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan delivery flow: %w", err)
		}
		flows = append(flows, &fw)
	}
	return flows, rows.Err()
}

// VehicleRepo consulta de veículos sobre PostgreSQL (o cadastro é mantido por
// outro sistema).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository constrói o adaptador de veículos.
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// GetByID busca um veículo por ID. Devolve nil se não existe.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	query := `SELECT id, plate, model, created_at FROM vehicles WHERE id = $1`
	var v entity.Vehicle
	err := r.q.QueryRow(context.Background(), query, id).Scan(&v.ID, &v.Plate, &v.Model, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}
