package entity

import "time"

// DeliveryFlow registra uma sessão motorista/veículo para rastreamento de
// entregas. Append-only neste escopo.
type DeliveryFlow struct {
	ID        string
	DriverID  string
	VehicleID string
	CreatedAt time.Time
}

// Vehicle é o veículo vinculado a um fluxo de entrega.
type Vehicle struct {
	ID        string
	Plate     string
	Model     string
	CreatedAt time.Time
}
