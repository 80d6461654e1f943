package entity

import "time"

// Status de entrega considerado concluído pelos relatórios.
const DeliveryStatusEntregue = "entregue"

// Delivery é mantida por um colaborador externo; aqui só é lida pelos
// relatórios (contagens por status/região, avaliação e tempo médio).
type Delivery struct {
	ID          string
	DriverID    string
	Status      string
	Region      *string
	Rating      *float64
	CreatedAt   time.Time
	DeliveredAt *time.Time
}
