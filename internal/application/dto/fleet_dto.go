package dto

import "time"

// StartFlowRequest início de fluxo de entrega.
type StartFlowRequest struct {
	VeiculoID string `json:"veiculoId"`
}

// StartFlowResponse resposta do início de fluxo.
type StartFlowResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	FluxoID string `json:"fluxoId"`
}

// VehicleDTO veículo vinculado a um fluxo.
type VehicleDTO struct {
	ID     string `json:"id"`
	Placa  string `json:"placa"`
	Modelo string `json:"modelo"`
}

// FlowDTO fluxo de entrega com detalhe do veículo.
type FlowDTO struct {
	ID       string     `json:"id"`
	Veiculo  VehicleDTO `json:"veiculo"`
	CriadoEm time.Time  `json:"criadoEm"`
}

// FlowListResponse resposta da listagem de fluxos do motorista.
type FlowListResponse struct {
	Success bool      `json:"success"`
	Fluxos  []FlowDTO `json:"fluxos"`
}
