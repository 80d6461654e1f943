package dto

import "github.com/shopspring/decimal"

// TopProductDTO produto mais vendido.
type TopProductDTO struct {
	Produto    string          `json:"produto"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Receita    decimal.Decimal `json:"receita"`
}

// GeneralReportDTO agregados do dashboard geral.
type GeneralReportDTO struct {
	TotalVendas          int64            `json:"totalVendas"`
	TotalEntregas        int64            `json:"totalEntregas"`
	ItensEstoque         int64            `json:"itensEstoque"`
	UsuariosAtivos       int64            `json:"usuariosAtivos"`
	ReceitaMensal        decimal.Decimal  `json:"receitaMensal"`
	ProdutosMaisVendidos []TopProductDTO  `json:"produtosMaisVendidos"`
	EntregasPorStatus    map[string]int64 `json:"entregasPorStatus"`
}

// DaySalesDTO vendas agregadas de um dia.
type DaySalesDTO struct {
	Data       string          `json:"data"` // YYYY-MM-DD
	Quantidade int64           `json:"quantidade"`
	Receita    decimal.Decimal `json:"receita"`
}

// TopSellerDTO vendedor com total vendido.
type TopSellerDTO struct {
	Vendedor string          `json:"vendedor"`
	Vendas   int64           `json:"vendas"`
	Receita  decimal.Decimal `json:"receita"`
}

// MonthRevenueDTO receita de um mês, com rótulo pt-BR ("agosto de 2026").
type MonthRevenueDTO struct {
	Mes     string          `json:"mes"`
	Receita decimal.Decimal `json:"receita"`
}

// SalesReportDTO relatório de vendas.
type SalesReportDTO struct {
	VendasPorPeriodo     []DaySalesDTO     `json:"vendasPorPeriodo"`
	ProdutosMaisVendidos []TopProductDTO   `json:"produtosMaisVendidos"`
	VendedoresTop        []TopSellerDTO    `json:"vendedoresTop"`
	ReceitaPorMes        []MonthRevenueDTO `json:"receitaPorMes"`
}

// RegionDeliveriesDTO entregas agregadas por região.
type RegionDeliveriesDTO struct {
	Regiao     string `json:"regiao"`
	Quantidade int64  `json:"quantidade"`
}

// TopDriverDTO motorista com entregas e avaliação média.
type TopDriverDTO struct {
	Motorista string  `json:"motorista"`
	Entregas  int64   `json:"entregas"`
	Avaliacao float64 `json:"avaliacao"`
}

// DeliveriesReportDTO relatório de entregas.
type DeliveriesReportDTO struct {
	EntregasPorStatus map[string]int64      `json:"entregasPorStatus"`
	TempoMedioEntrega string                `json:"tempoMedioEntrega"` // "1.8 dias"
	EntregasPorRegiao []RegionDeliveriesDTO `json:"entregasPorRegiao"`
	MotoristasTop     []TopDriverDTO        `json:"motoristasTop"`
}

// RecentUserDTO usuário cadastrado nos últimos 30 dias.
type RecentUserDTO struct {
	Matricula    string `json:"matricula"`
	Cargo        string `json:"cargo"`
	DataCadastro string `json:"dataCadastro"` // YYYY-MM-DD
}

// UsersReportDTO relatório de usuários.
type UsersReportDTO struct {
	TotalUsuarios    int64            `json:"totalUsuarios"`
	UsuariosAtivos   int64            `json:"usuariosAtivos"`
	UsuariosPorCargo map[string]int64 `json:"usuariosPorCargo"`
	UsuariosRecentes []RecentUserDTO  `json:"usuariosRecentes"`
}

// Wrappers {"success": true, "relatorio": ...} usados pelos handlers.

type GeneralReportResponse struct {
	Success   bool             `json:"success"`
	Relatorio GeneralReportDTO `json:"relatorio"`
}

type SalesReportResponse struct {
	Success   bool           `json:"success"`
	Relatorio SalesReportDTO `json:"relatorio"`
}

type DeliveriesReportResponse struct {
	Success   bool                `json:"success"`
	Relatorio DeliveriesReportDTO `json:"relatorio"`
}

type UsersReportResponse struct {
	Success   bool           `json:"success"`
	Relatorio UsersReportDTO `json:"relatorio"`
}
