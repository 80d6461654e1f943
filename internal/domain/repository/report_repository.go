package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Linhas de resultado das agregações de relatório. Todas as consultas são
// read-only e toleram períodos sem dados (zero/vazio, nunca erro).

// StatusCount contagem por status (vendas ou entregas).
type StatusCount struct {
	Status string
	Count  int64
}

// RoleCount contagem de usuários por cargo.
type RoleCount struct {
	Role  string
	Count int64
}

// RegionCount contagem de entregas por região.
type RegionCount struct {
	Region string
	Count  int64
}

// ProductSalesResult produto mais vendido no período.
type ProductSalesResult struct {
	ItemID   string
	Product  string
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
}

// SellerSalesResult vendedor com total vendido no período.
type SellerSalesResult struct {
	SellerID  string
	Matricula string
	Count     int64
	Revenue   decimal.Decimal
}

// DaySalesResult vendas agregadas por dia.
type DaySalesResult struct {
	Day     time.Time
	Count   int64
	Revenue decimal.Decimal
}

// MonthRevenueResult receita agregada por mês.
type MonthRevenueResult struct {
	Month   time.Time
	Revenue decimal.Decimal
}

// DriverDeliveriesResult motorista com entregas e avaliação média.
type DriverDeliveriesResult struct {
	DriverID  string
	Matricula string
	Count     int64
	AvgRating float64
}

// RecentUserResult usuário cadastrado recentemente.
type RecentUserResult struct {
	Matricula string
	Role      string
	CreatedAt time.Time
}

// ReportRepository define o porto read-only das agregações de dashboard
// sobre usuários, vendas, entregas e estoque.
type ReportRepository interface {
	CountSales(ctx context.Context) (int64, error)
	CountDeliveries(ctx context.Context) (int64, error)
	CountItems(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountActiveUsers(ctx context.Context) (int64, error)

	// ApprovedRevenue soma o total das vendas aprovadas no período.
	ApprovedRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SalesByDay(ctx context.Context, from, to *time.Time, sellerID *string) ([]DaySalesResult, error)
	TopProducts(ctx context.Context, from, to *time.Time, limit int) ([]ProductSalesResult, error)
	TopSellers(ctx context.Context, from, to *time.Time, limit int) ([]SellerSalesResult, error)
	RevenueByMonth(ctx context.Context, from time.Time) ([]MonthRevenueResult, error)

	DeliveriesByStatus(ctx context.Context) ([]StatusCount, error)
	DeliveriesByRegion(ctx context.Context) ([]RegionCount, error)
	TopDrivers(ctx context.Context, limit int) ([]DriverDeliveriesResult, error)
	// AvgDeliveryDays média em dias entre criação e entrega das entregas
	// concluídas; zero quando não há entregas concluídas.
	AvgDeliveryDays(ctx context.Context) (float64, error)

	UsersByRole(ctx context.Context) ([]RoleCount, error)
	RecentUsers(ctx context.Context, since time.Time, limit int) ([]RecentUserResult, error)
}
