package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregações read-only de dashboard sobre PostgreSQL. Toda
// consulta usa COALESCE para devolver zero em períodos sem dados.
type ReportRepo struct {
	q Querier
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

func (r *ReportRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// CountSales total de vendas registradas.
func (r *ReportRepo) CountSales(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM sales`)
}

// CountDeliveries total de entregas registradas.
func (r *ReportRepo) CountDeliveries(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM deliveries`)
}

// CountItems total de itens de estoque cadastrados.
func (r *ReportRepo) CountItems(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM stock_items`)
}

// CountUsers total de usuários cadastrados.
func (r *ReportRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountActiveUsers total de usuários ativos.
func (r *ReportRepo) CountActiveUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE active`)
}

// ApprovedRevenue soma o total das vendas aprovadas no período [from, to).
func (r *ReportRepo) ApprovedRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE status = $1 AND date >= $2 AND date < $3`
	var revenue decimal.Decimal
	err := r.q.QueryRow(ctx, query, entity.SaleStatusAprovada, from, to).Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("approved revenue: %w", err)
	}
	return revenue, nil
}

// SalesByDay agrega vendas por dia, do mais recente ao mais antigo, com
// filtros opcionais de período e vendedor.
func (r *ReportRepo) SalesByDay(ctx context.Context, from, to *time.Time, sellerID *string) ([]repository.DaySalesResult, error) {
	query := `
		SELECT date_trunc('day', date) AS day, COUNT(*), COALESCE(SUM(total), 0)
		FROM sales`
	where := ""
	args := make([]any, 0, 3)
	add := func(cond string, val any) {
		args = append(args, val)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if from != nil {
		add("date >= $%d", *from)
	}
	if to != nil {
		add("date < $%d", *to)
	}
	if sellerID != nil {
		add("seller_id = $%d", *sellerID)
	}
	query += where + ` GROUP BY day ORDER BY day DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()

	out := make([]repository.DaySalesResult, 0)
	for rows.Next() {
		var d repository.DaySalesResult
		if err := rows.Scan(&d.Day, &d.Count, &d.Revenue); err != nil {
			return nil, fmt.Errorf("scan sales by day: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// TopProducts produtos mais vendidos por quantidade, com filtros opcionais de
// período.
func (r *ReportRepo) TopProducts(ctx context.Context, from, to *time.Time, limit int) ([]repository.ProductSalesResult, error) {
	query := `
		SELECT i.id, i.product, COALESCE(SUM(si.quantity), 0), COALESCE(SUM(si.subtotal), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN stock_items i ON i.id = si.item_id`
	where := ""
	args := make([]any, 0, 3)
	add := func(cond string, val any) {
		args = append(args, val)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if from != nil {
		add("s.date >= $%d", *from)
	}
	if to != nil {
		add("s.date < $%d", *to)
	}
	args = append(args, limit)
	query += where + fmt.Sprintf(`
		GROUP BY i.id, i.product
		ORDER BY SUM(si.quantity) DESC
		LIMIT $%d`, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	out := make([]repository.ProductSalesResult, 0, limit)
	for rows.Next() {
		var p repository.ProductSalesResult
		if err := rows.Scan(&p.ItemID, &p.Product, &p.Quantity, &p.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// TopSellers vendedores com mais vendas no período.
func (r *ReportRepo) TopSellers(ctx context.Context, from, to *time.Time, limit int) ([]repository.SellerSalesResult, error) {
	query := `
		SELECT u.id, u.matricula, COUNT(*), COALESCE(SUM(s.total), 0)
		FROM sales s
		JOIN users u ON u.id = s.seller_id`
	where := ""
	args := make([]any, 0, 3)
	add := func(cond string, val any) {
		args = append(args, val)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if from != nil {
		add("s.date >= $%d", *from)
	}
	if to != nil {
		add("s.date < $%d", *to)
	}
	args = append(args, limit)
	query += where + fmt.Sprintf(`
		GROUP BY u.id, u.matricula
		ORDER BY COUNT(*) DESC
		LIMIT $%d`, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}
	defer rows.Close()

	out := make([]repository.SellerSalesResult, 0, limit)
	for rows.Next() {
		var s repository.SellerSalesResult
		if err := rows.Scan(&s.SellerID, &s.Matricula, &s.Count, &s.Revenue); err != nil {
			return nil, fmt.Errorf("scan top seller: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// RevenueByMonth receita aprovada agregada por mês desde from, em ordem
// cronológica.
func (r *ReportRepo) RevenueByMonth(ctx context.Context, from time.Time) ([]repository.MonthRevenueResult, error) {
	query := `
		SELECT date_trunc('month', date) AS month, COALESCE(SUM(total), 0)
		FROM sales
		WHERE status = $1 AND date >= $2
		GROUP BY month
		ORDER BY month`
	rows, err := r.q.Query(ctx, query, entity.SaleStatusAprovada, from)
	if err != nil {
		return nil, fmt.Errorf("revenue by month: %w", err)
	}
	defer rows.Close()

	out := make([]repository.MonthRevenueResult, 0)
	for rows.Next() {
		var m repository.MonthRevenueResult
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue by month: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// DeliveriesByStatus contagem de entregas por status.
func (r *ReportRepo) DeliveriesByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM deliveries GROUP BY status ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("deliveries by status: %w", err)
	}
	defer rows.Close()

	out := make([]repository.StatusCount, 0)
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan deliveries by status: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// DeliveriesByRegion contagem de entregas por região (região nula vira
// "sem região").
func (r *ReportRepo) DeliveriesByRegion(ctx context.Context) ([]repository.RegionCount, error) {
	query := `
		SELECT COALESCE(region, 'sem região'), COUNT(*)
		FROM deliveries
		GROUP BY region
		ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("deliveries by region: %w", err)
	}
	defer rows.Close()

	out := make([]repository.RegionCount, 0)
	for rows.Next() {
		var rc repository.RegionCount
		if err := rows.Scan(&rc.Region, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan deliveries by region: %w", err)
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// TopDrivers motoristas com mais entregas, com avaliação média.
func (r *ReportRepo) TopDrivers(ctx context.Context, limit int) ([]repository.DriverDeliveriesResult, error) {
	query := `
		SELECT u.id, u.matricula, COUNT(*), COALESCE(AVG(d.rating), 0)
		FROM deliveries d
		JOIN users u ON u.id = d.driver_id
		GROUP BY u.id, u.matricula
		ORDER BY COUNT(*) DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top drivers: %w", err)
	}
	defer rows.Close()

	out := make([]repository.DriverDeliveriesResult, 0, limit)
	for rows.Next() {
		var d repository.DriverDeliveriesResult
		if err := rows.Scan(&d.DriverID, &d.Matricula, &d.Count, &d.AvgRating); err != nil {
			return nil, fmt.Errorf("scan top driver: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// AvgDeliveryDays média em dias entre criação e entrega das entregas
// concluídas.
func (r *ReportRepo) AvgDeliveryDays(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (delivered_at - created_at)) / 86400), 0)
		FROM deliveries
		WHERE status = $1 AND delivered_at IS NOT NULL`
	var avg float64
	err := r.q.QueryRow(ctx, query, entity.DeliveryStatusEntregue).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("avg delivery days: %w", err)
	}
	return avg, nil
}

// UsersByRole contagem de usuários por cargo.
func (r *ReportRepo) UsersByRole(ctx context.Context) ([]repository.RoleCount, error) {
	query := `SELECT role, COUNT(*) FROM users GROUP BY role ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("users by role: %w", err)
	}
	defer rows.Close()

	out := make([]repository.RoleCount, 0)
	for rows.Next() {
		var rc repository.RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan users by role: %w", err)
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// RecentUsers usuários cadastrados a partir de since, mais novos primeiro.
func (r *ReportRepo) RecentUsers(ctx context.Context, since time.Time, limit int) ([]repository.RecentUserResult, error) {
	query := `
		SELECT matricula, role, created_at
		FROM users
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	defer rows.Close()

	out := make([]repository.RecentUserResult, 0, limit)
	for rows.Next() {
		var u repository.RecentUserResult
		if err := rows.Scan(&u.Matricula, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
