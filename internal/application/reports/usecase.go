// Package reports contém os casos de uso read-only dos relatórios de
// dashboard (geral, vendas, entregas e usuários).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

const (
	reportTopN           = 5  // top-N de produtos, vendedores e motoristas
	recentUsersDays      = 30 // janela de "usuários recentes"
	revenueHistoryMonths = 6  // meses de histórico de receita
)

// meses pt-BR para os rótulos de receitaPorMes (x/text não expõe nomes de
// meses CLDR).
var ptMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", ptMonths[t.Month()-1], t.Year())
}

// ReportUseCase agregações de leitura para os dashboards. Toda operação é
// livre de efeitos colaterais e tolera conjuntos vazios (estruturas zero,
// nunca erro por falta de dados).
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// General monta o dashboard geral. As consultas independentes rodam em
// paralelo, uma goroutine por grupo.
func (uc *ReportUseCase) General(ctx context.Context) (*dto.GeneralReportDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countsResult struct {
		sales, deliveries, items, activeUsers int64
		err                                   error
	}
	type revenueResult struct {
		revenue decimal.Decimal
		err     error
	}
	type statusResult struct {
		rows []repository.StatusCount
		err  error
	}
	type productsResult struct {
		rows []repository.ProductSalesResult
		err  error
	}

	countsCh := make(chan countsResult, 1)
	revenueCh := make(chan revenueResult, 1)
	statusCh := make(chan statusResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		var r countsResult
		if r.sales, r.err = uc.repo.CountSales(ctx); r.err != nil {
			countsCh <- r
			return
		}
		if r.deliveries, r.err = uc.repo.CountDeliveries(ctx); r.err != nil {
			countsCh <- r
			return
		}
		if r.items, r.err = uc.repo.CountItems(ctx); r.err != nil {
			countsCh <- r
			return
		}
		r.activeUsers, r.err = uc.repo.CountActiveUsers(ctx)
		countsCh <- r
	}()
	go func() {
		rev, err := uc.repo.ApprovedRevenue(ctx, monthStart, now)
		revenueCh <- revenueResult{rev, err}
	}()
	go func() {
		rows, err := uc.repo.DeliveriesByStatus(ctx)
		statusCh <- statusResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.TopProducts(ctx, nil, nil, reportTopN)
		productsCh <- productsResult{rows, err}
	}()

	counts := <-countsCh
	revenue := <-revenueCh
	statuses := <-statusCh
	products := <-productsCh
	for _, err := range []error{counts.err, revenue.err, statuses.err, products.err} {
		if err != nil {
			return nil, err
		}
	}

	report := &dto.GeneralReportDTO{
		TotalVendas:          counts.sales,
		TotalEntregas:        counts.deliveries,
		ItensEstoque:         counts.items,
		UsuariosAtivos:       counts.activeUsers,
		ReceitaMensal:        revenue.revenue,
		ProdutosMaisVendidos: toTopProducts(products.rows),
		EntregasPorStatus:    toStatusMap(statuses.rows),
	}
	return report, nil
}

// Sales monta o relatório de vendas. periodo opcional no formato YYYY-MM
// restringe vendasPorPeriodo e os top-N ao mês; vendedorID filtra por
// vendedor.
func (uc *ReportUseCase) Sales(ctx context.Context, periodo, vendedorID *string) (*dto.SalesReportDTO, error) {
	var from, to *time.Time
	if periodo != nil && *periodo != "" {
		start, err := time.Parse("2006-01", *periodo)
		if err == nil {
			end := start.AddDate(0, 1, 0)
			from, to = &start, &end
		}
	}

	byDay, err := uc.repo.SalesByDay(ctx, from, to, vendedorID)
	if err != nil {
		return nil, err
	}
	topProducts, err := uc.repo.TopProducts(ctx, from, to, reportTopN)
	if err != nil {
		return nil, err
	}
	topSellers, err := uc.repo.TopSellers(ctx, from, to, reportTopN)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	historyStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -revenueHistoryMonths, 0)
	byMonth, err := uc.repo.RevenueByMonth(ctx, historyStart)
	if err != nil {
		return nil, err
	}

	report := &dto.SalesReportDTO{
		VendasPorPeriodo:     make([]dto.DaySalesDTO, 0, len(byDay)),
		ProdutosMaisVendidos: toTopProducts(topProducts),
		VendedoresTop:        make([]dto.TopSellerDTO, 0, len(topSellers)),
		ReceitaPorMes:        make([]dto.MonthRevenueDTO, 0, len(byMonth)),
	}
	for _, d := range byDay {
		report.VendasPorPeriodo = append(report.VendasPorPeriodo, dto.DaySalesDTO{
			Data:       d.Day.Format("2006-01-02"),
			Quantidade: d.Count,
			Receita:    d.Revenue,
		})
	}
	for _, s := range topSellers {
		report.VendedoresTop = append(report.VendedoresTop, dto.TopSellerDTO{
			Vendedor: s.Matricula,
			Vendas:   s.Count,
			Receita:  s.Revenue,
		})
	}
	for _, m := range byMonth {
		report.ReceitaPorMes = append(report.ReceitaPorMes, dto.MonthRevenueDTO{
			Mes:     monthLabel(m.Month),
			Receita: m.Revenue,
		})
	}
	return report, nil
}

// Deliveries monta o relatório de entregas.
func (uc *ReportUseCase) Deliveries(ctx context.Context) (*dto.DeliveriesReportDTO, error) {
	statuses, err := uc.repo.DeliveriesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	regions, err := uc.repo.DeliveriesByRegion(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := uc.repo.TopDrivers(ctx, reportTopN)
	if err != nil {
		return nil, err
	}
	avgDays, err := uc.repo.AvgDeliveryDays(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.DeliveriesReportDTO{
		EntregasPorStatus: toStatusMap(statuses),
		TempoMedioEntrega: fmt.Sprintf("%.1f dias", avgDays),
		EntregasPorRegiao: make([]dto.RegionDeliveriesDTO, 0, len(regions)),
		MotoristasTop:     make([]dto.TopDriverDTO, 0, len(drivers)),
	}
	for _, r := range regions {
		report.EntregasPorRegiao = append(report.EntregasPorRegiao, dto.RegionDeliveriesDTO{
			Regiao:     r.Region,
			Quantidade: r.Count,
		})
	}
	for _, d := range drivers {
		report.MotoristasTop = append(report.MotoristasTop, dto.TopDriverDTO{
			Motorista: d.Matricula,
			Entregas:  d.Count,
			Avaliacao: d.AvgRating,
		})
	}
	return report, nil
}

// Users monta o relatório de usuários.
func (uc *ReportUseCase) Users(ctx context.Context) (*dto.UsersReportDTO, error) {
	total, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	active, err := uc.repo.CountActiveUsers(ctx)
	if err != nil {
		return nil, err
	}
	byRole, err := uc.repo.UsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -recentUsersDays)
	recent, err := uc.repo.RecentUsers(ctx, since, reportTopN)
	if err != nil {
		return nil, err
	}

	report := &dto.UsersReportDTO{
		TotalUsuarios:    total,
		UsuariosAtivos:   active,
		UsuariosPorCargo: make(map[string]int64, len(byRole)),
		UsuariosRecentes: make([]dto.RecentUserDTO, 0, len(recent)),
	}
	for _, r := range byRole {
		report.UsuariosPorCargo[r.Role] = r.Count
	}
	for _, u := range recent {
		report.UsuariosRecentes = append(report.UsuariosRecentes, dto.RecentUserDTO{
			Matricula:    u.Matricula,
			Cargo:        u.Role,
			DataCadastro: u.CreatedAt.Format("2006-01-02"),
		})
	}
	return report, nil
}

func toStatusMap(rows []repository.StatusCount) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, r := range rows {
		m[r.Status] = r.Count
	}
	return m
}

func toTopProducts(rows []repository.ProductSalesResult) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			Produto:    r.Product,
			Quantidade: r.Quantity,
			Receita:    r.Revenue,
		})
	}
	return out
}
