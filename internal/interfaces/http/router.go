package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcardoso/almoxarifado-api/internal/application/auth"
	"github.com/jpcardoso/almoxarifado-api/internal/application/fleet"
	"github.com/jpcardoso/almoxarifado-api/internal/application/inventory"
	"github.com/jpcardoso/almoxarifado-api/internal/application/reports"
	"github.com/jpcardoso/almoxarifado-api/internal/application/sales"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ItemUC           *inventory.ItemUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	SaleUC           *sales.SaleUseCase
	FleetUC          *fleet.FleetUseCase
	ReportUC         *reports.ReportUseCase
	JWTSecret        string
	Logger           *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Logger)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.RegisterMovement, deps.Logger)

	// Estoque (protegido)
	estoque := protected.Group("/estoque")
	estoque.Post("/", inventoryHandler.CreateItem)
	estoque.Get("/", inventoryHandler.ListItems)
	estoque.Get("/:id", inventoryHandler.GetItem)
	estoque.Put("/:id", inventoryHandler.UpdateItem)
	estoque.Delete("/:id", inventoryHandler.DeleteItem)

	// Movimentações (protegido). A rota do relatório precisa vir antes de /:id.
	movimentacao := protected.Group("/movimentacao")
	movimentacao.Post("/entrada", inventoryHandler.RegisterEntrada)
	movimentacao.Post("/saida", inventoryHandler.RegisterSaida)
	movimentacao.Get("/relatorio/estoque", inventoryHandler.StockReport)
	movimentacao.Get("/", inventoryHandler.ListMovements)
	movimentacao.Get("/:id", inventoryHandler.GetMovement)

	// Vendas (protegido)
	venda := protected.Group("/venda")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Logger)
	venda.Post("/", saleHandler.Create)
	venda.Get("/", saleHandler.List)
	venda.Get("/:id", saleHandler.GetByID)
	venda.Patch("/:id/status", saleHandler.UpdateStatus)

	// Fluxos de entrega (protegido)
	fluxo := protected.Group("/fluxo")
	fleetHandler := NewFleetHandler(deps.FleetUC, deps.Logger)
	fluxo.Post("/iniciar", fleetHandler.StartFlow)
	fluxo.Get("/", fleetHandler.ListFlows)

	// Relatórios (protegido)
	relatorio := protected.Group("/relatorio")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Logger)
	relatorio.Get("/geral", reportHandler.General)
	relatorio.Get("/vendas", reportHandler.Sales)
	relatorio.Get("/entregas", reportHandler.Deliveries)
	relatorio.Get("/usuarios", reportHandler.Users)
}
