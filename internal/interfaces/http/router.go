package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/analytics"
	"github.com/llanterasoft/llantera-pos/internal/application/auth"
	"github.com/llanterasoft/llantera-pos/internal/application/inventory"
	"github.com/llanterasoft/llantera-pos/internal/application/receivables"
	"github.com/llanterasoft/llantera-pos/internal/application/sales"
	"github.com/llanterasoft/llantera-pos/internal/application/usecase"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateSale  *sales.CreateSaleUseCase
	CancelSale  *sales.CancelSaleUseCase
	SaleQuery   *sales.SaleQueryUseCase
	InventoryUC *inventory.UseCase
	PersonUC    *usecase.PersonUseCase
	CustomerUC  *usecase.CustomerUseCase
	ServiceUC   *usecase.ServiceUseCase
	ConfigUC    *usecase.ConfigUseCase
	Receivables *receivables.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; registro solo admin)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.UserRolAdmin)

	protected.Post("/auth/register", admin, authHandler.Register)

	// Ventas (anular solo admin)
	ventas := protected.Group("/ventas")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.CancelSale, deps.SaleQuery)
	ventas.Post("/", saleHandler.Create)
	ventas.Get("/", saleHandler.List)
	ventas.Get("/:id", saleHandler.GetByID)
	ventas.Post("/:id/anular", admin, saleHandler.Cancel)

	// Catálogo de productos
	productos := protected.Group("/productos")
	productHandler := NewProductHandler(deps.InventoryUC)
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Get("/:id/historial", productHandler.History)
	productos.Delete("/:id", admin, productHandler.Deactivate)

	// Personal
	personal := protected.Group("/personal")
	personHandler := NewPersonHandler(deps.PersonUC)
	personal.Post("/", personHandler.Create)
	personal.Get("/", personHandler.List)
	personal.Put("/:id", personHandler.Update)
	personal.Delete("/:id", admin, personHandler.Deactivate)

	// Clientes y sus cuentas
	clientes := protected.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Receivables)
	receivableHandler := NewReceivableHandler(deps.Receivables)
	clientes.Post("/", customerHandler.Create)
	clientes.Get("/", customerHandler.List)
	clientes.Get("/:id", customerHandler.GetByID)
	clientes.Put("/:id", customerHandler.Update)
	clientes.Delete("/:id", admin, customerHandler.Deactivate)
	clientes.Get("/:id/cuentas", receivableHandler.ListByCustomer)

	// Cuentas por cobrar
	cuentas := protected.Group("/cuentas")
	cuentas.Post("/", receivableHandler.Create)
	cuentas.Get("/", receivableHandler.ListPending)
	cuentas.Get("/:id", receivableHandler.GetByID)
	cuentas.Post("/:id/abonar", receivableHandler.Pay)

	// Servicios de mano de obra
	servicios := protected.Group("/servicios")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	servicios.Post("/", serviceHandler.Create)
	servicios.Get("/", serviceHandler.List)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reportes", reportHandler.Build)

	// Configuración (solo admin)
	configHandler := NewConfigHandler(deps.ConfigUC)
	configuracion := protected.Group("/configuracion", admin)
	configuracion.Get("/:clave", configHandler.Get)
	configuracion.Put("/:clave", configHandler.Set)
}
