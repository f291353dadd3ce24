package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/llanterasoft/llantera-pos/internal/application/analytics"
	"github.com/llanterasoft/llantera-pos/internal/application/auth"
	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/inventory"
	"github.com/llanterasoft/llantera-pos/internal/application/receivables"
	"github.com/llanterasoft/llantera-pos/internal/application/sales"
	"github.com/llanterasoft/llantera-pos/internal/application/usecase"
	"github.com/llanterasoft/llantera-pos/internal/infrastructure/sqlite"
	httpRouter "github.com/llanterasoft/llantera-pos/internal/interfaces/http"
	"github.com/llanterasoft/llantera-pos/pkg/config"
	"github.com/llanterasoft/llantera-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a SQLite")
	}
	defer db.Close()
	if err := sqlite.Bootstrap(db); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de esquema")
	}

	productRepo := sqlite.NewProductRepository(db)
	personRepo := sqlite.NewPersonRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	saleRepo := sqlite.NewSaleRepository(db)
	serviceRepo := sqlite.NewServiceRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	receivableRepo := sqlite.NewReceivableRepository(db)
	historyRepo := sqlite.NewProductHistoryRepository(db)
	configRepo := sqlite.NewConfigRepository(db)
	reportsRepo := sqlite.NewReportsRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	createSaleUC := sales.NewCreateSaleUseCase(txRunner, personRepo, productRepo, customerRepo)
	cancelSaleUC := sales.NewCancelSaleUseCase(txRunner)
	saleQueryUC := sales.NewSaleQueryUseCase(saleRepo)
	inventoryUC := inventory.NewUseCase(txRunner, productRepo, historyRepo)
	receivablesUC := receivables.NewUseCase(txRunner, receivableRepo, customerRepo)
	personUC := usecase.NewPersonUseCase(personRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, personRepo)
	configUC := usecase.NewConfigUseCase(configRepo)
	dashboardUC := analytics.NewDashboardUseCase(reportsRepo, receivableRepo, configUC)
	reportUC := analytics.NewReportUseCase(reportsRepo, configUC)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Primera puesta en marcha: si ADMIN_PASSWORD está definido y no existe
	// la cuenta admin, se crea para poder entrar al sistema.
	if pass := os.Getenv("ADMIN_PASSWORD"); pass != "" {
		if existing, err := userRepo.GetByUsername("admin"); err == nil && existing == nil {
			if _, err := authUC.RegisterUser(dto.RegisterUserRequest{
				Username: "admin",
				Password: pass,
				Rol:      "admin",
			}); err != nil {
				log.Error().Err(err).Msg("crear cuenta admin inicial")
			} else {
				log.Info().Msg("cuenta admin inicial creada")
			}
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateSale:  createSaleUC,
		CancelSale:  cancelSaleUC,
		SaleQuery:   saleQueryUC,
		InventoryUC: inventoryUC,
		PersonUC:    personUC,
		CustomerUC:  customerUC,
		ServiceUC:   serviceUC,
		ConfigUC:    configUC,
		Receivables: receivablesUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
