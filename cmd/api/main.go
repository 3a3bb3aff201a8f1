package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mesharis-cell/platform-api/internal/application/auth"
	"github.com/mesharis-cell/platform-api/internal/application/commercial"
	"github.com/mesharis-cell/platform-api/internal/application/company"
	infranotify "github.com/mesharis-cell/platform-api/internal/infrastructure/notify"
	infrapdf "github.com/mesharis-cell/platform-api/internal/infrastructure/pdf"
	"github.com/mesharis-cell/platform-api/internal/infrastructure/postgres"
	"github.com/mesharis-cell/platform-api/internal/infrastructure/storage"
	httpRouter "github.com/mesharis-cell/platform-api/internal/interfaces/http"
	"github.com/mesharis-cell/platform-api/pkg/config"
	"github.com/mesharis-cell/platform-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sueltos (pool); el TxRunner crea sus propias copias atadas a tx.
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	requestRepo := postgres.NewServiceRequestRepository(pool)
	pricingRepo := postgres.NewPricingRepository(pool)
	lineItemRepo := postgres.NewLineItemRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	objectStorage, err := storage.NewS3Storage(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage")
	}
	renderer := infrapdf.NewMarotoRenderer()
	sender := infranotify.NewLogSender(log)

	builder := commercial.NewContextBuilder(orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo)
	createUC := commercial.NewCreateUseCase(txRunner, companyRepo)
	statusUC := commercial.NewStatusUseCase(orderRepo, requestRepo, companyRepo, sender, log)
	invoiceUC := commercial.NewInvoiceUseCase(txRunner, builder, invoiceRepo, orderRepo, requestRepo, objectStorage, renderer, sender, log)
	estimateUC := commercial.NewEstimateUseCase(builder, pricingRepo, objectStorage, renderer)
	companyUC := company.NewUseCase(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Eventia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		CreateUC:   createUC,
		StatusUC:   statusUC,
		InvoiceUC:  invoiceUC,
		EstimateUC: estimateUC,
		Builder:    builder,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
