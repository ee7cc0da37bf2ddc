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
	"github.com/zogen/backoffice-api/internal/application/crm"
	"github.com/zogen/backoffice-api/internal/application/dto"
	appinventory "github.com/zogen/backoffice-api/internal/application/inventory"
	"github.com/zogen/backoffice-api/internal/application/usecase"
	"github.com/zogen/backoffice-api/internal/infrastructure/contacts"
	"github.com/zogen/backoffice-api/internal/infrastructure/kvstore"
	"github.com/zogen/backoffice-api/internal/infrastructure/webhook"
	httpRouter "github.com/zogen/backoffice-api/internal/interfaces/http"
	"github.com/zogen/backoffice-api/pkg/config"
	"github.com/zogen/backoffice-api/pkg/idgen"
	"github.com/zogen/backoffice-api/pkg/logger"
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
		Str("data_dir", cfg.Storage.DataDir).
		Msg("iniciando aplicación")

	store, err := kvstore.New(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}

	productRepo := kvstore.NewProductRepository(store)
	warehouseRepo := kvstore.NewWarehouseRepository(store)
	clientRepo := kvstore.NewClientRepository(store)
	itemRepo := kvstore.NewInventoryItemRepository(store)
	movementRepo := kvstore.NewMovementRepository(store)
	saleRepo := kvstore.NewSaleRepository(store)
	solicitudRepo := kvstore.NewSolicitudRepository(store)
	prospectoRepo := kvstore.NewProspectoRepository(store)

	contactRepo, err := contacts.NewFileRepository(cfg.Storage.ContactsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir archivo de contactos")
	}

	catalogIDs := idgen.NewEpochMillis("")
	movementIDs := idgen.NewEpochMillis("mv-")

	registerMovementUC := appinventory.NewRegisterMovementUseCase(
		movementRepo, itemRepo, productRepo, warehouseRepo,
		movementIDs, catalogIDs, log,
	)
	inventoryUC := appinventory.NewUseCase(movementRepo, itemRepo, productRepo, movementIDs, catalogIDs)

	productUC := usecase.NewProductUseCase(productRepo, itemRepo, movementRepo, catalogIDs)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, itemRepo, movementRepo, catalogIDs)
	clientUC := usecase.NewClientUseCase(clientRepo, catalogIDs)
	contactUC := usecase.NewContactUseCase(contactRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, clientRepo)
	solicitudUC := usecase.NewSolicitudUseCase(
		solicitudRepo,
		crm.NewCache[dto.SolicitudResponse](cfg.Cache.SolicitudesTTL),
	)
	prospectoUC := usecase.NewProspectoUseCase(prospectoRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, warehouseRepo, itemRepo, movementRepo, saleRepo)

	webhookClient := webhook.NewClient(cfg.Webhook.BaseURL, cfg.Webhook.CanalesURL, cfg.Webhook.Timeout)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Zogen Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		WarehouseUC:      warehouseUC,
		ClientUC:         clientUC,
		RegisterMovement: registerMovementUC,
		InventoryUC:      inventoryUC,
		ContactUC:        contactUC,
		SaleUC:           saleUC,
		SolicitudUC:      solicitudUC,
		ProspectoUC:      prospectoUC,
		DashboardUC:      dashboardUC,
		WebhookClient:    webhookClient,
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
