package http

import (
	"github.com/gofiber/fiber/v2"
	appinventory "github.com/zogen/backoffice-api/internal/application/inventory"
	"github.com/zogen/backoffice-api/internal/application/usecase"
	"github.com/zogen/backoffice-api/internal/infrastructure/webhook"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	ClientUC         *usecase.ClientUseCase
	RegisterMovement *appinventory.RegisterMovementUseCase
	InventoryUC      *appinventory.UseCase
	ContactUC        *usecase.ContactUseCase
	SaleUC           *usecase.SaleUseCase
	SolicitudUC      *usecase.SolicitudUseCase
	ProspectoUC      *usecase.ProspectoUseCase
	DashboardUC      *usecase.DashboardUseCase
	WebhookClient    *webhook.Client
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Warehouses + vistas de inventario por almacén
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.InventoryUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)
	warehouses.Get("/:id/inventory", warehouseHandler.Inventory)
	warehouses.Get("/:id/movements", warehouseHandler.RecentMovements)
	warehouses.Get("/:id/movements/history", warehouseHandler.MovementHistory)
	warehouses.Get("/:id/reorder-list", warehouseHandler.ReorderList)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Inventory ledger
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.InventoryUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Put("/minimum-stock", inventoryHandler.UpdateMinimumStock)
	invGroup.Post("/rebuild", inventoryHandler.Rebuild)

	// Contacts
	contacts := api.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Put("/", contactHandler.Upsert)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", saleHandler.Delete)

	// Solicitudes de estudio
	solicitudes := api.Group("/solicitudes")
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC)
	solicitudes.Post("/", solicitudHandler.Create)
	solicitudes.Get("/", solicitudHandler.List)
	solicitudes.Get("/:id", solicitudHandler.GetByID)
	solicitudes.Put("/:id", solicitudHandler.Update)
	solicitudes.Delete("/:id", solicitudHandler.Delete)

	// Prospectos (search antes que :id para que la ruta estática gane)
	prospectos := api.Group("/prospectos")
	prospectoHandler := NewProspectoHandler(deps.ProspectoUC)
	prospectos.Post("/", prospectoHandler.Create)
	prospectos.Get("/", prospectoHandler.List)
	prospectos.Get("/search", prospectoHandler.Search)
	prospectos.Get("/:id", prospectoHandler.GetByID)
	prospectos.Put("/:id", prospectoHandler.Update)
	prospectos.Delete("/:id", prospectoHandler.Delete)

	// Proxies de solo lectura hacia los webhooks del CRM
	crm := api.Group("/crm")
	crmHandler := NewCRMProxyHandler(deps.WebhookClient)
	crm.Get("/patients", crmHandler.Patients)
	crm.Get("/payment-methods", crmHandler.PaymentMethods)
	crm.Get("/medical-prescriptions", crmHandler.MedicalPrescriptions)
	crm.Get("/phone-numbers", crmHandler.PhoneNumbers)
	crm.Get("/stats", crmHandler.Stats)
	crm.Get("/canales", crmHandler.Canales)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
