package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesharis-cell/platform-api/internal/application/auth"
	"github.com/mesharis-cell/platform-api/internal/application/commercial"
	"github.com/mesharis-cell/platform-api/internal/application/company"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *company.UseCase
	CreateUC   *commercial.CreateUseCase
	StatusUC   *commercial.StatusUseCase
	InvoiceUC  *commercial.InvoiceUseCase
	EstimateUC *commercial.EstimateUseCase
	Builder    *commercial.ContextBuilder
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido; crear es de personal de plataforma)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", RequireRole(entity.RoleAdmin, entity.RoleStaff), companyHandler.Create)
	companies.Get("/", RequireRole(entity.RoleAdmin, entity.RoleStaff), companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateUC, deps.StatusUC, deps.InvoiceUC, deps.EstimateUC, deps.Builder)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/status", orderHandler.UpdateStatus)
	orders.Post("/:id/commercial-status", orderHandler.UpdateCommercialStatus)
	orders.Post("/:id/estimate", orderHandler.GenerateEstimate)
	orders.Post("/:id/invoice", orderHandler.GenerateInvoice)
	orders.Get("/:id/invoice", orderHandler.GetInvoice)

	// Service requests (protegido)
	requests := protected.Group("/service-requests")
	requestHandler := NewServiceRequestHandler(deps.CreateUC, deps.StatusUC, deps.InvoiceUC, deps.EstimateUC, deps.Builder)
	requests.Post("/", requestHandler.Create)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Post("/:id/status", requestHandler.UpdateStatus)
	requests.Post("/:id/commercial-status", requestHandler.UpdateCommercialStatus)
	requests.Post("/:id/approve-quote", requestHandler.ApproveQuote)
	requests.Post("/:id/estimate", requestHandler.GenerateEstimate)
	requests.Post("/:id/invoice", requestHandler.GenerateInvoice)
	requests.Get("/:id/invoice", requestHandler.GetInvoice)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/confirm-payment", RequireRole(entity.RoleAdmin, entity.RoleStaff), invoiceHandler.ConfirmPayment)

	// Reports (protegido; vista de plataforma, nunca de cliente)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleStaff, entity.RoleLogistics))
	reportHandler := NewReportHandler(deps.Builder)
	reports.Get("/commercial", reportHandler.Commercial)
}
