// Package v1 provides HTTP API version 1.
package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"taller/internal/core/numerator"
	"taller/internal/domain/audit"
	"taller/internal/domain/auth"
	"taller/internal/domain/catalogs/client"
	"taller/internal/domain/catalogs/employee"
	"taller/internal/domain/catalogs/payment_method"
	"taller/internal/domain/catalogs/spare_part"
	"taller/internal/domain/catalogs/vehicle"
	"taller/internal/domain/catalogs/workshop_service"
	"taller/internal/domain/documents"
	"taller/internal/domain/documents/appointment"
	"taller/internal/domain/documents/invoice"
	"taller/internal/domain/documents/quotation"
	"taller/internal/domain/documents/ticket"
	"taller/internal/domain/inventory"
	"taller/internal/domain/reports"
	"taller/internal/export/pdf"
	"taller/internal/forms"
	"taller/internal/infrastructure/http/v1/handlers"
	"taller/internal/infrastructure/http/v1/middleware"
	"taller/internal/infrastructure/storage/postgres"
	"taller/internal/infrastructure/storage/postgres/catalog_repo"
	"taller/internal/infrastructure/storage/postgres/document_repo"
	"taller/internal/infrastructure/storage/postgres/report_repo"
	"taller/pkg/format"
	"taller/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs repository work in transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Numerator for document number generation
	Numerator numerator.Generator

	// Formatter renders money and dates on exported documents
	Formatter *format.Formatter

	// WorkshopName appears on printed documents
	WorkshopName string

	// FormsRegistry stores form layout definitions
	FormsRegistry *forms.Registry

	// Audit records entity change history; optional
	Audit *postgres.AuditService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	healthHandler.RegisterRoutes(router.Group("/health"))
	router.GET("/health", healthHandler.Live)
	router.GET("/ready", healthHandler.Ready)

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes need the database before JWT validation
		registerAuthRoutes(apiV1, cfg)

		// Protected endpoints: resolve database first, then validate JWT
		protected := apiV1.Group("")
		protected.Use(middleware.Database(cfg.TxManager))
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
		registerInventoryRoutes(protected, cfg)
		registerReportRoutes(protected, cfg)
		registerAuditRoutes(protected, cfg)
		registerMetaRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints (no JWT required, but need the database)
	publicAuth := rg.Group("/auth")
	publicAuth.Use(middleware.Database(cfg.TxManager))

	// Protected auth endpoints (JWT required)
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Database(cfg.TxManager))
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// registerCatalogRoutes registers catalog endpoints.
// Repos and services are created once; TxManager is obtained from context
// per request.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	vehicleService := vehicle.NewService(catalog_repo.NewVehicleRepo(), cfg.Numerator)

	// --- CLIENTS ---
	{
		service := client.NewService(catalog_repo.NewClientRepo(), cfg.Numerator)
		handler := handlers.NewClientHandler(baseHandler, service, vehicleService)
		RegisterEntityRoutes(rg.Group("/clientes"), handler, "catalog:client")
	}

	// --- VEHICLES ---
	{
		handler := handlers.NewVehicleHandler(baseHandler, vehicleService)
		RegisterEntityRoutes(rg.Group("/vehiculos"), handler, "catalog:vehicle")
	}

	// --- WORKSHOP SERVICES ---
	{
		service := workshop_service.NewService(catalog_repo.NewWorkshopServiceRepo(), cfg.Numerator)
		handler := handlers.NewServiceHandler(baseHandler, service)
		RegisterEntityRoutes(rg.Group("/servicios"), handler, "catalog:service")
	}

	// --- SPARE PARTS ---
	{
		service := spare_part.NewService(catalog_repo.NewSparePartRepo(), cfg.Numerator)
		handler := handlers.NewSparePartHandler(baseHandler, service)
		RegisterEntityRoutes(rg.Group("/repuestos"), handler, "catalog:spare_part")
	}

	// --- PAYMENT METHODS ---
	{
		service := payment_method.NewService(catalog_repo.NewPaymentMethodRepo(), cfg.Numerator)
		handler := handlers.NewPaymentMethodHandler(baseHandler, service)
		RegisterEntityRoutes(rg.Group("/formas-pago"), handler, "catalog:payment_method")
	}

	// --- EMPLOYEES ---
	{
		service := employee.NewService(catalog_repo.NewEmployeeRepo(), cfg.Numerator)
		handler := handlers.NewEmployeeHandler(baseHandler, service)
		RegisterEntityRoutes(rg.Group("/empleados"), handler, "catalog:employee")
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// Shared line resolver snapshots catalog data into document lines
	resolver := documents.NewLineResolver(
		catalog_repo.NewWorkshopServiceRepo(),
		catalog_repo.NewSparePartRepo(),
	)

	clientService := client.NewService(catalog_repo.NewClientRepo(), cfg.Numerator)
	pdfGen := pdf.NewGenerator(cfg.Formatter, cfg.WorkshopName)

	invoiceService := invoice.NewService(document_repo.NewInvoiceRepo(), cfg.Numerator, nil)
	invoiceService.Hooks().OnBeforeCreate(func(ctx context.Context, doc *invoice.Invoice) error {
		audit.EnrichCreatedBy(ctx, &doc.CreatedBy, &doc.UpdatedBy)
		return nil
	})
	invoiceService.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *invoice.Invoice) error {
		audit.EnrichUpdatedBy(ctx, &doc.UpdatedBy)
		return nil
	})
	if cfg.Audit != nil {
		invoiceService.Hooks().OnAfterCreate(func(ctx context.Context, doc *invoice.Invoice) error {
			return cfg.Audit.LogChange(ctx, "factura", doc.ID, postgres.AuditActionCreate, map[string]any{
				"numero": doc.Number,
				"estado": string(doc.PaymentStatus),
				"total":  doc.Total.String(),
			})
		})
		invoiceService.Hooks().OnAfterUpdate(func(ctx context.Context, doc *invoice.Invoice) error {
			return cfg.Audit.LogChange(ctx, "factura", doc.ID, postgres.AuditActionUpdate, map[string]any{
				"estado": string(doc.PaymentStatus),
				"total":  doc.Total.String(),
			})
		})
	}

	// --- QUOTATIONS ---
	{
		service := quotation.NewService(document_repo.NewQuotationRepo(), cfg.Numerator, nil)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *quotation.Quotation) error {
			audit.EnrichCreatedBy(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *quotation.Quotation) error {
			audit.EnrichUpdatedBy(ctx, &doc.UpdatedBy)
			return nil
		})
		if cfg.Audit != nil {
			service.Hooks().OnAfterCreate(func(ctx context.Context, doc *quotation.Quotation) error {
				return cfg.Audit.LogChange(ctx, "cotizacion", doc.ID, postgres.AuditActionCreate, map[string]any{
					"numero": doc.Number,
					"estado": string(doc.Status),
					"total":  doc.Total.String(),
				})
			})
			service.Hooks().OnAfterUpdate(func(ctx context.Context, doc *quotation.Quotation) error {
				return cfg.Audit.LogChange(ctx, "cotizacion", doc.ID, postgres.AuditActionUpdate, map[string]any{
					"estado": string(doc.Status),
					"total":  doc.Total.String(),
				})
			})
		}

		handler := handlers.NewQuotationHandler(baseHandler, service, resolver, clientService, pdfGen)
		RegisterEntityRoutes(rg.Group("/cotizaciones"), handler, "document:quotation")
	}

	// --- INVOICES ---
	{
		handler := handlers.NewInvoiceHandler(baseHandler, invoiceService, resolver, clientService, pdfGen)
		RegisterEntityRoutes(rg.Group("/facturas"), handler, "document:invoice")
	}

	// --- WORK TICKETS ---
	{
		service := ticket.NewService(document_repo.NewTicketRepo(), cfg.Numerator, nil)
		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *ticket.WorkTicket) error {
			audit.EnrichCreatedBy(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *ticket.WorkTicket) error {
			audit.EnrichUpdatedBy(ctx, &doc.UpdatedBy)
			return nil
		})
		if cfg.Audit != nil {
			service.Hooks().OnAfterUpdate(func(ctx context.Context, doc *ticket.WorkTicket) error {
				return cfg.Audit.LogChange(ctx, "ticket", doc.ID, postgres.AuditActionUpdate, map[string]any{
					"estado": string(doc.Status),
				})
			})
		}

		handler := handlers.NewTicketHandler(baseHandler, service, invoiceService, resolver)
		RegisterEntityRoutes(rg.Group("/tickets"), handler, "document:ticket")
	}

	// --- APPOINTMENTS ---
	{
		service := appointment.NewService(document_repo.NewAppointmentRepo(), cfg.Numerator, nil)
		handler := handlers.NewAppointmentHandler(baseHandler, service)
		RegisterEntityRoutes(rg.Group("/citas"), handler, "document:appointment")
	}
}

// registerInventoryRoutes registers stock movement endpoints.
func registerInventoryRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	service := inventory.NewService(
		document_repo.NewMovementRepo(),
		catalog_repo.NewSparePartRepo(),
		cfg.Numerator,
		nil,
	)
	handler := handlers.NewMovementHandler(baseHandler, service)
	RegisterEntityRoutes(rg.Group("/inventario/movimientos"), handler, "document:stock_movement")
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	reportService := reports.NewService(report_repo.NewReportRepo())
	reportHandler := handlers.NewReportsHandler(baseHandler, reportService)

	reportsGroup := rg.Group("/reportes")
	reportsGroup.Use(middleware.RequirePermission("report:workshop:read"))
	reportHandler.RegisterRoutes(reportsGroup)
}

// registerAuditRoutes registers change history endpoints (admin only).
func registerAuditRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Audit == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewAuditHandler(baseHandler, cfg.Audit)

	auditGroup := rg.Group("/auditoria")
	auditGroup.Use(middleware.RequireRole("admin"))
	handler.RegisterRoutes(auditGroup)
}

// registerMetaRoutes registers form metadata endpoints.
func registerMetaRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.FormsRegistry == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewFormsHandler(baseHandler, cfg.FormsRegistry)
	handler.RegisterRoutes(rg.Group("/meta"))
}
