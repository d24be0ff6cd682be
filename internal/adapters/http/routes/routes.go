package routes

import (
	"gu-notepro/internal/adapters/http/handlers"
	"gu-notepro/internal/adapters/http/middleware"
	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/config"
	"gu-notepro/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application. It returns the
// reminder service so main can manage its lifecycle.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.ReminderService {
	// Initialize repositories
	staffRepo := repositories.NewStaffRepository(db)
	noteRepo := repositories.NewNoteRepository(db)
	deptRepo := repositories.NewDepartmentRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	seqRepo := repositories.NewSequenceRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

	// Initialize services
	dispatchService := services.NewDispatchService()
	refIssuer := services.NewReferenceIssuer(seqRepo)
	workflowService := services.NewWorkflowService(noteRepo, staffRepo, refIssuer, dispatchService)
	trayService := services.NewTrayService(noteRepo)
	authService := services.NewAuthService(staffRepo, refreshTokenRepo, cfg)
	staffService := services.NewStaffService(staffRepo)
	deptService := services.NewDepartmentService(deptRepo, staffRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	transferService := services.NewTransferService(staffRepo, noteRepo, deptRepo, settingsRepo)
	assistantService := services.NewAssistantService()
	reminderService := services.NewReminderService(noteRepo, refreshTokenRepo, dispatchService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, staffService, cfg)
	staffHandler := handlers.NewStaffHandler(staffService)
	deptHandler := handlers.NewDepartmentHandler(deptService)
	noteHandler := handlers.NewNoteHandler(workflowService, trayService, dispatchService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	transferHandler := handlers.NewTransferHandler(transferService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Health check routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 routes
	v1 := app.Group("/api/v1")
	v1.Get("/", healthHandler.APIInfo)

	// Auth routes (stricter rate limit on login)
	authRoutes := v1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/refresh", authHandler.Refresh)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Staff directory routes (directory is readable by any signed-in
	// staff, mutations are admin only)
	staffRoutes := v1.Group("/staff")
	staffRoutes.Use(middleware.AuthMiddleware(cfg))
	staffRoutes.Get("/", staffHandler.List)
	staffRoutes.Get("/:id", staffHandler.Get)

	staffAdminRoutes := staffRoutes.Group("")
	staffAdminRoutes.Use(middleware.AdminOnly())
	staffAdminRoutes.Post("/", staffHandler.Create)
	staffAdminRoutes.Put("/:id", staffHandler.Update)
	staffAdminRoutes.Delete("/:id", staffHandler.Delete)

	// Department routes
	deptRoutes := v1.Group("/departments")
	deptRoutes.Use(middleware.AuthMiddleware(cfg))
	deptRoutes.Get("/", deptHandler.List)

	deptAdminRoutes := deptRoutes.Group("")
	deptAdminRoutes.Use(middleware.AdminOnly())
	deptAdminRoutes.Post("/", deptHandler.Create)
	deptAdminRoutes.Delete("/:name", deptHandler.Delete)

	// Note sheet workflow routes
	noteRoutes := v1.Group("/notes")
	noteRoutes.Use(middleware.AuthMiddleware(cfg))
	noteRoutes.Get("/", noteHandler.List)
	noteRoutes.Get("/stats", noteHandler.Stats)
	noteRoutes.Get("/overview", middleware.AdminOnly(), noteHandler.Overview)
	noteRoutes.Get("/dispatch", noteHandler.DispatchState)
	noteRoutes.Get("/:id", noteHandler.Get)
	noteRoutes.Post("/", noteHandler.Initiate)
	noteRoutes.Post("/:id/action", noteHandler.Act)

	// Drafting assistant routes
	assistantRoutes := v1.Group("/assistant")
	assistantRoutes.Use(middleware.AuthMiddleware(cfg))
	assistantRoutes.Post("/refine", assistantHandler.Refine)
	assistantRoutes.Post("/suggest-remark", assistantHandler.SuggestRemark)
	assistantRoutes.Post("/chat", assistantHandler.Chat)

	// Settings routes
	settingsRoutes := v1.Group("/settings")
	settingsRoutes.Use(middleware.AuthMiddleware(cfg))
	settingsRoutes.Get("/", settingsHandler.Get)
	settingsRoutes.Put("/logo", middleware.AdminOnly(), settingsHandler.UpdateLogo)

	// Transfer routes (admin only, import is destructive so it gets the
	// strict rate limit)
	transferRoutes := v1.Group("/transfer")
	transferRoutes.Use(middleware.AuthMiddleware(cfg))
	transferRoutes.Use(middleware.AdminOnly())
	transferRoutes.Get("/export", transferHandler.Export)
	transferRoutes.Post("/import", middleware.StrictRateLimiter(), transferHandler.Import)

	return reminderService
}
