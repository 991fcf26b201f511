package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/hudumaworks/utility-backend/internal/config"
	"github.com/hudumaworks/utility-backend/internal/handlers"
	"github.com/hudumaworks/utility-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	reportHandler *handlers.ReportHandler,
	responseHandler *handlers.ResponseHandler,
	applicationHandler *handlers.ApplicationHandler,
	auditHandler *handlers.AuditHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	jwtRequired := middleware.JWTProtected(cfg)
	adminRequired := middleware.AdminRequired(db, cfg)

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", jwtRequired, authHandler.Logout)
	api.Get("/auth/me", jwtRequired, authHandler.Me)

	// Profile
	api.Put("/users/me", jwtRequired, userHandler.UpdateProfile)

	// Applications: submission and status lookup are public; review is admin-only
	api.Post("/applications", applicationHandler.Submit)
	api.Get("/applications/status/:id", applicationHandler.GetStatus)

	// Reports: consumer endpoints
	reports := api.Group("/reports", jwtRequired)
	reports.Post("/submit", reportHandler.Submit)
	reports.Get("/status/:id", reportHandler.GetStatus)
	reports.Get("/my-reports", reportHandler.MyReports)
	reports.Get("/my-reports/filter", reportHandler.FilterMyReports)
	reports.Post("/reopen-request/:id", reportHandler.RequestReopen)

	// Responses: consumer endpoints
	responses := api.Group("/response", jwtRequired)
	responses.Get("/responses/:reportId", responseHandler.ListForReport)
	responses.Post("/:responseId/comment", responseHandler.AddFeedback)
	responses.Delete("/:responseId/feedback/delete", responseHandler.DeleteFeedback)
	responses.Put("/:responseId/edit", responseHandler.Edit)

	// Admin surface
	admin := api.Group("/admin", jwtRequired, adminRequired)
	admin.Get("/audit-logs", auditHandler.List)
	admin.Get("/dashboard/report-stats", dashboardHandler.ReportStats)

	// Reports: role-scoped queries
	api.Get("/reports/search", jwtRequired, reportHandler.Search)
	api.Get("/reports/export", jwtRequired, reportHandler.Export)

	// Reports: admin endpoints
	api.Put("/reports/reopen-approval/:id", jwtRequired, adminRequired, reportHandler.ReviewReopen)
	api.Patch("/reports/:id/status", jwtRequired, adminRequired, reportHandler.UpdateStatus)
	api.Patch("/reports/:reportId/assign", jwtRequired, adminRequired, reportHandler.Assign)
	api.Get("/reports/all", jwtRequired, adminRequired, reportHandler.ListAll)
	api.Get("/reports/filter", jwtRequired, adminRequired, reportHandler.Filter)
	api.Get("/reports/nearby", jwtRequired, adminRequired, reportHandler.Nearby)

	// Responses: admin endpoints
	api.Post("/response/:reportId/admin-respond", jwtRequired, adminRequired, responseHandler.AdminRespond)
	api.Delete("/response/:responseId/delete", jwtRequired, adminRequired, responseHandler.Delete)

	// Applications: admin review
	appAdmin := api.Group("/applications", jwtRequired, adminRequired)
	appAdmin.Get("/", applicationHandler.List)
	appAdmin.Get("/:id", applicationHandler.Get)
	appAdmin.Patch("/:id/approve", applicationHandler.Approve)
	appAdmin.Patch("/:id/reject", applicationHandler.Reject)
	appAdmin.Put("/:id", applicationHandler.Update)
	appAdmin.Delete("/:id", applicationHandler.Delete)
}
