package router

import (
	"github.com/gin-gonic/gin"

	"feedesk/internal/config"
	"feedesk/internal/domain"
	"feedesk/internal/handler"
	"feedesk/internal/middleware"
	"feedesk/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	classH *handler.ClassHandler,
	studentH *handler.StudentHandler,
	structureH *handler.StructureHandler,
	billH *handler.BillHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Admin and accountant can write; viewers only read.
	writers := middleware.RequireRole(domain.RoleAdmin, domain.RoleAccountant)

	// Class routes
	classes := protected.Group("/classes")
	classes.POST("", writers, classH.Create)
	classes.GET("", classH.List)
	classes.GET("/:id", classH.GetByID)
	classes.GET("/:id/students", classH.ListStudents)

	// Student routes
	students := protected.Group("/students")
	students.POST("", writers, studentH.Create)
	students.GET("", studentH.List)
	students.GET("/:id", studentH.GetByID)

	// Fee structure routes
	structures := protected.Group("/fee-structures")
	structures.POST("", writers, structureH.Create)
	structures.GET("", structureH.List)
	structures.GET("/class/:classId", structureH.GetByClass)
	structures.GET("/:id", structureH.GetByID)
	structures.PUT("/:id", writers, structureH.Update)

	// Fee bill and payment routes
	bills := protected.Group("/fee-bills")
	bills.POST("", writers, billH.Create)
	bills.POST("/import", writers, billH.Import)
	bills.GET("", billH.List)
	bills.GET("/derive", billH.DeriveItems)
	bills.GET("/:id", billH.GetByID)
	bills.PUT("/:id", writers, billH.Update)
	bills.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), billH.Delete)
	bills.POST("/:id/payments", writers, billH.RecordPayment)
	bills.GET("/:id/payments", billH.ListPayments)

	// Report routes
	reports := protected.Group("/reports/fees")
	reports.GET("", reportH.Summary)
	reports.GET("/export", reportH.Export)
	reports.POST("/archive", writers, reportH.Archive)
	reports.POST("/reminders", writers, reportH.SendReminders)

	return r
}
