package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "shiksha/docs" // swag-generated OpenAPI registry
	"shiksha/internal/domain"
	"shiksha/internal/handler"
	"shiksha/internal/middleware"
	"shiksha/internal/service"
)

// Handlers bundles everything Setup wires into the engine.
type Handlers struct {
	Auth       *handler.AuthHandler
	School     *handler.SchoolHandler
	User       *handler.UserHandler
	Class      *handler.ClassHandler
	Subject    *handler.SubjectHandler
	Topic      *handler.TopicHandler
	Generation *handler.GenerationHandler
	Upload     *handler.UploadHandler
	Export     *handler.ExportHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.POST("/forgot-password", h.Auth.ForgotPassword)
	auth.POST("/reset-password", h.Auth.ResetPassword)

	// Protected routes - require valid JWT with school context
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.SchoolGuard())

	// Class routes
	classes := protected.Group("/classes")
	classes.POST("", h.Class.Create)
	classes.GET("", h.Class.List)
	classes.GET("/:id", h.Class.GetByID)
	classes.GET("/:id/subjects", h.Subject.ListByClass)
	classes.PUT("/:id", h.Class.Update)
	classes.DELETE("/:id", h.Class.Delete)

	// Subject routes
	subjects := protected.Group("/subjects")
	subjects.POST("", h.Subject.Create)
	subjects.GET("/:id", h.Subject.GetByID)
	subjects.GET("/:id/topics", h.Topic.ListBySubject)
	subjects.PUT("/:id", h.Subject.Update)
	subjects.DELETE("/:id", h.Subject.Delete)

	// Topic routes
	topics := protected.Group("/topics")
	topics.POST("", h.Topic.Create)
	topics.GET("/:id", h.Topic.GetByID)
	topics.PUT("/:id", h.Topic.Update)
	topics.PATCH("/:id/autosave", h.Topic.Autosave)
	topics.POST("/:id/links", h.Topic.AddDocumentLink)
	topics.DELETE("/:id/links", h.Topic.RemoveDocumentLink)
	topics.DELETE("/:id", h.Topic.Delete)
	topics.POST("/:id/generate", h.Generation.Generate)
	topics.GET("/:id/content", h.Generation.ListByTopic)
	topics.POST("/:id/files", h.Upload.Upload)
	topics.GET("/:id/files", h.Upload.ListByTopic)

	// Generation routes
	protected.POST("/generate/summaries", h.Generation.GenerateSummaries)
	protected.POST("/chapter-plan", h.Generation.PlanChapter)
	protected.POST("/chapter-plan/confirm", h.Generation.ConfirmChapterPlan)

	// Stored content routes
	content := protected.Group("/content")
	content.GET("/:id", h.Generation.GetParsed)
	content.GET("/:id/export", h.Export.Export)

	// File routes
	files := protected.Group("/files")
	files.GET("/:id/download", h.Upload.Download)
	files.DELETE("/:id", h.Upload.Delete)
	protected.POST("/extract-batch", h.Upload.ExtractBatch)

	// User management (school-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Admin routes - school management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/schools", h.School.Create)
	admin.GET("/schools", h.School.List)
	admin.GET("/schools/:id", h.School.GetByID)
	admin.PUT("/schools/:id", h.School.Update)
	admin.DELETE("/schools/:id", h.School.Delete)

	return r
}
