package router

import (
	"candystock/internal/config"
	"candystock/internal/handler"
	"candystock/internal/middleware"
	"candystock/internal/repository"
	"candystock/internal/service"
	"candystock/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup wires repositories, services, handlers and routes into a Gin engine.
func Setup(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ErrorHandler(),
		middleware.RateLimiter(),
	)

	// Repositories
	itemRepo := repository.NewItemRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	distRepo := repository.NewDistributorRepository(db)
	exportRepo := repository.NewExportRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	invSvc := service.NewInventoryService(itemRepo, invRepo)
	distSvc := service.NewDistributorService(distRepo, itemRepo)
	exportSvc := service.NewExportService(exportRepo)
	authSvc := service.NewAuthService(userRepo, cfg)

	// Handlers
	itemsH := handler.NewItemsHandler(invSvc, distSvc)
	invH := handler.NewInventoryHandler(invSvc)
	distH := handler.NewDistributorsHandler(distSvc)
	exportH := handler.NewExportHandler(exportSvc)
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	alertsH := handler.NewAlertsHandler(dispatcher, cfg.AlertRecipient)
	reportsH := handler.NewReportsHandler(invSvc, cfg.ReportStoragePath)

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	read := middleware.RequireRole("clerk", "manager", "admin")
	write := middleware.RequireRole("manager", "admin")
	admin := middleware.RequireRole("admin")

	items := protected.Group("/items")
	{
		items.GET("", read, itemsH.List)
		items.POST("", write, itemsH.Create)
		items.GET("/:id/offerings", read, itemsH.Offerings)
		items.GET("/:id/restock-price", read, itemsH.RestockPrice)
	}

	inventory := protected.Group("/inventory")
	{
		inventory.GET("", read, invH.List)
		inventory.GET("/out-of-stock", read, invH.OutOfStock)
		inventory.GET("/overstocked", read, invH.Overstocked)
		inventory.GET("/low-stock", read, invH.LowStock)
		inventory.GET("/:itemId", read, invH.GetByItem)
		inventory.POST("", write, invH.Add)
		inventory.PUT("/:itemId", write, invH.Update)
		inventory.DELETE("/:itemId", write, invH.Delete)
	}

	distributors := protected.Group("/distributors")
	{
		distributors.GET("", read, distH.List)
		distributors.POST("", write, distH.Create)
		distributors.GET("/:id/items", read, distH.Catalog)
		distributors.POST("/:id/items", write, distH.AddCatalogEntry)
		distributors.PUT("/:id/items/:itemId/price", write, distH.UpdateCatalogPrice)
		distributors.DELETE("/:id", write, distH.Delete)
	}

	protected.GET("/export/:table", admin, exportH.ExportTable)
	protected.GET("/reports/low-stock.pdf", write, reportsH.LowStockPDF)
	protected.POST("/alerts/low-stock", admin, alertsH.LowStock)

	users := protected.Group("/users")
	users.Use(admin)
	{
		users.POST("", usersH.Create)
		users.GET("", usersH.List)
	}

	return r
}
