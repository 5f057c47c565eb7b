package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/config"
	"github.com/kendall-kelly/kitchenpos-api/controllers"
	"github.com/kendall-kelly/kitchenpos-api/logger"
	"github.com/kendall-kelly/kitchenpos-api/middleware"
	"github.com/kendall-kelly/kitchenpos-api/models"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
	"github.com/kendall-kelly/kitchenpos-api/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(logger.Options{Env: cfg.GoEnv, Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting Kitchen POS API server...", zap.String("env", cfg.GoEnv))

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(models.All()...); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database migration completed successfully")

	images := newImageService(context.Background(), cfg)
	services.Init(repositories.NewGormStore(db), images)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(cfg)

	port := ":" + cfg.Port
	logger.Info("Server is running", zap.String("addr", "http://localhost"+port))
	if err := router.Run(port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// newImageService returns nil when no bucket is configured, which disables menu image uploads
func newImageService(ctx context.Context, cfg *config.Config) services.ImageService {
	if !cfg.ImageStorageEnabled() {
		logger.Warn("AWS_S3_BUCKET not set, menu image uploads are disabled")
		return nil
	}

	s3Service, err := services.NewS3Service(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize S3 service", zap.Error(err))
	}
	logger.Info("S3 image storage enabled", zap.String("bucket", cfg.AWSS3Bucket))
	return services.NewImageService(s3Service)
}

// setupRouter registers every route. Write routes require a scoped Auth0
// token when AUTH0_DOMAIN is configured.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery(), cors.New(corsConfig(cfg)))

	var authenticate gin.HandlerFunc
	if cfg.AuthEnabled() {
		authenticate = middleware.EnsureValidToken(cfg)
	} else {
		logger.Warn("AUTH0_DOMAIN not set, write routes are unauthenticated")
	}
	scoped := func(scope string) []gin.HandlerFunc {
		if authenticate == nil {
			return nil
		}
		return []gin.HandlerFunc{authenticate, middleware.RequireScope(scope)}
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		v1.GET("/products", controllers.ListProducts)
		v1.GET("/menu-groups", controllers.ListMenuGroups)
		v1.GET("/menus", controllers.ListMenus)
		v1.GET("/orders", controllers.ListOrders)
		v1.GET("/tables", controllers.ListTables)

		menus := v1.Group("", scoped(middleware.ScopeManageMenus)...)
		menus.POST("/products", controllers.CreateProduct)
		menus.POST("/menu-groups", controllers.CreateMenuGroup)
		menus.POST("/menus", controllers.CreateMenu)
		menus.POST("/menus/:id/image", controllers.UploadMenuImage)

		orders := v1.Group("", scoped(middleware.ScopeManageOrders)...)
		orders.POST("/orders", controllers.CreateOrder)
		orders.PUT("/orders/:id/order-status", controllers.ChangeOrderStatus)

		tables := v1.Group("", scoped(middleware.ScopeManageTables)...)
		tables.POST("/tables", controllers.CreateTable)
		tables.PUT("/tables/:id/empty", controllers.ChangeTableEmpty)
		tables.PUT("/tables/:id/number-of-guests", controllers.ChangeTableNumberOfGuests)
		tables.POST("/table-groups", controllers.CreateTableGroup)
		tables.DELETE("/table-groups/:id", controllers.UngroupTables)
	}

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	return corsCfg
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Kitchen POS API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	tables, err := db.WithContext(c.Request.Context()).Migrator().GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
