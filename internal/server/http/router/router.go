package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/loopbakery/bakeshop/internal/server/http/handlers"
	"github.com/loopbakery/bakeshop/internal/server/http/middleware"
)

// Pinger reports backend connectivity for the readiness probe.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, health Pinger, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	addressHandler := handlers.NewAddressHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	engine.GET("/healthz", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/profile", middleware.AuthRequired(facade), authHandler.Profile)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/categories", productHandler.Categories)
	api.GET("/categories/:categoryID/products", productHandler.ByCategory)

	user := api.Group("/user")
	user.Use(middleware.AuthRequired(facade))
	user.GET("/cart", cartHandler.Get)
	user.POST("/cart", cartHandler.Add)
	user.POST("/cart/:id", cartHandler.ChangeQuantity)
	user.DELETE("/cart/:id", cartHandler.Remove)
	user.DELETE("/cart", cartHandler.Clear)
	user.GET("/addresses", addressHandler.List)
	user.POST("/addresses", addressHandler.Create)
	user.PUT("/addresses/:id", addressHandler.Update)
	user.DELETE("/addresses/:id", addressHandler.Delete)
	user.POST("/orders", orderHandler.Create)
	user.GET("/orders", orderHandler.List)
	user.GET("/orders/:orderId", orderHandler.Get)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.GET("/analytics", adminHandler.Analytics)
	admin.GET("/orders", adminHandler.Orders)
	admin.PUT("/orders/:orderId/status", adminHandler.UpdateStatus)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	return engine
}
