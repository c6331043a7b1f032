package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	healthStatusOK        = "ok"
	healthStatusUnhealthy = "unhealthy"
)

// availableRoutes is echoed in route-not-found bodies and by the root route.
var availableRoutes = []string{
	"GET /",
	"GET /api/products",
	"GET /api/products/:id",
	"POST /api/products",
	"PUT /api/products/:id",
	"DELETE /api/products/:id",
}

type HealthChecker interface {
	Health() error
}

func RegisterRoutes(router *gin.Engine, handler *Handler, checker HealthChecker) {
	router.GET("/", handler.Root)

	api := router.Group("/api")
	api.GET("/products", handler.ListProducts)
	api.GET("/products/:id", handler.GetProduct)
	api.POST("/products", handler.CreateProduct)
	api.PUT("/products/:id", handler.UpdateProduct)
	api.DELETE("/products/:id", handler.DeleteProduct)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		if err := checker.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": healthStatusUnhealthy})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": healthStatusOK})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(handler.RouteNotFound)
}
