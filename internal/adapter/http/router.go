package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/adapter/http/middleware"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/logging"
)

func NewRouter(uh *UserHandler, ih *ItemHandler, ch *CartHandler, oh *OrderHandler, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics(), middleware.Logging(logger))

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/user/create", uh.CreateUser)
		api.GET("/user/id/:id", uh.FindByID)
		api.GET("/user/:username", uh.FindByUsername)

		api.GET("/item", ih.List)
		api.GET("/item/name/:name", ih.FindByName)
		api.GET("/item/:id", ih.FindByID)

		api.POST("/cart/addToCart", ch.AddToCart)
		api.POST("/cart/removeFromCart", ch.RemoveFromCart)

		api.POST("/order/submit/:username", oh.Submit)
		api.GET("/order/history/:username", oh.History)
	}

	return r
}
