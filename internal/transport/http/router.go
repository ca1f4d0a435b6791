package rest

import (
	"github.com/Gunvolt24/compasscar/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — сборка роутера: middleware + служебные ручки + /api/v1/cars.
// otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cars := r.Group("/api/v1/cars")
	{
		cars.POST("", h.createCar)
		cars.GET("", h.listCars)
		cars.GET("/:id", h.getCar)
		cars.PUT("/:id/items", h.replaceItems)
		cars.PATCH("/:id", h.updateCar)
		cars.DELETE("/:id", h.deleteCar)
	}

	return r
}
