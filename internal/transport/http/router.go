package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/Gunvolt24/restaurant_svc/pkg/httpx"
)

// Handler - HTTP-обработчики поверх сервисов приложения.
type Handler struct {
	orders      ports.OrderValidator
	restaurants ports.RestaurantManager
	dishes      ports.DishManager
	log         ports.Logger
	timeout     time.Duration
}

// NewHandler - timeout ограничивает обработку одного запроса; 0 - без ограничения.
func NewHandler(
	orders ports.OrderValidator,
	restaurants ports.RestaurantManager,
	dishes ports.DishManager,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{orders: orders, restaurants: restaurants, dishes: dishes, log: log, timeout: timeout}
}

func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log, "/ping", "/metrics"))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.POST("/orders/validate", h.validateOrder)

	v1.POST("/restaurants", h.createRestaurant)
	v1.GET("/restaurants/:id", h.getRestaurant)
	v1.PATCH("/restaurants/:id", h.updateRestaurant)
	v1.DELETE("/restaurants/:id", h.deleteRestaurant)
	v1.POST("/restaurants/:id/dishes", h.createDish)

	v1.GET("/dishes/:id", h.getDish)
	v1.PATCH("/dishes/:id", h.updateDish)
	v1.DELETE("/dishes/:id", h.deleteDish)

	return r
}

// requestContext - контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
