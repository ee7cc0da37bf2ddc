package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zogen_http_requests_total",
		Help: "Total de peticiones HTTP por método, ruta y status.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "zogen_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	movementsRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zogen_inventory_movements_total",
		Help: "Movimientos de inventario registrados por tipo.",
	}, []string{"type"})
)

// MetricsMiddleware instrumenta cada petición con contador y latencia.
// Usa la plantilla de la ruta (no la URL cruda) para acotar la cardinalidad.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		path := c.Route().Path
		method := c.Method()
		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().StatusCode())).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expone /metrics en formato Prometheus.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// recordMovementMetric registra un movimiento aceptado en el contador.
func recordMovementMetric(movType string) {
	movementsRecordedTotal.WithLabelValues(movType).Inc()
}
