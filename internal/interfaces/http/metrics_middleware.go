package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/muebleria/muebleria-api/pkg/metrics"
)

// MetricsMiddleware registra la duración de cada petición en Prometheus.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.ObserveRequest(c.Method(), strconv.Itoa(status), time.Since(start).Seconds())
		return err
	}
}
