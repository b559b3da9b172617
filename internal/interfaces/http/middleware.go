package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// RequestObserver recibe cada petición terminada (métricas).
type RequestObserver interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// RequestLogger registra cada petición y la reporta a obs (puede ser nil).
// Los errores se resuelven aquí con el ErrorHandler para conocer el status final.
func RequestLogger(log *logger.Logger, obs RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()

		// ruta registrada (evita cardinalidad por ids en la URL)
		path := c.Route().Path
		if obs != nil {
			obs.ObserveRequest(c.Method(), path, status, elapsed)
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Str("route", path).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
