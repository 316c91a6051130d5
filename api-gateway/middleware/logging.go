package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/stockly/stock-management/pkg/logger"
)

// StructuredLoggingMiddleware logs one line per gateway request with the
// resolved tenant and trace id, leveled by response status.
func StructuredLoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		statusCode := c.Response().StatusCode()

		event := logger.Logger.Info()
		if statusCode >= 500 {
			event = logger.Logger.Error()
		} else if statusCode >= 400 {
			event = logger.Logger.Warn()
		}

		event = event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("duration", duration).
			Int("response_size", len(c.Response().Body())).
			Str("ip", c.IP())
		if tenant := c.Get(TenantHeader); tenant != "" {
			event = event.Str("tenant_id", tenant)
		}
		if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
			event = event.Str("user_id", userID)
		}
		if span := trace.SpanFromContext(c.UserContext()); span.SpanContext().IsValid() {
			event = event.Str("trace_id", span.SpanContext().TraceID().String())
		}
		if err != nil {
			event = event.Err(err)
		}
		event.Msg("Gateway request")

		return err
	}
}
