package middleware

import (
	"catering-booking/logger"
	"catering-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger attaches a request id and, for mutating requests, pushes a
// sanitized request/response capture to the async logger after the handler
// completes.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodOptions {
			asyncLogger.Log(utils.CreateSanitizedLogEntry(c, requestID))
		}

		return err
	}
}

// RequestID returns the id attached by RequestLogger, or an empty string.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("request_id").(string)
	return id
}
