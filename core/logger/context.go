package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về log entry gắn sẵn thông tin request (path, method, ip, request id)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"path":   c.Path(),
		"method": c.Method(),
		"ip":     c.IP(),
	}
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		fields["request_id"] = requestID
	}
	return GetAppLogger().WithFields(fields)
}
