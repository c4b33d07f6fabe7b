// Package middleware chứa các middleware xác thực và xử lý request.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"animal_studios/core/api/handler"
	"animal_studios/core/common"
	"animal_studios/core/global"
	"animal_studios/core/logger"
)

// AdminWriteGuard bảo vệ các thao tác ghi bằng token admin tĩnh.
// Đọc (GET/HEAD/OPTIONS) là public, đi qua không kiểm tra.
// Thang lỗi: thiếu header → 401, sai định dạng Bearer → 401,
// token sai → 403. So sánh token là exact match phân biệt hoa thường;
// chỉ scheme "Bearer" là case-insensitive.
func AdminWriteGuard() fiber.Handler {
	return func(c fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.WithRequest(c).Warn("Thao tác ghi thiếu Authorization header")
			return handler.HandleError(c, common.ErrTokenMissing)
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			logger.WithRequest(c).Warn("Authorization header sai định dạng Bearer")
			return handler.HandleError(c, common.ErrTokenMalformed)
		}

		if parts[1] != global.ServerConfig.AdminToken {
			logger.WithRequest(c).Warn("Token admin không hợp lệ")
			return handler.HandleError(c, common.ErrTokenForbidden)
		}

		return c.Next()
	}
}
