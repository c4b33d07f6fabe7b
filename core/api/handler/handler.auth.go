package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"animal_studios/core/api/dto"
	"animal_studios/core/common"
	"animal_studios/core/global"
	"animal_studios/core/logger"
)

// AuthHandler xử lý đăng nhập admin.
// Không có user store: chỉ so sánh với cặp email/password duy nhất trong
// cấu hình và trả về token admin tĩnh. Không JWT, không session, không
// thời hạn.
type AuthHandler struct{}

// NewAuthHandler tạo mới một AuthHandler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login godoc: POST /auth/login
// So sánh email/password với cấu hình admin. Đúng thì trả về token tĩnh
// và role admin; sai thì 401 với message chung không tiết lộ field nào sai.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return HandleError(c, common.ErrInvalidFormat)
	}

	if err := global.Validate.Struct(&req); err != nil {
		return HandleError(c, common.ErrInvalidInput)
	}

	cfg := global.ServerConfig
	if req.Email != cfg.AdminEmail || req.Password != cfg.AdminPassword {
		logger.WithRequest(c).WithField("email", req.Email).Warn("Đăng nhập thất bại")
		return HandleError(c, common.ErrInvalidCredentials)
	}

	return JSONResponse(c, common.StatusOK, dto.LoginResponse{
		Token: cfg.AdminToken,
		Role:  "admin",
	})
}
