package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"animal_studios/core/common"
	"animal_studios/core/global"
	"animal_studios/core/logger"
)

// SystemHandler xử lý các endpoint chẩn đoán không thuộc CRUD
type SystemHandler struct{}

// setIndicator báo một giá trị cấu hình đã được set hay chưa
func setIndicator(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// NewSystemHandler tạo mới một SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleRoot godoc: GET /
// Liveness probe: chỉ xác nhận process đang chạy, không đụng tới database.
func (h *SystemHandler) HandleRoot(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"name":   "Animal Studios API",
		"status": "ok",
	})
}

// HandleTest godoc: GET /test
// Báo cáo chẩn đoán: trạng thái backend, kết nối database và danh sách
// collections. Luôn trả về 200 — database chết thì báo trong body thay
// vì trả lỗi, để endpoint này dùng được khi hệ thống degraded.
func (h *SystemHandler) HandleTest(c fiber.Ctx) error {
	cfg := global.ServerConfig

	// URI kết nối có thể chứa credentials — chỉ báo đã cấu hình hay chưa,
	// không bao giờ trả giá trị thật ra ngoài
	report := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      setIndicator(cfg.MongoDB_ConnectionURI),
		"database_name":     setIndicator(cfg.MongoDB_DBName),
		"connection_status": "❌ Disconnected",
		"collections":       global.RegistryCollections.Names(),
	}

	if global.MongoDB_Session == nil {
		return JSONResponse(c, common.StatusOK, report)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
		logger.WithRequest(c).WithError(err).Warn("Ping MongoDB thất bại")
		return JSONResponse(c, common.StatusOK, report)
	}

	report["database"] = "✅ Available"
	report["connection_status"] = "✅ Connected"

	// Danh sách collections thực tế trong database nếu lấy được,
	// không lấy được thì giữ danh sách đã đăng ký
	names, err := global.MongoDB_Session.Database(cfg.MongoDB_DBName).ListCollectionNames(ctx, bson.D{})
	if err == nil {
		report["collections"] = names
	}

	return JSONResponse(c, common.StatusOK, report)
}
