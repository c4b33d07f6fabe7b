// Package router khai báo toàn bộ route của API.
package router

import (
	"github.com/gofiber/fiber/v3"

	"animal_studios/core/api/handler"
	"animal_studios/core/api/middleware"
)

// SetupRoutes đăng ký tất cả các route.
// Route CRUD dùng chung một cặp handler cho cả 7 collection; tên
// collection trên URL được resolve lúc runtime qua registry.
func SetupRoutes(app *fiber.App) {
	systemHandler := handler.NewSystemHandler()
	authHandler := handler.NewAuthHandler()
	collectionHandler := handler.NewCollectionHandler()

	// Endpoint hệ thống, public
	app.Get("/", systemHandler.HandleRoot)
	app.Get("/test", systemHandler.HandleTest)

	// Đăng nhập admin
	app.Post("/auth/login", authHandler.Login)

	// CRUD trên các collection được nhận diện.
	// Đọc là public; ghi yêu cầu token admin (kiểm tra trong guard).
	api := app.Group("/api")
	api.Use(middleware.AdminWriteGuard())

	api.Get("/:collection", collectionHandler.Find)
	api.Get("/:collection/:id", collectionHandler.FindOneById)
	api.Post("/:collection", collectionHandler.InsertOne)
	api.Put("/:collection/:id", collectionHandler.UpdateById)
	api.Patch("/:collection/:id", collectionHandler.UpdateById)
	api.Delete("/:collection/:id", collectionHandler.DeleteById)
}
