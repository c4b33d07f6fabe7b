package main

import (
	"os"
	"os/signal"
	"syscall"

	"animal_studios/core/database"
	"animal_studios/core/global"
	"animal_studios/core/logger"
)

// main là điểm khởi đầu của ứng dụng.
// Thứ tự khởi tạo: logger → config/validator/database → registry → fiber.
func main() {
	if err := logger.Init(nil); err != nil {
		panic(err)
	}
	log := logger.GetAppLogger()

	if err := InitGlobal(); err != nil {
		log.WithError(err).Fatal("Khởi tạo global thất bại")
	}
	defer database.CloseInstance(global.MongoDB_Session)

	InitRegistry()

	app := InitFiber()

	// Shutdown gracefully khi nhận SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Đang shutdown server...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Lỗi khi shutdown server")
		}
	}()

	log.WithField("address", global.ServerConfig.Address).Info("Animal Studios API đang khởi động")
	if err := app.Listen(global.ServerConfig.Address); err != nil {
		log.WithError(err).Fatal("Server dừng với lỗi")
	}

	log.Info("Server đã dừng")
}
