package main

import (
	"fmt"

	"animal_studios/config"
	"animal_studios/core/database"
	"animal_studios/core/global"
)

// InitGlobal khởi tạo các biến toàn cục của ứng dụng:
// cấu hình server, validator và phiên kết nối MongoDB.
func InitGlobal() error {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		return fmt.Errorf("không đọc được cấu hình server")
	}

	global.InitValidator()

	client, err := database.GetInstance(global.ServerConfig)
	if err != nil {
		return fmt.Errorf("không khởi tạo được MongoDB client: %w", err)
	}
	global.MongoDB_Session = client

	return nil
}
