package main

import (
	models "animal_studios/core/api/models/mongodb"
	"animal_studios/core/global"
	"animal_studios/core/logger"
)

// InitRegistry đăng ký collection handles cho 7 collection cố định.
// Tên logic trên URL trùng với tên collection trong MongoDB.
// Collection chưa tồn tại trong database vẫn đăng ký được — MongoDB
// tự tạo khi insert lần đầu, list trên collection rỗng trả mảng rỗng.
func InitRegistry() {
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)

	for name := range models.Collections {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logger.GetAppLogger().WithError(err).WithField("collection", name).Error("Không đăng ký được collection")
		}
	}

	logger.GetAppLogger().WithField("collections", global.RegistryCollections.Names()).Info("Đã đăng ký collections")
}
