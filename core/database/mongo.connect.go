package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"animal_studios/config"
	"animal_studios/core/logger"
)

// GetInstance khởi tạo và trả về một *mongo.Client từ cấu hình.
// Client được tạo kể cả khi MongoDB chưa reachable — driver tự kết nối lại,
// các thao tác sẽ trả lỗi ở request time và được surface thành 503.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Cài đặt các options cho client
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                         // Giới hạn tối đa 50 connections
		SetMinPoolSize(10).                         // Giữ tối thiểu 10 connections trong pool
		SetConnectTimeout(5 * time.Second).         // Timeout khi kết nối
		SetServerSelectionTimeout(5 * time.Second). // Timeout khi chọn server (DB unreachable)
		SetSocketTimeout(10 * time.Second)          // Timeout khi gửi nhận dữ liệu

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping để log trạng thái kết nối lúc khởi động; không fatal khi fail
	// vì endpoint /test cần báo cáo được trạng thái degraded
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		logger.GetAppLogger().WithError(err).Warn("MongoDB chưa reachable lúc khởi động, các request sẽ trả 503 cho tới khi kết nối được")
	} else {
		logger.GetAppLogger().Info("Successfully connected to MongoDB")
	}

	return client, nil
}

// CloseInstance đóng kết nối MongoDB client
func CloseInstance(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
