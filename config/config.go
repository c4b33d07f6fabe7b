package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Thông tin admin (email/password/token) có giá trị mặc định hardcode theo
// thiết kế gốc — KHÔNG dùng cho production, cần thay bằng hệ thống
// identity/session thực sự trước khi triển khai thật.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                              // Địa chỉ server
	MongoDB_ConnectionURI string `env:"DATABASE_URL" envDefault:"mongodb://localhost:27017"`     // URL kết nối MongoDB
	MongoDB_DBName        string `env:"DATABASE_NAME" envDefault:"animal_studios"`               // Tên database
	AdminEmail            string `env:"ADMIN_EMAIL" envDefault:"Lucien1409@gmail.streaming.com"` // Email admin
	AdminPassword         string `env:"ADMIN_PASSWORD" envDefault:"Streaming.Lucien"`            // Mật khẩu admin
	AdminToken            string `env:"ADMIN_TOKEN" envDefault:"animal-studios-admin-token"`     // Token admin tĩnh
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`                             // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`               // Cho phép gửi credentials
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"false"`                   // Bật/tắt rate limiting
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`                         // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`                       // Thời gian window (giây)
	DefaultListLimit      int64  `env:"DEFAULT_LIST_LIMIT" envDefault:"100"`                     // Giới hạn mặc định khi list documents
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường.
// Tìm thư mục config/env bằng cách đi lên từ working directory.
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) và environment variables.
// File env không bắt buộc vì mọi field đều có giá trị mặc định.
func NewConfig() *Configuration {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Không có file env thì dùng giá trị mặc định, không coi là lỗi
			fmt.Printf("Không load được file env tại %s, dùng giá trị mặc định\n", envPath)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
