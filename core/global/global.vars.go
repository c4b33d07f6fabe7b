package global

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"animal_studios/config"
	"animal_studios/core/registry"
)

// Các biến toàn cục
var Validate *validator.Validate       // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client      // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration // Cấu hình của server

// RegistryCollections chứa các collection handles theo tên logic
// (setting, about, news, film, production, partner, application).
// Tên không có trong registry là collection không được nhận diện.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()

// InitValidator khởi tạo validator dùng chung cho toàn bộ ứng dụng.
// Tên field trong thông báo lỗi lấy theo json tag để khớp với wire format.
func InitValidator() {
	Validate = validator.New()
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
