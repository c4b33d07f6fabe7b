package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"animal_studios/core/common"
)

// CollectionSpec mô tả một collection được nhận diện bởi API.
// Name vừa là tên logic trên URL vừa là tên collection trong MongoDB.
// Prototype chỉ dùng để validate shape khi create; đọc và update là
// pass-through không kiểm tra kiểu (partial update semantics).
type CollectionSpec struct {
	Name     string         // Tên logic của collection
	NewModel func() any     // Tạo prototype mới để validate create payload
	Defaults map[string]any // Giá trị mặc định cho field vắng mặt khi create
}

// Collections là bảng cố định các collection được nhận diện.
// Tên không có trong bảng này bị từ chối 404 trước khi chạm tới database.
// So khớp exact match, phân biệt hoa thường.
var Collections = map[string]CollectionSpec{
	"setting": {
		Name:     "setting",
		NewModel: func() any { return &Setting{} },
		Defaults: map[string]any{
			"theme":      "orange-black",
			"categories": []string{"About", "News", "Exclusives", "Production", "Partner", "Animal Streaming"},
		},
	},
	"about": {
		Name:     "about",
		NewModel: func() any { return &About{} },
	},
	"news": {
		Name:     "news",
		NewModel: func() any { return &News{} },
		Defaults: map[string]any{"featured": false},
	},
	"film": {
		Name:     "film",
		NewModel: func() any { return &Film{} },
		Defaults: map[string]any{"exclusive": false},
	},
	"production": {
		Name:     "production",
		NewModel: func() any { return &Production{} },
	},
	"partner": {
		Name:     "partner",
		NewModel: func() any { return &Partner{} },
	},
	"application": {
		Name:     "application",
		NewModel: func() any { return &Application{} },
	},
}

// Resolve trả về spec của collection theo tên logic.
// Trả về common.ErrUnknownCollection nếu tên không được nhận diện.
func Resolve(name string) (CollectionSpec, error) {
	spec, ok := Collections[name]
	if !ok {
		return CollectionSpec{}, common.ErrUnknownCollection
	}
	return spec, nil
}

// ValidateCreate kiểm tra shape của payload khi tạo mới document.
// Field không khai báo trong prototype được cho phép và lưu nguyên vẹn
// (hành vi permissive của thiết kế gốc). Field khai báo phải đúng kiểu
// primitive; field bắt buộc chỉ cần CÓ MẶT — chuỗi rỗng vẫn hợp lệ.
// Lỗi mô tả field vi phạm.
func (s CollectionSpec) ValidateCreate(doc map[string]any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return common.ErrInvalidFormat
	}

	// Decode lại vào prototype để phát hiện sai kiểu primitive trên các
	// field đã khai báo; field lạ được encoding/json bỏ qua
	model := s.NewModel()
	if err := json.Unmarshal(raw, model); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Trường '%s' sai kiểu dữ liệu (nhận được %s, mong đợi %s)", typeErr.Field, typeErr.Value, typeErr.Type.String()),
				common.StatusUnprocessableEntity,
				nil,
			)
		}
		return common.ErrInvalidFormat
	}

	// Field bắt buộc kiểm tra theo sự có mặt trong payload, không theo
	// giá trị zero: "" và 0 là giá trị hợp lệ, chỉ vắng mặt (hoặc null)
	// mới bị từ chối
	for _, field := range s.requiredFields() {
		if value, exists := doc[field]; !exists || value == nil {
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Trường '%s' là bắt buộc đối với collection '%s'", field, s.Name),
				common.StatusUnprocessableEntity,
				nil,
			)
		}
	}

	return nil
}

// requiredFields trả về tên wire (json tag) của các field đánh dấu
// validate:"required" trong prototype của collection
func (s CollectionSpec) requiredFields() []string {
	modelType := reflect.TypeOf(s.NewModel()).Elem()

	var fields []string
	for i := 0; i < modelType.NumField(); i++ {
		structField := modelType.Field(i)
		if !strings.Contains(structField.Tag.Get("validate"), "required") {
			continue
		}
		name := strings.SplitN(structField.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, name)
	}
	return fields
}

// ApplyDefaults gắn giá trị mặc định cho các field vắng mặt trong payload.
// Chỉ áp dụng khi create; update không đụng tới field không được gửi lên.
func (s CollectionSpec) ApplyDefaults(doc map[string]any) {
	for key, value := range s.Defaults {
		if _, exists := doc[key]; !exists {
			doc[key] = value
		}
	}
}
