package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"animal_studios/core/common"
)

func TestResolve_KnownCollections(t *testing.T) {
	names := []string{"setting", "about", "news", "film", "production", "partner", "application"}
	for _, name := range names {
		spec, err := Resolve(name)
		assert.NoError(t, err, "Collection '%s' phải được nhận diện", name)
		assert.Equal(t, name, spec.Name)
		assert.NotNil(t, spec.NewModel)
	}
	assert.Len(t, Collections, 7, "Bảng collection là cố định gồm 7 tên")
}

func TestResolve_UnknownCollection(t *testing.T) {
	for _, name := range []string{"users", "News", "news ", ""} {
		_, err := Resolve(name)
		assert.Error(t, err, "Tên '%s' không được nhận diện", name)
		assert.True(t, errors.Is(err, common.ErrUnknownCollection))
	}
}

func TestValidateCreate_RequiredFields(t *testing.T) {
	t.Run("news thiếu title bị từ chối", func(t *testing.T) {
		spec, _ := Resolve("news")
		err := spec.ValidateCreate(map[string]any{"content": "nội dung"})
		assert.Error(t, err)

		var appErr *common.Error
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, common.StatusUnprocessableEntity, appErr.StatusCode)
		assert.Contains(t, appErr.Message, "title", "Thông báo lỗi phải nêu tên field vi phạm")
	})

	t.Run("news đủ field bắt buộc được chấp nhận", func(t *testing.T) {
		spec, _ := Resolve("news")
		err := spec.ValidateCreate(map[string]any{"title": "Tin mới", "content": "nội dung"})
		assert.NoError(t, err)
	})

	t.Run("application yêu cầu name, email, role", func(t *testing.T) {
		spec, _ := Resolve("application")
		err := spec.ValidateCreate(map[string]any{"name": "Ứng viên"})
		assert.Error(t, err)

		err = spec.ValidateCreate(map[string]any{
			"name":  "Ứng viên",
			"email": "khong-phai-email",
			"role":  "editor",
		})
		assert.NoError(t, err, "Email chỉ yêu cầu có mặt, không validate định dạng")
	})

	t.Run("about không có field bắt buộc", func(t *testing.T) {
		spec, _ := Resolve("about")
		assert.NoError(t, spec.ValidateCreate(map[string]any{}))
	})

	t.Run("chuỗi rỗng vẫn thỏa field bắt buộc", func(t *testing.T) {
		// Bắt buộc nghĩa là có mặt, không phải khác zero
		spec, _ := Resolve("news")
		err := spec.ValidateCreate(map[string]any{"title": "", "content": ""})
		assert.NoError(t, err)
	})

	t.Run("null không thỏa field bắt buộc", func(t *testing.T) {
		spec, _ := Resolve("news")
		err := spec.ValidateCreate(map[string]any{"title": nil, "content": "nội dung"})
		assert.Error(t, err)

		var appErr *common.Error
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, common.StatusUnprocessableEntity, appErr.StatusCode)
		assert.Contains(t, appErr.Message, "title")
	})
}

func TestValidateCreate_TypeMismatch(t *testing.T) {
	spec, _ := Resolve("news")
	err := spec.ValidateCreate(map[string]any{"title": 123, "content": "nội dung"})
	assert.Error(t, err)

	var appErr *common.Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusUnprocessableEntity, appErr.StatusCode)
	assert.Contains(t, appErr.Message, "title")
}

func TestValidateCreate_UnknownFieldsPermitted(t *testing.T) {
	spec, _ := Resolve("film")
	err := spec.ValidateCreate(map[string]any{
		"title":        "Phim mới",
		"custom_field": "giá trị tùy ý",
		"nested":       map[string]any{"a": 1},
	})
	assert.NoError(t, err, "Field không khai báo trong prototype phải được cho phép")
}

func TestApplyDefaults(t *testing.T) {
	t.Run("setting nhận theme và categories mặc định", func(t *testing.T) {
		spec, _ := Resolve("setting")
		doc := map[string]any{}
		spec.ApplyDefaults(doc)
		assert.Equal(t, "orange-black", doc["theme"])
		assert.NotEmpty(t, doc["categories"])
	})

	t.Run("giá trị đã gửi không bị ghi đè", func(t *testing.T) {
		spec, _ := Resolve("setting")
		doc := map[string]any{"theme": "dark"}
		spec.ApplyDefaults(doc)
		assert.Equal(t, "dark", doc["theme"])
	})

	t.Run("news featured mặc định false", func(t *testing.T) {
		spec, _ := Resolve("news")
		doc := map[string]any{"title": "Tin"}
		spec.ApplyDefaults(doc)
		assert.Equal(t, false, doc["featured"])
	})

	t.Run("film exclusive mặc định false", func(t *testing.T) {
		spec, _ := Resolve("film")
		doc := map[string]any{"title": "Phim"}
		spec.ApplyDefaults(doc)
		assert.Equal(t, false, doc["exclusive"])
	})

	t.Run("about không có default", func(t *testing.T) {
		spec, _ := Resolve("about")
		doc := map[string]any{}
		spec.ApplyDefaults(doc)
		assert.Empty(t, doc)
	})
}
