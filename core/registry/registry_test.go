package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("setting", "collection-setting")
	assert.NoError(t, err)
	assert.True(t, isNew, "Lần đăng ký đầu tiên phải là item mới")

	item, exists := r.Get("setting")
	assert.True(t, exists)
	assert.Equal(t, "collection-setting", item)

	// Ghi đè item cũ
	isNew, err = r.Register("setting", "collection-setting-v2")
	assert.NoError(t, err)
	assert.False(t, isNew, "Đăng ký lại cùng tên phải là ghi đè")

	item, _ = r.Get("setting")
	assert.Equal(t, "collection-setting-v2", item)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err, "Tên rỗng phải bị từ chối")
}

func TestRegistry_GetCaseSensitive(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("news", 1)

	_, exists := r.Get("News")
	assert.False(t, exists, "So khớp tên phải phân biệt hoa thường")

	_, exists = r.Get("news ")
	assert.False(t, exists, "So khớp tên phải là exact match")
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("setting", 1)
	r.Register("about", 2)
	r.Register("news", 3)

	assert.Equal(t, []string{"about", "news", "setting"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("film", 1)

	assert.True(t, r.Clear("film"))
	assert.False(t, r.Clear("film"), "Xóa item không tồn tại phải trả về false")

	_, exists := r.Get("film")
	assert.False(t, exists)
}
