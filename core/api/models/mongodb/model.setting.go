package models

// Setting - cấu hình hiển thị của website.
// Không enforce singleton: có thể tồn tại nhiều document, frontend tự chọn.
type Setting struct {
	LogoURL    string   `json:"logo_url,omitempty" bson:"logo_url,omitempty"`     // URL logo công khai
	Categories []string `json:"categories,omitempty" bson:"categories,omitempty"` // Danh mục hiển thị trên menu
	Theme      string   `json:"theme,omitempty" bson:"theme,omitempty"`           // Định danh theme
}
