package models

// News - tin tức hiển thị trên trang chủ
type News struct {
	Title    string `json:"title" bson:"title" validate:"required"`     // Tiêu đề (bắt buộc)
	Content  string `json:"content" bson:"content" validate:"required"` // Nội dung (bắt buộc)
	ImageURL string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Date     string `json:"date,omitempty" bson:"date,omitempty"`
	Featured bool   `json:"featured,omitempty" bson:"featured,omitempty"` // Tin nổi bật (advisory, không enforce duy nhất)
	Order    int    `json:"order,omitempty" bson:"order,omitempty"`       // Thứ tự hiển thị (advisory)
}
