package models

// Production - một giai đoạn sản xuất đang diễn ra
type Production struct {
	Phase  string   `json:"phase" bson:"phase" validate:"required"` // Tên giai đoạn (bắt buộc)
	Text   string   `json:"text,omitempty" bson:"text,omitempty"`
	Images []string `json:"images,omitempty" bson:"images,omitempty"`
	Videos []string `json:"videos,omitempty" bson:"videos,omitempty"`
	Order  int      `json:"order,omitempty" bson:"order,omitempty"` // Thứ tự hiển thị (advisory)
}
