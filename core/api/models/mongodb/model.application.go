package models

// Application - đơn ứng tuyển gửi qua form trên website.
// Write-only intake: không có trường trạng thái hay lifecycle.
// Email chỉ yêu cầu có mặt và đúng kiểu chuỗi, không validate định dạng
// (giữ đúng hành vi của form gốc).
type Application struct {
	Name        string   `json:"name" bson:"name" validate:"required"`   // Tên ứng viên (bắt buộc)
	Email       string   `json:"email" bson:"email" validate:"required"` // Email liên hệ (bắt buộc)
	Role        string   `json:"role" bson:"role" validate:"required"`   // Vị trí ứng tuyển (bắt buộc)
	Message     string   `json:"message,omitempty" bson:"message,omitempty"`
	Attachments []string `json:"attachments,omitempty" bson:"attachments,omitempty"` // URL đính kèm (chuỗi opaque, không lưu file)
}
