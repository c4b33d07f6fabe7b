package dto

// LoginRequest - payload đăng nhập admin
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`    // Email đăng nhập
	Password string `json:"password" validate:"required"` // Mật khẩu
}

// LoginResponse - kết quả đăng nhập thành công.
// Token là token admin tĩnh từ cấu hình, không có thời hạn, không thu hồi được.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
