package models

// About - nội dung trang giới thiệu studio
type About struct {
	History  string           `json:"history,omitempty" bson:"history,omitempty"`   // Lịch sử studio
	Timeline []map[string]any `json:"timeline,omitempty" bson:"timeline,omitempty"` // Các mốc thời gian (free-form, có thứ tự)
	Team     []map[string]any `json:"team,omitempty" bson:"team,omitempty"`         // Danh sách thành viên (free-form)
}
