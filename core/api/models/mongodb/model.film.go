package models

// Film - phim trong catalog của studio
type Film struct {
	Title       string   `json:"title" bson:"title" validate:"required"` // Tiêu đề (bắt buộc)
	PosterURL   string   `json:"poster_url,omitempty" bson:"poster_url,omitempty"`
	LengthMin   int      `json:"length_min,omitempty" bson:"length_min,omitempty"` // Độ dài phim (phút)
	ReleaseDate string   `json:"release_date,omitempty" bson:"release_date,omitempty"`
	FSK         string   `json:"fsk,omitempty" bson:"fsk,omitempty"` // Xếp hạng độ tuổi
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	TrailerURL  string   `json:"trailer_url,omitempty" bson:"trailer_url,omitempty"`
	Cast        []string `json:"cast,omitempty" bson:"cast,omitempty"`
	Crew        []string `json:"crew,omitempty" bson:"crew,omitempty"`
	Exclusive   bool     `json:"exclusive,omitempty" bson:"exclusive,omitempty"` // Phim độc quyền trên nền tảng streaming
	StreamURL   string   `json:"stream_url,omitempty" bson:"stream_url,omitempty"`
}
