package models

// Partner - đối tác của studio
type Partner struct {
	Name        string `json:"name" bson:"name" validate:"required"` // Tên đối tác (bắt buộc)
	LogoURL     string `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
}
