package db

import "gorm.io/gorm"

// Founder is a company founder profile.
type Founder struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Position    string `json:"position" gorm:"not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	ImageURL    string `json:"imageUrl" gorm:"not null"`
}
