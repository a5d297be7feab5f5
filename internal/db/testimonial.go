package db

import "gorm.io/gorm"

// Testimonial is a client review with a 1-5 star rating.
type Testimonial struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Stars       int    `json:"stars" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	ImageURL    string `json:"imageUrl" gorm:"not null"`
}
