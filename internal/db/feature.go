package db

import "gorm.io/gorm"

// Feature is a homepage selling-point card.
type Feature struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Subtitle string `json:"subtitle" gorm:"not null"`
	Image    string `json:"image" gorm:"not null"`
}
