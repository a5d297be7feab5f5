package db

import "gorm.io/gorm"

// TeamMember is a staff member shown on the team page.
type TeamMember struct {
	gorm.Model
	Name     string `json:"name" gorm:"size:100;not null"`
	Role     string `json:"role" gorm:"size:50;not null"`
	ImageURL string `json:"imageUrl" gorm:"not null"`
}
