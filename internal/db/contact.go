package db

import "gorm.io/gorm"

// Contact submission statuses.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusArchived = "archived"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"index;not null"`
	Phone   string `json:"phone" gorm:"not null"`
	Address string `json:"address" gorm:"not null"`
	Message string `json:"message" gorm:"type:text;not null"`
	Country string `json:"country" gorm:"default:AU"`
	Status  string `json:"status" gorm:"index;default:new"`
}
