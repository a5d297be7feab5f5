package db

import "gorm.io/gorm"

// Service categories offered to clients.
const (
	ServiceCategoryResidential = "residential"
	ServiceCategoryCommercial  = "commercial"
	ServiceCategoryBoth        = "both"
)

// Service is a cleaning service offering. The slug carries a millisecond
// timestamp suffix so repeated titles stay unique.
type Service struct {
	gorm.Model
	Title          string       `json:"title" gorm:"size:100;not null"`
	Description    string       `json:"description" gorm:"size:500;not null"`
	ImageURL       string       `json:"imageUrl" gorm:"not null"`
	Slug           string       `json:"slug" gorm:"uniqueIndex;not null"`
	IsFeatured     bool         `json:"isFeatured" gorm:"default:false"`
	Category       string       `json:"category" gorm:"not null"`
	HasSubServices bool         `json:"hasSubServices" gorm:"default:false"`
	SubServices    []SubService `json:"subServices,omitempty" gorm:"foreignKey:ServiceID"`
}

// SubService belongs to exactly one parent Service.
type SubService struct {
	gorm.Model
	Title       string `json:"title" gorm:"size:100;not null"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" gorm:"not null"`
	ServiceID   uint   `json:"parentService" gorm:"index;not null"`
}
