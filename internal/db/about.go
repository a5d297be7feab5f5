package db

import "gorm.io/gorm"

// AboutPage is the singleton about-page document. Categories and their
// sections are owned rows, replaced wholesale on save.
type AboutPage struct {
	gorm.Model
	PageTitle  string          `json:"pageTitle" gorm:"default:About Us"`
	Categories []AboutCategory `json:"categories" gorm:"foreignKey:AboutPageID;constraint:OnDelete:CASCADE"`
}

// AboutCategory is a titled group of sections on the about page.
type AboutCategory struct {
	gorm.Model
	AboutPageID uint           `json:"-" gorm:"index"`
	Name        string         `json:"name" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"index;not null"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Sections    []AboutSection `json:"sections" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// AboutSection is a single content block within an about category.
type AboutSection struct {
	gorm.Model
	CategoryID  uint   `json:"-" gorm:"index"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
