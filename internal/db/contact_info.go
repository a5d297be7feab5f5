package db

import "gorm.io/gorm"

// SocialLinks groups the social profile URLs shown in the site footer.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// ContactInfo is the singleton set of public contact details.
type ContactInfo struct {
	gorm.Model
	Address        string      `json:"address"`
	Phones         []string    `json:"phones" gorm:"serializer:json"`
	Email          string      `json:"email"`
	WhatsappNumber string      `json:"whatsappNumber"`
	SocialLinks    SocialLinks `json:"socialLinks" gorm:"embedded;embeddedPrefix:social_"`
}
