package db

import (
	"time"

	"gorm.io/gorm"
)

// Blog is a marketing blog post. Slug is derived from the title and must be
// unique across posts.
type Blog struct {
	gorm.Model
	Title          string    `json:"title" gorm:"size:200;not null"`
	Slug           string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description    string    `json:"description" gorm:"type:text;not null"`
	ImageURL       string    `json:"imageUrl" gorm:"not null"`
	Author         string    `json:"author" gorm:"not null"`
	AuthorImageURL string    `json:"authorImageUrl"`
	PostedAt       time.Time `json:"postedAt"`
}
