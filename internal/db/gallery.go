package db

import "gorm.io/gorm"

// GalleryItem is a showcase photo. Width and height are captured from the
// decoded upload so the frontend can reserve layout space.
type GalleryItem struct {
	gorm.Model
	Title       string `json:"title" gorm:"uniqueIndex;not null"`
	ImageURL    string `json:"imageUrl" gorm:"not null"`
	ImageWidth  int    `json:"imageWidth"`
	ImageHeight int    `json:"imageHeight"`
}
