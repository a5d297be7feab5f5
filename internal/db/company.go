package db

import "gorm.io/gorm"

// Company is the company profile. The system intends at most one row to
// exist; the service layer enforces that with find-one-or-create, not a
// database constraint.
type Company struct {
	gorm.Model
	Title    string `json:"title" gorm:"size:100"`
	ImageURL string `json:"imageUrl" gorm:"not null"`
}
