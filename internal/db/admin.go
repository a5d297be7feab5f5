package db

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin is a back-office account. Password holds a bcrypt hash and is never
// serialized into API responses.
type Admin struct {
	gorm.Model
	FullName  string     `json:"fullName" gorm:"not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"`
	LastLogin *time.Time `json:"lastLogin"`
}

// ComparePassword checks a plaintext password against the stored hash.
func (a *Admin) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plain)) == nil
}

// EnsureAdmin creates a bootstrap admin account when email and password are
// both non-empty and no account with that email exists yet.
func EnsureAdmin(gdb *gorm.DB, email, password string) error {
	trimmedEmail := strings.ToLower(strings.TrimSpace(email))
	trimmedPassword := strings.TrimSpace(password)
	if trimmedEmail == "" || trimmedPassword == "" {
		return nil
	}

	var existing Admin
	err := gdb.Where("email = ?", trimmedEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return gdb.Create(&Admin{
		FullName: "Administrator",
		Email:    trimmedEmail,
		Password: string(hashed),
	}).Error
}
