package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var ErrContactInfoNotFound = errors.New("contact info not found")

// ContactInfoService manages the singleton set of public contact details with
// find-one-or-create semantics. Like the other singletons, a create race is
// resolved by reads preferring the oldest row.
type ContactInfoService struct {
	db *gorm.DB
}

// NewContactInfoService creates a ContactInfoService instance.
func NewContactInfoService(gdb *gorm.DB) *ContactInfoService {
	return &ContactInfoService{db: gdb}
}

// ContactInfoInput holds the full document; Save replaces every field.
type ContactInfoInput struct {
	Address        string
	Phones         []string
	Email          string
	WhatsappNumber string
	SocialLinks    db.SocialLinks
}

// Get returns the contact info when present.
func (s *ContactInfoService) Get() (*db.ContactInfo, error) {
	var info db.ContactInfo
	if err := s.db.Order("id asc").First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactInfoNotFound
		}
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return &info, nil
}

// Save creates the document on first call and overwrites it afterwards.
func (s *ContactInfoService) Save(input ContactInfoInput) (*db.ContactInfo, error) {
	if email := strings.TrimSpace(input.Email); email != "" && !validEmail(email) {
		return nil, ValidationError{"email": "Please fill a valid email address"}
	}

	phones := make([]string, 0, len(input.Phones))
	for _, phone := range input.Phones {
		if trimmed := strings.TrimSpace(phone); trimmed != "" {
			phones = append(phones, trimmed)
		}
	}

	info, err := s.Get()
	if err != nil {
		if !errors.Is(err, ErrContactInfoNotFound) {
			return nil, err
		}
		info = &db.ContactInfo{}
	}

	info.Address = strings.TrimSpace(input.Address)
	info.Phones = phones
	info.Email = strings.ToLower(strings.TrimSpace(input.Email))
	info.WhatsappNumber = strings.TrimSpace(input.WhatsappNumber)
	info.SocialLinks = input.SocialLinks

	if err := s.db.Save(info).Error; err != nil {
		return nil, fmt.Errorf("save contact info: %w", err)
	}
	return info, nil
}

// Delete removes the document with the given id.
func (s *ContactInfoService) Delete(id uint) error {
	var info db.ContactInfo
	if err := s.db.First(&info, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactInfoNotFound
		}
		return fmt.Errorf("get contact info: %w", err)
	}
	if err := s.db.Unscoped().Delete(&info).Error; err != nil {
		return fmt.Errorf("delete contact info: %w", err)
	}
	return nil
}
