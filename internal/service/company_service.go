package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("company already exists")
)

// CompanyService manages the singleton company profile. Concurrent creates
// can momentarily race past the existence check; reads always use the oldest
// row, so the first committed write wins.
type CompanyService struct {
	db *gorm.DB
}

// NewCompanyService creates a CompanyService instance.
func NewCompanyService(gdb *gorm.DB) *CompanyService {
	return &CompanyService{db: gdb}
}

// CompanyInput holds the fields accepted on create or update.
type CompanyInput struct {
	Title    string
	ImageURL string
}

// Get returns the company profile when one exists.
func (s *CompanyService) Get() (*db.Company, error) {
	var company db.Company
	if err := s.db.Order("id asc").First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &company, nil
}

// Create inserts the company profile; a second create is a conflict.
func (s *CompanyService) Create(input CompanyInput) (*db.Company, error) {
	errs := ValidationError{}
	limitField(errs, "title", input.Title, 100, "Title cannot exceed 100 characters")
	requireField(errs, "imageUrl", input.ImageURL, "Image is required")
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.Get(); err == nil {
		return nil, ErrCompanyExists
	} else if !errors.Is(err, ErrCompanyNotFound) {
		return nil, err
	}

	company := db.Company{
		Title:    strings.TrimSpace(input.Title),
		ImageURL: strings.TrimSpace(input.ImageURL),
	}
	if err := s.db.Create(&company).Error; err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return &company, nil
}

// Update applies the provided fields to the existing profile.
func (s *CompanyService) Update(input CompanyInput) (*db.Company, error) {
	company, err := s.Get()
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		if len(title) > 100 {
			return nil, ValidationError{"title": "Title cannot exceed 100 characters"}
		}
		company.Title = title
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		company.ImageURL = imageURL
	}

	if err := s.db.Save(company).Error; err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

// Delete removes the company profile and returns the deleted row.
func (s *CompanyService) Delete() (*db.Company, error) {
	company, err := s.Get()
	if err != nil {
		return nil, err
	}
	if err := s.db.Unscoped().Delete(company).Error; err != nil {
		return nil, fmt.Errorf("delete company: %w", err)
	}
	return company, nil
}
