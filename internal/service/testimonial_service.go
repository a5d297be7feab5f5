package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialService handles client review CRUD.
type TestimonialService struct {
	db *gorm.DB
}

// NewTestimonialService creates a TestimonialService instance.
func NewTestimonialService(gdb *gorm.DB) *TestimonialService {
	return &TestimonialService{db: gdb}
}

// TestimonialInput holds the fields accepted on create or update. Stars uses
// a pointer so partial updates can leave the rating unchanged.
type TestimonialInput struct {
	Name        string
	Description string
	ImageURL    string
	Stars       *int
}

// List returns all testimonials, newest first.
func (s *TestimonialService) List() ([]db.Testimonial, error) {
	var reviews []db.Testimonial
	if err := s.db.Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return reviews, nil
}

// Get fetches one testimonial by id.
func (s *TestimonialService) Get(id uint) (*db.Testimonial, error) {
	var review db.Testimonial
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("get testimonial: %w", err)
	}
	return &review, nil
}

// Create inserts a new testimonial.
func (s *TestimonialService) Create(input TestimonialInput) (*db.Testimonial, error) {
	errs := ValidationError{}
	requireField(errs, "name", input.Name, "Name is required")
	requireField(errs, "description", input.Description, "Description is required")
	requireField(errs, "imageUrl", input.ImageURL, "Image is required")
	if input.Stars == nil {
		errs["stars"] = "Stars rating is required"
	} else if *input.Stars < 1 || *input.Stars > 5 {
		errs["stars"] = "Stars must be between 1 and 5"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	review := db.Testimonial{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Stars:       *input.Stars,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return &review, nil
}

// Update applies the provided fields to an existing testimonial.
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*db.Testimonial, error) {
	review, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		review.Name = name
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		review.Description = description
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		review.ImageURL = imageURL
	}
	if input.Stars != nil {
		if *input.Stars < 1 || *input.Stars > 5 {
			return nil, ValidationError{"stars": "Stars must be between 1 and 5"}
		}
		review.Stars = *input.Stars
	}

	if err := s.db.Save(review).Error; err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return review, nil
}

// Delete removes a testimonial and returns the deleted row.
func (s *TestimonialService) Delete(id uint) (*db.Testimonial, error) {
	review, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Unscoped().Delete(review).Error; err != nil {
		return nil, fmt.Errorf("delete testimonial: %w", err)
	}
	return review, nil
}
