package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var ErrFeatureNotFound = errors.New("feature not found")

// FeatureService handles homepage feature card CRUD.
type FeatureService struct {
	db *gorm.DB
}

// NewFeatureService creates a FeatureService instance.
func NewFeatureService(gdb *gorm.DB) *FeatureService {
	return &FeatureService{db: gdb}
}

// FeatureInput holds the fields accepted on create or update.
type FeatureInput struct {
	Title    string
	Subtitle string
	Image    string
}

// List returns all features, newest first.
func (s *FeatureService) List() ([]db.Feature, error) {
	var features []db.Feature
	if err := s.db.Order("created_at desc").Find(&features).Error; err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	return features, nil
}

// Get fetches one feature by id.
func (s *FeatureService) Get(id uint) (*db.Feature, error) {
	var feature db.Feature
	if err := s.db.First(&feature, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeatureNotFound
		}
		return nil, fmt.Errorf("get feature: %w", err)
	}
	return &feature, nil
}

// Create inserts a new feature card.
func (s *FeatureService) Create(input FeatureInput) (*db.Feature, error) {
	errs := ValidationError{}
	requireField(errs, "title", input.Title, "Title is required")
	requireField(errs, "subtitle", input.Subtitle, "Subtitle is required")
	requireField(errs, "image", input.Image, "Image is required")
	if len(errs) > 0 {
		return nil, errs
	}

	feature := db.Feature{
		Title:    strings.TrimSpace(input.Title),
		Subtitle: strings.TrimSpace(input.Subtitle),
		Image:    strings.TrimSpace(input.Image),
	}
	if err := s.db.Create(&feature).Error; err != nil {
		return nil, fmt.Errorf("create feature: %w", err)
	}
	return &feature, nil
}

// Update applies the provided fields to an existing feature.
func (s *FeatureService) Update(id uint, input FeatureInput) (*db.Feature, error) {
	feature, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		feature.Title = title
	}
	if subtitle := strings.TrimSpace(input.Subtitle); subtitle != "" {
		feature.Subtitle = subtitle
	}
	if image := strings.TrimSpace(input.Image); image != "" {
		feature.Image = image
	}

	if err := s.db.Save(feature).Error; err != nil {
		return nil, fmt.Errorf("update feature: %w", err)
	}
	return feature, nil
}

// Delete removes a feature and returns the deleted row.
func (s *FeatureService) Delete(id uint) (*db.Feature, error) {
	feature, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Unscoped().Delete(feature).Error; err != nil {
		return nil, fmt.Errorf("delete feature: %w", err)
	}
	return feature, nil
}
