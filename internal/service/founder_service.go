package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var ErrFounderNotFound = errors.New("founder not found")

// FounderService handles founder profile CRUD plus position and text search.
type FounderService struct {
	db *gorm.DB
}

// NewFounderService creates a FounderService instance.
func NewFounderService(gdb *gorm.DB) *FounderService {
	return &FounderService{db: gdb}
}

// FounderInput holds the fields accepted on create or update. On update,
// empty strings mean "leave unchanged".
type FounderInput struct {
	Name        string
	Position    string
	Title       string
	Description string
	ImageURL    string
}

// List returns all founders, newest first.
func (s *FounderService) List() ([]db.Founder, error) {
	var founders []db.Founder
	if err := s.db.Order("created_at desc").Find(&founders).Error; err != nil {
		return nil, fmt.Errorf("list founders: %w", err)
	}
	return founders, nil
}

// Count returns the number of founder profiles.
func (s *FounderService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Founder{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count founders: %w", err)
	}
	return count, nil
}

// ListByPosition returns founders matching a position, case-insensitively.
func (s *FounderService) ListByPosition(position string) ([]db.Founder, error) {
	var founders []db.Founder
	if err := s.db.Where("LOWER(position) = ?", strings.ToLower(strings.TrimSpace(position))).
		Order("created_at desc").Find(&founders).Error; err != nil {
		return nil, fmt.Errorf("list founders by position: %w", err)
	}
	return founders, nil
}

// Search matches the query against name, position and title.
func (s *FounderService) Search(query string) ([]db.Founder, error) {
	like := "%" + strings.TrimSpace(query) + "%"
	var founders []db.Founder
	if err := s.db.Where("name LIKE ? OR position LIKE ? OR title LIKE ?", like, like, like).
		Order("created_at desc").Find(&founders).Error; err != nil {
		return nil, fmt.Errorf("search founders: %w", err)
	}
	return founders, nil
}

// Get fetches one founder by id.
func (s *FounderService) Get(id uint) (*db.Founder, error) {
	var founder db.Founder
	if err := s.db.First(&founder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFounderNotFound
		}
		return nil, fmt.Errorf("get founder: %w", err)
	}
	return &founder, nil
}

// Create inserts a new founder profile.
func (s *FounderService) Create(input FounderInput) (*db.Founder, error) {
	errs := ValidationError{}
	requireField(errs, "name", input.Name, "Founder name is required")
	requireField(errs, "position", input.Position, "Position is required")
	requireField(errs, "title", input.Title, "Title is required")
	requireField(errs, "description", input.Description, "Description is required")
	requireField(errs, "imageUrl", input.ImageURL, "Image is required")
	if len(errs) > 0 {
		return nil, errs
	}

	founder := db.Founder{
		Name:        strings.TrimSpace(input.Name),
		Position:    strings.TrimSpace(input.Position),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}
	if err := s.db.Create(&founder).Error; err != nil {
		return nil, fmt.Errorf("create founder: %w", err)
	}
	return &founder, nil
}

// Update applies the provided fields to an existing founder.
func (s *FounderService) Update(id uint, input FounderInput) (*db.Founder, error) {
	founder, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		founder.Name = name
	}
	if position := strings.TrimSpace(input.Position); position != "" {
		founder.Position = position
	}
	if title := strings.TrimSpace(input.Title); title != "" {
		founder.Title = title
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		founder.Description = description
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		founder.ImageURL = imageURL
	}

	if err := s.db.Save(founder).Error; err != nil {
		return nil, fmt.Errorf("update founder: %w", err)
	}
	return founder, nil
}

// Delete removes a founder and returns the deleted row.
func (s *FounderService) Delete(id uint) (*db.Founder, error) {
	founder, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Unscoped().Delete(founder).Error; err != nil {
		return nil, fmt.Errorf("delete founder: %w", err)
	}
	return founder, nil
}
