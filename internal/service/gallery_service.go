package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrGalleryTitleTaken   = errors.New("gallery item with this title already exists")
)

// GalleryService handles showcase photo CRUD.
type GalleryService struct {
	db *gorm.DB
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// GalleryInput holds the fields accepted on create or update. Width and
// height come from the decoded upload.
type GalleryInput struct {
	Title       string
	ImageURL    string
	ImageWidth  int
	ImageHeight int
}

// List returns all gallery items, newest first.
func (s *GalleryService) List() ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list gallery items: %w", err)
	}
	return items, nil
}

// Get fetches one gallery item by id.
func (s *GalleryService) Get(id uint) (*db.GalleryItem, error) {
	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, fmt.Errorf("get gallery item: %w", err)
	}
	return &item, nil
}

// Create inserts a new gallery item. Titles are unique.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryItem, error) {
	errs := ValidationError{}
	requireField(errs, "title", input.Title, "Title is required")
	requireField(errs, "imageUrl", input.ImageURL, "Image is required")
	if len(errs) > 0 {
		return nil, errs
	}

	item := db.GalleryItem{
		Title:       strings.TrimSpace(input.Title),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		ImageWidth:  input.ImageWidth,
		ImageHeight: input.ImageHeight,
	}
	if err := s.db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGalleryTitleTaken
		}
		return nil, fmt.Errorf("create gallery item: %w", err)
	}
	return &item, nil
}

// Update applies the provided fields to an existing gallery item.
func (s *GalleryService) Update(id uint, input GalleryInput) (*db.GalleryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		item.Title = title
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		item.ImageURL = imageURL
	}
	if input.ImageWidth > 0 {
		item.ImageWidth = input.ImageWidth
	}
	if input.ImageHeight > 0 {
		item.ImageHeight = input.ImageHeight
	}

	if err := s.db.Save(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGalleryTitleTaken
		}
		return nil, fmt.Errorf("update gallery item: %w", err)
	}
	return item, nil
}

// Delete removes a gallery item and returns the deleted row.
func (s *GalleryService) Delete(id uint) (*db.GalleryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Unscoped().Delete(item).Error; err != nil {
		return nil, fmt.Errorf("delete gallery item: %w", err)
	}
	return item, nil
}
