package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrAboutNotFound         = errors.New("about page not found")
	ErrAboutCategoryNotFound = errors.New("about category not found")
)

// AboutService manages the singleton about page and its nested category and
// section tree. Save replaces the tree wholesale, matching the document shape
// the admin UI submits.
type AboutService struct {
	db *gorm.DB
}

// NewAboutService creates an AboutService instance.
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{db: gdb}
}

// AboutSectionInput is one content block within a category.
type AboutSectionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// AboutCategoryInput is a titled group of sections. Slug falls back to a
// slugified Name when omitted.
type AboutCategoryInput struct {
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Sections    []AboutSectionInput `json:"sections"`
}

// AboutInput is the create-or-update payload. A nil Categories slice leaves
// the existing tree untouched.
type AboutInput struct {
	PageTitle  string               `json:"pageTitle"`
	Categories []AboutCategoryInput `json:"categories"`
}

// Get returns the about page with its full category tree.
func (s *AboutService) Get() (*db.AboutPage, error) {
	var page db.AboutPage
	err := s.db.Preload("Categories.Sections").Preload("Categories").
		Order("id asc").First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, fmt.Errorf("get about page: %w", err)
	}
	return &page, nil
}

// GetCategory returns one category of the about page by slug.
func (s *AboutService) GetCategory(categorySlug string) (*db.AboutCategory, error) {
	page, err := s.Get()
	if err != nil {
		return nil, err
	}
	for i := range page.Categories {
		if page.Categories[i].Slug == categorySlug {
			return &page.Categories[i], nil
		}
	}
	return nil, ErrAboutCategoryNotFound
}

// Save creates the page on first call and updates it afterwards. When
// categories are provided the stored tree is replaced entirely.
func (s *AboutService) Save(input AboutInput) (*db.AboutPage, error) {
	categories, err := buildAboutCategories(input.Categories)
	if err != nil {
		return nil, err
	}

	page, err := s.Get()
	if err != nil {
		if !errors.Is(err, ErrAboutNotFound) {
			return nil, err
		}
		page = &db.AboutPage{PageTitle: "About Us"}
	}

	if title := strings.TrimSpace(input.PageTitle); title != "" {
		page.PageTitle = title
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if page.ID == 0 {
			if err := tx.Omit("Categories").Create(page).Error; err != nil {
				return err
			}
		} else if err := tx.Omit("Categories").Save(page).Error; err != nil {
			return err
		}

		if input.Categories == nil {
			return nil
		}

		// replace the tree wholesale
		var existing []db.AboutCategory
		if err := tx.Where("about_page_id = ?", page.ID).Find(&existing).Error; err != nil {
			return err
		}
		for _, category := range existing {
			if err := tx.Unscoped().Where("category_id = ?", category.ID).
				Delete(&db.AboutSection{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("about_page_id = ?", page.ID).
			Delete(&db.AboutCategory{}).Error; err != nil {
			return err
		}

		for i := range categories {
			categories[i].AboutPageID = page.ID
			if err := tx.Create(&categories[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save about page: %w", err)
	}

	return s.Get()
}

func buildAboutCategories(inputs []AboutCategoryInput) ([]db.AboutCategory, error) {
	categories := make([]db.AboutCategory, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))

	for _, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return nil, ValidationError{"categories": "Category name is required"}
		}

		categorySlug := strings.TrimSpace(input.Slug)
		if categorySlug == "" {
			categorySlug = slug.Make(name)
		}
		if seen[categorySlug] {
			return nil, ValidationError{"categories": fmt.Sprintf("Duplicate category slug %q", categorySlug)}
		}
		seen[categorySlug] = true

		sections := make([]db.AboutSection, 0, len(input.Sections))
		for _, section := range input.Sections {
			title := strings.TrimSpace(section.Title)
			if title == "" {
				return nil, ValidationError{"categories": "Section title is required"}
			}
			sections = append(sections, db.AboutSection{
				Title:       title,
				Description: strings.TrimSpace(section.Description),
				Image:       strings.TrimSpace(section.Image),
			})
		}

		categories = append(categories, db.AboutCategory{
			Name:        name,
			Slug:        categorySlug,
			Description: strings.TrimSpace(input.Description),
			Image:       strings.TrimSpace(input.Image),
			Sections:    sections,
		})
	}

	return categories, nil
}
