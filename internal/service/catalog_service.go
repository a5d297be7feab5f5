package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrSubServiceNotFound = errors.New("sub-service not found")
	ErrServiceExists      = errors.New("service with this slug already exists")
)

// CatalogService manages cleaning services and their sub-services.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a CatalogService instance.
func NewCatalogService(gdb *gorm.DB) *CatalogService {
	return &CatalogService{db: gdb}
}

// ServiceInput holds the fields accepted when creating a service.
type ServiceInput struct {
	Title       string
	Description string
	Category    string
	ImageURL    string
	IsFeatured  bool
}

// ServiceUpdate holds optional fields for a partial update.
type ServiceUpdate struct {
	Title       string
	Description string
	Category    string
	ImageURL    string
	IsFeatured  *bool
}

// SubServiceInput holds the fields accepted when creating or updating a
// sub-service.
type SubServiceInput struct {
	Title       string
	Description string
	ImageURL    string
	ServiceID   uint
}

// ListServices returns services, newest first, optionally filtered to
// featured ones. featured is a three-state filter: nil means no filter.
func (s *CatalogService) ListServices(featured *bool) ([]db.Service, error) {
	query := s.db.Preload("SubServices").Order("created_at desc")
	if featured != nil {
		query = query.Where("is_featured = ?", *featured)
	}

	var services []db.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// GetService fetches one service by id with its sub-services.
func (s *CatalogService) GetService(id uint) (*db.Service, error) {
	var svc db.Service
	if err := s.db.Preload("SubServices").First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &svc, nil
}

// GetServiceBySlug fetches one service by slug with its sub-services.
func (s *CatalogService) GetServiceBySlug(serviceSlug string) (*db.Service, error) {
	var svc db.Service
	if err := s.db.Preload("SubServices").Where("slug = ?", serviceSlug).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service by slug: %w", err)
	}
	return &svc, nil
}

// CreateService inserts a new service. The slug carries a millisecond
// timestamp suffix so repeated titles stay unique.
func (s *CatalogService) CreateService(input ServiceInput) (*db.Service, error) {
	if err := validateServiceInput(input.Title, input.Description, input.Category, input.ImageURL); err != nil {
		return nil, err
	}

	svc := db.Service{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.ToLower(strings.TrimSpace(input.Category)),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsFeatured:  input.IsFeatured,
		Slug:        timestampedSlug(input.Title),
	}

	if err := s.db.Create(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrServiceExists
		}
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &svc, nil
}

// UpdateService applies the provided fields. A title change regenerates the
// timestamped slug.
func (s *CatalogService) UpdateService(id uint, input ServiceUpdate) (*db.Service, error) {
	var svc db.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	if title := strings.TrimSpace(input.Title); title != "" && title != svc.Title {
		if len(title) > 100 {
			return nil, ValidationError{"title": "Title cannot exceed 100 characters"}
		}
		svc.Title = title
		svc.Slug = timestampedSlug(title)
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		if len(description) > 500 {
			return nil, ValidationError{"description": "Description cannot exceed 500 characters"}
		}
		svc.Description = description
	}
	if category := strings.ToLower(strings.TrimSpace(input.Category)); category != "" {
		if !validServiceCategory(category) {
			return nil, ValidationError{"category": "Category must be residential, commercial or both"}
		}
		svc.Category = category
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		svc.ImageURL = imageURL
	}
	if input.IsFeatured != nil {
		svc.IsFeatured = *input.IsFeatured
	}

	if err := s.db.Save(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrServiceExists
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return &svc, nil
}

// ToggleFeatured flips the featured flag and returns the updated service.
func (s *CatalogService) ToggleFeatured(id uint) (*db.Service, error) {
	var svc db.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	svc.IsFeatured = !svc.IsFeatured
	if err := s.db.Save(&svc).Error; err != nil {
		return nil, fmt.Errorf("toggle featured: %w", err)
	}
	return &svc, nil
}

// DeleteService removes a service and its sub-services, returning the deleted
// rows so the caller can release every stored asset.
func (s *CatalogService) DeleteService(id uint) (*db.Service, error) {
	var svc db.Service
	if err := s.db.Preload("SubServices").First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("service_id = ?", svc.ID).Delete(&db.SubService{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&svc).Error
	})
	if err != nil {
		return nil, fmt.Errorf("delete service: %w", err)
	}
	return &svc, nil
}

// ListSubServices returns all sub-services, newest first.
func (s *CatalogService) ListSubServices() ([]db.SubService, error) {
	var subs []db.SubService
	if err := s.db.Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("list sub-services: %w", err)
	}
	return subs, nil
}

// ListSubServicesByParent returns the sub-services of one parent service.
func (s *CatalogService) ListSubServicesByParent(parentID uint) ([]db.SubService, error) {
	if _, err := s.GetService(parentID); err != nil {
		return nil, err
	}

	var subs []db.SubService
	if err := s.db.Where("service_id = ?", parentID).Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("list sub-services by parent: %w", err)
	}
	return subs, nil
}

// ListSubServicesByParentSlug resolves the parent by slug first.
func (s *CatalogService) ListSubServicesByParentSlug(parentSlug string) ([]db.SubService, error) {
	parent, err := s.GetServiceBySlug(parentSlug)
	if err != nil {
		return nil, err
	}
	return s.ListSubServicesByParent(parent.ID)
}

// GetSubService fetches one sub-service by id.
func (s *CatalogService) GetSubService(id uint) (*db.SubService, error) {
	var sub db.SubService
	if err := s.db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubServiceNotFound
		}
		return nil, fmt.Errorf("get sub-service: %w", err)
	}
	return &sub, nil
}

// CreateSubService inserts a sub-service under an existing parent and flips
// the parent's HasSubServices flag.
func (s *CatalogService) CreateSubService(input SubServiceInput) (*db.SubService, error) {
	errs := ValidationError{}
	requireField(errs, "title", input.Title, "Title is required")
	limitField(errs, "title", input.Title, 100, "Title cannot exceed 100 characters")
	requireField(errs, "imageUrl", input.ImageURL, "Image is required")
	if input.ServiceID == 0 {
		errs["parentService"] = "Parent service is required"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.GetService(input.ServiceID); err != nil {
		return nil, err
	}

	sub := db.SubService{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		ServiceID:   input.ServiceID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		return tx.Model(&db.Service{}).Where("id = ?", input.ServiceID).
			Update("has_sub_services", true).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create sub-service: %w", err)
	}
	return &sub, nil
}

// UpdateSubService applies the provided fields. Moving a sub-service between
// parents keeps both parents' HasSubServices flags accurate.
func (s *CatalogService) UpdateSubService(id uint, input SubServiceInput) (*db.SubService, error) {
	var sub db.SubService
	if err := s.db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubServiceNotFound
		}
		return nil, fmt.Errorf("get sub-service: %w", err)
	}

	previousParent := sub.ServiceID
	if title := strings.TrimSpace(input.Title); title != "" {
		if len(title) > 100 {
			return nil, ValidationError{"title": "Title cannot exceed 100 characters"}
		}
		sub.Title = title
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		sub.Description = description
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		sub.ImageURL = imageURL
	}
	if input.ServiceID != 0 && input.ServiceID != sub.ServiceID {
		if _, err := s.GetService(input.ServiceID); err != nil {
			return nil, err
		}
		sub.ServiceID = input.ServiceID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}
		if sub.ServiceID != previousParent {
			if err := tx.Model(&db.Service{}).Where("id = ?", sub.ServiceID).
				Update("has_sub_services", true).Error; err != nil {
				return err
			}
			return refreshHasSubServices(tx, previousParent)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update sub-service: %w", err)
	}
	return &sub, nil
}

// DeleteSubService removes a sub-service and returns the deleted row.
func (s *CatalogService) DeleteSubService(id uint) (*db.SubService, error) {
	var sub db.SubService
	if err := s.db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubServiceNotFound
		}
		return nil, fmt.Errorf("get sub-service: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&sub).Error; err != nil {
			return err
		}
		return refreshHasSubServices(tx, sub.ServiceID)
	})
	if err != nil {
		return nil, fmt.Errorf("delete sub-service: %w", err)
	}
	return &sub, nil
}

func refreshHasSubServices(tx *gorm.DB, serviceID uint) error {
	var remaining int64
	if err := tx.Model(&db.SubService{}).Where("service_id = ?", serviceID).Count(&remaining).Error; err != nil {
		return err
	}
	return tx.Model(&db.Service{}).Where("id = ?", serviceID).
		Update("has_sub_services", remaining > 0).Error
}

func validateServiceInput(title, description, category, imageURL string) error {
	errs := ValidationError{}
	requireField(errs, "title", title, "Title is required")
	limitField(errs, "title", title, 100, "Title cannot exceed 100 characters")
	requireField(errs, "description", description, "Description is required")
	limitField(errs, "description", description, 500, "Description cannot exceed 500 characters")
	requireField(errs, "imageUrl", imageURL, "Image is required")
	if !validServiceCategory(strings.ToLower(strings.TrimSpace(category))) {
		errs["category"] = "Category must be residential, commercial or both"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validServiceCategory(category string) bool {
	switch category {
	case db.ServiceCategoryResidential, db.ServiceCategoryCommercial, db.ServiceCategoryBoth:
		return true
	}
	return false
}

func timestampedSlug(title string) string {
	return fmt.Sprintf("%s-%d", slug.Make(title), time.Now().UnixMilli())
}
