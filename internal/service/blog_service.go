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
	ErrBlogNotFound = errors.New("blog post not found")
	ErrBlogExists   = errors.New("blog post with this title already exists")
)

// BlogService handles blog post CRUD and slug bookkeeping.
type BlogService struct {
	db *gorm.DB
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// BlogInput holds the fields accepted on create.
type BlogInput struct {
	Title          string
	Description    string
	Author         string
	ImageURL       string
	AuthorImageURL string
}

// BlogUpdate holds optional fields for a partial update. Empty strings mean
// "leave unchanged".
type BlogUpdate struct {
	Title          string
	Description    string
	Author         string
	ImageURL       string
	AuthorImageURL string
}

// List returns all blog posts, newest first.
func (s *BlogService) List() ([]db.Blog, error) {
	var posts []db.Blog
	if err := s.db.Order("posted_at desc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return posts, nil
}

// GetBySlug fetches one blog post by its slug.
func (s *BlogService) GetBySlug(postSlug string) (*db.Blog, error) {
	var post db.Blog
	if err := s.db.Where("slug = ?", postSlug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog by slug: %w", err)
	}
	return &post, nil
}

// Get fetches one blog post by id.
func (s *BlogService) Get(id uint) (*db.Blog, error) {
	var post db.Blog
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &post, nil
}

// Create inserts a new blog post. The slug comes from the title; a duplicate
// slug is a conflict.
func (s *BlogService) Create(input BlogInput) (*db.Blog, error) {
	errs := ValidationError{}
	requireField(errs, "title", input.Title, "Title is required")
	limitField(errs, "title", input.Title, 200, "Title cannot exceed 200 characters")
	requireField(errs, "description", input.Description, "Description is required")
	requireField(errs, "author", input.Author, "Author is required")
	requireField(errs, "imageUrl", input.ImageURL, "Blog image is required")
	if len(errs) > 0 {
		return nil, errs
	}

	postSlug := slug.Make(input.Title)
	taken, err := s.slugTaken(postSlug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrBlogExists
	}

	post := db.Blog{
		Title:          strings.TrimSpace(input.Title),
		Slug:           postSlug,
		Description:    strings.TrimSpace(input.Description),
		Author:         strings.TrimSpace(input.Author),
		ImageURL:       strings.TrimSpace(input.ImageURL),
		AuthorImageURL: strings.TrimSpace(input.AuthorImageURL),
		PostedAt:       time.Now(),
	}

	if err := s.db.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBlogExists
		}
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return &post, nil
}

// Update applies the provided fields. A title change regenerates the slug and
// checks it against every other post.
func (s *BlogService) Update(id uint, input BlogUpdate) (*db.Blog, error) {
	var post db.Blog
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}

	if title := strings.TrimSpace(input.Title); title != "" && title != post.Title {
		if len(title) > 200 {
			return nil, ValidationError{"title": "Title cannot exceed 200 characters"}
		}
		newSlug := slug.Make(title)
		taken, err := s.slugTaken(newSlug, post.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrBlogExists
		}
		post.Title = title
		post.Slug = newSlug
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		post.Description = description
	}
	if author := strings.TrimSpace(input.Author); author != "" {
		post.Author = author
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		post.ImageURL = imageURL
	}
	if authorImageURL := strings.TrimSpace(input.AuthorImageURL); authorImageURL != "" {
		post.AuthorImageURL = authorImageURL
	}

	if err := s.db.Save(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBlogExists
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &post, nil
}

// Delete removes a blog post and returns the deleted row so the caller can
// release its stored assets.
func (s *BlogService) Delete(id uint) (*db.Blog, error) {
	var post db.Blog
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if err := s.db.Unscoped().Delete(&post).Error; err != nil {
		return nil, fmt.Errorf("delete blog: %w", err)
	}
	return &post, nil
}

func (s *BlogService) slugTaken(postSlug string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&db.Blog{}).Where("slug = ?", postSlug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check blog slug: %w", err)
	}
	return count > 0, nil
}
