package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var ErrTeamMemberNotFound = errors.New("team member not found")

// TeamService handles team member CRUD.
type TeamService struct {
	db *gorm.DB
}

// NewTeamService creates a TeamService instance.
func NewTeamService(gdb *gorm.DB) *TeamService {
	return &TeamService{db: gdb}
}

// TeamMemberInput holds the fields accepted on create or update. On update,
// empty strings mean "leave unchanged".
type TeamMemberInput struct {
	Name     string
	Role     string
	ImageURL string
}

// List returns all team members, newest first.
func (s *TeamService) List() ([]db.TeamMember, error) {
	var members []db.TeamMember
	if err := s.db.Order("created_at desc").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return members, nil
}

// Get fetches one team member by id.
func (s *TeamService) Get(id uint) (*db.TeamMember, error) {
	var member db.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &member, nil
}

// Create inserts a new team member.
func (s *TeamService) Create(input TeamMemberInput) (*db.TeamMember, error) {
	errs := ValidationError{}
	requireField(errs, "name", input.Name, "Name is required")
	limitField(errs, "name", input.Name, 100, "Name cannot exceed 100 characters")
	requireField(errs, "role", input.Role, "Role is required")
	limitField(errs, "role", input.Role, 50, "Role cannot exceed 50 characters")
	requireField(errs, "imageUrl", input.ImageURL, "Image is required")
	if len(errs) > 0 {
		return nil, errs
	}

	member := db.TeamMember{
		Name:     strings.TrimSpace(input.Name),
		Role:     strings.TrimSpace(input.Role),
		ImageURL: strings.TrimSpace(input.ImageURL),
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return &member, nil
}

// Update applies the provided fields to an existing team member.
func (s *TeamService) Update(id uint, input TeamMemberInput) (*db.TeamMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		if len(name) > 100 {
			return nil, ValidationError{"name": "Name cannot exceed 100 characters"}
		}
		member.Name = name
	}
	if role := strings.TrimSpace(input.Role); role != "" {
		if len(role) > 50 {
			return nil, ValidationError{"role": "Role cannot exceed 50 characters"}
		}
		member.Role = role
	}
	if imageURL := strings.TrimSpace(input.ImageURL); imageURL != "" {
		member.ImageURL = imageURL
	}

	if err := s.db.Save(member).Error; err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}
	return member, nil
}

// Delete removes a team member and returns the deleted row.
func (s *TeamService) Delete(id uint) (*db.TeamMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Unscoped().Delete(member).Error; err != nil {
		return nil, fmt.Errorf("delete team member: %w", err)
	}
	return member, nil
}
