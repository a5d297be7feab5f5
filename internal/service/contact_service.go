package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound      = errors.New("contact submission not found")
	ErrContactStatusInvalid = errors.New("contact status is invalid")
)

// ContactService stores and manages contact form submissions.
type ContactService struct {
	db *gorm.DB
}

// NewContactService creates a ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactInput holds the public form fields.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Message string
	Country string
}

// Submit validates and stores a new submission.
func (s *ContactService) Submit(input ContactInput) (*db.Contact, error) {
	errs := ValidationError{}
	requireField(errs, "name", input.Name, "Name is required")
	requireField(errs, "email", input.Email, "Email is required")
	if _, ok := errs["email"]; !ok && !validEmail(input.Email) {
		errs["email"] = "Please fill a valid email address"
	}
	requireField(errs, "phone", input.Phone, "Phone is required")
	requireField(errs, "address", input.Address, "Address is required")
	requireField(errs, "message", input.Message, "Message is required")
	if len(errs) > 0 {
		return nil, errs
	}

	contact := db.Contact{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
		Message: strings.TrimSpace(input.Message),
		Country: strings.TrimSpace(input.Country),
		Status:  db.ContactStatusNew,
	}
	if contact.Country == "" {
		contact.Country = "AU"
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &contact, nil
}

// List returns all submissions, newest first, optionally filtered by status.
func (s *ContactService) List(status string) ([]db.Contact, error) {
	query := s.db.Order("created_at desc")
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		query = query.Where("status = ?", trimmed)
	}

	var contacts []db.Contact
	if err := query.Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Get fetches one submission by id.
func (s *ContactService) Get(id uint) (*db.Contact, error) {
	var contact db.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &contact, nil
}

// UpdateStatus moves a submission between new, read and archived.
func (s *ContactService) UpdateStatus(id uint, status string) (*db.Contact, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	switch normalized {
	case db.ContactStatusNew, db.ContactStatusRead, db.ContactStatusArchived:
	default:
		return nil, ErrContactStatusInvalid
	}

	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	contact.Status = normalized
	if err := s.db.Save(contact).Error; err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	return contact, nil
}

// Delete removes a submission.
func (s *ContactService) Delete(id uint) error {
	contact, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Unscoped().Delete(contact).Error; err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
