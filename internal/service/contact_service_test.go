package service

import (
	"errors"
	"testing"

	"github.com/victoriaclean/backend/internal/db"
)

func validContactInput() ContactInput {
	return ContactInput{
		Name:    "Priya N",
		Email:   "Priya@Example.com",
		Phone:   "+61 400 000 000",
		Address: "5 Example Street, Melbourne",
		Message: "Need an end of lease clean next week.",
	}
}

func TestContactSubmitDefaultsAndNormalizes(t *testing.T) {
	contacts := NewContactService(newTestDB(t))

	contact, err := contacts.Submit(validContactInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if contact.Country != "AU" {
		t.Fatalf("expected AU country default, got %q", contact.Country)
	}
	if contact.Status != db.ContactStatusNew {
		t.Fatalf("expected new status, got %q", contact.Status)
	}
	if contact.Email != "priya@example.com" {
		t.Fatalf("email not normalized: %q", contact.Email)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	contacts := NewContactService(newTestDB(t))

	input := validContactInput()
	input.Email = "not-an-email"
	_, err := contacts.Submit(input)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr["email"]; !ok {
		t.Fatal("expected email validation message")
	}
}

func TestContactStatusWorkflow(t *testing.T) {
	contacts := NewContactService(newTestDB(t))

	contact, err := contacts.Submit(validContactInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := contacts.UpdateStatus(contact.ID, "Read"); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if _, err := contacts.UpdateStatus(contact.ID, "spam"); !errors.Is(err, ErrContactStatusInvalid) {
		t.Fatalf("expected ErrContactStatusInvalid, got %v", err)
	}

	read, err := contacts.List(db.ContactStatusRead)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(read) != 1 {
		t.Fatalf("expected 1 read submission, got %d", len(read))
	}
	if fresh, _ := contacts.List(db.ContactStatusNew); len(fresh) != 0 {
		t.Fatalf("expected no remaining new submissions, got %d", len(fresh))
	}

	if err := contacts.Delete(contact.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := contacts.Get(contact.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
