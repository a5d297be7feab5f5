package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/victoriaclean/backend/internal/db"
)

func validServiceInputFor(title string) ServiceInput {
	return ServiceInput{
		Title:       title,
		Description: "Detailed professional cleaning.",
		Category:    db.ServiceCategoryResidential,
		ImageURL:    "http://localhost:3005/uploads/image-1-aaa.jpg",
	}
}

func TestServiceSlugCarriesTimestamp(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	first, err := catalog.CreateService(validServiceInputFor("Deep Clean"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !regexp.MustCompile(`^deep-clean-\d+$`).MatchString(first.Slug) {
		t.Fatalf("unexpected slug shape %q", first.Slug)
	}
}

func TestServiceFeaturedFilterAndToggle(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	plain, err := catalog.CreateService(validServiceInputFor("Plain"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	featuredInput := validServiceInputFor("Featured")
	featuredInput.IsFeatured = true
	if _, err := catalog.CreateService(featuredInput); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	want := true
	services, err := catalog.ListServices(&want)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(services) != 1 || services[0].Title != "Featured" {
		t.Fatalf("featured filter returned %d rows", len(services))
	}

	toggled, err := catalog.ToggleFeatured(plain.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggled.IsFeatured {
		t.Fatal("toggle should set the flag")
	}

	services, err = catalog.ListServices(&want)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 featured services, got %d", len(services))
	}
}

func TestServiceRejectsBadCategory(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	input := validServiceInputFor("Bad Category")
	input.Category = "industrial"
	_, err := catalog.CreateService(input)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr["category"]; !ok {
		t.Fatal("expected category validation message")
	}
}

func TestSubServiceLifecycleMaintainsParentFlag(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	parent, err := catalog.CreateService(validServiceInputFor("Parent"))
	if err != nil {
		t.Fatalf("create parent failed: %v", err)
	}
	if parent.HasSubServices {
		t.Fatal("fresh service should have no sub-services")
	}

	sub, err := catalog.CreateSubService(SubServiceInput{
		Title:     "Oven Detail",
		ImageURL:  "http://localhost:3005/uploads/image-2-bbb.jpg",
		ServiceID: parent.ID,
	})
	if err != nil {
		t.Fatalf("create sub-service failed: %v", err)
	}

	refreshed, err := catalog.GetService(parent.ID)
	if err != nil {
		t.Fatalf("get parent failed: %v", err)
	}
	if !refreshed.HasSubServices {
		t.Fatal("HasSubServices should flip to true after create")
	}
	if len(refreshed.SubServices) != 1 {
		t.Fatalf("expected 1 preloaded sub-service, got %d", len(refreshed.SubServices))
	}

	if _, err := catalog.DeleteSubService(sub.ID); err != nil {
		t.Fatalf("delete sub-service failed: %v", err)
	}
	refreshed, err = catalog.GetService(parent.ID)
	if err != nil {
		t.Fatalf("get parent failed: %v", err)
	}
	if refreshed.HasSubServices {
		t.Fatal("HasSubServices should flip back after last sub-service is removed")
	}
}

func TestSubServiceReparenting(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	first, err := catalog.CreateService(validServiceInputFor("First"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := catalog.CreateService(validServiceInputFor("Second"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sub, err := catalog.CreateSubService(SubServiceInput{
		Title:     "Window Detail",
		ImageURL:  "http://localhost:3005/uploads/image-3-ccc.jpg",
		ServiceID: first.ID,
	})
	if err != nil {
		t.Fatalf("create sub-service failed: %v", err)
	}

	if _, err := catalog.UpdateSubService(sub.ID, SubServiceInput{ServiceID: second.ID}); err != nil {
		t.Fatalf("reparent failed: %v", err)
	}

	oldParent, _ := catalog.GetService(first.ID)
	newParent, _ := catalog.GetService(second.ID)
	if oldParent.HasSubServices {
		t.Fatal("old parent flag should be cleared")
	}
	if !newParent.HasSubServices {
		t.Fatal("new parent flag should be set")
	}
}

func TestSubServiceRequiresExistingParent(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	_, err := catalog.CreateSubService(SubServiceInput{
		Title:     "Orphan",
		ImageURL:  "http://localhost:3005/uploads/image-4-ddd.jpg",
		ServiceID: 999,
	})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestDeleteServiceCascades(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	parent, err := catalog.CreateService(validServiceInputFor("Cascade"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	sub, err := catalog.CreateSubService(SubServiceInput{
		Title:     "Child",
		ImageURL:  "http://localhost:3005/uploads/image-5-eee.jpg",
		ServiceID: parent.ID,
	})
	if err != nil {
		t.Fatalf("create sub-service failed: %v", err)
	}

	deleted, err := catalog.DeleteService(parent.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(deleted.SubServices) != 1 {
		t.Fatalf("deleted row should carry sub-services for asset cleanup, got %d", len(deleted.SubServices))
	}

	if _, err := catalog.GetSubService(sub.ID); !errors.Is(err, ErrSubServiceNotFound) {
		t.Fatalf("child should be gone, got %v", err)
	}
	if _, err := catalog.GetService(parent.ID); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("parent should be gone, got %v", err)
	}
}
