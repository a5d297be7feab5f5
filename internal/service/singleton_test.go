package service

import (
	"errors"
	"testing"

	"github.com/victoriaclean/backend/internal/db"
)

func TestCompanySingleton(t *testing.T) {
	companies := NewCompanyService(newTestDB(t))

	if _, err := companies.Get(); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound on empty table, got %v", err)
	}

	input := CompanyInput{Title: "Victoria Cleaning", ImageURL: "http://localhost:3005/uploads/image-1-a.png"}
	if _, err := companies.Create(input); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := companies.Create(input); !errors.Is(err, ErrCompanyExists) {
		t.Fatalf("second create must conflict, got %v", err)
	}

	updated, err := companies.Update(CompanyInput{Title: "Victoria Cleaning Services"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ImageURL != input.ImageURL {
		t.Fatal("partial update should keep the image")
	}

	deleted, err := companies.Delete()
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ImageURL != input.ImageURL {
		t.Fatal("delete should return the removed row")
	}
	if _, err := companies.Get(); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("profile should be gone, got %v", err)
	}
}

func TestContactInfoSaveCreatesThenOverwrites(t *testing.T) {
	infos := NewContactInfoService(newTestDB(t))

	if _, err := infos.Get(); !errors.Is(err, ErrContactInfoNotFound) {
		t.Fatalf("expected ErrContactInfoNotFound, got %v", err)
	}

	first, err := infos.Save(ContactInfoInput{
		Address: "12 Collins Street",
		Phones:  []string{" +61 3 9000 0000 ", "", "+61 400 000 000"},
		Email:   "Hello@VictoriaClean.com.au",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(first.Phones) != 2 {
		t.Fatalf("blank phones should be dropped, got %v", first.Phones)
	}
	if first.Email != "hello@victoriaclean.com.au" {
		t.Fatalf("email not normalized: %q", first.Email)
	}

	second, err := infos.Save(ContactInfoInput{
		Address:     "1 New Street",
		SocialLinks: db.SocialLinks{Instagram: "https://instagram.com/victoriaclean"},
	})
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("save should overwrite the existing row, not insert")
	}
	if second.Email != "" || len(second.Phones) != 0 {
		t.Fatal("save replaces the whole document")
	}

	if _, err := infos.Save(ContactInfoInput{Email: "not-an-email"}); err == nil {
		t.Fatal("expected email validation to fail")
	}

	if err := infos.Delete(second.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := infos.Delete(second.ID); !errors.Is(err, ErrContactInfoNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}

func TestAboutSaveReplacesTree(t *testing.T) {
	about := NewAboutService(newTestDB(t))

	if _, err := about.Get(); !errors.Is(err, ErrAboutNotFound) {
		t.Fatalf("expected ErrAboutNotFound, got %v", err)
	}

	page, err := about.Save(AboutInput{
		PageTitle: "About Victoria",
		Categories: []AboutCategoryInput{
			{
				Name: "Our Story",
				Sections: []AboutSectionInput{
					{Title: "How we started", Description: "Two cleaners, one van."},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(page.Categories) != 1 || page.Categories[0].Slug != "our-story" {
		t.Fatalf("expected slugified category, got %+v", page.Categories)
	}

	// title-only update keeps the tree
	page, err = about.Save(AboutInput{PageTitle: "About Us"})
	if err != nil {
		t.Fatalf("title-only save failed: %v", err)
	}
	if len(page.Categories) != 1 {
		t.Fatalf("nil categories must leave the tree untouched, got %d", len(page.Categories))
	}

	// providing categories replaces wholesale
	page, err = about.Save(AboutInput{
		Categories: []AboutCategoryInput{
			{Name: "Our Promise"},
			{Name: "Our Team"},
		},
	})
	if err != nil {
		t.Fatalf("replace save failed: %v", err)
	}
	if len(page.Categories) != 2 {
		t.Fatalf("expected replaced tree with 2 categories, got %d", len(page.Categories))
	}

	category, err := about.GetCategory("our-promise")
	if err != nil {
		t.Fatalf("get category failed: %v", err)
	}
	if category.Name != "Our Promise" {
		t.Fatalf("unexpected category %+v", category)
	}
	if _, err := about.GetCategory("our-story"); !errors.Is(err, ErrAboutCategoryNotFound) {
		t.Fatalf("old category should be gone, got %v", err)
	}
}

func TestAboutSaveRejectsDuplicateCategorySlugs(t *testing.T) {
	about := NewAboutService(newTestDB(t))

	_, err := about.Save(AboutInput{
		Categories: []AboutCategoryInput{
			{Name: "Team"},
			{Name: "team"},
		},
	})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for duplicate slugs, got %v", err)
	}
}
