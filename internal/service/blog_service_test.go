package service

import (
	"errors"
	"strings"
	"testing"
)

func validBlogInput() BlogInput {
	return BlogInput{
		Title:       "Spring Cleaning Checklist",
		Description: "Everything to cover room by room.",
		Author:      "Victoria Team",
		ImageURL:    "http://localhost:3005/uploads/imageUrl-1-aaa.jpg",
	}
}

func TestBlogCreateDerivesSlug(t *testing.T) {
	blogs := NewBlogService(newTestDB(t))

	post, err := blogs.Create(validBlogInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if post.Slug != "spring-cleaning-checklist" {
		t.Fatalf("unexpected slug %q", post.Slug)
	}
	if post.PostedAt.IsZero() {
		t.Fatal("PostedAt should be stamped on create")
	}
}

func TestBlogCreateDuplicateTitleConflicts(t *testing.T) {
	blogs := NewBlogService(newTestDB(t))

	if _, err := blogs.Create(validBlogInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := blogs.Create(validBlogInput()); !errors.Is(err, ErrBlogExists) {
		t.Fatalf("expected ErrBlogExists, got %v", err)
	}
}

func TestBlogCreateValidation(t *testing.T) {
	blogs := NewBlogService(newTestDB(t))

	_, err := blogs.Create(BlogInput{})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"title", "description", "author", "imageUrl"} {
		if _, ok := verr[field]; !ok {
			t.Errorf("expected validation message for %q", field)
		}
	}
}

func TestBlogTitleLimitCountsCharacters(t *testing.T) {
	blogs := NewBlogService(newTestDB(t))

	input := validBlogInput()
	input.Title = strings.Repeat("ö", 200) // 400 bytes, still within the cap
	if _, err := blogs.Create(input); err != nil {
		t.Fatalf("200-character title should pass: %v", err)
	}

	input.Title = strings.Repeat("ö", 201)
	_, err := blogs.Create(input)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr["title"]; !ok {
		t.Fatal("expected validation message for title")
	}
}

func TestBlogUpdateTitleRegeneratesSlug(t *testing.T) {
	blogs := NewBlogService(newTestDB(t))

	post, err := blogs.Create(validBlogInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := blogs.Update(post.ID, BlogUpdate{Title: "Winter Cleaning Checklist"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "winter-cleaning-checklist" {
		t.Fatalf("slug not regenerated: %q", updated.Slug)
	}
	// untouched fields survive
	if updated.Author != "Victoria Team" {
		t.Fatalf("author changed unexpectedly: %q", updated.Author)
	}
}

func TestBlogUpdateTitleConflictsWithOtherPost(t *testing.T) {
	blogs := NewBlogService(newTestDB(t))

	first, err := blogs.Create(validBlogInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second := validBlogInput()
	second.Title = "Another Post"
	other, err := blogs.Create(second)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := blogs.Update(other.ID, BlogUpdate{Title: first.Title}); !errors.Is(err, ErrBlogExists) {
		t.Fatalf("expected ErrBlogExists, got %v", err)
	}

	// keeping your own title is not a conflict
	if _, err := blogs.Update(first.ID, BlogUpdate{Title: first.Title}); err != nil {
		t.Fatalf("same-title update should succeed: %v", err)
	}
}

func TestBlogDeleteFreesSlug(t *testing.T) {
	blogs := NewBlogService(newTestDB(t))

	post, err := blogs.Create(validBlogInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	deleted, err := blogs.Delete(post.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ImageURL != post.ImageURL {
		t.Fatal("delete should return the removed row for asset cleanup")
	}

	// hard delete frees the unique slug for reuse
	if _, err := blogs.Create(validBlogInput()); err != nil {
		t.Fatalf("recreate after delete failed: %v", err)
	}

	if _, err := blogs.GetBySlug("no-such-post"); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}
