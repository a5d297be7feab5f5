package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
	"github.com/victoriaclean/backend/internal/upload"
)

const testimonialImageField = "imageUrl"

// ListTestimonials returns all testimonials.
func (a *API) ListTestimonials(c *gin.Context) {
	reviews, err := a.testimonials.List()
	if err != nil {
		a.failure(c, err, "Failed to fetch testimonials")
		return
	}
	response.OK(c, reviews)
}

// GetTestimonial returns one testimonial by id.
func (a *API) GetTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid testimonial id")
		return
	}

	review, err := a.testimonials.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch testimonial")
		return
	}
	response.OK(c, review)
}

// CreateTestimonial creates a testimonial from a multipart form.
func (a *API) CreateTestimonial(c *gin.Context) {
	image := upload.First(c, testimonialImageField)
	if image == nil {
		response.ValidationFailed(c, map[string]string{testimonialImageField: "Image is required"})
		return
	}

	review, err := a.testimonials.Create(service.TestimonialInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		ImageURL:    a.fileURL(c, image),
		Stars:       starsField(c),
	})
	if err != nil {
		a.failure(c, err, "Failed to create testimonial")
		return
	}

	image.Claim()
	response.Created(c, review)
}

// UpdateTestimonial applies a partial update; a new image replaces the old
// one.
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid testimonial id")
		return
	}

	existing, err := a.testimonials.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch testimonial")
		return
	}

	image := upload.First(c, testimonialImageField)
	input := service.TestimonialInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Stars:       starsField(c),
	}
	if image != nil {
		input.ImageURL = a.fileURL(c, image)
	}

	if input.Name == "" && input.Description == "" && input.Stars == nil && image == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	review, err := a.testimonials.Update(id, input)
	if err != nil {
		a.failure(c, err, "Failed to update testimonial")
		return
	}

	if image != nil {
		image.Claim()
		a.removeStoredAsset(c, existing.ImageURL)
	}
	response.OK(c, review)
}

// DeleteTestimonial removes a testimonial and its image.
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid testimonial id")
		return
	}

	review, err := a.testimonials.Delete(id)
	if err != nil {
		a.failure(c, err, "Failed to delete testimonial")
		return
	}

	a.removeStoredAsset(c, review.ImageURL)
	response.Message(c, "Testimonial and associated file deleted successfully")
}

// starsField parses the optional "stars" form value. A non-numeric value is
// passed through as an out-of-range rating so validation reports it.
func starsField(c *gin.Context) *int {
	raw := strings.TrimSpace(c.PostForm("stars"))
	if raw == "" {
		return nil
	}
	stars, err := strconv.Atoi(raw)
	if err != nil {
		stars = -1
	}
	return &stars
}
