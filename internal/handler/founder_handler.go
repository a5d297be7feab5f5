package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
	"github.com/victoriaclean/backend/internal/upload"
)

const founderImageField = "imageUrl"

// ListFounders returns all founder profiles.
func (a *API) ListFounders(c *gin.Context) {
	founders, err := a.founders.List()
	if err != nil {
		a.failure(c, err, "Failed to fetch founders")
		return
	}
	response.OK(c, founders)
}

// CountFounders returns the number of founder profiles.
func (a *API) CountFounders(c *gin.Context) {
	count, err := a.founders.Count()
	if err != nil {
		a.failure(c, err, "Failed to count founders")
		return
	}
	response.OK(c, gin.H{"count": count})
}

// ListFoundersByPosition filters founders by position.
func (a *API) ListFoundersByPosition(c *gin.Context) {
	founders, err := a.founders.ListByPosition(c.Param("position"))
	if err != nil {
		a.failure(c, err, "Failed to fetch founders")
		return
	}
	response.OK(c, founders)
}

// SearchFounders matches a query against founder name, position and title.
func (a *API) SearchFounders(c *gin.Context) {
	founders, err := a.founders.Search(c.Param("query"))
	if err != nil {
		a.failure(c, err, "Failed to search founders")
		return
	}
	response.OK(c, founders)
}

// GetFounder returns one founder by id.
func (a *API) GetFounder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid founder id")
		return
	}

	founder, err := a.founders.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch founder")
		return
	}
	response.OK(c, founder)
}

// CreateFounder creates a founder profile from a multipart form.
func (a *API) CreateFounder(c *gin.Context) {
	image := upload.First(c, founderImageField)
	if image == nil {
		response.ValidationFailed(c, map[string]string{founderImageField: "Image is required"})
		return
	}

	founder, err := a.founders.Create(service.FounderInput{
		Name:        c.PostForm("name"),
		Position:    c.PostForm("position"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ImageURL:    a.fileURL(c, image),
	})
	if err != nil {
		a.failure(c, err, "Failed to create founder")
		return
	}

	image.Claim()
	response.Created(c, founder)
}

// UpdateFounder applies a partial update; a new image replaces the old one.
func (a *API) UpdateFounder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid founder id")
		return
	}

	existing, err := a.founders.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch founder")
		return
	}

	image := upload.First(c, founderImageField)
	input := service.FounderInput{
		Name:        c.PostForm("name"),
		Position:    c.PostForm("position"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if image != nil {
		input.ImageURL = a.fileURL(c, image)
	}

	if input.Name == "" && input.Position == "" && input.Title == "" &&
		input.Description == "" && image == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	founder, err := a.founders.Update(id, input)
	if err != nil {
		a.failure(c, err, "Failed to update founder")
		return
	}

	if image != nil {
		image.Claim()
		a.removeStoredAsset(c, existing.ImageURL)
	}
	response.OK(c, founder)
}

// DeleteFounder removes a founder and their image.
func (a *API) DeleteFounder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid founder id")
		return
	}

	founder, err := a.founders.Delete(id)
	if err != nil {
		a.failure(c, err, "Failed to delete founder")
		return
	}

	a.removeStoredAsset(c, founder.ImageURL)
	response.Message(c, "Founder and associated file deleted successfully")
}
