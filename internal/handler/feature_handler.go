package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
	"github.com/victoriaclean/backend/internal/upload"
)

const featureImageField = "image"

// ListFeatures returns all homepage feature cards.
func (a *API) ListFeatures(c *gin.Context) {
	features, err := a.features.List()
	if err != nil {
		a.failure(c, err, "Failed to fetch features")
		return
	}
	response.OK(c, features)
}

// GetFeature returns one feature by id.
func (a *API) GetFeature(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid feature id")
		return
	}

	feature, err := a.features.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch feature")
		return
	}
	response.OK(c, feature)
}

// CreateFeature creates a feature card from a multipart form.
func (a *API) CreateFeature(c *gin.Context) {
	image := upload.First(c, featureImageField)
	if image == nil {
		response.ValidationFailed(c, map[string]string{featureImageField: "Image is required"})
		return
	}

	feature, err := a.features.Create(service.FeatureInput{
		Title:    c.PostForm("title"),
		Subtitle: c.PostForm("subtitle"),
		Image:    a.fileURL(c, image),
	})
	if err != nil {
		a.failure(c, err, "Failed to create feature")
		return
	}

	image.Claim()
	response.Created(c, feature)
}

// UpdateFeature applies a partial update; a new image replaces the old one.
func (a *API) UpdateFeature(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid feature id")
		return
	}

	existing, err := a.features.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch feature")
		return
	}

	image := upload.First(c, featureImageField)
	input := service.FeatureInput{
		Title:    c.PostForm("title"),
		Subtitle: c.PostForm("subtitle"),
	}
	if image != nil {
		input.Image = a.fileURL(c, image)
	}

	if input.Title == "" && input.Subtitle == "" && image == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	feature, err := a.features.Update(id, input)
	if err != nil {
		a.failure(c, err, "Failed to update feature")
		return
	}

	if image != nil {
		image.Claim()
		a.removeStoredAsset(c, existing.Image)
	}
	response.OK(c, feature)
}

// DeleteFeature removes a feature and its image.
func (a *API) DeleteFeature(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid feature id")
		return
	}

	feature, err := a.features.Delete(id)
	if err != nil {
		a.failure(c, err, "Failed to delete feature")
		return
	}

	a.removeStoredAsset(c, feature.Image)
	response.Message(c, "Feature and associated file deleted successfully")
}
