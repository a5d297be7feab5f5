package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
	"github.com/victoriaclean/backend/internal/upload"
)

const galleryImageField = "imageUrl"

// ListGalleryItems returns all gallery items.
func (a *API) ListGalleryItems(c *gin.Context) {
	items, err := a.galleries.List()
	if err != nil {
		a.failure(c, err, "Failed to fetch gallery items")
		return
	}
	response.OK(c, items)
}

// GetGalleryItem returns one gallery item by id.
func (a *API) GetGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid gallery item id")
		return
	}

	item, err := a.galleries.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch gallery item")
		return
	}
	response.OK(c, item)
}

// CreateGalleryItem creates a gallery item from a multipart form. The stored
// dimensions come from the decoded upload.
func (a *API) CreateGalleryItem(c *gin.Context) {
	image := upload.First(c, galleryImageField)
	if image == nil {
		response.ValidationFailed(c, map[string]string{galleryImageField: "Image is required"})
		return
	}

	item, err := a.galleries.Create(service.GalleryInput{
		Title:       c.PostForm("title"),
		ImageURL:    a.fileURL(c, image),
		ImageWidth:  image.Width,
		ImageHeight: image.Height,
	})
	if err != nil {
		a.failure(c, err, "Failed to create gallery item")
		return
	}

	image.Claim()
	response.Created(c, item)
}

// UpdateGalleryItem applies a partial update; a new image replaces the old
// one and refreshes the stored dimensions.
func (a *API) UpdateGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid gallery item id")
		return
	}

	existing, err := a.galleries.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch gallery item")
		return
	}

	image := upload.First(c, galleryImageField)
	input := service.GalleryInput{Title: c.PostForm("title")}
	if image != nil {
		input.ImageURL = a.fileURL(c, image)
		input.ImageWidth = image.Width
		input.ImageHeight = image.Height
	}

	if input.Title == "" && image == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	item, err := a.galleries.Update(id, input)
	if err != nil {
		a.failure(c, err, "Failed to update gallery item")
		return
	}

	if image != nil {
		image.Claim()
		a.removeStoredAsset(c, existing.ImageURL)
	}
	response.OK(c, item)
}

// DeleteGalleryItem removes a gallery item and its image.
func (a *API) DeleteGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid gallery item id")
		return
	}

	item, err := a.galleries.Delete(id)
	if err != nil {
		a.failure(c, err, "Failed to delete gallery item")
		return
	}

	a.removeStoredAsset(c, item.ImageURL)
	response.Message(c, "Gallery item and associated file deleted successfully")
}
