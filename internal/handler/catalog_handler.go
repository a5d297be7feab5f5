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

// serviceImageField is the multipart file field for services and
// sub-services.
const serviceImageField = "image"

// ListServices returns services, optionally filtered with ?featured=true.
func (a *API) ListServices(c *gin.Context) {
	var featured *bool
	if raw := strings.TrimSpace(c.Query("featured")); raw != "" {
		value := raw == "true"
		featured = &value
	}

	services, err := a.catalog.ListServices(featured)
	if err != nil {
		a.failure(c, err, "Failed to fetch services")
		return
	}
	response.OK(c, services)
}

// GetServiceByID returns one service with its sub-services.
func (a *API) GetServiceByID(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	svc, err := a.catalog.GetService(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch service")
		return
	}
	response.OK(c, svc)
}

// GetServiceBySlug returns one service by its slug.
func (a *API) GetServiceBySlug(c *gin.Context) {
	svc, err := a.catalog.GetServiceBySlug(c.Param("slug"))
	if err != nil {
		a.failure(c, err, "Failed to fetch service")
		return
	}
	response.OK(c, svc)
}

// CreateService creates a service from a multipart form.
func (a *API) CreateService(c *gin.Context) {
	image := upload.First(c, serviceImageField)
	if image == nil {
		response.ValidationFailed(c, map[string]string{serviceImageField: "Service image is required"})
		return
	}

	svc, err := a.catalog.CreateService(service.ServiceInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		IsFeatured:  c.PostForm("isFeatured") == "true",
		ImageURL:    a.fileURL(c, image),
	})
	if err != nil {
		a.failure(c, err, "Failed to create service")
		return
	}

	image.Claim()
	response.Created(c, svc)
}

// UpdateService applies a partial update; a new image replaces the old one.
func (a *API) UpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	existing, err := a.catalog.GetService(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch service")
		return
	}

	image := upload.First(c, serviceImageField)
	input := service.ServiceUpdate{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}
	if raw := strings.TrimSpace(c.PostForm("isFeatured")); raw != "" {
		value := raw == "true"
		input.IsFeatured = &value
	}
	if image != nil {
		input.ImageURL = a.fileURL(c, image)
	}

	if input.Title == "" && input.Description == "" && input.Category == "" &&
		input.IsFeatured == nil && image == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	svc, err := a.catalog.UpdateService(id, input)
	if err != nil {
		a.failure(c, err, "Failed to update service")
		return
	}

	if image != nil {
		image.Claim()
		a.removeStoredAsset(c, existing.ImageURL)
	}
	response.OK(c, svc)
}

// ToggleFeaturedService flips a service's featured flag.
func (a *API) ToggleFeaturedService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	svc, err := a.catalog.ToggleFeatured(id)
	if err != nil {
		a.failure(c, err, "Failed to toggle featured status")
		return
	}

	message := "Service unfeatured successfully"
	if svc.IsFeatured {
		message = "Service featured successfully"
	}
	c.JSON(http.StatusOK, response.Envelope{Success: true, Data: svc, Message: message})
}

// DeleteService removes a service, its sub-services and all their images.
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	svc, err := a.catalog.DeleteService(id)
	if err != nil {
		a.failure(c, err, "Failed to delete service")
		return
	}

	a.removeStoredAsset(c, svc.ImageURL)
	for _, sub := range svc.SubServices {
		a.removeStoredAsset(c, sub.ImageURL)
	}
	response.Message(c, "Service and associated files deleted successfully")
}

// ListSubServices returns all sub-services.
func (a *API) ListSubServices(c *gin.Context) {
	subs, err := a.catalog.ListSubServices()
	if err != nil {
		a.failure(c, err, "Failed to fetch sub-services")
		return
	}
	response.OK(c, subs)
}

// ListSubServicesByParent returns the sub-services under a parent id.
func (a *API) ListSubServicesByParent(c *gin.Context) {
	parentID, err := strconv.ParseUint(c.Param("parentId"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid parent service id")
		return
	}

	subs, err := a.catalog.ListSubServicesByParent(uint(parentID))
	if err != nil {
		a.failure(c, err, "Failed to fetch sub-services")
		return
	}
	response.OK(c, subs)
}

// ListSubServicesByParentSlug returns the sub-services under a parent slug.
func (a *API) ListSubServicesByParentSlug(c *gin.Context) {
	subs, err := a.catalog.ListSubServicesByParentSlug(c.Param("slug"))
	if err != nil {
		a.failure(c, err, "Failed to fetch sub-services")
		return
	}
	response.OK(c, subs)
}

// GetSubService returns one sub-service.
func (a *API) GetSubService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid sub-service id")
		return
	}

	sub, err := a.catalog.GetSubService(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch sub-service")
		return
	}
	response.OK(c, sub)
}

// CreateSubService creates a sub-service under an existing parent.
func (a *API) CreateSubService(c *gin.Context) {
	image := upload.First(c, serviceImageField)
	if image == nil {
		response.ValidationFailed(c, map[string]string{serviceImageField: "Sub-service image is required"})
		return
	}

	rawParent := strings.TrimSpace(c.PostForm("parentService"))
	if rawParent == "" {
		response.ValidationFailed(c, map[string]string{"parentService": "Parent service is required"})
		return
	}
	parentID, err := strconv.ParseUint(rawParent, 10, 32)
	if err != nil {
		response.ValidationFailed(c, map[string]string{"parentService": "Parent service must be a numeric id"})
		return
	}

	sub, err := a.catalog.CreateSubService(service.SubServiceInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ServiceID:   uint(parentID),
		ImageURL:    a.fileURL(c, image),
	})
	if err != nil {
		a.failure(c, err, "Failed to create sub-service")
		return
	}

	image.Claim()
	response.Created(c, sub)
}

// UpdateSubService applies a partial update; a new image replaces the old.
func (a *API) UpdateSubService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid sub-service id")
		return
	}

	existing, err := a.catalog.GetSubService(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch sub-service")
		return
	}

	image := upload.First(c, serviceImageField)

	var parentID uint64
	if raw := strings.TrimSpace(c.PostForm("parentService")); raw != "" {
		parentID, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ValidationFailed(c, map[string]string{"parentService": "Parent service must be a numeric id"})
			return
		}
	}

	input := service.SubServiceInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ServiceID:   uint(parentID),
	}
	if image != nil {
		input.ImageURL = a.fileURL(c, image)
	}

	if input.Title == "" && input.Description == "" && input.ServiceID == 0 && image == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	sub, err := a.catalog.UpdateSubService(id, input)
	if err != nil {
		a.failure(c, err, "Failed to update sub-service")
		return
	}

	if image != nil {
		image.Claim()
		a.removeStoredAsset(c, existing.ImageURL)
	}
	response.OK(c, sub)
}

// DeleteSubService removes a sub-service and its image.
func (a *API) DeleteSubService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid sub-service id")
		return
	}

	sub, err := a.catalog.DeleteSubService(id)
	if err != nil {
		a.failure(c, err, "Failed to delete sub-service")
		return
	}

	a.removeStoredAsset(c, sub.ImageURL)
	response.Message(c, "Sub-service and associated files deleted successfully")
}
