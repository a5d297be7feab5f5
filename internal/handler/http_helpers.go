package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
)

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// failure maps service errors onto the response taxonomy. Unknown errors
// become a 500 with detail only in development mode.
func (a *API) failure(c *gin.Context, err error, fallback string) {
	var verr service.ValidationError
	if errors.As(err, &verr) {
		response.ValidationFailed(c, verr.Fields())
		return
	}

	switch {
	case isNotFound(err):
		response.Error(c, http.StatusNotFound, capitalize(err.Error()))
	case isConflict(err):
		response.Error(c, http.StatusConflict, capitalize(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusBadRequest, "Invalid email or password")
	case errors.Is(err, service.ErrContactStatusInvalid):
		response.Error(c, http.StatusBadRequest, "Status must be new, read or archived")
	default:
		log.Printf("handler: %s: %v", fallback, err)
		if a.cfg.IsProduction() {
			response.Error(c, http.StatusInternalServerError, fallback)
			return
		}
		response.ErrorWithDetail(c, http.StatusInternalServerError, fallback, err.Error())
	}
}

func isNotFound(err error) bool {
	for _, sentinel := range []error{
		service.ErrAdminNotFound,
		service.ErrBlogNotFound,
		service.ErrServiceNotFound,
		service.ErrSubServiceNotFound,
		service.ErrTeamMemberNotFound,
		service.ErrFounderNotFound,
		service.ErrTestimonialNotFound,
		service.ErrGalleryItemNotFound,
		service.ErrFeatureNotFound,
		service.ErrCompanyNotFound,
		service.ErrContactNotFound,
		service.ErrContactInfoNotFound,
		service.ErrAboutNotFound,
		service.ErrAboutCategoryNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func isConflict(err error) bool {
	for _, sentinel := range []error{
		service.ErrAdminExists,
		service.ErrBlogExists,
		service.ErrServiceExists,
		service.ErrGalleryTitleTaken,
		service.ErrCompanyExists,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
