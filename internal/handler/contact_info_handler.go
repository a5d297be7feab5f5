package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/db"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
)

// GetContactInfo returns the singleton set of public contact details.
func (a *API) GetContactInfo(c *gin.Context) {
	info, err := a.contactInfo.Get()
	if err != nil {
		a.failure(c, err, "Failed to fetch contact info")
		return
	}
	response.OK(c, info)
}

// SaveContactInfo creates the contact info document on first call and
// overwrites it afterwards.
func (a *API) SaveContactInfo(c *gin.Context) {
	var body struct {
		Address        string         `json:"address"`
		Phones         []string       `json:"phones"`
		Email          string         `json:"email"`
		WhatsappNumber string         `json:"whatsappNumber"`
		SocialLinks    db.SocialLinks `json:"socialLinks"`
	}
	if !bindJSON(c, &body) {
		return
	}

	info, err := a.contactInfo.Save(service.ContactInfoInput{
		Address:        body.Address,
		Phones:         body.Phones,
		Email:          body.Email,
		WhatsappNumber: body.WhatsappNumber,
		SocialLinks:    body.SocialLinks,
	})
	if err != nil {
		a.failure(c, err, "Failed to save contact info")
		return
	}
	response.OK(c, info)
}

// DeleteContactInfo removes the contact info document with the given id.
func (a *API) DeleteContactInfo(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact info id")
		return
	}

	if err := a.contactInfo.Delete(id); err != nil {
		a.failure(c, err, "Failed to delete contact info")
		return
	}
	response.Message(c, "Contact info deleted successfully")
}
