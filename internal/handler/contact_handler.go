package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
)

// SubmitContact stores a public contact form submission.
func (a *API) SubmitContact(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Message string `json:"message"`
		Country string `json:"country"`
	}
	if !bindJSON(c, &body) {
		return
	}

	contact, err := a.contacts.Submit(service.ContactInput{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
		Message: body.Message,
		Country: body.Country,
	})
	if err != nil {
		a.failure(c, err, "Failed to submit contact form")
		return
	}

	c.JSON(http.StatusCreated, response.Envelope{
		Success: true,
		Data:    contact,
		Message: "Thank you for contacting us. We will get back to you shortly.",
	})
}

// ListContacts returns submissions, optionally filtered with ?status=.
func (a *API) ListContacts(c *gin.Context) {
	contacts, err := a.contacts.List(c.Query("status"))
	if err != nil {
		a.failure(c, err, "Failed to fetch contact submissions")
		return
	}
	response.OK(c, contacts)
}

// GetContact returns one submission by id.
func (a *API) GetContact(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact id")
		return
	}

	contact, err := a.contacts.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch contact submission")
		return
	}
	response.OK(c, contact)
}

// UpdateContactStatus moves a submission between new, read and archived.
func (a *API) UpdateContactStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &body) {
		return
	}

	contact, err := a.contacts.UpdateStatus(id, body.Status)
	if err != nil {
		a.failure(c, err, "Failed to update contact status")
		return
	}
	response.OK(c, contact)
}

// DeleteContact removes a submission.
func (a *API) DeleteContact(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact id")
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		a.failure(c, err, "Failed to delete contact submission")
		return
	}
	response.Message(c, "Contact submission deleted successfully")
}
