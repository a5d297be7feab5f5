package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
	"github.com/victoriaclean/backend/internal/upload"
)

const companyImageField = "image"

// GetCompany returns the singleton company profile.
func (a *API) GetCompany(c *gin.Context) {
	company, err := a.companies.Get()
	if err != nil {
		a.failure(c, err, "Failed to fetch company profile")
		return
	}
	response.OK(c, company)
}

// CreateCompany creates the company profile. A second create is rejected
// with a conflict.
func (a *API) CreateCompany(c *gin.Context) {
	image := upload.First(c, companyImageField)
	if image == nil {
		response.ValidationFailed(c, map[string]string{companyImageField: "Image is required"})
		return
	}

	company, err := a.companies.Create(service.CompanyInput{
		Title:    c.PostForm("title"),
		ImageURL: a.fileURL(c, image),
	})
	if err != nil {
		a.failure(c, err, "Failed to create company profile")
		return
	}

	image.Claim()
	response.Created(c, company)
}

// UpdateCompany applies a partial update; a new image replaces the old one.
func (a *API) UpdateCompany(c *gin.Context) {
	existing, err := a.companies.Get()
	if err != nil {
		a.failure(c, err, "Failed to fetch company profile")
		return
	}

	image := upload.First(c, companyImageField)
	input := service.CompanyInput{Title: c.PostForm("title")}
	if image != nil {
		input.ImageURL = a.fileURL(c, image)
	}

	if input.Title == "" && image == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	company, err := a.companies.Update(input)
	if err != nil {
		a.failure(c, err, "Failed to update company profile")
		return
	}

	if image != nil {
		image.Claim()
		a.removeStoredAsset(c, existing.ImageURL)
	}
	response.OK(c, company)
}

// DeleteCompany removes the company profile and its image.
func (a *API) DeleteCompany(c *gin.Context) {
	company, err := a.companies.Delete()
	if err != nil {
		a.failure(c, err, "Failed to delete company profile")
		return
	}

	a.removeStoredAsset(c, company.ImageURL)
	response.Message(c, "Company profile and associated file deleted successfully")
}
