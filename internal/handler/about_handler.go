package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
)

// GetAboutPage returns the about page with its full category tree.
func (a *API) GetAboutPage(c *gin.Context) {
	page, err := a.about.Get()
	if err != nil {
		a.failure(c, err, "Failed to fetch about page")
		return
	}
	response.OK(c, page)
}

// GetAboutCategory returns one category of the about page by slug.
func (a *API) GetAboutCategory(c *gin.Context) {
	category, err := a.about.GetCategory(c.Param("slug"))
	if err != nil {
		a.failure(c, err, "Failed to fetch about category")
		return
	}
	response.OK(c, category)
}

// SaveAboutPage creates the about page on first call and updates it
// afterwards. Providing categories replaces the stored tree.
func (a *API) SaveAboutPage(c *gin.Context) {
	var input service.AboutInput
	if !bindJSON(c, &input) {
		return
	}

	page, err := a.about.Save(input)
	if err != nil {
		a.failure(c, err, "Failed to save about page")
		return
	}
	response.OK(c, page)
}
