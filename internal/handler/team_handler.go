package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
	"github.com/victoriaclean/backend/internal/upload"
)

const teamImageField = "imageUrl"

// ListTeamMembers returns all team members.
func (a *API) ListTeamMembers(c *gin.Context) {
	members, err := a.team.List()
	if err != nil {
		a.failure(c, err, "Failed to fetch team members")
		return
	}
	response.OK(c, members)
}

// GetTeamMember returns one team member by id.
func (a *API) GetTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid team member id")
		return
	}

	member, err := a.team.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch team member")
		return
	}
	response.OK(c, member)
}

// CreateTeamMember creates a team member from a multipart form.
func (a *API) CreateTeamMember(c *gin.Context) {
	image := upload.First(c, teamImageField)
	if image == nil {
		response.ValidationFailed(c, map[string]string{teamImageField: "Image is required"})
		return
	}

	member, err := a.team.Create(service.TeamMemberInput{
		Name:     c.PostForm("name"),
		Role:     c.PostForm("role"),
		ImageURL: a.fileURL(c, image),
	})
	if err != nil {
		a.failure(c, err, "Failed to create team member")
		return
	}

	image.Claim()
	response.Created(c, member)
}

// UpdateTeamMember applies a partial update; a new image replaces the old one.
func (a *API) UpdateTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid team member id")
		return
	}

	existing, err := a.team.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch team member")
		return
	}

	image := upload.First(c, teamImageField)
	input := service.TeamMemberInput{
		Name: c.PostForm("name"),
		Role: c.PostForm("role"),
	}
	if image != nil {
		input.ImageURL = a.fileURL(c, image)
	}

	if input.Name == "" && input.Role == "" && image == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	member, err := a.team.Update(id, input)
	if err != nil {
		a.failure(c, err, "Failed to update team member")
		return
	}

	if image != nil {
		image.Claim()
		a.removeStoredAsset(c, existing.ImageURL)
	}
	response.OK(c, member)
}

// DeleteTeamMember removes a team member and their image.
func (a *API) DeleteTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid team member id")
		return
	}

	member, err := a.team.Delete(id)
	if err != nil {
		a.failure(c, err, "Failed to delete team member")
		return
	}

	a.removeStoredAsset(c, member.ImageURL)
	response.Message(c, "Team member and associated file deleted successfully")
}
