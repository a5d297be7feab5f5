package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/db"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/service"
	"github.com/victoriaclean/backend/internal/upload"
)

// Blog multipart file fields.
const (
	blogImageField       = "imageUrl"
	blogAuthorImageField = "authorImageUrl"
)

type blogDetail struct {
	db.Blog
	DescriptionHTML string `json:"descriptionHtml"`
}

// ListBlogs returns all blog posts, newest first.
func (a *API) ListBlogs(c *gin.Context) {
	posts, err := a.blogs.List()
	if err != nil {
		a.failure(c, err, "Failed to fetch blog posts")
		return
	}
	response.OK(c, posts)
}

// GetBlogBySlug returns one post with its description rendered to HTML.
func (a *API) GetBlogBySlug(c *gin.Context) {
	post, err := a.blogs.GetBySlug(c.Param("slug"))
	if err != nil {
		a.failure(c, err, "Failed to fetch blog post")
		return
	}
	response.OK(c, blogDetail{Blog: *post, DescriptionHTML: renderMarkdown(post.Description)})
}

// CreateBlog creates a post from a multipart form. The cover image is
// required; the author portrait is optional.
func (a *API) CreateBlog(c *gin.Context) {
	cover := upload.First(c, blogImageField)
	if cover == nil {
		response.ValidationFailed(c, map[string]string{blogImageField: "Blog image is required"})
		return
	}
	portrait := upload.First(c, blogAuthorImageField)

	input := service.BlogInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Author:      c.PostForm("author"),
		ImageURL:    a.fileURL(c, cover),
	}
	if portrait != nil {
		input.AuthorImageURL = a.fileURL(c, portrait)
	}

	post, err := a.blogs.Create(input)
	if err != nil {
		// staged files are released by the upload middleware
		a.failure(c, err, "Failed to create blog post")
		return
	}

	cover.Claim()
	if portrait != nil {
		portrait.Claim()
	}
	response.Created(c, post)
}

// UpdateBlog applies a partial update. New images are persisted before the
// old objects are released, so a failed update never loses the old asset.
func (a *API) UpdateBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid blog id")
		return
	}

	existing, err := a.blogs.Get(id)
	if err != nil {
		a.failure(c, err, "Failed to fetch blog post")
		return
	}

	cover := upload.First(c, blogImageField)
	portrait := upload.First(c, blogAuthorImageField)

	input := service.BlogUpdate{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Author:      c.PostForm("author"),
	}
	if cover != nil {
		input.ImageURL = a.fileURL(c, cover)
	}
	if portrait != nil {
		input.AuthorImageURL = a.fileURL(c, portrait)
	}

	if strings.TrimSpace(input.Title) == "" && strings.TrimSpace(input.Description) == "" &&
		strings.TrimSpace(input.Author) == "" && cover == nil && portrait == nil {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	post, err := a.blogs.Update(id, input)
	if err != nil {
		a.failure(c, err, "Failed to update blog post")
		return
	}

	if cover != nil {
		cover.Claim()
		a.removeStoredAsset(c, existing.ImageURL)
	}
	if portrait != nil {
		portrait.Claim()
		a.removeStoredAsset(c, existing.AuthorImageURL)
	}
	response.OK(c, post)
}

// DeleteBlog removes a post and releases its stored images.
func (a *API) DeleteBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid blog id")
		return
	}

	post, err := a.blogs.Delete(id)
	if err != nil {
		a.failure(c, err, "Failed to delete blog post")
		return
	}

	a.removeStoredAsset(c, post.ImageURL)
	a.removeStoredAsset(c, post.AuthorImageURL)
	response.Message(c, "Blog post and associated files deleted successfully")
}
