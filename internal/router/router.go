package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/config"
	"github.com/victoriaclean/backend/internal/handler"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/upload"
)

// Setup configures the Gin engine and the /api/v1 route tree.
func Setup(cfg config.AppConfig, api *handler.API) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded files are only served from this process when stored on the
	// local disk; a remote object store serves its own URLs.
	if cfg.StorageDriver == config.StorageDriverLocal {
		r.Static(cfg.UploadURLPath, cfg.UploadDir)
	}

	r.GET("/", func(c *gin.Context) {
		response.Message(c, "Victoria Cleaning API is running")
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	backend := api.Backend()
	maxBytes := cfg.MaxUploadBytes
	auth := api.AuthRequired()

	v1 := r.Group("/api/v1")
	{
		admin := v1.Group("/admin")
		{
			admin.POST("/signup", api.Signup)
			admin.POST("/login", api.Login)
			admin.POST("/logout", api.Logout)
			admin.GET("/profile", auth, api.Profile)
			admin.PUT("/password", auth, api.ChangePassword)
		}

		blogs := v1.Group("/blogs")
		{
			blogs.GET("", api.ListBlogs)
			blogs.GET("/:slug", api.GetBlogBySlug)
			blogs.POST("", auth,
				upload.Fields(backend, maxBytes,
					upload.Field{Name: "imageUrl", MaxCount: 1},
					upload.Field{Name: "authorImageUrl", MaxCount: 1}),
				api.CreateBlog)
			blogs.PUT("/:id", auth,
				upload.Fields(backend, maxBytes,
					upload.Field{Name: "imageUrl", MaxCount: 1},
					upload.Field{Name: "authorImageUrl", MaxCount: 1}),
				api.UpdateBlog)
			blogs.DELETE("/:id", auth, api.DeleteBlog)
		}

		services := v1.Group("/services")
		{
			services.GET("", api.ListServices)
			services.GET("/id/:id", api.GetServiceByID)
			services.GET("/:slug", api.GetServiceBySlug)
			services.POST("", auth, upload.Single(backend, maxBytes, "image"), api.CreateService)
			services.PUT("/:id", auth, upload.Single(backend, maxBytes, "image"), api.UpdateService)
			services.PATCH("/:id/featured", auth, api.ToggleFeaturedService)
			services.DELETE("/:id", auth, api.DeleteService)
		}

		subServices := v1.Group("/subservices")
		{
			subServices.GET("", api.ListSubServices)
			subServices.GET("/parent/:parentId", api.ListSubServicesByParent)
			subServices.GET("/parent/slug/:slug", api.ListSubServicesByParentSlug)
			subServices.GET("/:id", api.GetSubService)
			subServices.POST("", auth, upload.Single(backend, maxBytes, "image"), api.CreateSubService)
			subServices.PUT("/:id", auth, upload.Single(backend, maxBytes, "image"), api.UpdateSubService)
			subServices.DELETE("/:id", auth, api.DeleteSubService)
		}

		team := v1.Group("/team")
		{
			team.GET("", api.ListTeamMembers)
			team.GET("/:id", api.GetTeamMember)
			team.POST("", auth, upload.Single(backend, maxBytes, "imageUrl"), api.CreateTeamMember)
			team.PUT("/:id", auth, upload.Single(backend, maxBytes, "imageUrl"), api.UpdateTeamMember)
			team.DELETE("/:id", auth, api.DeleteTeamMember)
		}

		founders := v1.Group("/founders")
		{
			founders.GET("", api.ListFounders)
			founders.GET("/count", api.CountFounders)
			founders.GET("/position/:position", api.ListFoundersByPosition)
			founders.GET("/search/:query", api.SearchFounders)
			founders.GET("/:id", api.GetFounder)
			founders.POST("", auth, upload.Single(backend, maxBytes, "imageUrl"), api.CreateFounder)
			founders.PUT("/:id", auth, upload.Single(backend, maxBytes, "imageUrl"), api.UpdateFounder)
			founders.DELETE("/:id", auth, api.DeleteFounder)
		}

		testimonials := v1.Group("/testimonials")
		{
			testimonials.GET("", api.ListTestimonials)
			testimonials.GET("/:id", api.GetTestimonial)
			testimonials.POST("", auth, upload.Single(backend, maxBytes, "imageUrl"), api.CreateTestimonial)
			testimonials.PUT("/:id", auth, upload.Single(backend, maxBytes, "imageUrl"), api.UpdateTestimonial)
			testimonials.DELETE("/:id", auth, api.DeleteTestimonial)
		}

		gallery := v1.Group("/gallery")
		{
			gallery.GET("", api.ListGalleryItems)
			gallery.GET("/:id", api.GetGalleryItem)
			gallery.POST("", auth, upload.Single(backend, maxBytes, "imageUrl"), api.CreateGalleryItem)
			gallery.PUT("/:id", auth, upload.Single(backend, maxBytes, "imageUrl"), api.UpdateGalleryItem)
			gallery.DELETE("/:id", auth, api.DeleteGalleryItem)
		}

		features := v1.Group("/features")
		{
			features.GET("", api.ListFeatures)
			features.GET("/:id", api.GetFeature)
			features.POST("", auth, upload.Single(backend, maxBytes, "image"), api.CreateFeature)
			features.PUT("/:id", auth, upload.Single(backend, maxBytes, "image"), api.UpdateFeature)
			features.DELETE("/:id", auth, api.DeleteFeature)
		}

		company := v1.Group("/company")
		{
			company.GET("", api.GetCompany)
			company.POST("", auth, upload.Single(backend, maxBytes, "image"), api.CreateCompany)
			company.PUT("", auth, upload.Single(backend, maxBytes, "image"), api.UpdateCompany)
			company.DELETE("", auth, api.DeleteCompany)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.POST("", api.SubmitContact)
			contacts.GET("", auth, api.ListContacts)
			contacts.GET("/:id", auth, api.GetContact)
			contacts.PATCH("/:id/status", auth, api.UpdateContactStatus)
			contacts.DELETE("/:id", auth, api.DeleteContact)
		}

		contactInfo := v1.Group("/contact-info")
		{
			contactInfo.GET("", api.GetContactInfo)
			contactInfo.POST("", auth, api.SaveContactInfo)
			contactInfo.DELETE("/:id", auth, api.DeleteContactInfo)
		}

		about := v1.Group("/about")
		{
			about.GET("", api.GetAboutPage)
			about.GET("/:slug", api.GetAboutCategory)
			about.POST("", auth, api.SaveAboutPage)
		}
	}

	return r
}
