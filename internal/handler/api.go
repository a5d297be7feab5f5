package handler

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/config"
	"github.com/victoriaclean/backend/internal/service"
	"github.com/victoriaclean/backend/internal/storage"
	"github.com/victoriaclean/backend/internal/upload"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	cfg      config.AppConfig
	db       *gorm.DB
	backend  storage.Backend
	resolver *storage.Resolver

	admins       *service.AdminService
	blogs        *service.BlogService
	catalog      *service.CatalogService
	team         *service.TeamService
	founders     *service.FounderService
	testimonials *service.TestimonialService
	galleries    *service.GalleryService
	features     *service.FeatureService
	companies    *service.CompanyService
	contacts     *service.ContactService
	contactInfo  *service.ContactInfoService
	about        *service.AboutService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(cfg config.AppConfig, gdb *gorm.DB, backend storage.Backend, resolver *storage.Resolver) *API {
	tokens := service.TokenConfig{
		Secret:        cfg.JWTSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		AccessTTL:     time.Duration(cfg.JWTAccessTTLSecs) * time.Second,
		RefreshTTL:    time.Duration(cfg.JWTRefreshTTLSecs) * time.Second,
	}

	return &API{
		cfg:      cfg,
		db:       gdb,
		backend:  backend,
		resolver: resolver,

		admins:       service.NewAdminService(gdb, tokens),
		blogs:        service.NewBlogService(gdb),
		catalog:      service.NewCatalogService(gdb),
		team:         service.NewTeamService(gdb),
		founders:     service.NewFounderService(gdb),
		testimonials: service.NewTestimonialService(gdb),
		galleries:    service.NewGalleryService(gdb),
		features:     service.NewFeatureService(gdb),
		companies:    service.NewCompanyService(gdb),
		contacts:     service.NewContactService(gdb),
		contactInfo:  service.NewContactInfoService(gdb),
		about:        service.NewAboutService(gdb),
	}
}

// Backend exposes the storage backend for route wiring.
func (a *API) Backend() storage.Backend {
	return a.backend
}

// fileURL resolves a staged file to the public URL stored on domain records.
func (a *API) fileURL(c *gin.Context, f *upload.StagedFile) string {
	return a.resolver.Resolve(c.Request, f.Locator)
}

// removeStoredAsset best-effort deletes the object a stored URL points at.
// Failures are logged, never surfaced: a dangling object is a cleanup task,
// not a request failure.
func (a *API) removeStoredAsset(c *gin.Context, url string) {
	if url == "" {
		return
	}
	locator, ok := a.resolver.Extract(url)
	if !ok {
		log.Printf("asset: cannot extract locator from %q", url)
		return
	}
	if err := a.backend.Delete(c.Request.Context(), locator); err != nil {
		log.Printf("asset: delete %s: %v", locator, err)
	}
}
