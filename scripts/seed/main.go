// Seed fills an empty database with demo content for local frontend work.
// Run it from the repo root: go run ./scripts/seed
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gosimple/slug"
	"github.com/victoriaclean/backend/internal/config"
	"github.com/victoriaclean/backend/internal/db"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureAdmin(gdb, "admin@victoriaclean.com.au", "admin123"); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	seedServices(gdb)
	seedBlogs(gdb)
	seedTeam(gdb)
	seedTestimonials(gdb)
	seedFeatures(gdb)
	seedCompany(gdb)
	seedContactInfo(gdb)
	seedAbout(gdb)

	fmt.Println("seed complete")
	fmt.Println("admin: admin@victoriaclean.com.au / admin123")
}

func skipIfPresent(gdb *gorm.DB, model any, what string) bool {
	var count int64
	gdb.Model(model).Count(&count)
	if count > 0 {
		fmt.Printf("%s already present, skipping\n", what)
		return true
	}
	return false
}

func seedServices(gdb *gorm.DB) {
	if skipIfPresent(gdb, &db.Service{}, "services") {
		return
	}

	services := []db.Service{
		{
			Title:       "End of Lease Cleaning",
			Description: "Bond-back guaranteed deep clean covering every room, window and fitting.",
			ImageURL:    "/uploads/seed-end-of-lease.jpg",
			Category:    db.ServiceCategoryResidential,
			IsFeatured:  true,
		},
		{
			Title:       "Office Cleaning",
			Description: "Scheduled after-hours cleaning for offices of any size.",
			ImageURL:    "/uploads/seed-office.jpg",
			Category:    db.ServiceCategoryCommercial,
			IsFeatured:  true,
		},
		{
			Title:       "Carpet Steam Cleaning",
			Description: "Hot water extraction for carpets, rugs and upholstery.",
			ImageURL:    "/uploads/seed-carpet.jpg",
			Category:    db.ServiceCategoryBoth,
		},
	}
	for i := range services {
		services[i].Slug = fmt.Sprintf("%s-%d", slug.Make(services[i].Title), time.Now().UnixMilli()+int64(i))
		if err := gdb.Create(&services[i]).Error; err != nil {
			log.Fatalf("failed to seed service: %v", err)
		}
	}

	sub := db.SubService{
		Title:       "Oven and Kitchen Detail",
		Description: "Degrease ovens, rangehoods and splashbacks.",
		ImageURL:    "/uploads/seed-oven.jpg",
		ServiceID:   services[0].ID,
	}
	if err := gdb.Create(&sub).Error; err != nil {
		log.Fatalf("failed to seed sub-service: %v", err)
	}
	gdb.Model(&services[0]).Update("has_sub_services", true)
}

func seedBlogs(gdb *gorm.DB) {
	if skipIfPresent(gdb, &db.Blog{}, "blogs") {
		return
	}

	blogs := []db.Blog{
		{
			Title:       "Five Habits of a Spotless Home",
			Description: "Small daily routines keep deep cleans quick and cheap.\n\n## Start with surfaces\nWipe benches after every meal...",
			ImageURL:    "/uploads/seed-blog-habits.jpg",
			Author:      "Victoria Team",
			PostedAt:    time.Now().AddDate(0, 0, -14),
		},
		{
			Title:       "What Bond Cleaners Actually Check",
			Description: "Property managers work from a checklist. Here is ours.",
			ImageURL:    "/uploads/seed-blog-bond.jpg",
			Author:      "Victoria Team",
			PostedAt:    time.Now().AddDate(0, 0, -3),
		},
	}
	for i := range blogs {
		blogs[i].Slug = slug.Make(blogs[i].Title)
		if err := gdb.Create(&blogs[i]).Error; err != nil {
			log.Fatalf("failed to seed blog: %v", err)
		}
	}
}

func seedTeam(gdb *gorm.DB) {
	if skipIfPresent(gdb, &db.TeamMember{}, "team members") {
		return
	}

	members := []db.TeamMember{
		{Name: "Sofia Marin", Role: "Operations Lead", ImageURL: "/uploads/seed-team-sofia.jpg"},
		{Name: "Liam O'Connor", Role: "Senior Cleaner", ImageURL: "/uploads/seed-team-liam.jpg"},
	}
	if err := gdb.Create(&members).Error; err != nil {
		log.Fatalf("failed to seed team: %v", err)
	}
}

func seedTestimonials(gdb *gorm.DB) {
	if skipIfPresent(gdb, &db.Testimonial{}, "testimonials") {
		return
	}

	reviews := []db.Testimonial{
		{Name: "Priya N.", Stars: 5, Description: "Got my full bond back, the agent was impressed.", ImageURL: "/uploads/seed-review-priya.jpg"},
		{Name: "Mark T.", Stars: 4, Description: "Reliable weekly office clean for two years now.", ImageURL: "/uploads/seed-review-mark.jpg"},
	}
	if err := gdb.Create(&reviews).Error; err != nil {
		log.Fatalf("failed to seed testimonials: %v", err)
	}
}

func seedFeatures(gdb *gorm.DB) {
	if skipIfPresent(gdb, &db.Feature{}, "features") {
		return
	}

	features := []db.Feature{
		{Title: "Police Checked", Subtitle: "Every cleaner is vetted and insured", Image: "/uploads/seed-feature-check.png"},
		{Title: "Bond Back Guarantee", Subtitle: "Free re-clean if your agent is not satisfied", Image: "/uploads/seed-feature-bond.png"},
	}
	if err := gdb.Create(&features).Error; err != nil {
		log.Fatalf("failed to seed features: %v", err)
	}
}

func seedCompany(gdb *gorm.DB) {
	if skipIfPresent(gdb, &db.Company{}, "company profile") {
		return
	}
	company := db.Company{Title: "Victoria Cleaning Services", ImageURL: "/uploads/seed-logo.png"}
	if err := gdb.Create(&company).Error; err != nil {
		log.Fatalf("failed to seed company: %v", err)
	}
}

func seedContactInfo(gdb *gorm.DB) {
	if skipIfPresent(gdb, &db.ContactInfo{}, "contact info") {
		return
	}
	info := db.ContactInfo{
		Address:        "12 Collins Street, Melbourne VIC 3000",
		Phones:         []string{"+61 3 9000 0000", "+61 400 000 000"},
		Email:          "hello@victoriaclean.com.au",
		WhatsappNumber: "+61400000000",
		SocialLinks: db.SocialLinks{
			Facebook:  "https://facebook.com/victoriaclean",
			Instagram: "https://instagram.com/victoriaclean",
		},
	}
	if err := gdb.Create(&info).Error; err != nil {
		log.Fatalf("failed to seed contact info: %v", err)
	}
}

func seedAbout(gdb *gorm.DB) {
	if skipIfPresent(gdb, &db.AboutPage{}, "about page") {
		return
	}
	page := db.AboutPage{
		PageTitle: "About Us",
		Categories: []db.AboutCategory{
			{
				Name:        "Our Story",
				Slug:        "our-story",
				Description: "From a single van to a Melbourne-wide team.",
				Sections: []db.AboutSection{
					{Title: "How we started", Description: "Founded in 2015 with two cleaners and one van."},
					{Title: "Where we are now", Description: "Over forty staff serving homes and offices across Victoria."},
				},
			},
		},
	}
	if err := gdb.Create(&page).Error; err != nil {
		log.Fatalf("failed to seed about page: %v", err)
	}
}
