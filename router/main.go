package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vaibhavkumar/portfolio-api/database"
	"github.com/vaibhavkumar/portfolio-api/handlers"
	auth_handlers "github.com/vaibhavkumar/portfolio-api/handlers/auth"
	blog_handlers "github.com/vaibhavkumar/portfolio-api/handlers/blog"
	contact_handlers "github.com/vaibhavkumar/portfolio-api/handlers/contact"
	project_handlers "github.com/vaibhavkumar/portfolio-api/handlers/project"
	site_handlers "github.com/vaibhavkumar/portfolio-api/handlers/site"
	"github.com/vaibhavkumar/portfolio-api/services/notify"
	"github.com/vaibhavkumar/portfolio-api/utils/auth"
	"github.com/vaibhavkumar/portfolio-api/utils/cache"
	"github.com/vaibhavkumar/portfolio-api/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get admin secret from environment. An unset secret means deny-all, so
	// refuse to start without one.
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD environment variable is not set")
	}

	// Token manager for the credential returned by /api/login
	tokenManager := auth.NewTokenManager(auth.TokenConfig{
		Secret: adminPassword,
		Expiry: 24 * time.Hour,
		Issuer: "portfolio-api",
	})

	// Initialize Redis for login lockout (optional)
	var bruteForceProtection *middleware.BruteForceProtection
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisCache, err := cache.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Login lockout will be disabled.", err)
		} else {
			bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
		}
	}

	adminGate := middleware.NewAdminGate(adminPassword)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,              // 100 requests
		RateLimitWindow:   10 * time.Minute, // per 10 minutes
	})

	// Contact notifications are a no-op when no webhook URL is configured
	notifier := notify.NewDispatcher(os.Getenv("DISCORD_WEBHOOK_URL"))

	// Initialize handlers
	siteHandler := site_handlers.NewSiteHandler(store)
	projectHandler := project_handlers.NewProjectHandler(store)
	blogHandler := blog_handlers.NewBlogHandler(store)
	contactHandler := contact_handlers.NewContactHandler(store, notifier)
	authHandler := auth_handlers.NewAuthHandler(adminPassword, tokenManager, bruteForceProtection)

	// Health check endpoint (public)
	app.Get("/ping", handlers.CheckHealth(store))

	api := app.Group("/api")

	// Public site payload
	api.Get("/data", siteHandler.GetData)

	// Settings (admin only)
	api.Put("/settings", adminGate.Required(), siteHandler.UpdateSettings)

	// Projects (admin only)
	api.Post("/projects", adminGate.Required(), projectHandler.CreateProject)
	api.Put("/projects/:id", adminGate.Required(), projectHandler.UpdateProject)
	api.Delete("/projects/:id", adminGate.Required(), projectHandler.DeleteProject)

	// Blogs
	api.Get("/blogs", blogHandler.ListBlogs)
	api.Post("/blogs", adminGate.Required(), blogHandler.CreateBlog)
	api.Delete("/blogs/:id", adminGate.Required(), blogHandler.DeleteBlog)

	// Contact form (public create, admin inbox)
	api.Post("/contact", contactHandler.CreateContact)
	api.Get("/contact", adminGate.Required(), contactHandler.ListContacts)

	// Login with brute force protection
	if bruteForceProtection != nil {
		api.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		api.Post("/login", authHandler.Login)
	}
}
