package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nextprime-backend/controllers"
	"nextprime-backend/middleware"
	"nextprime-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter needs to wire the API.
type Controllers struct {
	Auth         *controllers.AuthController
	Public       *controllers.PublicController
	Properties   *controllers.PropertyController
	Uploads      *controllers.UploadController
	Testimonials *controllers.TestimonialController
	Areas        *controllers.AreaController
	Locations    *controllers.LocationController
	Contact      *controllers.ContactController
	Social       *controllers.SocialController
	Featured     *controllers.FeaturedController
	Leads        *controllers.LeadController
}

func SetupRouter(db *gorm.DB, authService *services.AuthService, ctl Controllers, uploadsDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Static("/uploads", uploadsDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error"
		}
		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "database": dbStatus})
	})

	api := r.Group("/api")
	{
		api.GET("/site-data", ctl.Public.SiteData)
		api.GET("/properties", ctl.Public.ListProperties)
		api.GET("/properties/:id", ctl.Public.GetProperty)
		api.GET("/featured-properties", ctl.Public.FeaturedProperties)
		api.POST("/download-leads", ctl.Leads.Create)

		admin := api.Group("/admin")
		admin.POST("/login", ctl.Auth.Login)

		authed := admin.Group("")
		authed.Use(middleware.AuthAdmin(authService))
		{
			authed.POST("/upload/image", ctl.Uploads.UploadImage)

			authed.GET("/properties", ctl.Properties.List)
			authed.GET("/properties/:id", ctl.Properties.GetOne)
			authed.POST("/properties", ctl.Properties.Create)
			authed.PUT("/properties/:id", ctl.Properties.Update)
			authed.DELETE("/properties/:id", ctl.Properties.Delete)

			authed.GET("/testimonials", ctl.Testimonials.List)
			authed.GET("/testimonials/:id", ctl.Testimonials.GetOne)
			authed.POST("/testimonials", ctl.Testimonials.Create)
			authed.PUT("/testimonials/:id", ctl.Testimonials.Update)
			authed.DELETE("/testimonials/:id", ctl.Testimonials.Delete)

			authed.GET("/areas", ctl.Areas.List)
			authed.POST("/areas", ctl.Areas.Create)
			authed.PUT("/areas/:id", ctl.Areas.Update)
			authed.DELETE("/areas/:id", ctl.Areas.Delete)

			authed.GET("/locations-list", ctl.Locations.List)
			authed.POST("/locations-list", ctl.Locations.Add)
			authed.DELETE("/locations-list/:name", ctl.Locations.Delete)

			authed.GET("/contact", ctl.Contact.Get)
			authed.PUT("/contact", ctl.Contact.Update)

			authed.GET("/social", ctl.Social.List)
			authed.PUT("/social", ctl.Social.Update)
			authed.DELETE("/social/:name", ctl.Social.Delete)

			authed.GET("/featured", ctl.Featured.List)
			authed.PUT("/featured", ctl.Featured.Set)

			authed.GET("/download-leads", ctl.Leads.List)
			authed.PATCH("/download-leads/:id", ctl.Leads.Update)
			authed.DELETE("/download-leads/:id", ctl.Leads.Delete)
		}
	}

	return r
}
