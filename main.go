package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nextprime-backend/config"
	"nextprime-backend/controllers"
	"nextprime-backend/routes"
	"nextprime-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	provider, err := services.NewCloudinaryProvider()
	if err != nil {
		log.Fatalf("❌ Cloudinary init failed: %v", err)
	}
	log.Println("✅ Cloudinary client ready.")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	// Services
	mediaService := services.NewMediaService(provider, uploadsDir, baseURL)
	propertyService := services.NewPropertyService(db, mediaService)
	authService := services.NewAuthService(db)
	siteService := services.NewSiteService(db)

	// Controllers
	ctl := routes.Controllers{
		Auth:         controllers.NewAuthController(authService),
		Public:       controllers.NewPublicController(siteService, propertyService),
		Properties:   controllers.NewPropertyController(propertyService, mediaService),
		Uploads:      controllers.NewUploadController(mediaService),
		Testimonials: controllers.NewTestimonialController(db),
		Areas:        controllers.NewAreaController(db),
		Locations:    controllers.NewLocationController(db),
		Contact:      controllers.NewContactController(db),
		Social:       controllers.NewSocialController(db),
		Featured:     controllers.NewFeaturedController(db),
		Leads:        controllers.NewLeadController(db),
	}

	router := routes.SetupRouter(db, authService, ctl, uploadsDir)
	router.MaxMultipartMemory = 64 << 20 // images + PDFs

	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
