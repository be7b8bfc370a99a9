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

	"hotel-pos-backend/config"
	"hotel-pos-backend/controllers"
	"hotel-pos-backend/routes"
	"hotel-pos-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set. Cannot resolve partner identities.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied.")

	// Initialize services
	summaryService := services.NewSummaryService(db)
	buildingService := services.NewBuildingService(db, summaryService)
	roomService := services.NewRoomService(db, summaryService)
	tagService := services.NewTagService(db, summaryService)
	profileService := services.NewHotelProfileService(db, summaryService)
	searchService := services.NewSearchService(db, summaryService)

	// Initialize controllers
	summaryController := controllers.NewSummaryController(summaryService)
	buildingController := controllers.NewBuildingController(buildingService)
	roomController := controllers.NewRoomController(roomService)
	tagController := controllers.NewTagController(tagService)
	profileController := controllers.NewHotelProfileController(profileService)
	searchController := controllers.NewSearchController(searchService)
	comprehensiveController := controllers.NewComprehensiveController(
		summaryService, buildingService, roomService, tagService, profileService,
	)

	router := routes.SetupRouter(
		summaryController,
		buildingController,
		roomController,
		tagController,
		profileController,
		searchController,
		comprehensiveController,
		jwtSecret,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
