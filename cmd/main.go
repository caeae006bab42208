package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"aquabalance/database"
	"aquabalance/internal/bot"
	"aquabalance/internal/cache"
	"aquabalance/internal/controllers"
	"aquabalance/internal/middleware"
	"aquabalance/internal/nutrition"
	"aquabalance/internal/repository"
	"aquabalance/internal/services"
	"aquabalance/internal/translate"
	"aquabalance/internal/weather"
	"aquabalance/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	for _, name := range []string{
		"TELEGRAM_BOT_TOKEN",
		"OPEN_WEATHER_API_KEY",
		"NUTRITIONIX_APP_ID",
		"NUTRITIONIX_APP_KEY",
	} {
		if os.Getenv(name) == "" {
			log.Fatalf("Environment variable %s is not set", name)
		}
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is optional: without it every temperature request goes straight
	// to OpenWeather.
	var redisCache *cache.RedisClient
	redisCache, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, temperature caching disabled: %v", err)
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(database.DB)
	dayRepo := repository.NewDailyRecordRepository(database.DB)

	// Initialize lookup clients
	weatherClient := weather.NewClient(redisCache)
	nutritionClient := nutrition.NewClient()
	translateClient := translate.NewClient()

	// Initialize services
	tracker := services.NewTracker(profileRepo, dayRepo, weatherClient, nutritionClient, translateClient)
	profileSession := services.NewProfileSession(profileRepo, weatherClient, tracker)

	// Start the telegram bot
	tgBot, err := bot.New(os.Getenv("TELEGRAM_BOT_TOKEN"), profileSession, tracker)
	if err != nil {
		log.Fatalf("Failed to create telegram bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := tgBot.Start(ctx); err != nil {
			log.Printf("Telegram bot stopped: %v", err)
		}
	}()

	// Initialize controllers
	profileController := controllers.NewProfileController(profileRepo, tracker)
	trackerController := controllers.NewTrackerController(tracker)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "AquaBalance API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterProfileRoutes(router, profileController)
	routes.RegisterTrackerRoutes(router, trackerController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
