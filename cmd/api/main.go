package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/acmchapter/portal-api/internal/handler/http"
	redisclient "github.com/acmchapter/portal-api/internal/infrastructure/cache"
	"github.com/acmchapter/portal-api/internal/infrastructure/config"
	"github.com/acmchapter/portal-api/internal/infrastructure/database"
	"github.com/acmchapter/portal-api/internal/infrastructure/logger"
	"github.com/acmchapter/portal-api/internal/infrastructure/repository/mongodb"
	"github.com/acmchapter/portal-api/internal/infrastructure/store"
	"github.com/acmchapter/portal-api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.GetMongoURI() == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.GetMongoURI())
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	blogRepo := mongodb.NewBlogRepository(mongoClient.Client.Database(appConfig.GetMongoDBName()))

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()

	// Dependency Injection: Usecases
	upvoteUsecase := usecase.NewUpvoteUsecase(blogRepo, appLogger)
	upvoteUsecase.SetRecentUpvoteWindow(appConfig.GetRecentUpvoteWindowSeconds())
	upvoteUsecase.SetRecentUpvoteFlagThreshold(appConfig.GetRecentUpvoteFlagThreshold())

	// Optional Dependency Injection: Redis cache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		upvoteUsecase.SetUpvoteCache(store.NewUpvoteCacheStore(rdb))
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(upvoteUsecase, mongoClient, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := appConfig.GetPort()
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
