package main

import (
	"context"
	"os"
	"strconv"
	"time"

	dbadapter "codepulse/internal/adapters/database"
	"codepulse/internal/adapters/httpapi"
	redisadapter "codepulse/internal/adapters/redis"
	"codepulse/internal/adapters/storage"
	"codepulse/internal/config"
	"codepulse/internal/core/auth"
	"codepulse/internal/core/blogpost"
	blogpostapp "codepulse/internal/core/blogpost/service"
	"codepulse/internal/core/category"
	categoryapp "codepulse/internal/core/category/service"
	"codepulse/internal/core/image"
	imageapp "codepulse/internal/core/image/service"
	"codepulse/internal/core/user"
	userapp "codepulse/internal/core/user/service"
	"codepulse/internal/workers"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&category.Category{},
		&blogpost.BlogPost{},
		&image.BlogImage{},
		&user.User{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	issuer, err := auth.NewTokenIssuer(auth.Config{
		Key:      []byte(os.Getenv("JWT_SECRET")),
		Issuer:   os.Getenv("JWT_ISSUER"),
		Audience: os.Getenv("JWT_AUDIENCE"),
	})
	if err != nil {
		config.Logger.Fatal("Invalid token issuer configuration:", zap.Error(err))
	}

	imageDir := os.Getenv("IMAGE_DIR")
	if imageDir == "" {
		imageDir = "images"
	}
	imageStore, err := storage.NewLocalImageStore(imageDir, "/images")
	if err != nil {
		config.Logger.Fatal("Could not prepare image storage:", zap.Error(err))
	}

	categoryRepo := dbadapter.NewCategoryRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewBlogPostRepositoryDatabase(config.DB)
	imageRepo := dbadapter.NewImageRepositoryDatabase(config.DB)
	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	feedCache := redisadapter.NewFeedCacheRedis(config.RedisClient)

	categorySvc := categoryapp.NewCategoryService(categoryRepo)
	postSvc := blogpostapp.NewBlogPostService(postRepo, categoryRepo, feedCache, config.Logger)
	imageSvc := imageapp.NewImageService(imageRepo, imageStore)
	userSvc := userapp.NewUserService(userRepo, issuer, config.Logger)

	r := httpapi.SetupRoutes(userSvc, categorySvc, postSvc, imageSvc, issuer, imageDir)

	refreshSeconds, err := strconv.Atoi(os.Getenv("FEED_REFRESH_SECONDS"))
	if err != nil || refreshSeconds <= 0 {
		refreshSeconds = 60
	}
	warmer := workers.NewFeedWarmer(postRepo, feedCache, time.Duration(refreshSeconds)*time.Second, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go warmer.Run(ctx)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources shuts down the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
