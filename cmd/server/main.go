package main

import (
	"context"
	"log"
	"strings"
	"time"

	"anoa.com/quarterdirectory/internal/bootstrap"
	"anoa.com/quarterdirectory/internal/config"
	"anoa.com/quarterdirectory/internal/handler"
	"anoa.com/quarterdirectory/internal/jobs"
	"anoa.com/quarterdirectory/internal/middleware"
	"anoa.com/quarterdirectory/internal/repository"
	"anoa.com/quarterdirectory/internal/service"
	"anoa.com/quarterdirectory/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDemoData(db); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	var settings service.SiteSettings
	if redisClient != nil {
		settings = service.NewRedisSiteSettings(redisClient, cfg.DirectoryEnabledDefault)
	} else {
		log.Println("REDIS_URL not set, pinning directory enable flag to its default")
		settings = service.NewStaticSiteSettings(cfg.DirectoryEnabledDefault)
	}

	meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	userSearch := service.NewMeiliUserSearch(meiliClient)

	directoryRepo := repository.NewDirectoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	refreshService := service.NewRefreshService(directoryRepo, settings)
	directoryService := service.NewDirectoryService(directoryRepo, userRepo, userSearch, settings)
	directoryHandler := handler.NewDirectoryHandler(directoryService)

	indexJob := jobs.NewUserIndexJob(userRepo, userSearch, cfg.UserIndexSchedule)

	scheduler := jobs.NewScheduler()
	scheduler.Register(jobs.NewCurrentPeriodJob(refreshService, cfg.CurrentPeriodSchedule))
	scheduler.Register(jobs.NewOlderPeriodsJob(refreshService, cfg.OlderPeriodsSchedule))
	scheduler.Register(indexJob)
	scheduler.Start()
	defer scheduler.Stop()

	// Prime the snapshot and the search index so a fresh deployment has
	// data before the first scheduled tick.
	go func() {
		ctx := context.Background()
		if err := refreshService.RefreshAll(ctx); err != nil {
			log.Printf("Initial directory refresh failed: %v", err)
		}
		if err := indexJob.Run(ctx); err != nil {
			log.Printf("Initial user index sync failed: %v", err)
		}
	}()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware()

	api := router.Group("/api")
	api.Use(middleware.RequestID())
	api.Use(authMiddleware.OptionalAuth())
	{
		api.GET("/directory_items", directoryHandler.GetDirectoryItems)
		api.GET("/periods", directoryHandler.GetPeriods)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
