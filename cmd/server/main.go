package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"humanness-tasks/internal/archive"
	"humanness-tasks/internal/cache"
	"humanness-tasks/internal/catalog"
	"humanness-tasks/internal/config"
	"humanness-tasks/internal/database"
	"humanness-tasks/internal/handler"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/queue"
	"humanness-tasks/internal/repository"
	"humanness-tasks/internal/router"
	"humanness-tasks/internal/service"
	"humanness-tasks/internal/session"
	"humanness-tasks/internal/storage"
	"humanness-tasks/internal/validator"
	"humanness-tasks/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// @title           Humanness Sample Tasks API
// @version         1.0
// @description     Onboarding flow for sample tasks: noise check, text reading with press-and-hold recording, and task submission.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	clock := clockwork.NewRealClock()

	// Task record store
	var records repository.TaskRecordStore
	if cfg.MongoURI != "" {
		mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
		defer mongoDB.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := repository.EnsureTaskRecordIndexes(ctx, mongoDB.Database); err != nil {
			log.Printf("Failed to create submitted task indexes: %v", err)
		}
		cancel()

		records = repository.NewTaskRecordStore(mongoDB.Database, clock)
	} else {
		log.Println("MONGO_URI not set, keeping submitted tasks in memory")
		records = repository.NewMemoryTaskRecordStore(clock)
	}

	// Cache for sessions and the catalog
	var appCache cache.Cache
	if cfg.RedisURI != "" {
		redisCache := cache.NewRedis(cfg.RedisURI)
		defer redisCache.Close()
		appCache = redisCache
	} else {
		log.Println("REDIS_URI not set, keeping sessions in memory")
		appCache = cache.NewMemory(clock)
	}

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	bucketCtx, bucketCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := s3Client.EnsureBucket(bucketCtx); err != nil {
		log.Printf("Failed to ensure bucket %s: %v", cfg.S3Bucket, err)
	}
	bucketCancel()

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Product catalog
	var source catalog.Client
	if cfg.CatalogFile != "" {
		source = catalog.NewFileClient(cfg.CatalogFile)
	} else {
		source = catalog.NewStaticClient(clock, cfg.CatalogLatency)
	}
	retryCfg := catalog.DefaultRetryConfig()
	retryCfg.AttemptTimeout = cfg.CatalogAttemptTimeout
	retryCfg.MaxAttempts = cfg.CatalogMaxAttempts
	catalogClient := catalog.NewCachedClient(catalog.NewRetryingClient(source, retryCfg), appCache, cfg.CatalogCacheTTL)

	// Noise sampler
	sampler := noise.NewSampler(noise.NewRandomSource(nil), clock, noise.Config{
		SampleCount:    cfg.NoiseSampleCount,
		SampleInterval: cfg.NoiseSampleInterval,
		SettleDelay:    cfg.NoiseSettleDelay,
	})

	// Archive queue and processor
	var archiveQueue queue.Queue
	var archiveProcessor *queue.Processor
	if cfg.ArchiveEnabled {
		memoryQueue := queue.NewMemoryQueue(cfg.ArchiveQueueSize)
		archiveQueue = memoryQueue
		archiveProcessor = queue.NewProcessor(memoryQueue, archive.NewService(s3Client), cfg.ArchiveWorkers)
	}

	// Service layer
	sessionService := service.NewSessionService(service.SessionServiceConfig{
		Store:         session.NewStore(appCache, cfg.SessionTTL),
		Tokens:        jwtManager,
		TokenExpiry:   cfg.JWTExpiry,
		Catalog:       catalogClient,
		Records:       records,
		Storage:       s3Client,
		Queue:         archiveQueue,
		Sampler:       sampler,
		Clock:         clock,
		PresignExpiry: cfg.PresignExpiry,
	})
	taskService := service.NewTaskService(records, s3Client, cfg.PresignExpiry)
	catalogService := service.NewCatalogService(catalogClient)

	// Router
	r := router.Setup(&router.Config{
		CatalogHandler: handler.NewCatalogHandler(catalogService),
		TaskHandler:    handler.NewTaskHandler(taskService),
		SessionHandler: handler.NewSessionHandler(sessionService),
		NoiseHandler:   handler.NewNoiseHandler(sessionService),
		TokenManager:   jwtManager,
	})

	// Cancelled on SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Workers drain queued jobs once Stop closes the queue
	if archiveProcessor != nil {
		archiveProcessor.Start(context.Background())
	}

	g.Go(func() error {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutdown signal received")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		log.Println("Shutting down HTTP server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}

		if archiveProcessor != nil {
			log.Println("Stopping archive processor...")
			archiveProcessor.Stop()
			s := archiveProcessor.Stats()
			log.Printf("Archive processor stopped: %d archived, %d retried, %d failed", s.Archived, s.Retried, s.Failed)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server shutdown complete")
}
