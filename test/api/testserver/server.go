//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"sync"
	"time"

	"humanness-tasks/internal/archive"
	"humanness-tasks/internal/catalog"
	"humanness-tasks/internal/handler"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/queue"
	"humanness-tasks/internal/repository"
	"humanness-tasks/internal/router"
	"humanness-tasks/internal/service"
	"humanness-tasks/internal/session"
	"humanness-tasks/internal/storage"
	"humanness-tasks/pkg/auth"
	"humanness-tasks/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

const (
	// TestTokenSecret is the JWT secret used in tests.
	TestTokenSecret = "test-secret-key-for-api-tests"
	// TestTokenExpiry is the session token expiry used in tests.
	TestTokenExpiry = time.Hour
	// TestSessionTTL is how long idle sessions live in Redis during tests.
	TestSessionTTL = time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestNoiseSamples is the number of readings per noise test.
	TestNoiseSamples = 3
	// TestArchiveWorkers is the number of archive workers.
	TestArchiveWorkers = 2
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Clock drives recording timers and token issue times.
	Clock clockwork.FakeClock

	// Stores (for direct access in tests)
	Records  repository.TaskRecordStore
	Sessions session.Store
	Storage  *storage.S3Client

	// Services (for direct service access in tests)
	SessionService *service.SessionService
	TaskService    *service.TaskService

	// Auth
	JWTManager *auth.JWTManager

	// Queue
	ArchiveQueue     *queue.MemoryQueue
	ArchiveProcessor *queue.Processor
	archiver         archive.Archiver

	noise *scriptedSource
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local))

	// Cache (uses real Redis)
	redisCache := redisContainer.Cache

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3ClientFromClient(minioContainer.Client, minioContainer.Bucket)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestTokenSecret, TestTokenExpiry)

	// Repository layer
	if _, err := repository.EnsureTaskRecordIndexes(ctx, mongoDB.Database); err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}
	records := repository.NewTaskRecordStore(mongoDB.Database, clock)
	sessions := session.NewStore(redisCache, TestSessionTTL)

	// Catalog without simulated latency
	catalogClient := catalog.NewCachedClient(
		catalog.NewRetryingClient(catalog.NewStaticClient(clock, 0), catalog.DefaultRetryConfig()),
		redisCache,
		time.Minute,
	)

	// Noise sampler with scripted readings and no pauses
	source := &scriptedSource{}
	source.Set(30)
	sampler := noise.NewSampler(source, clock, noise.Config{SampleCount: TestNoiseSamples})

	// Archive queue and processor
	archiveQueue := queue.NewMemoryQueue(100)
	archiver := archive.NewService(s3Client)
	archiveProcessor := newArchiveProcessor(archiveQueue, archiver)

	// Service layer
	sessionService := service.NewSessionService(service.SessionServiceConfig{
		Store:         sessions,
		Tokens:        jwtManager,
		TokenExpiry:   TestTokenExpiry,
		Catalog:       catalogClient,
		Records:       records,
		Storage:       s3Client,
		Queue:         archiveQueue,
		Sampler:       sampler,
		Clock:         clock,
		Pick:          func(int) int { return 0 },
		PresignExpiry: 15 * time.Minute,
	})
	taskService := service.NewTaskService(records, s3Client, 15*time.Minute)
	catalogService := service.NewCatalogService(catalogClient)

	// Router
	r := router.Setup(&router.Config{
		CatalogHandler: handler.NewCatalogHandler(catalogService),
		TaskHandler:    handler.NewTaskHandler(taskService),
		SessionHandler: handler.NewSessionHandler(sessionService),
		NoiseHandler:   handler.NewNoiseHandler(sessionService),
		TokenManager:   jwtManager,
	})

	return &TestServer{
		Router:           r,
		MongoDB:          mongoDB,
		Redis:            redisContainer,
		MinIO:            minioContainer,
		Clock:            clock,
		Records:          records,
		Sessions:         sessions,
		Storage:          s3Client,
		SessionService:   sessionService,
		TaskService:      taskService,
		JWTManager:       jwtManager,
		ArchiveQueue:     archiveQueue,
		ArchiveProcessor: archiveProcessor,
		archiver:         archiver,
		noise:            source,
	}, nil
}

func newArchiveProcessor(q *queue.MemoryQueue, a archive.Archiver) *queue.Processor {
	p := queue.NewProcessor(q, a, TestArchiveWorkers)
	p.SetRetryDelay(10 * time.Millisecond)
	return p
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// SetNoise scripts the readings of the next noise tests. The last reading
// repeats once the script runs out.
func (ts *TestServer) SetNoise(samples ...int) {
	ts.noise.Set(samples...)
}

// StartArchiveProcessor starts the archive processor.
func (ts *TestServer) StartArchiveProcessor(ctx context.Context) {
	ts.ArchiveProcessor.Start(ctx)
}

// StopArchiveProcessor stops the archive processor and resets the queue.
// This ensures the queue can be used by subsequent tests.
func (ts *TestServer) StopArchiveProcessor() {
	ts.ArchiveProcessor.Stop()
	ts.ArchiveQueue.Reset()
	// A stopped processor cannot be restarted
	ts.ArchiveProcessor = newArchiveProcessor(ts.ArchiveQueue, ts.archiver)
}

// scriptedSource lets tests swap the noise readings between requests.
type scriptedSource struct {
	mu  sync.Mutex
	seq *noise.SequenceSource
}

func (s *scriptedSource) Set(samples ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = noise.NewSequenceSource(samples...)
}

func (s *scriptedSource) NextSample() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.NextSample()
}
