package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"humanness-tasks/internal/catalog"
	"humanness-tasks/internal/config"
	"humanness-tasks/internal/database"
	"humanness-tasks/internal/models"
	"humanness-tasks/internal/repository"
	"humanness-tasks/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// bytesPerSecond approximates a 128 kbps mp3.
const bytesPerSecond = 16000

// seedTask describes one sample submission.
type seedTask struct {
	productIndex int
	duration     int
	age          time.Duration
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required to seed submitted tasks")
	}

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()
	if err := s3Client.EnsureBucket(ctx); err != nil {
		log.Fatalf("Failed to ensure bucket: %v", err)
	}

	seedSubmittedTasks(ctx, mongoDB.Database, s3Client)

	log.Println("Seed completed successfully!")
}

func seedSubmittedTasks(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client) {
	// Clear existing submissions
	if _, err := db.Collection(repository.SubmittedTasksCollection).DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear submitted tasks: %v", err)
	}

	store := repository.NewTaskRecordStore(db, nil)
	products := catalog.DefaultProducts()
	now := time.Now()

	// Two sessions, oldest submission first
	sessions := []struct {
		id    string
		tasks []seedTask
	}{
		{id: uuid.NewString(), tasks: []seedTask{
			{productIndex: 0, duration: 12, age: 48 * time.Hour},
			{productIndex: 3, duration: 18, age: 47 * time.Hour},
		}},
		{id: uuid.NewString(), tasks: []seedTask{
			{productIndex: 1, duration: 15, age: 6 * time.Hour},
			{productIndex: 4, duration: 10, age: 5 * time.Hour},
			{productIndex: 2, duration: 20, age: 4 * time.Hour},
		}},
	}

	count := 0
	for _, sess := range sessions {
		sessionID := sess.id
		for _, st := range sess.tasks {
			product := products[st.productIndex%len(products)]
			submittedAt := now.Add(-st.age)

			task := &models.SubmittedTask{
				SessionID:       sessionID,
				TaskType:        models.TaskTypeTextReading,
				Content:         product.Description,
				AudioReference:  fmt.Sprintf("audio/%s/audio_%d.mp3", sessionID, submittedAt.UnixMilli()),
				DurationSeconds: st.duration,
				Timestamp:       submittedAt.Local().Format(models.TimestampLayout),
				ProductID:       &product.ID,
				ProductTitle:    &product.Title,
			}

			uploadPlaceholderAudio(ctx, s3Client, task.AudioReference, int64(st.duration)*bytesPerSecond)

			if err := store.Append(ctx, task); err != nil {
				log.Fatalf("Failed to seed submitted task: %v", err)
			}
			count++
		}
	}

	log.Printf("Seeded %d submitted tasks", count)
}

// uploadPlaceholderAudio uploads a placeholder audio file to S3.
func uploadPlaceholderAudio(ctx context.Context, s3Client *storage.S3Client, key string, size int64) {
	// Create placeholder content (simulated audio data)
	placeholder := bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, int(size/4)+1)
	placeholder = placeholder[:size]

	err := s3Client.PutObject(ctx, key, bytes.NewReader(placeholder), storage.AudioContentType)
	if err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder audio: %s", key)
}
