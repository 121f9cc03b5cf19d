package main

import (
	"context"
	"log"
	"time"

	"humanness-tasks/internal/config"
	"humanness-tasks/internal/database"
	"humanness-tasks/internal/repository"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required to create indexes")
	}

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := repository.EnsureTaskRecordIndexes(ctx, mongoDB.Database)
	if err != nil {
		log.Fatalf("Failed to create indexes on %s: %v", repository.SubmittedTasksCollection, err)
	}
	for _, name := range names {
		log.Printf("Created index %s on %s", name, repository.SubmittedTasksCollection)
	}

	log.Println("Migration completed successfully!")
}
