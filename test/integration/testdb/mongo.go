//go:build integration

package testdb

import (
	"context"
	"testing"
	"time"

	"humanness-tasks/internal/database"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoContainer wraps a MongoDB testcontainer.
type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
	DB        *database.MongoDB
	Database  *mongo.Database
}

// SetupMongoDB starts a MongoDB testcontainer for integration tests. The
// container is terminated when the test finishes.
func SetupMongoDB(t *testing.T, dbName string) *MongoContainer {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("Failed to start MongoDB container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	db, err := database.Connect(ctx, uri, dbName)
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	t.Cleanup(db.Close)

	return &MongoContainer{
		Container: container,
		URI:       uri,
		DB:        db,
		Database:  db.Database,
	}
}

// CleanupCollections drops all collections in the database.
func (mc *MongoContainer) CleanupCollections(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	names, err := mc.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		t.Fatalf("Failed to list collections: %v", err)
	}
	for _, name := range names {
		if err := mc.Database.Collection(name).Drop(ctx); err != nil {
			t.Fatalf("Failed to drop collection %s: %v", name, err)
		}
	}
}
