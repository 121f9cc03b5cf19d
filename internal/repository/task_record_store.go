// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"time"

	"humanness-tasks/internal/models"

	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_task_record_store.go -package=mocks humanness-tasks/internal/repository TaskRecordStore

// SubmittedTasksCollection is the collection holding submitted tasks.
const SubmittedTasksCollection = "submitted_tasks"

// TaskRecordStore is an append-only store of submitted tasks. Records are
// returned in insertion order and are never updated or removed.
type TaskRecordStore interface {
	Append(ctx context.Context, task *models.SubmittedTask) error
	ListAll(ctx context.Context) ([]models.SubmittedTask, error)
	List(ctx context.Context, page, limit int) ([]models.SubmittedTask, int, error)
	Count(ctx context.Context) (int, error)
}

// Ensure implementations satisfy the TaskRecordStore interface
var (
	_ TaskRecordStore = (*taskRecordStore)(nil)
	_ TaskRecordStore = (*MemoryTaskRecordStore)(nil)
)

// taskRecordStore implements TaskRecordStore using MongoDB.
//
// Insertion order is (createdAt, _id). It is strict for a single writer
// process: the clock is truncated to Mongo's millisecond precision and
// ObjectIDs from one process increase within the same millisecond. Several
// writer processes only agree on order to clock skew.
type taskRecordStore struct {
	collection *mongo.Collection
	clock      clockwork.Clock
}

// NewTaskRecordStore creates a MongoDB-backed TaskRecordStore. A nil clock
// uses real time.
func NewTaskRecordStore(db *mongo.Database, clock clockwork.Clock) TaskRecordStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &taskRecordStore{
		collection: db.Collection(SubmittedTasksCollection),
		clock:      clock,
	}
}

// Append inserts a submitted task, assigning its ID and creation time.
func (r *taskRecordStore) Append(ctx context.Context, task *models.SubmittedTask) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = r.clock.Now().UTC().Truncate(time.Millisecond)

	_, err := r.collection.InsertOne(ctx, task)
	return err
}

// ListAll returns every submitted task in insertion order.
func (r *taskRecordStore) ListAll(ctx context.Context) ([]models.SubmittedTask, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(insertionOrder()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.SubmittedTask
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []models.SubmittedTask{}
	}

	return tasks, nil
}

// List returns one page of submitted tasks in insertion order and the total count.
func (r *taskRecordStore) List(ctx context.Context, page, limit int) ([]models.SubmittedTask, int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit

	opts := options.Find().
		SetSort(insertionOrder()).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var tasks []models.SubmittedTask
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, 0, err
	}

	if tasks == nil {
		tasks = []models.SubmittedTask{}
	}

	return tasks, int(total), nil
}

// Count returns the number of submitted tasks.
func (r *taskRecordStore) Count(ctx context.Context) (int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// insertionOrder sorts by createdAt with _id breaking ties.
func insertionOrder() bson.D {
	return bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}
}

// TaskRecordIndexes are the indexes of the submitted tasks collection.
func TaskRecordIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: insertionOrder()},
		{Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "taskType", Value: 1}}},
	}
}

// EnsureTaskRecordIndexes creates the submitted tasks indexes if missing.
func EnsureTaskRecordIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	return db.Collection(SubmittedTasksCollection).Indexes().CreateMany(ctx, TaskRecordIndexes())
}
