package repository

import (
	"context"
	"sync"

	"humanness-tasks/internal/models"

	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryTaskRecordStore is a process-local TaskRecordStore. Appends are
// serialised and reads return copies.
type MemoryTaskRecordStore struct {
	mu    sync.RWMutex
	tasks []models.SubmittedTask
	clock clockwork.Clock
}

// NewMemoryTaskRecordStore creates an empty in-memory store.
func NewMemoryTaskRecordStore(clock clockwork.Clock) *MemoryTaskRecordStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryTaskRecordStore{clock: clock}
}

// Append stores task, assigning its ID and creation time.
func (s *MemoryTaskRecordStore) Append(ctx context.Context, task *models.SubmittedTask) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = s.clock.Now().UTC()

	s.tasks = append(s.tasks, cloneTask(*task))
	return nil
}

// ListAll returns a snapshot of every task in insertion order.
func (s *MemoryTaskRecordStore) ListAll(ctx context.Context) ([]models.SubmittedTask, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SubmittedTask, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = cloneTask(t)
	}
	return out, nil
}

// List returns one page of tasks in insertion order and the total count.
func (s *MemoryTaskRecordStore) List(ctx context.Context, page, limit int) ([]models.SubmittedTask, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.tasks)
	start := (page - 1) * limit
	if start < 0 || limit <= 0 || start >= total {
		return []models.SubmittedTask{}, total, nil
	}
	end := min(start+limit, total)

	out := make([]models.SubmittedTask, 0, end-start)
	for _, t := range s.tasks[start:end] {
		out = append(out, cloneTask(t))
	}
	return out, total, nil
}

// Count returns the number of stored tasks.
func (s *MemoryTaskRecordStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}

func cloneTask(t models.SubmittedTask) models.SubmittedTask {
	if t.ProductID != nil {
		id := *t.ProductID
		t.ProductID = &id
	}
	if t.ProductTitle != nil {
		title := *t.ProductTitle
		t.ProductTitle = &title
	}
	return t
}
