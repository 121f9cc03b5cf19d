package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"humanness-tasks/internal/catalog"
	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/internal/flow"
	"humanness-tasks/internal/models"
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/queue"
	"humanness-tasks/internal/recording"
	"humanness-tasks/internal/repository"
	"humanness-tasks/internal/session"
	"humanness-tasks/internal/storage"
	"humanness-tasks/pkg/auth"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoiseSampler runs one noise test.
type NoiseSampler interface {
	Run(ctx context.Context, onSample func(noise.Reading)) (*noise.Result, error)
}

// SessionTokenResponse is returned when a flow session is created.
type SessionTokenResponse struct {
	Token     string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn int          `json:"expiresIn" example:"86400"`
	Session   session.View `json:"session"`
}

// SessionServiceConfig holds the collaborators of a SessionService. Queue
// may be nil to disable archival; Clock and Pick default to real time and a
// uniform random pick.
type SessionServiceConfig struct {
	Store         session.Store
	Tokens        auth.TokenManager
	TokenExpiry   time.Duration
	Catalog       catalog.Client
	Records       repository.TaskRecordStore
	Storage       storage.Storage
	Queue         queue.Queue
	Sampler       NoiseSampler
	Clock         clockwork.Clock
	Pick          func(n int) int
	PresignExpiry time.Duration
}

// SessionService drives one user's pass through the task flow. Operations on
// the same session are serialised.
type SessionService struct {
	store         session.Store
	tokens        auth.TokenManager
	tokenExpiry   time.Duration
	catalog       catalog.Client
	records       repository.TaskRecordStore
	storage       storage.Storage
	queue         queue.Queue
	sampler       NoiseSampler
	clock         clockwork.Clock
	pick          func(n int) int
	presignExpiry time.Duration
	locks         *keyedMutex
}

// NewSessionService creates a new SessionService.
func NewSessionService(cfg SessionServiceConfig) *SessionService {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Pick == nil {
		cfg.Pick = rand.IntN
	}
	return &SessionService{
		store:         cfg.Store,
		tokens:        cfg.Tokens,
		tokenExpiry:   cfg.TokenExpiry,
		catalog:       cfg.Catalog,
		records:       cfg.Records,
		storage:       cfg.Storage,
		queue:         cfg.Queue,
		sampler:       cfg.Sampler,
		clock:         cfg.Clock,
		pick:          cfg.Pick,
		presignExpiry: cfg.PresignExpiry,
		locks:         newKeyedMutex(),
	}
}

// CreateSession starts a new flow session at the start screen and issues its token.
func (s *SessionService) CreateSession(ctx context.Context) (*SessionTokenResponse, error) {
	now := s.clock.Now()
	fs := session.New(uuid.NewString(), now)

	if err := s.store.Save(ctx, fs); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(fs.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("Created flow session %s", fs.ID)

	return &SessionTokenResponse{
		Token:     token,
		ExpiresIn: int(s.tokenExpiry.Seconds()),
		Session:   fs.View(now),
	}, nil
}

// GetSession returns the current state of a session.
func (s *SessionService) GetSession(ctx context.Context, id string) (*session.View, error) {
	fs, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := fs.View(s.clock.Now())
	return &view, nil
}

// EndSession discards a session and its history.
func (s *SessionService) EndSession(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// Advance moves the session to screen. Leaving the noise check requires a
// quiet test; entering text reading picks a product from the catalog.
func (s *SessionService) Advance(ctx context.Context, id string, screen models.Screen) (*session.View, error) {
	return s.update(ctx, id, func(fs *session.FlowSession) error {
		from := fs.Screen()

		if from == models.ScreenNoiseCheck && screen == models.ScreenTaskSelection {
			if fs.Noise.Status != session.NoiseStatusComplete {
				return apperrors.ErrNoiseTestRequired
			}
			if !fs.Noise.Passed() {
				return apperrors.ErrNoiseTooHigh
			}
		}

		if from == models.ScreenTextReading && screen == models.ScreenTaskSelection {
			return fmt.Errorf("%w: submit the task to leave %s", apperrors.ErrInvalidTransition, from)
		}

		var product *models.Product
		if screen == models.ScreenTextReading && flow.CanAdvance(from, screen) {
			p, err := s.pickProduct(ctx)
			if err != nil {
				return err
			}
			product = p
		}

		if err := fs.Navigator.Advance(screen, nil); err != nil {
			return err
		}

		switch screen {
		case models.ScreenNoiseCheck:
			fs.Noise = session.NoiseCheck{Status: session.NoiseStatusIdle}
		case models.ScreenTextReading:
			fs.Reading = &session.ReadingTask{Product: *product}
			fs.Recording.Reset()
		}
		return nil
	})
}

// GoBack returns the session to the previous screen. Leaving text reading
// discards the chosen product and any recording; returning to it after a
// submission picks a new product.
func (s *SessionService) GoBack(ctx context.Context, id string) (*session.View, error) {
	return s.update(ctx, id, func(fs *session.FlowSession) error {
		left := fs.Screen()
		back, err := fs.Navigator.GoBack()
		if err != nil {
			return err
		}

		if left == models.ScreenTextReading {
			fs.Reading = nil
			fs.Recording.Reset()
		}
		if back == models.ScreenTextReading && fs.Reading == nil {
			p, err := s.pickProduct(ctx)
			if err != nil {
				return err
			}
			fs.Reading = &session.ReadingTask{Product: *p}
			fs.Recording.Reset()
		}
		return nil
	})
}

// RunNoiseTest samples ambient noise for a session on the noise check screen.
// onSample receives each reading as it is taken. A noisy result is returned
// together with ErrNoiseTooHigh.
func (s *SessionService) RunNoiseTest(ctx context.Context, id string, onSample func(noise.Reading)) (*noise.Result, error) {
	var result *noise.Result
	_, err := s.update(ctx, id, func(fs *session.FlowSession) error {
		if fs.Screen() != models.ScreenNoiseCheck {
			return apperrors.ErrWrongScreen
		}

		r, err := s.sampler.Run(ctx, onSample)
		if err != nil {
			return err
		}
		result = r

		fs.Noise = session.NoiseCheck{
			Status:     session.NoiseStatusComplete,
			LastSample: r.LastSample,
			Verdict:    r.Verdict,
			Samples:    r.Samples,
			Message:    r.Message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Passed {
		return result, apperrors.ErrNoiseTooHigh
	}
	return result, nil
}

// StartRecording presses the record button.
func (s *SessionService) StartRecording(ctx context.Context, id string) (*recording.Session, error) {
	return s.updateRecording(ctx, id, func(fs *session.FlowSession, now time.Time) error {
		return fs.Recording.Press(now)
	})
}

// StopRecording releases the record button. A rejected duration is saved and
// returned together with its advisory error.
func (s *SessionService) StopRecording(ctx context.Context, id string) (*recording.Session, error) {
	var advisory error
	rec, err := s.updateRecording(ctx, id, func(fs *session.FlowSession, now time.Time) error {
		_, err := fs.Recording.Release(now)
		if errors.Is(err, apperrors.ErrNotRecording) {
			return err
		}
		advisory = err
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, advisory
}

// ResetRecording discards the recording so the user can record again.
func (s *SessionService) ResetRecording(ctx context.Context, id string) (*recording.Session, error) {
	return s.updateRecording(ctx, id, func(fs *session.FlowSession, _ time.Time) error {
		fs.Recording.Reset()
		return nil
	})
}

// RecordingStatus returns the recording state with the live elapsed time.
func (s *SessionService) RecordingStatus(ctx context.Context, id string) (*recording.Session, error) {
	fs, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if fs.Screen() != models.ScreenTextReading {
		return nil, apperrors.ErrWrongScreen
	}

	rec := fs.Recording.Snapshot(s.clock.Now())
	return &rec, nil
}

// Submit records a valid text reading task once every quality check is
// confirmed, then returns the session to task selection with the new history
// entry.
func (s *SessionService) Submit(ctx context.Context, id string, req *models.SubmitTaskRequest) (*models.SubmitTaskResponse, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	fs, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkSubmission(fs, req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	product := fs.Reading.Product
	task := &models.SubmittedTask{
		ID:              primitive.NewObjectID(),
		SessionID:       fs.ID,
		TaskType:        models.TaskTypeTextReading,
		Content:         product.Description,
		AudioReference:  fmt.Sprintf("audio/%s/audio_%d.mp3", fs.ID, now.UnixMilli()),
		DurationSeconds: fs.Recording.Elapsed,
		Timestamp:       now.Local().Format(models.TimestampLayout),
		ProductID:       &product.ID,
		ProductTitle:    &product.Title,
	}

	// Navigator only appends, so a shallow copy keeps the prior state.
	prior := *fs

	entry := flow.HistoryEntry(task)
	if err := fs.Navigator.Advance(models.ScreenTaskSelection, &entry); err != nil {
		return nil, err
	}
	fs.Reading = nil
	fs.Recording.Reset()
	fs.UpdatedAt = now

	// Saved before the append: a failed save must not leave a record behind.
	if err := s.store.Save(ctx, fs); err != nil {
		return nil, err
	}

	if err := s.records.Append(ctx, task); err != nil {
		if restoreErr := s.store.Save(ctx, &prior); restoreErr != nil {
			log.Printf("Failed to restore session %s after append error: %v", id, restoreErr)
		}
		return nil, err
	}
	s.enqueueArchive(*task)

	resp := &models.SubmitTaskResponse{
		Task:    *task,
		History: entry,
	}

	url, err := s.storage.GetPresignedPutURL(ctx, resp.Task.AudioReference, storage.AudioContentType, s.presignExpiry)
	if err != nil {
		// The submission stands; the client can fetch a new URL later.
		log.Printf("Failed to presign upload for task %s: %v", resp.Task.ID.Hex(), err)
	} else {
		resp.UploadURL = url
	}

	log.Printf("Session %s submitted task %s (%ds)", id, resp.Task.ID.Hex(), resp.Task.DurationSeconds)
	return resp, nil
}

// checkSubmission reports why fs cannot submit req, if it cannot.
func checkSubmission(fs *session.FlowSession, req *models.SubmitTaskRequest) error {
	if fs.Screen() != models.ScreenTextReading {
		return apperrors.ErrWrongScreen
	}
	if req.TaskType != "" && req.TaskType != models.TaskTypeTextReading {
		return fmt.Errorf("%w: %s tasks cannot be submitted", apperrors.ErrWrongScreen, req.TaskType)
	}
	if !fs.Recording.Submittable() || fs.Reading == nil {
		return apperrors.ErrRecordingNotValid
	}
	if !req.Checks.AllConfirmed() {
		return apperrors.ErrQualityChecksIncomplete
	}
	return nil
}

// History returns the session's accumulated task history.
func (s *SessionService) History(ctx context.Context, id string) (*models.TaskHistoryResponse, error) {
	fs, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.TaskHistoryResponse{Items: fs.Navigator.Entries()}, nil
}

// update loads a session under its lock, applies fn and saves the result.
// Nothing is saved when fn fails.
func (s *SessionService) update(ctx context.Context, id string, fn func(fs *session.FlowSession) error) (*session.View, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	fs, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(fs); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	fs.UpdatedAt = now
	if err := s.store.Save(ctx, fs); err != nil {
		return nil, err
	}

	view := fs.View(now)
	return &view, nil
}

func (s *SessionService) updateRecording(ctx context.Context, id string, fn func(fs *session.FlowSession, now time.Time) error) (*recording.Session, error) {
	view, err := s.update(ctx, id, func(fs *session.FlowSession) error {
		if fs.Screen() != models.ScreenTextReading {
			return apperrors.ErrWrongScreen
		}
		return fn(fs, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return &view.Recording, nil
}

func (s *SessionService) pickProduct(ctx context.Context) (*models.Product, error) {
	products, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.ErrCatalogUnavailable
	}

	p := products[s.pick(len(products))]
	return &p, nil
}

func (s *SessionService) enqueueArchive(task models.SubmittedTask) {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(queue.ArchiveJob{Task: task}); err != nil {
		log.Printf("Failed to enqueue archive job for task %s: %v", task.ID.Hex(), err)
	}
}
