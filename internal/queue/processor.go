package queue

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"humanness-tasks/internal/archive"
)

const (
	// MaxRetries is the maximum number of attempts for a failed archive job.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
)

// Stats counts processed archive jobs.
type Stats struct {
	Archived int64 `json:"archived"`
	Retried  int64 `json:"retried"`
	Failed   int64 `json:"failed"`
}

// Processor archives submitted tasks taken from the queue.
type Processor struct {
	queue        Queue
	archiver     archive.Archiver
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}

	archived atomic.Int64
	retried  atomic.Int64
	failed   atomic.Int64
}

// NewProcessor creates a new archive job processor.
func NewProcessor(queue Queue, archiver archive.Archiver, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		archiver:    archiver,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
}

// SetRetryDelay overrides the base retry delay.
func (p *Processor) SetRetryDelay(d time.Duration) {
	p.retryDelay = d
}

// Stats returns a snapshot of the job counters.
func (p *Processor) Stats() Stats {
	return Stats{
		Archived: p.archived.Load(),
		Retried:  p.retried.Load(),
		Failed:   p.failed.Load(),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Archive processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Archive processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job ArchiveJob) {
	taskID := job.Task.ID.Hex()
	log.Printf("Archiving task %s (attempt %d)", taskID, job.RetryCount+1)

	if err := p.archiver.Archive(ctx, job.Task); err != nil {
		log.Printf("Archive failed for task %s: %v", taskID, err)
		p.handleFailure(job)
		return
	}

	p.archived.Add(1)
	log.Printf("Archived task %s", taskID)
}

func (p *Processor) handleFailure(job ArchiveJob) {
	taskID := job.Task.ID.Hex()
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		p.failed.Add(1)
		log.Printf("Max retries reached for task %s, giving up", taskID)
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying task %s in %v (attempt %d/%d)", taskID, delay, job.RetryCount+1, MaxRetries)
	p.retried.Add(1)

	// Retries wait on shutdownCh rather than ctx so in-flight retries end
	// with the processor.
	go func() {
		select {
		case <-p.shutdownCh:
			p.failed.Add(1)
			log.Printf("Shutdown during retry delay for task %s, giving up", taskID)
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				p.failed.Add(1)
				log.Printf("Failed to re-enqueue task %s: %v", taskID, err)
			}
		}
	}()
}
