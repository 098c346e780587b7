package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers into a single runnable unit.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// syncWorker adapts the periodic contact sync job to the Worker interface.
type syncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	userID   int64
	interval time.Duration
}

// NewSyncWorker wraps the client sync job so it can be launched alongside
// other background workers. The worker does not block: the job spawns its
// own goroutine and keeps running until ctx is cancelled or Stop is called.
func NewSyncWorker(ctx context.Context, job service.ClientSyncJob, userID int64, interval time.Duration) Worker {
	return &syncWorker{
		ctx:      ctx,
		job:      job,
		userID:   userID,
		interval: interval,
	}
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.userID, w.interval)
}
