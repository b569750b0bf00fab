package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-keeper/models"
)

// DefaultHeartbeatInterval is used when Start gets a non-positive interval.
const DefaultHeartbeatInterval = 30 * time.Second

type clientHeartbeatJob struct {
	sessionService UsageSessionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientHeartbeatJob creates a clientHeartbeatJob that calls
// sessionService.UpdateHeartbeat on a ticker. The job is idle until Start is
// called.
func NewClientHeartbeatJob(sessionService UsageSessionService) HeartbeatJob {
	return &clientHeartbeatJob{sessionService: sessionService}
}

// Start implements HeartbeatJob. It stops any previously running job, then
// launches a background goroutine that calls UpdateHeartbeat every interval.
// If interval is zero or negative it defaults to [DefaultHeartbeatInterval].
// The goroutine exits when ctx is cancelled, Stop is called, or a heartbeat
// fails (error or Success=false).
func (j *clientHeartbeatJob) Start(ctx context.Context, cred models.Credential, interval time.Duration, onResult func(models.HeartbeatResult, error)) {
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}
	if onResult == nil {
		onResult = func(models.HeartbeatResult, error) {}
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				result, err := j.sessionService.UpdateHeartbeat(jobCtx, cred)
				if jobCtx.Err() != nil {
					// stopped mid-tick, the outcome is nobody's business
					return
				}

				onResult(result, err)
				if err != nil || !result.Success {
					return
				}
			}
		}
	}()
}

// Stop implements HeartbeatJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientHeartbeatJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
