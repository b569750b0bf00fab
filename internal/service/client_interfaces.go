package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-offline-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// UsageSessionService is the session state machine of offline usage. Every
// operation loads the record of the credential, derives the next record and
// saves it; nothing is kept in memory between calls.
//
// The returned error is reserved for infrastructure failures (disk I/O,
// random source, record lock). Domain failures come back as a result with
// Success=false and a [models.FailureReason].
type UsageSessionService interface {
	// ProcessOnlineLogin records a caller-asserted online login. It creates the
	// record when missing or unreadable and resets the offline budget
	// otherwise. It is the only way to clear tamper and exhaustion states.
	ProcessOnlineLogin(ctx context.Context, cred models.Credential) (models.LoginResult, error)

	// ProcessOfflineLogin starts an offline session if a readable record
	// exists, the clock did not go backwards and budget is left.
	ProcessOfflineLogin(ctx context.Context, cred models.Credential) (models.LoginResult, error)

	// UpdateHeartbeat is the periodic tick. While offline it accrues the time
	// elapsed since the previous touch and reports exhaustion or clock
	// manipulation.
	UpdateHeartbeat(ctx context.Context, cred models.Credential) (models.HeartbeatResult, error)

	// RecentEvents returns up to limit latest journal events of cred, newest
	// first.
	RecentEvents(ctx context.Context, cred models.Credential, limit uint64) ([]models.UsageEvent, error)

	// MaxOfflineTime is the offline budget granted by an online login.
	MaxOfflineTime() time.Duration
}

// HeartbeatJob runs [UsageSessionService.UpdateHeartbeat] in the background
// on a fixed cadence.
type HeartbeatJob interface {
	// Start launches the ticker for cred. Each result is passed to onResult.
	// The job stops by itself after the first failed heartbeat.
	Start(ctx context.Context, cred models.Credential, interval time.Duration, onResult func(models.HeartbeatResult, error))

	// Stop cancels the ticker and waits for it to exit.
	Stop()
}
