package service

import (
	"github.com/MKhiriev/go-offline-keeper/internal/config"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/store"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	SessionService UsageSessionService
	HeartbeatJob   HeartbeatJob
}

// NewClientServices wires the session service to the client storages under
// the configured policy.
func NewClientServices(storages *store.ClientStorages, policy config.ClientPolicy, log *logger.Logger) *ClientServices {
	sessionSvc := NewUsageSessionService(storages.UsageStore,
		WithMaxOfflineTime(policy.MaxOffline),
		WithJournal(storages.Journal),
		WithLogger(log),
	)

	return &ClientServices{
		SessionService: sessionSvc,
		HeartbeatJob:   NewClientHeartbeatJob(sessionSvc),
	}
}
