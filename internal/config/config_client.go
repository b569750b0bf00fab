package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// JournalDisabled is the JournalDSN value that turns the journal off.
const JournalDisabled = "off"

const (
	defaultJournalFile = "journal.db"
	defaultLogFile     = "client.log"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogFile is the path of the client log file.
	LogFile string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Dir is the directory of the encrypted usage records.
	Dir string
	// JournalDSN is the SQLite DSN of the event journal. Empty means the
	// journal is disabled.
	JournalDSN string
}

// ClientPolicy is the offline usage policy applied by the session service.
type ClientPolicy struct {
	MaxOffline    time.Duration
	KDFIterations int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HeartbeatInterval defines how often the offline heartbeat runs.
	HeartbeatInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Policy  ClientPolicy
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Journal and log paths not set explicitly
// are placed in the storage directory.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	journalDSN := cfg.Storage.JournalDSN
	switch {
	case strings.EqualFold(journalDSN, JournalDisabled):
		journalDSN = ""
	case journalDSN == "":
		journalDSN = filepath.Join(cfg.Storage.Dir, defaultJournalFile)
	}

	logFile := cfg.App.LogFile
	if logFile == "" {
		logFile = filepath.Join(cfg.Storage.Dir, defaultLogFile)
	}

	return &ClientConfig{
		App: ClientApp{
			LogFile: logFile,
		},
		Storage: ClientStorage{
			Dir:        cfg.Storage.Dir,
			JournalDSN: journalDSN,
		},
		Policy: ClientPolicy{
			MaxOffline:    cfg.Policy.MaxOffline,
			KDFIterations: cfg.Policy.KDFIterations,
		},
		Workers: ClientWorkers{
			HeartbeatInterval: cfg.Workers.HeartbeatInterval,
		},
	}
}
