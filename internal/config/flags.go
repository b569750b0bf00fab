package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client command line (without the program name).
//
// Flags:
//
//	-d storage directory of the usage records
//	-j journal SQLite DSN ("off" disables the journal)
//	-max-offline offline budget per online login (e.g., "1h", "90m")
//	-kdf-iterations PBKDF2 iteration count
//	-heartbeat heartbeat interval (e.g., "30s")
//	-log log file path
//	-c/-config json file path with configs
//
// -h returns [flag.ErrHelp] after printing the usage.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlagSet(args, nil)
}

func parseFlagSet(args []string, output io.Writer) (*StructuredConfig, error) {
	var storageDir string
	var journalDSN string
	var maxOffline time.Duration
	var kdfIterations int
	var heartbeat time.Duration
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("offline-keeper", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	fs.StringVar(&storageDir, "d", "", "Storage directory of the usage records")
	fs.StringVar(&journalDSN, "j", "", `Journal SQLite DSN ("off" disables the journal)`)
	fs.DurationVar(&maxOffline, "max-offline", 0, "Offline budget per online login (e.g., 1h, 90m)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.DurationVar(&heartbeat, "heartbeat", 0, "Heartbeat interval (e.g., 30s)")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			Dir:        storageDir,
			JournalDSN: journalDSN,
		},
		Policy: Policy{
			MaxOffline:    maxOffline,
			KDFIterations: kdfIterations,
		},
		Workers: Workers{
			HeartbeatInterval: heartbeat,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
