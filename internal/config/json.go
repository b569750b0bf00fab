package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Dir        string `json:"dir"`
		JournalDSN string `json:"journal_dsn"`
	} `json:"storage,omitempty"`

	Policy struct {
		MaxOffline    Duration `json:"max_offline"`
		KDFIterations int      `json:"kdf_iterations"`
	} `json:"policy,omitempty"`

	Workers struct {
		HeartbeatInterval Duration `json:"heartbeat_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Dir:        jsonCfg.Storage.Dir,
			JournalDSN: jsonCfg.Storage.JournalDSN,
		},
		Policy: Policy{
			MaxOffline:    time.Duration(jsonCfg.Policy.MaxOffline),
			KDFIterations: jsonCfg.Policy.KDFIterations,
		},
		Workers: Workers{
			HeartbeatInterval: time.Duration(jsonCfg.Workers.HeartbeatInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
