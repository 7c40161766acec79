package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Sync struct {
		TombstoneTTL   Duration `json:"tombstone_ttl"`
		PurgeInterval  Duration `json:"purge_interval"`
		Interval       Duration `json:"interval"`
		StartupDelay   Duration `json:"startup_delay"`
		DebounceWindow Duration `json:"debounce_window"`
		Cooldown       Duration `json:"cooldown"`
	} `json:"sync,omitempty"`

	Events struct {
		HeartbeatInterval Duration `json:"heartbeat_interval"`
		BufferSize        int      `json:"buffer_size"`
	} `json:"events,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		Device         string   `json:"device"`
	} `json:"adapter,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Sync: Sync{
			TombstoneTTL:   time.Duration(jsonCfg.Sync.TombstoneTTL),
			PurgeInterval:  time.Duration(jsonCfg.Sync.PurgeInterval),
			Interval:       time.Duration(jsonCfg.Sync.Interval),
			StartupDelay:   time.Duration(jsonCfg.Sync.StartupDelay),
			DebounceWindow: time.Duration(jsonCfg.Sync.DebounceWindow),
			Cooldown:       time.Duration(jsonCfg.Sync.Cooldown),
		},
		Events: Events{
			HeartbeatInterval: time.Duration(jsonCfg.Events.HeartbeatInterval),
			BufferSize:        jsonCfg.Events.BufferSize,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Device:         jsonCfg.Adapter.Device,
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
