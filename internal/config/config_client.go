package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the server base URL the client talks to.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Device is the self-reported device label for this client.
	Device string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains the client agent's trigger timings.
type ClientSync struct {
	// Interval defines the fixed sync cadence.
	Interval time.Duration
	// StartupDelay postpones the first sync after process start.
	StartupDelay time.Duration
	// DebounceWindow coalesces bursts of local mutations into one sync.
	DebounceWindow time.Duration
	// Cooldown is how long success/error state lingers before idle.
	Cooldown time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync agent trigger settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Device:         cfg.Adapter.Device,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			Interval:       cfg.Sync.Interval,
			StartupDelay:   cfg.Sync.StartupDelay,
			DebounceWindow: cfg.Sync.DebounceWindow,
			Cooldown:       cfg.Sync.Cooldown,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, nil
}
