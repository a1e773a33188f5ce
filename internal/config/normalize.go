// internal/config/normalize.go
package config

import "github.com/tamzrod/modal-replicator/internal/status"

// Defaults applied by Normalize.
const (
	DefaultTimeoutMs     = 1000
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	lc := &cfg.Replicator.Log
	if lc.File != "" {
		if lc.MaxSizeMB <= 0 {
			lc.MaxSizeMB = DefaultLogMaxSizeMB
		}
		if lc.MaxBackups <= 0 {
			lc.MaxBackups = DefaultLogMaxBackups
		}
	}

	for ui := range cfg.Replicator.Units {
		u := &cfg.Replicator.Units[ui]

		// read_all shorthand becomes explicit queries (validated)
		if len(u.ReadAll) > 0 {
			if qs, err := u.ExpandQueries(); err == nil {
				u.Queries = qs
				u.ReadAll = nil
			}
		}

		if u.Source.TimeoutMs <= 0 {
			u.Source.TimeoutMs = DefaultTimeoutMs
		}

		// Skip units that did not opt in to status
		if u.Source.StatusSlot == nil {
			continue
		}

		// device_name is ASCII (validated); truncate to the slot capacity
		if len(u.Source.DeviceName) > status.DeviceNameMaxChars {
			u.Source.DeviceName = u.Source.DeviceName[:status.DeviceNameMaxChars]
		}
	}
}
