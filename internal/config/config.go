// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Replicator ReplicatorConfig `yaml:"replicator"`
}

type ReplicatorConfig struct {
	Log          LogConfig          `yaml:"log"`
	StatusMemory StatusMemoryConfig `yaml:"status_memory"`
	Units        []UnitConfig       `yaml:"units"`
}

// ---- LOG ----

// LogConfig enables an optional rotating log file next to stderr.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ---- STATUS MEMORY ----

type StatusMemoryConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// ---- UNIT ----

type UnitConfig struct {
	ID      string          `yaml:"id"`
	Source  SourceConfig    `yaml:"source"`
	Queries []QueryConfig   `yaml:"queries"`
	ReadAll []ReadAllConfig `yaml:"read_all"`
	Targets []TargetConfig  `yaml:"targets"`
	Poll    PollConfig      `yaml:"poll"`
}

// ---- SOURCE ----

// SourceConfig is the Modbus gateway mirroring the controller's modal responses.
type SourceConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Unit status block (optional, opt-in)
	StatusSlot *uint16 `yaml:"status_slot"`
	DeviceName string  `yaml:"device_name"`
}

// ---- QUERIES ----

// QueryConfig binds one (type, block) modal query to the gateway window
// holding its payload and to the target address of its decoded records.
type QueryConfig struct {
	Type          int    `yaml:"type"`
	Block         int    `yaml:"block"`
	Address       uint16 `yaml:"address"`        // source holding register
	TargetAddress uint16 `yaml:"target_address"` // first record register on targets
}

// ReadAllConfig is shorthand for the four "all" queries of one block
// (modal, one-shot, other, axis), laid out back to back from Address on
// the source and from TargetAddress on the targets.
type ReadAllConfig struct {
	Block         int    `yaml:"block"`
	Address       uint16 `yaml:"address"`
	TargetAddress uint16 `yaml:"target_address"`
}

// ---- TARGET ----

type TargetConfig struct {
	ID           uint32 `yaml:"id"`
	Endpoint     string `yaml:"endpoint"`
	UnitID       uint8  `yaml:"unit_id"`        // record memory
	StatusUnitID *uint8 `yaml:"status_unit_id"` // status memory (optional)
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// Load reads and parses a YAML configuration file.
// It does not validate.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &cfg, nil
}
