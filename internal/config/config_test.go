// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
replicator:
  log:
    file: /tmp/modal-replicator.log
  status_memory:
    endpoint: 10.0.0.9:502
  units:
    - id: mill-1
      source:
        endpoint: 10.0.0.5:502
        unit_id: 1
        status_slot: 2
        device_name: VERTICAL-MILL-NUMBER-ONE
      queries:
        - { type: -1, block: 0, address: 0, target_address: 0 }
        - { type: 300, block: 1, address: 100, target_address: 200 }
      read_all:
        - { block: 2, address: 300, target_address: 2000 }
      targets:
        - id: 1
          endpoint: 10.0.0.9:502
          unit_id: 3
          status_unit_id: 4
      poll:
        interval_ms: 250
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ValidateNormalize(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	Normalize(cfg)

	require.Len(t, cfg.Replicator.Units, 1)
	u := cfg.Replicator.Units[0]

	require.Equal(t, "mill-1", u.ID)
	require.Equal(t, uint8(1), u.Source.UnitID)
	require.Equal(t, DefaultTimeoutMs, u.Source.TimeoutMs)
	require.Equal(t, "VERTICAL-MILL-NU", u.Source.DeviceName)
	require.NotNil(t, u.Source.StatusSlot)
	require.Equal(t, uint16(2), *u.Source.StatusSlot)

	require.Len(t, u.Queries, 6)
	require.Nil(t, u.ReadAll)
	require.Equal(t, QueryConfig{Type: 300, Block: 1, Address: 100, TargetAddress: 200}, u.Queries[1])
	require.Equal(t, QueryConfig{Type: -1, Block: 2, Address: 300, TargetAddress: 2000}, u.Queries[2])

	require.Equal(t, DefaultLogMaxSizeMB, cfg.Replicator.Log.MaxSizeMB)
	require.Equal(t, DefaultLogMaxBackups, cfg.Replicator.Log.MaxBackups)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "replicator: [unterminated"))
	require.Error(t, err)
}
