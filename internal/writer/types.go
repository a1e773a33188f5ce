// internal/writer/types.go
package writer

import (
	"github.com/tamzrod/modal-replicator/internal/modal"
	"github.com/tamzrod/modal-replicator/internal/poller"
)

// TargetEndpoint is one target endpoint (TCP) and the unit id of its record memory.
type TargetEndpoint struct {
	TargetID uint32
	Endpoint string
	UnitID   uint8
}

// StatusPlan places the unit status block in status memory, once per
// distinct status unit id of the unit's targets.
type StatusPlan struct {
	Endpoint   string
	UnitIDs    []uint8
	BaseSlot   uint16
	DeviceName string
}

// Plan is the fully-built write plan for one unit.
type Plan struct {
	UnitID  string
	Targets []TargetEndpoint

	// Records maps each query to the first register of its record image.
	Records map[modal.Query]uint16

	// Status is nil when the unit did not opt in.
	Status *StatusPlan
}

// Writer writes decoded poll snapshots into targets.
type Writer interface {
	Write(res poller.PollResult) error
}
