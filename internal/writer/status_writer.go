// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/modal-replicator/internal/status"
)

// StatusWriter is the delivery-only contract for unit status.
// It receives a snapshot and writes it verbatim.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// unitStatusWriter writes the full block once (identity re-assert),
// then only the live slots that changed.
type unitStatusWriter struct {
	plan *StatusPlan
	cli  endpointClient

	needFull bool
	last     status.Snapshot
}

// NewStatusWriter builds a status writer if status is enabled for the unit.
// If plan.Status is nil, status is disabled.
func NewStatusWriter(plan Plan, clients map[string]endpointClient) (StatusWriter, bool) {
	if plan.Status == nil {
		return nil, false
	}

	return &unitStatusWriter{
		plan:     plan.Status,
		cli:      clients[plan.Status.Endpoint],
		needFull: true,
		last:     status.Snapshot{Health: status.HealthUnknown},
	}, true
}

// WriteStatus delivers a snapshot into status memory.
// On any write failure, the next call re-asserts the full block.
func (sw *unitStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw.cli == nil {
		return fmt.Errorf("status writer: missing client for endpoint %s", sw.plan.Endpoint)
	}

	base := sw.baseAddr()
	var errs []string

	if sw.needFull {
		regs := status.Encode(s, sw.plan.DeviceName)
		for _, unitID := range sw.plan.UnitIDs {
			if err := sw.cli.WriteRegisters(unitID, base, regs); err != nil {
				errs = append(errs, fmt.Sprintf("unit%d full block write failed: %v", unitID, err))
			}
		}
		if len(errs) > 0 {
			return errors.New("status writer: " + strings.Join(errs, " | "))
		}
		sw.needFull = false
		sw.last = s
		return nil
	}

	prev := sw.last.Live()
	next := s.Live()

	for _, unitID := range sw.plan.UnitIDs {
		for slot := 0; slot < status.LiveSlots; slot++ {
			if prev[slot] == next[slot] {
				continue
			}
			if err := sw.cli.WriteRegisters(unitID, base+uint16(slot), []uint16{next[slot]}); err != nil {
				errs = append(errs, fmt.Sprintf("unit%d slot%d write failed: %v", unitID, slot, err))
			}
		}
	}

	if len(errs) > 0 {
		// Partial failure: memory state is in doubt.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	sw.last = s
	return nil
}

// baseAddr is the first register of the unit's block.
// Validate bounds BaseSlot so the block fits the register space.
func (sw *unitStatusWriter) baseAddr() uint16 {
	return uint16(int(sw.plan.BaseSlot) * status.SlotsPerDevice)
}
