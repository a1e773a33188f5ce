// cmd/replicator/orchestrator.go
package main

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/tamzrod/modal-replicator/internal/poller"
	"github.com/tamzrod/modal-replicator/internal/status"
	"github.com/tamzrod/modal-replicator/internal/writer"
)

// orchestrator owns the status snapshot of one unit.
// Poll results drive health; the 1 Hz tick drives seconds_in_error.
type orchestrator struct {
	unitID  string
	records writer.Writer
	status  writer.StatusWriter // nil when status is disabled

	snap status.Snapshot
}

func newOrchestrator(unitID string, records writer.Writer, sw writer.StatusWriter) *orchestrator {
	return &orchestrator{
		unitID:  unitID,
		records: records,
		status:  sw,
		snap:    status.Snapshot{Health: status.HealthUnknown},
	}
}

func (o *orchestrator) run(ctx context.Context, in <-chan poller.PollResult) {
	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	// Full block write on start (identity re-assert) if enabled.
	o.publish("start")

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-in:
			o.handle(res)

		case <-secTicker.C:
			o.tick()
		}
	}
}

// handle delivers one poll result and folds it into the snapshot.
func (o *orchestrator) handle(res poller.PollResult) {
	// --- record delivery ---
	if err := o.records.Write(res); err != nil {
		log.Printf("writer error (unit=%s): %v", o.unitID, err)
	}

	if res.Err != nil {
		log.Printf("poll failed (unit=%s): %v", o.unitID, res.Err)
	}

	if o.status == nil {
		return
	}

	next := o.snap
	if res.Err == nil {
		next.Health = status.HealthOK
		next.LastErrorCode = status.ErrCodeNone
		next.SecondsInError = 0
		next.UnknownCodes = clampUint16(res.UnknownCodes())
	} else {
		// seconds_in_error increments on the 1Hz ticker only
		next.Health = status.HealthError
		next.LastErrorCode = errorCode(res.Err)
	}

	if next != o.snap {
		o.snap = next
		o.publish("poll")
	}
}

// tick advances seconds_in_error while the unit is not healthy.
func (o *orchestrator) tick() {
	if o.status == nil || o.snap.Health == status.HealthOK {
		return
	}
	if o.snap.SecondsInError == math.MaxUint16 {
		return
	}
	o.snap.SecondsInError++
	o.publish("seconds tick")
}

func (o *orchestrator) publish(reason string) {
	if o.status == nil {
		return
	}
	if err := o.status.WriteStatus(o.snap); err != nil {
		log.Printf("status write failed on %s (unit=%s): %v", reason, o.unitID, err)
	}
}

func clampUint16(n int) uint16 {
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}
