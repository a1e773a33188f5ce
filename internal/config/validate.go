// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/modal-replicator/internal/image"
	"github.com/tamzrod/modal-replicator/internal/modal"
	"github.com/tamzrod/modal-replicator/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	type span struct {
		start int
		end   int
		owner string
	}

	overlaps := func(spans []span, start, end int) (span, bool) {
		for _, s := range spans {
			// inclusive
			if !(end < s.start || start > s.end) {
				return s, true
			}
		}
		return span{}, false
	}

	if len(cfg.Replicator.Units) == 0 {
		return errors.New("config: at least one unit required")
	}

	// ------------------------------------------------------------
	// UNIT + QUERY VALIDATION
	// ------------------------------------------------------------

	seenUnits := make(map[string]struct{})
	unitQueries := make(map[string][]QueryConfig)
	statusWanted := false

	for _, u := range cfg.Replicator.Units {
		if u.ID == "" {
			return errors.New("config: unit id required")
		}
		if _, dup := seenUnits[u.ID]; dup {
			return fmt.Errorf("config: duplicate unit id %q", u.ID)
		}
		seenUnits[u.ID] = struct{}{}

		if u.Source.Endpoint == "" {
			return fmt.Errorf("unit %q: source endpoint required", u.ID)
		}
		if u.Poll.IntervalMs <= 0 {
			return fmt.Errorf("unit %q: poll interval_ms must be > 0", u.ID)
		}

		queries, err := u.ExpandQueries()
		if err != nil {
			return fmt.Errorf("unit %q: %w", u.ID, err)
		}
		if len(queries) == 0 {
			return fmt.Errorf("unit %q: at least one query required", u.ID)
		}

		var windows []span
		seenQueries := make(map[modal.Query]int)

		for qi, q := range queries {
			k, err := modal.Classify(q.Type, q.Block)
			if err != nil {
				return fmt.Errorf("unit %q: query %d: %w", u.ID, qi, err)
			}

			mq := modal.Query{Type: q.Type, Block: q.Block}
			if prev, dup := seenQueries[mq]; dup {
				return fmt.Errorf("unit %q: query %d duplicates query %d (type=%d block=%d)", u.ID, qi, prev, q.Type, q.Block)
			}
			seenQueries[mq] = qi

			start := int(q.Address)
			end := start + modal.PayloadRegisters(k) - 1
			if end > 0xFFFF {
				return fmt.Errorf("unit %q: query %d: source window %d-%d exceeds register space", u.ID, qi, start, end)
			}
			owner := fmt.Sprintf("query %d", qi)
			if prev, hit := overlaps(windows, start, end); hit {
				return fmt.Errorf(
					"unit %q: source window overlap: %s range=%d-%d overlaps with %s range=%d-%d",
					u.ID, owner, start, end, prev.owner, prev.start, prev.end,
				)
			}
			windows = append(windows, span{start: start, end: end, owner: owner})
		}
		unitQueries[u.ID] = queries

		// device_name sanity (ASCII only)
		for i := 0; i < len(u.Source.DeviceName); i++ {
			if u.Source.DeviceName[i] > 0x7F {
				return fmt.Errorf("unit %q: device_name must contain ASCII characters only", u.ID)
			}
		}

		if u.Source.StatusSlot != nil {
			statusWanted = true
		}
	}

	// ------------------------------------------------------------
	// UNIT STATUS BLOCK VALIDATION (PER-TARGET, OPT-IN)
	// ------------------------------------------------------------

	statusEndpoint := cfg.Replicator.StatusMemory.Endpoint
	if statusWanted && statusEndpoint == "" {
		return errors.New("config: status_slot is set but status_memory.endpoint is empty")
	}

	// key = endpoint | unit_id; status blocks and record images share it
	spans := make(map[string][]span)

	for _, u := range cfg.Replicator.Units {
		if u.Source.StatusSlot == nil {
			continue
		}

		if len(u.Targets) == 0 {
			return fmt.Errorf("unit %q: status_slot is set but no targets are defined", u.ID)
		}

		slot := int(*u.Source.StatusSlot)
		start := slot * status.SlotsPerDevice
		end := start + status.SlotsPerDevice - 1
		if end > 0xFFFF {
			return fmt.Errorf("unit %q: status_slot %d: block %d-%d exceeds register space", u.ID, slot, start, end)
		}

		written := make(map[uint8]struct{})
		for _, t := range u.Targets {
			if t.StatusUnitID == nil {
				return fmt.Errorf(
					"unit %q: status_slot is set but target %q has no status_unit_id",
					u.ID, t.Endpoint,
				)
			}
			if _, again := written[*t.StatusUnitID]; again {
				continue
			}
			written[*t.StatusUnitID] = struct{}{}

			key := fmt.Sprintf("%s|%d", statusEndpoint, *t.StatusUnitID)
			owner := fmt.Sprintf("unit=%s status_slot=%d", u.ID, slot)
			if prev, hit := overlaps(spans[key], start, end); hit {
				return fmt.Errorf(
					"status_slot collision: status_unit_id=%d range=%d-%d (%s) overlaps with %s range=%d-%d",
					*t.StatusUnitID, start, end, owner, prev.owner, prev.start, prev.end,
				)
			}
			spans[key] = append(spans[key], span{start: start, end: end, owner: owner})
		}
	}

	// ------------------------------------------------------------
	// TARGET RECORD MEMORY GEOMETRY VALIDATION
	// ------------------------------------------------------------

	for _, u := range cfg.Replicator.Units {
		for _, t := range u.Targets {
			if t.Endpoint == "" {
				return fmt.Errorf("unit %q: target %d endpoint required", u.ID, t.ID)
			}

			key := fmt.Sprintf("%s|%d", t.Endpoint, t.UnitID)

			for qi, q := range unitQueries[u.ID] {
				k, _ := modal.Classify(q.Type, q.Block) // validated above

				start := int(q.TargetAddress)
				end := start + image.Span(k) - 1
				if end > 0xFFFF {
					return fmt.Errorf(
						"unit %q: query %d: target range %d-%d exceeds register space",
						u.ID, qi, start, end,
					)
				}

				owner := fmt.Sprintf("unit=%s query=%d", u.ID, qi)
				if prev, hit := overlaps(spans[key], start, end); hit {
					return fmt.Errorf(
						"memory overlap: endpoint=%s unit_id=%d range=%d-%d (%s) overlaps with %s range=%d-%d",
						t.Endpoint, t.UnitID, start, end, owner, prev.owner, prev.start, prev.end,
					)
				}
				spans[key] = append(spans[key], span{start: start, end: end, owner: owner})
			}
		}
	}

	return nil
}
