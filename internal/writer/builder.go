// internal/writer/builder.go
package writer

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/tamzrod/modal-replicator/internal/config"
	"github.com/tamzrod/modal-replicator/internal/modal"
	wmodbus "github.com/tamzrod/modal-replicator/internal/writer/modbus"
)

// BuildPlan converts one unit config into a write Plan.
// Assumes config has already passed Validate.
func BuildPlan(u cfg.UnitConfig, statusEndpoint string) (Plan, error) {
	if u.ID == "" {
		return Plan{}, errors.New("writer: unit.id required")
	}

	plan := Plan{
		UnitID:  u.ID,
		Records: make(map[modal.Query]uint16, len(u.Queries)),
	}

	for _, t := range u.Targets {
		plan.Targets = append(plan.Targets, TargetEndpoint{
			TargetID: t.ID,
			Endpoint: t.Endpoint,
			UnitID:   t.UnitID,
		})
	}

	for _, q := range u.Queries {
		mq := modal.Query{Type: q.Type, Block: q.Block}
		if _, dup := plan.Records[mq]; dup {
			return Plan{}, fmt.Errorf("writer: unit %s: duplicate query type=%d block=%d", u.ID, q.Type, q.Block)
		}
		plan.Records[mq] = q.TargetAddress
	}

	if u.Source.StatusSlot != nil {
		var unitIDs []uint8
		seen := make(map[uint8]struct{})
		for _, t := range u.Targets {
			if t.StatusUnitID == nil {
				continue
			}
			if _, dup := seen[*t.StatusUnitID]; dup {
				continue
			}
			seen[*t.StatusUnitID] = struct{}{}
			unitIDs = append(unitIDs, *t.StatusUnitID)
		}
		plan.Status = &StatusPlan{
			Endpoint:   statusEndpoint,
			UnitIDs:    unitIDs,
			BaseSlot:   *u.Source.StatusSlot,
			DeviceName: u.Source.DeviceName,
		}
	}

	return plan, nil
}

// BuildEndpointClients creates one TCP client per unique endpoint
// (targets plus the status endpoint when status is enabled).
func BuildEndpointClients(u cfg.UnitConfig, statusEndpoint string) (map[string]endpointClient, func() error, error) {
	unique := map[string]struct{}{}
	for _, t := range u.Targets {
		unique[t.Endpoint] = struct{}{}
	}
	if u.Source.StatusSlot != nil && statusEndpoint != "" {
		unique[statusEndpoint] = struct{}{}
	}

	clients := make(map[string]endpointClient)
	var closers []func() error

	closeAll := func() error {
		var last error
		for _, fn := range closers {
			if err := fn(); err != nil {
				last = err
			}
		}
		return last
	}

	for endpoint := range unique {
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{
			Endpoint: endpoint,
			Timeout:  time.Duration(u.Source.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			_ = closeAll()
			return nil, nil, err
		}
		clients[endpoint] = c
		closers = append(closers, c.Close)
	}

	return clients, closeAll, nil
}
