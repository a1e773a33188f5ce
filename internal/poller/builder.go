// internal/poller/builder.go
package poller

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/modal-replicator/internal/config"
	"github.com/tamzrod/modal-replicator/internal/modal"
	pmodbus "github.com/tamzrod/modal-replicator/internal/poller/modbus"
)

// Build constructs a Poller and wires gateway client lifecycle.
// Connection is reused while healthy.
// On transport death, Poller discards the client and uses factory on a future tick.
func Build(u cfg.UnitConfig) (*Poller, func() error, error) {
	// client factory: ONE attempt per call
	factory := func() (Client, error) {
		return pmodbus.New(pmodbus.Config{
			Endpoint: u.Source.Endpoint,
			UnitID:   u.Source.UnitID,
			Timeout:  time.Duration(u.Source.TimeoutMs) * time.Millisecond,
		})
	}

	reads, err := BuildReads(u.Queries)
	if err != nil {
		return nil, nil, fmt.Errorf("poller: unit %s: %w", u.ID, err)
	}

	// initial client (fail fast at startup)
	client, err := factory()
	if err != nil {
		return nil, nil, err
	}

	p, err := New(
		Config{
			UnitID:   u.ID,
			Interval: time.Duration(u.Poll.IntervalMs) * time.Millisecond,
			Reads:    reads,
		},
		client,
		factory,
	)
	if err != nil {
		return nil, nil, err
	}

	return p, p.Close, nil
}

// BuildReads classifies every configured query into a read block.
// An invalid query never reaches the poller.
func BuildReads(queries []cfg.QueryConfig) ([]ReadBlock, error) {
	reads := make([]ReadBlock, 0, len(queries))
	for _, q := range queries {
		mq := modal.Query{Type: q.Type, Block: q.Block}
		k, err := modal.ClassifyQuery(mq)
		if err != nil {
			return nil, err
		}
		reads = append(reads, ReadBlock{
			Query:    mq,
			Kind:     k,
			Address:  q.Address,
			Quantity: uint16(modal.PayloadRegisters(k)),
		})
	}
	return reads, nil
}
