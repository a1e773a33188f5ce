// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tamzrod/modal-replicator/internal/gcode"
	"github.com/tamzrod/modal-replicator/internal/modal"
)

const unknownMnemonic = gcode.Unknown

// Client abstracts the gateway reads the poller needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error)
}

// Factory opens a new Client. One attempt per call.
type Factory func() (Client, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	UnitID   string
	Interval time.Duration
	Reads    []ReadBlock
}

// Poller is a clock-driven reader + decoder.
type Poller struct {
	cfg     Config
	client  Client
	factory Factory
}

// New creates a poller with immutable config.
// factory may be nil; then a failed client is kept.
func New(cfg Config, client Client, factory Factory) (*Poller, error) {
	if cfg.UnitID == "" {
		return nil, errors.New("poller: unit id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Reads) == 0 {
		return nil, errors.New("poller: at least one read block required")
	}
	for _, rb := range cfg.Reads {
		if int(rb.Quantity) != modal.PayloadRegisters(rb.Kind) {
			return nil, fmt.Errorf("poller: read %s quantity %d does not match payload size", rb.Kind, rb.Quantity)
		}
	}
	return &Poller{cfg: cfg, client: client, factory: factory}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any read or decode failure aborts the cycle.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		UnitID: p.cfg.UnitID,
		At:     time.Now(),
	}

	if p.client == nil {
		if p.factory == nil {
			res.Err = errors.New("poller: no client")
			return res
		}
		c, err := p.factory()
		if err != nil {
			res.Err = fmt.Errorf("poller: reconnect: %w", err)
			return res
		}
		p.client = c
	}

	blocks := make([]BlockResult, 0, len(p.cfg.Reads))

	for _, rb := range p.cfg.Reads {
		regs, err := p.client.ReadHoldingRegisters(rb.Address, rb.Quantity)
		if err != nil {
			p.dropClient()
			res.Err = fmt.Errorf("poller: read %s at %d: %w", rb.Kind, rb.Address, err)
			return res
		}

		payload, err := modal.ParsePayload(rb.Kind, modal.Block(rb.Query.Block), modal.RegistersToBytes(regs))
		if err != nil {
			res.Err = fmt.Errorf("poller: window at %d: %w", rb.Address, err)
			return res
		}

		blocks = append(blocks, BlockResult{
			ReadBlock: rb,
			Result:    modal.Decode(rb.Kind, payload),
		})
	}

	// Commit only if all reads succeeded
	res.Blocks = blocks
	return res
}

// dropClient discards the client after a transport failure so the
// factory opens a fresh one on a future tick.
func (p *Poller) dropClient() {
	if p.factory == nil {
		return
	}
	if c, ok := p.client.(io.Closer); ok {
		_ = c.Close()
	}
	p.client = nil
}

// Close releases the current client, if any.
func (p *Poller) Close() error {
	if c, ok := p.client.(io.Closer); ok {
		p.client = nil
		return c.Close()
	}
	return nil
}
