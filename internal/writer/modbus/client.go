// internal/writer/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// MaxWriteRegisters is the Modbus limit for one FC 16 request.
const MaxWriteRegisters = 123

// EndpointClient is a single TCP connection to one target endpoint.
// It serializes requests because it mutates SlaveId per write.
type EndpointClient struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("writer modbus: connect %s: %w", cfg.Endpoint, err)
	}

	return &EndpointClient{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// WriteRegisters writes regs starting at addr (FC 16), split into
// MaxWriteRegisters chunks. Chunks are written in address order.
func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID

	for _, ch := range chunks(addr, regs, MaxWriteRegisters) {
		if _, err := c.client.WriteMultipleRegisters(ch.addr, uint16(len(ch.regs)), packRegisters(ch.regs)); err != nil {
			return err
		}
	}
	return nil
}

type chunk struct {
	addr uint16
	regs []uint16
}

func chunks(addr uint16, regs []uint16, limit int) []chunk {
	var out []chunk
	for off := 0; off < len(regs); off += limit {
		end := off + limit
		if end > len(regs) {
			end = len(regs)
		}
		out = append(out, chunk{addr: addr + uint16(off), regs: regs[off:end]})
	}
	return out
}

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
