// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/modal-replicator/internal/config"
	"github.com/tamzrod/modal-replicator/internal/modal"
)

// fakeClient serves holding registers from a sparse map.
type fakeClient struct {
	regs   map[uint16]uint16
	fail   bool
	reads  int
	closed bool
}

func (f *fakeClient) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	f.reads++
	if f.fail {
		return nil, errors.New("gateway down")
	}
	out := make([]uint16, qty)
	for i := range out {
		out[i] = f.regs[addr+uint16(i)]
	}
	return out, nil
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

// allModalWindow: datano=-1, block=0, groups 0..20 (21 bytes + pad).
func allModalWindow(base uint16, groups [modal.ModalSlots]byte) map[uint16]uint16 {
	b := append([]byte{0xFF, 0xFF, 0x00, 0x00}, groups[:]...)
	b = append(b, 0) // pad to whole registers
	m := make(map[uint16]uint16)
	for i := 0; i < len(b); i += 2 {
		m[base+uint16(i/2)] = uint16(b[i])<<8 | uint16(b[i+1])
	}
	return m
}

func reads(t *testing.T, qs ...config.QueryConfig) []ReadBlock {
	t.Helper()
	rb, err := BuildReads(qs)
	if err != nil {
		t.Fatalf("BuildReads err=%v", err)
	}
	return rb
}

func TestPollOnce_Success(t *testing.T) {
	var groups [modal.ModalSlots]byte
	groups[0] = 0x81  // G01 commanded
	groups[13] = 0x01 // G55
	groups[1] = 0x05  // not in plane table

	cli := &fakeClient{regs: allModalWindow(40, groups)}

	p, err := New(Config{
		UnitID:   "u1",
		Interval: 1 * time.Second,
		Reads:    reads(t, config.QueryConfig{Type: -1, Block: 0, Address: 40}),
	}, cli, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce()
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if len(res.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(res.Blocks))
	}

	fields := res.Blocks[0].Result.Fields
	if len(fields) != modal.ModalSlots {
		t.Fatalf("expected %d fields, got %d", modal.ModalSlots, len(fields))
	}
	if got := fields[0].(modal.GCodeField); got.Mnemonic != "G01" || !got.Commanded {
		t.Fatalf("group 0 got=%+v", got)
	}
	if got := fields[13].(modal.GCodeField); got.Mnemonic != "G55" || got.Commanded {
		t.Fatalf("group 13 got=%+v", got)
	}
	if res.UnknownCodes() != 1 {
		t.Fatalf("unknown codes got=%d want=1", res.UnknownCodes())
	}
}

func TestPollOnce_ReadFailure(t *testing.T) {
	p, err := New(Config{
		UnitID:   "u1",
		Interval: 1 * time.Second,
		Reads:    reads(t, config.QueryConfig{Type: -1, Block: 0}),
	}, &fakeClient{fail: true}, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce()
	if res.Err == nil {
		t.Fatalf("expected error, got nil")
	}
	if res.Blocks != nil {
		t.Fatalf("expected no blocks on failure")
	}
}

func TestPollOnce_TypeMismatchAbortsCycle(t *testing.T) {
	var groups [modal.ModalSlots]byte
	cli := &fakeClient{regs: allModalWindow(0, groups)} // datano=-1

	p, err := New(Config{
		UnitID:   "u1",
		Interval: 1 * time.Second,
		Reads: reads(t,
			config.QueryConfig{Type: -1, Block: 0, Address: 0},
			config.QueryConfig{Type: 5, Block: 0, Address: 0}, // same window, wrong datano
		),
	}, cli, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce()
	if !errors.Is(res.Err, modal.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", res.Err)
	}
	if res.Blocks != nil {
		t.Fatalf("expected no partial blocks")
	}
}

func TestPollOnce_BlockMismatchAbortsCycle(t *testing.T) {
	var groups [modal.ModalSlots]byte
	cli := &fakeClient{regs: allModalWindow(0, groups)} // echoes block 0

	p, err := New(Config{
		UnitID:   "u1",
		Interval: 1 * time.Second,
		Reads:    reads(t, config.QueryConfig{Type: -1, Block: 2, Address: 0}),
	}, cli, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce()
	if !errors.Is(res.Err, modal.ErrBlockMismatch) {
		t.Fatalf("expected ErrBlockMismatch, got %v", res.Err)
	}
	if res.Blocks != nil {
		t.Fatalf("expected no partial blocks")
	}
}

func TestPollOnce_ReconnectsThroughFactory(t *testing.T) {
	bad := &fakeClient{fail: true}
	var groups [modal.ModalSlots]byte
	good := &fakeClient{regs: allModalWindow(0, groups)}

	opened := 0
	factory := func() (Client, error) {
		opened++
		return good, nil
	}

	p, err := New(Config{
		UnitID:   "u1",
		Interval: 1 * time.Second,
		Reads:    reads(t, config.QueryConfig{Type: -1, Block: 0}),
	}, bad, factory)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if res := p.PollOnce(); res.Err == nil {
		t.Fatalf("expected first cycle to fail")
	}
	if !bad.closed {
		t.Fatalf("failed client should be closed")
	}

	if res := p.PollOnce(); res.Err != nil {
		t.Fatalf("second cycle err=%v", res.Err)
	}
	if opened != 1 {
		t.Fatalf("factory calls got=%d want=1", opened)
	}
}

func TestNew_QuantityMismatchRejected(t *testing.T) {
	rb := reads(t, config.QueryConfig{Type: -2, Block: 0})
	rb[0].Quantity = 10

	if _, err := New(Config{UnitID: "u1", Interval: time.Second, Reads: rb}, &fakeClient{}, nil); err == nil {
		t.Fatalf("expected quantity mismatch error")
	}
}

func TestBuildReads_InvalidQuery(t *testing.T) {
	_, err := BuildReads([]config.QueryConfig{{Type: 400, Block: 0}})
	if !errors.Is(err, modal.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestRun_PollsImmediatelyAndStopsOnCancel(t *testing.T) {
	cli := &fakeClient{regs: allModalWindow(0, [modal.ModalSlots]byte{})}

	p, err := New(Config{
		UnitID:   "u1",
		Interval: time.Hour,
		Reads:    reads(t, config.QueryConfig{Type: -1, Block: 0, Address: 0}),
	}, cli, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan PollResult)
	done := make(chan struct{})
	go func() {
		p.Run(ctx, out)
		close(done)
	}()

	select {
	case res := <-out:
		if res.Err != nil || res.UnitID != "u1" {
			t.Fatalf("unexpected first result: %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no immediate poll")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}
