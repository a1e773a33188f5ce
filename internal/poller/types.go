// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/modal-replicator/internal/modal"
)

// ReadBlock is one classified modal query and the gateway window holding
// its payload. Built only from queries that passed Classify.
type ReadBlock struct {
	Query    modal.Query
	Kind     modal.Kind
	Address  uint16
	Quantity uint16 // modal.PayloadRegisters(Kind)
}

// BlockResult is the decoded result of a single window.
type BlockResult struct {
	ReadBlock
	Result modal.Result
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	UnitID string
	At     time.Time

	Blocks []BlockResult
	Err    error // non-nil means the poll cycle failed
}

// UnknownCodes counts G-code fields that resolved to gcode.Unknown.
func (r PollResult) UnknownCodes() int {
	n := 0
	for _, b := range r.Blocks {
		for _, f := range b.Result.Fields {
			if g, ok := f.(modal.GCodeField); ok && g.Mnemonic == unknownMnemonic {
				n++
			}
		}
	}
	return n
}
