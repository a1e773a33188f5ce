// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/modal-replicator/internal/image"
	"github.com/tamzrod/modal-replicator/internal/poller"
)

// endpointClient is the exact contract the writers use.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

type recordWriter struct {
	plan    Plan
	clients map[string]endpointClient
}

// New builds the record writer for one unit.
func New(plan Plan, clients map[string]endpointClient) Writer {
	return &recordWriter{
		plan:    plan,
		clients: clients,
	}
}

// Write encodes every decoded block into its record image and writes it
// to all targets. Failed cycles write nothing; targets keep the last image.
func (w *recordWriter) Write(res poller.PollResult) error {
	if res.Err != nil {
		return nil
	}

	var errs []string

	for _, tgt := range w.plan.Targets {
		cli := w.clients[tgt.Endpoint]
		if cli == nil {
			errs = append(errs, fmt.Sprintf("writer: missing client for endpoint %s", tgt.Endpoint))
			continue
		}

		for _, b := range res.Blocks {
			addr, ok := w.plan.Records[b.Query]
			if !ok {
				errs = append(errs, fmt.Sprintf("writer: no record placement for %s", b.Kind))
				continue
			}

			regs := image.EncodeResult(b.Result)
			if err := cli.WriteRegisters(tgt.UnitID, addr, regs); err != nil {
				errs = append(errs, fmt.Sprintf(
					"writer: ep=%s unit=%d kind=%s addr=%d err=%v",
					tgt.Endpoint, tgt.UnitID, b.Kind, addr, err,
				))
			}
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}

	return nil
}
