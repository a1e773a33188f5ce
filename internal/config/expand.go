// internal/config/expand.go
package config

import (
	"fmt"

	"github.com/tamzrod/modal-replicator/internal/image"
	"github.com/tamzrod/modal-replicator/internal/modal"
)

// ExpandQueries returns the unit's explicit queries followed by the
// queries its read_all entries stand for. It does not mutate the unit.
func (u UnitConfig) ExpandQueries() ([]QueryConfig, error) {
	out := append([]QueryConfig(nil), u.Queries...)

	for ri, ra := range u.ReadAll {
		src := int(ra.Address)
		dst := int(ra.TargetAddress)

		for _, q := range modal.AllQueries(modal.Block(ra.Block)) {
			k, err := modal.ClassifyQuery(q)
			if err != nil {
				return nil, fmt.Errorf("read_all %d: %w", ri, err)
			}
			if src > 0xFFFF || dst > 0xFFFF {
				return nil, fmt.Errorf("read_all %d: layout exceeds register space", ri)
			}

			out = append(out, QueryConfig{
				Type:          q.Type,
				Block:         q.Block,
				Address:       uint16(src),
				TargetAddress: uint16(dst),
			})

			src += modal.PayloadRegisters(k)
			dst += image.Span(k)
		}
	}

	return out, nil
}
