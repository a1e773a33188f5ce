// internal/image/encode.go
package image

import (
	"fmt"

	"github.com/tamzrod/modal-replicator/internal/modal"
)

// EncodeResult flattens a decoded result into consecutive record blocks.
// Layout is protocol-locked. No IO. No side effects.
func EncodeResult(res modal.Result) []uint16 {
	regs := make([]uint16, 0, len(res.Fields)*RecordRegisters)
	for _, f := range res.Fields {
		regs = append(regs, EncodeField(f)...)
	}
	return regs
}

// EncodeField encodes one record block.
func EncodeField(f modal.Field) []uint16 {
	regs := make([]uint16, RecordRegisters)

	switch v := f.(type) {
	case modal.GCodeField:
		regs[RegTag] = TagGCode
		if v.Commanded {
			regs[RegCommanded] = 1
		}
		copy(regs[RegMnemonicStart:], PackASCII(v.Mnemonic, RegMnemonicRegs))

	case modal.AuxField:
		u := uint32(v.Raw)
		regs[RegTag] = TagAux
		regs[RegAuxRawHi] = uint16(u >> 16)
		regs[RegAuxRawLo] = uint16(u)
		regs[RegAuxFlags] = uint16(v.Flag1)<<8 | uint16(v.Flag2)

	case nil:
		// TagEmpty

	default:
		panic(fmt.Sprintf("image: unhandled field type %T", f))
	}

	return regs
}

// Span returns the number of registers a kind's result occupies.
func Span(k modal.Kind) int {
	return modal.Len(k) * RecordRegisters
}

// PackASCII packs s into n registers, two bytes per register, big-endian.
// Non-printable bytes become '?'; the tail is NUL padded.
func PackASCII(s string, n int) []uint16 {
	out := make([]uint16, n)

	b := []byte(s)
	if len(b) > n*2 {
		b = b[:n*2]
	}

	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < n*2; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
