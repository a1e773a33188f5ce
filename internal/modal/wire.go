// internal/modal/wire.go
package modal

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Payload byte image (big-endian, as mirrored into holding registers):
//
//	0-1  datano  int16  query type echoed by the controller
//	2-3  type    int16  queried block
//	4+   union member selected by the kind:
//	       g_data    1 byte
//	       g_rdata   21 bytes
//	       g_1shot   4 bytes
//	       aux       6 bytes  (int32 data, flag1, flag2)
//	       raux1     27 x aux
//	       raux2     8 x aux
const (
	headerSize = 4
	auxSize    = 6
)

var (
	ErrShortPayload = errors.New("modal: short payload")
	ErrTypeMismatch  = errors.New("modal: payload type mismatch")
	ErrBlockMismatch = errors.New("modal: payload block mismatch")
)

// PayloadSize returns the byte length of the image for a kind.
func PayloadSize(k Kind) int {
	switch k.Strategy {
	case SingleModal, SingleOneShot:
		return headerSize + 1
	case AllModal:
		return headerSize + ModalSlots
	case AllOneShot:
		return headerSize + OneShotSlots
	case SingleOther, SingleAxis:
		return headerSize + auxSize
	case AllOther:
		return headerSize + OtherSlots*auxSize
	case AllAxis:
		return headerSize + AxisSlots*auxSize
	}
	panic(fmt.Sprintf("modal: unhandled strategy %v", k.Strategy))
}

// PayloadRegisters returns the number of 16-bit registers the image occupies.
func PayloadRegisters(k Kind) int {
	return (PayloadSize(k) + 1) / 2
}

// ParsePayload builds a Payload from its byte image. The echoed header must
// match both the kind and the queried block. Trailing bytes are ignored.
func ParsePayload(k Kind, block Block, data []byte) (*Payload, error) {
	need := PayloadSize(k)
	if len(data) < need {
		return nil, fmt.Errorf("%w: kind=%s got=%d want=%d", ErrShortPayload, k, len(data), need)
	}

	p := &Payload{
		DataNo: int16(binary.BigEndian.Uint16(data[0:2])),
		Type:   int16(binary.BigEndian.Uint16(data[2:4])),
	}
	if int(p.DataNo) != k.Type() {
		return nil, fmt.Errorf("%w: kind=%s datano=%d", ErrTypeMismatch, k, p.DataNo)
	}
	if Block(p.Type) != block {
		return nil, fmt.Errorf("%w: kind=%s want=%s got=%d", ErrBlockMismatch, k, block, p.Type)
	}

	body := data[headerSize:need]

	switch k.Strategy {
	case SingleModal, SingleOneShot:
		p.GData = body[0]
	case AllModal:
		copy(p.GRData[:], body)
	case AllOneShot:
		copy(p.GOneShot[:], body)
	case SingleOther, SingleAxis:
		p.Aux = readAux(body)
	case AllOther:
		for i := range p.RAux1 {
			p.RAux1[i] = readAux(body[i*auxSize:])
		}
	case AllAxis:
		for i := range p.RAux2 {
			p.RAux2[i] = readAux(body[i*auxSize:])
		}
	default:
		panic(fmt.Sprintf("modal: unhandled strategy %v", k.Strategy))
	}

	return p, nil
}

// RegistersToBytes unpacks holding registers into their big-endian bytes.
func RegistersToBytes(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}

func readAux(b []byte) AuxRecord {
	return AuxRecord{
		Data:  int32(binary.BigEndian.Uint32(b[0:4])),
		Flag1: b[4],
		Flag2: b[5],
	}
}
