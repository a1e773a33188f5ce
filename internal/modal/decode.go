// internal/modal/decode.go
package modal

import (
	"fmt"

	"github.com/tamzrod/modal-replicator/internal/gcode"
)

// Field is one decoded record: GCodeField or AuxField.
type Field interface {
	isField()
}

// GCodeField is a decoded modal or one-shot G-code.
type GCodeField struct {
	Mnemonic  string
	Commanded bool
}

// AuxField is a decoded aux or axis command triple. Flags are passed through.
type AuxField struct {
	Raw   int32
	Flag1 byte
	Flag2 byte
}

func (GCodeField) isField() {}
func (AuxField) isField()   {}

// Result is the decoded form of one payload.
// Fields keep the source index order.
type Result struct {
	Kind   Kind
	Fields []Field
}

// Field returns the first field. For single strategies it is the only one.
func (r Result) Field() Field {
	if len(r.Fields) == 0 {
		return nil
	}
	return r.Fields[0]
}

// Len returns the number of decoded fields a kind produces.
func Len(k Kind) int {
	switch k.Strategy {
	case SingleModal, SingleOneShot, SingleOther, SingleAxis:
		return 1
	case AllModal:
		return ModalSlots
	case AllOneShot:
		return OneShotSlots
	case AllOther:
		return OtherSlots
	case AllAxis:
		return AxisSlots
	}
	panic(fmt.Sprintf("modal: unhandled strategy %v", k.Strategy))
}

// Decode turns a raw payload into records for an already classified kind.
// Pure: it reads only p and the immutable code tables.
func Decode(k Kind, p *Payload) Result {
	res := Result{Kind: k, Fields: make([]Field, 0, Len(k))}

	switch k.Strategy {
	case SingleModal:
		res.Fields = append(res.Fields, modalField(k.Code, p.GData))

	case AllModal:
		for g := 0; g < ModalSlots; g++ {
			res.Fields = append(res.Fields, modalField(g, p.GRData[g]))
		}

	case SingleOneShot:
		res.Fields = append(res.Fields, oneShotField(p.GData))

	case AllOneShot:
		for _, b := range p.GOneShot {
			res.Fields = append(res.Fields, oneShotField(b))
		}

	case SingleOther, SingleAxis:
		res.Fields = append(res.Fields, auxField(p.Aux))

	case AllOther:
		for _, a := range p.RAux1 {
			res.Fields = append(res.Fields, auxField(a))
		}

	case AllAxis:
		for _, a := range p.RAux2 {
			res.Fields = append(res.Fields, auxField(a))
		}

	default:
		panic(fmt.Sprintf("modal: unhandled strategy %v", k.Strategy))
	}

	return res
}

// Label names the i-th field of a result of kind k for display.
func Label(k Kind, i int) string {
	switch k.Strategy {
	case SingleModal:
		return gcode.GroupName(k.Code)
	case AllModal:
		return gcode.GroupName(i)
	case SingleOneShot, AllOneShot:
		return "one-shot"
	case SingleOther:
		return gcode.OtherAddress(k.Code)
	case AllOther:
		return gcode.OtherAddress(gcode.OtherFirst + i)
	case SingleAxis:
		return fmt.Sprintf("axis %d", k.Code-axisFirst+1)
	case AllAxis:
		return fmt.Sprintf("axis %d", i+1)
	}
	panic(fmt.Sprintf("modal: unhandled strategy %v", k.Strategy))
}

func modalField(group int, b byte) GCodeField {
	idx, cmd := Unpack(b)
	return GCodeField{Mnemonic: gcode.Modal(group, idx), Commanded: cmd}
}

func oneShotField(b byte) GCodeField {
	idx, cmd := Unpack(b)
	return GCodeField{Mnemonic: gcode.OneShot(idx), Commanded: cmd}
}

func auxField(a AuxRecord) AuxField {
	return AuxField{Raw: a.Data, Flag1: a.Flag1, Flag2: a.Flag2}
}
