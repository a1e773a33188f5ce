// internal/modal/wire_test.go
package modal

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// encodePayload builds the byte image ParsePayload expects.
func encodePayload(k Kind, block int16, p *Payload) []byte {
	out := make([]byte, headerSize, PayloadSize(k))
	binary.BigEndian.PutUint16(out[0:2], uint16(int16(k.Type())))
	binary.BigEndian.PutUint16(out[2:4], uint16(block))

	putAux := func(a AuxRecord) {
		var b [auxSize]byte
		binary.BigEndian.PutUint32(b[0:4], uint32(a.Data))
		b[4] = a.Flag1
		b[5] = a.Flag2
		out = append(out, b[:]...)
	}

	switch k.Strategy {
	case SingleModal, SingleOneShot:
		out = append(out, p.GData)
	case AllModal:
		out = append(out, p.GRData[:]...)
	case AllOneShot:
		out = append(out, p.GOneShot[:]...)
	case SingleOther, SingleAxis:
		putAux(p.Aux)
	case AllOther:
		for _, a := range p.RAux1 {
			putAux(a)
		}
	case AllAxis:
		for _, a := range p.RAux2 {
			putAux(a)
		}
	}
	return out
}

func TestPayloadRegisters(t *testing.T) {
	cases := []struct {
		k    Kind
		size int
		regs int
	}{
		{Kind{Strategy: SingleModal, Code: 3}, 5, 3},
		{Kind{Strategy: AllModal}, 25, 13},
		{Kind{Strategy: SingleOneShot}, 5, 3},
		{Kind{Strategy: AllOneShot}, 8, 4},
		{Kind{Strategy: SingleOther, Code: 100}, 10, 5},
		{Kind{Strategy: AllOther}, 166, 83},
		{Kind{Strategy: SingleAxis, Code: 200}, 10, 5},
		{Kind{Strategy: AllAxis}, 52, 26},
	}
	for _, c := range cases {
		if got := PayloadSize(c.k); got != c.size {
			t.Fatalf("PayloadSize(%v): got=%d want=%d", c.k, got, c.size)
		}
		if got := PayloadRegisters(c.k); got != c.regs {
			t.Fatalf("PayloadRegisters(%v): got=%d want=%d", c.k, got, c.regs)
		}
	}
}

func TestParsePayload_RoundTripThroughDecode(t *testing.T) {
	src := samplePayload()

	for _, k := range allKinds() {
		img := encodePayload(k, 1, src)

		p, err := ParsePayload(k, BlockNext, img)
		if err != nil {
			t.Fatalf("%v: ParsePayload err=%v", k, err)
		}
		if p.Type != 1 {
			t.Fatalf("%v: block got=%d want=1", k, p.Type)
		}

		want := Decode(k, src)
		got := Decode(k, p)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%v: decoded mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestParsePayload_FromRegisters(t *testing.T) {
	k := Kind{Strategy: SingleOther, Code: 107}
	// datano=107, block=0, data=1500, flag1=1, flag2=0 (+1 pad byte)
	regs := []uint16{107, 0, 0x0000, 0x05DC, 0x0100}

	p, err := ParsePayload(k, BlockActive, RegistersToBytes(regs))
	if err != nil {
		t.Fatalf("ParsePayload err=%v", err)
	}
	want := AuxRecord{Data: 1500, Flag1: 1}
	if diff := cmp.Diff(want, p.Aux); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestParsePayload_Short(t *testing.T) {
	k := Kind{Strategy: AllOther}
	img := encodePayload(k, 0, samplePayload())

	_, err := ParsePayload(k, BlockActive, img[:len(img)-1])
	if !errors.Is(err, ErrShortPayload) {
		t.Fatalf("expected ErrShortPayload, got %v", err)
	}
}

func TestParsePayload_TypeMismatch(t *testing.T) {
	img := encodePayload(Kind{Strategy: AllModal}, 0, samplePayload())

	_, err := ParsePayload(Kind{Strategy: SingleModal, Code: 4}, BlockActive, img)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestParsePayload_BlockMismatch(t *testing.T) {
	k := Kind{Strategy: AllOneShot}
	img := encodePayload(k, int16(BlockAfterNext), samplePayload())

	_, err := ParsePayload(k, BlockNext, img)
	if !errors.Is(err, ErrBlockMismatch) {
		t.Fatalf("expected ErrBlockMismatch, got %v", err)
	}
	if _, err := ParsePayload(k, BlockAfterNext, img); err != nil {
		t.Fatalf("matching block rejected: %v", err)
	}
}
