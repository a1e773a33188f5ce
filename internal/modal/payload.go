// internal/modal/payload.go
package modal

// Payload geometry. Fixed by the controller; MUST NOT be configurable.
const (
	ModalSlots   = 21 // g_rdata
	OneShotSlots = 4  // g_1shot
	OtherSlots   = 27 // raux1
	AxisSlots    = 8  // raux2
)

// AuxRecord is one aux/axis triple as delivered by the controller.
type AuxRecord struct {
	Data  int32
	Flag1 byte
	Flag2 byte
}

// Payload is one raw modal response. Only the member selected by the
// query kind carries data; the rest stay zero.
type Payload struct {
	DataNo int16 // query type echoed by the controller
	Type   int16 // queried block

	GData    byte
	GRData   [ModalSlots]byte
	GOneShot [OneShotSlots]byte
	Aux      AuxRecord
	RAux1    [OtherSlots]AuxRecord
	RAux2    [AxisSlots]AuxRecord
}
