// internal/status/snapshot.go
package status

// Snapshot is what the status writer is allowed to deliver for one unit.
// No history beyond the current state.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	SecondsInError uint16
	UnknownCodes   uint16
}

// Live returns the incrementally written slots in slot order.
func (s Snapshot) Live() [LiveSlots]uint16 {
	return [LiveSlots]uint16{
		SlotHealthCode:     s.Health,
		SlotLastErrorCode:  s.LastErrorCode,
		SlotSecondsInError: s.SecondsInError,
		SlotUnknownCodes:   s.UnknownCodes,
	}
}
