// internal/status/encode.go
package status

import "github.com/tamzrod/modal-replicator/internal/image"

// Encode converts a Snapshot plus device name into a full status block.
// Reserved slots stay zero. No IO. No side effects.
func Encode(s Snapshot, deviceName string) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	live := s.Live()
	copy(regs, live[:])
	copy(regs[SlotDeviceNameStart:], image.PackASCII(deviceName, SlotDeviceNameSlots))

	return regs
}
