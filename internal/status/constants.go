// internal/status/constants.go
package status

// Unit status block layout constants.
// These values define the published register map and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of registers per unit status block.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the unit health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last poll/decode error code.
const SlotLastErrorCode = 1

// SlotSecondsInError holds how long (seconds) the unit has been in error.
const SlotSecondsInError = 2

// SlotUnknownCodes holds the number of fields that resolved to "Unknown"
// in the last successful cycle.
const SlotUnknownCodes = 3

// LiveSlots is the number of leading slots written incrementally.
const LiveSlots = 4

// Slots 4..10 are reserved.
const (
	SlotReservedStart = 4
	SlotReservedEnd   = 10
)

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// DeviceNameMaxChars is the maximum number of ASCII characters stored.
const DeviceNameMaxChars = SlotDeviceNameSlots * 2

// ---- HEALTH CODES ----

const (
	HealthUnknown  uint16 = 0
	HealthOK       uint16 = 1
	HealthError    uint16 = 2
	HealthStale    uint16 = 3
	HealthDisabled uint16 = 4
)

// ---- ERROR CODES ----

// Error codes reported in SlotLastErrorCode.
// Modbus exception codes (1..11) are passed through unchanged.
const (
	ErrCodeNone          uint16 = 0
	ErrCodeGeneric       uint16 = 0xFF
	ErrCodeShortPayload  uint16 = 0x200
	ErrCodeTypeMismatch  uint16 = 0x201
	ErrCodeBlockMismatch uint16 = 0x202
)
