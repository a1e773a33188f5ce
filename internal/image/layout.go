// internal/image/layout.go
package image

// Record image layout constants.
// These values define the published register map and MUST NOT be configurable.

// RecordRegisters is the fixed number of registers per decoded record.
const RecordRegisters = 8

// ---- REGISTER INDICES ----

// RegTag holds the record tag.
const RegTag = 0

// RegCommanded holds the commanded flag of a G-code record (0/1).
const RegCommanded = 1

// RegMnemonicStart is the first register of the packed mnemonic.
const RegMnemonicStart = 2

// RegMnemonicRegs is the number of registers reserved for the mnemonic.
const RegMnemonicRegs = RecordRegisters - RegMnemonicStart

// MnemonicMaxChars is the number of ASCII characters that fit the mnemonic area.
const MnemonicMaxChars = RegMnemonicRegs * 2

// Aux records: raw value split hi/lo, then both flags in one register.
const (
	RegAuxRawHi = 1
	RegAuxRawLo = 2
	RegAuxFlags = 3
)

// ---- TAGS ----

// TagEmpty marks an unused record.
const TagEmpty uint16 = 0

// TagGCode marks a G-code record.
const TagGCode uint16 = 1

// TagAux marks an aux/axis record.
const TagAux uint16 = 2
