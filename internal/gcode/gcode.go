// internal/gcode/gcode.go
package gcode

// Unknown is returned for any code absent from its table.
// It is a value, not an error.
const Unknown = "Unknown"

// ModalGroups is the number of modal G-code groups (0..20).
const ModalGroups = 21

// Other address subtypes span 100..126 inclusive.
const (
	OtherFirst = 100
	OtherLast  = 126
)

// Modal resolves a modal G-code mnemonic for (group, value).
// Total: any group or value outside the tables yields Unknown.
func Modal(group int, value byte) string {
	if group < 0 || group >= ModalGroups {
		return Unknown
	}
	if s, ok := modalTable[group][value]; ok {
		return s
	}
	return Unknown
}

// OneShot resolves a one-shot G-code mnemonic.
// The one-shot table is flat: it is not keyed by group.
func OneShot(value byte) string {
	if s, ok := oneShotTable[value]; ok {
		return s
	}
	return Unknown
}

// OtherAddress resolves the address letter of an "other" subtype (100..126).
// Several subtypes share a letter (106, 125, 126 → "M") and 102 maps to "-".
func OtherAddress(subtype int) string {
	if subtype < OtherFirst || subtype > OtherLast {
		return Unknown
	}
	return otherTable[subtype-OtherFirst]
}

// GroupName returns the display name of a modal group.
func GroupName(group int) string {
	if group < 0 || group >= ModalGroups {
		return Unknown
	}
	return groupNames[group]
}
