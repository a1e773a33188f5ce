// internal/modal/bits.go
package modal

// Status byte layout:
//
//	bit 7    commanded in this block
//	bit 0..6 code index into the relevant table
const (
	indexMask     byte = 0x7F
	commandedMask byte = 0x80
)

// Unpack splits a status byte into its code index and commanded flag.
func Unpack(b byte) (index byte, commanded bool) {
	return b & indexMask, b&commandedMask != 0
}
