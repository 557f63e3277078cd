// Package bitwise provides bitmask arithmetic and a binding between flag
// enumerations and the bits they occupy.
//
// # Bitmasks
//
// A Bitmask is a signed 64 bit integer. Bit i, counted from the least
// significant bit, is flag i. The free functions (BitToMask, SetBit,
// HasAllFlags and friends) are pure and never fail: positions are not range
// checked and follow Go's shift rules, so a negative position panics and a
// position of 64 or more contributes nothing.
//
// # Flag enumerations
//
// A type opts in by implementing Flag:
//
//	type Permission uint8
//
//	const (
//		Read Permission = iota
//		Write
//		Execute
//	)
//
//	func (p Permission) Bit() int { return bitwise.BitOf(p) }
//
//	var Permissions = bitwise.NewEnum(Read, Write, Execute)
//
// Permissions.FromMask(5) then yields [Read Execute]. Strict lookups
// (FromBit, FromMask, Validate) fail with an *InvalidBitPositionError naming
// the unbound position; TryFromBit reports a miss with a boolean instead.
package bitwise
