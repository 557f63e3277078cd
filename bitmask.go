package bitwise

import (
	"math/bits"
	"strconv"
)

/*
bitwise.HasAllFlags(7, 3)                      // true
bitwise.BitMaskToBits(10)                      // [1 3]
bitwise.Bitmask(0x6).IsSet(0x2)                // true
bitwise.Bitmask(0).With(bitwise.BitToMask(4))  // 16
*/

// Width is the number of bits in a Bitmask, on every platform.
const Width = 64

const (
	// EmptyBitfield is a bitmask with no bits set.
	EmptyBitfield Bitmask = 0

	// AllBitfields is a bitmask with every bit set. As a signed value it is -1.
	AllBitfields Bitmask = ^EmptyBitfield
)

// Bitmask represents a bitmask value. Bit i, counted from the least
// significant bit, represents flag i.
//
// Bit positions are never range checked. A negative position panics like any
// negative shift count in Go, a position of Width or more shifts the bit out
// entirely so the mask for it is 0.
type Bitmask int64

// BitToMask returns a bitmask with only the given bit position set.
// Equivalent of 1 << bit.
func BitToMask(bit int) Bitmask {
	return ShiftBitsLeft(1, bit)
}

// BitMaskToBits returns the positions of all bits set in mask in ascending
// order. Negative masks are treated as their 64 bit two's complement, so
// AllBitfields yields every position from 0 to Width-1.
func BitMaskToBits(mask Bitmask) []int {
	u := uint64(mask)
	positions := make([]int, 0, bits.OnesCount64(u))
	for ; u != 0; u &= u - 1 {
		positions = append(positions, bits.TrailingZeros64(u))
	}
	return positions
}

// BitsToMask returns a bitmask with every listed position set. It is the
// reverse of BitMaskToBits. Repeated positions are harmless.
func BitsToMask(positions ...int) Bitmask {
	mask := EmptyBitfield
	for _, bit := range positions {
		mask |= BitToMask(bit)
	}
	return mask
}

// ShiftBitsRight shifts field right by n positions. The shift is arithmetic:
// negative fields are filled with ones from the left.
func ShiftBitsRight(field Bitmask, n int) Bitmask {
	return field >> n
}

// ShiftBitsLeft shifts field left by n positions.
func ShiftBitsLeft(field Bitmask, n int) Bitmask {
	return field << n
}

// GetBit returns the mask of bit in field if it is set, otherwise 0.
func GetBit(field Bitmask, bit int) Bitmask {
	return field & BitToMask(bit)
}

// HasBit returns true if bit is set in field.
func HasBit(field Bitmask, bit int) bool {
	return GetBit(field, bit) != 0
}

// SetBit returns field with bit set.
func SetBit(field Bitmask, bit int) Bitmask {
	return field | BitToMask(bit)
}

// ClearBit returns field with bit cleared.
func ClearBit(field Bitmask, bit int) Bitmask {
	return field &^ BitToMask(bit)
}

// FlipBit returns field with bit toggled.
func FlipBit(field Bitmask, bit int) Bitmask {
	return field ^ BitToMask(bit)
}

// GetFlags returns the bits of mask that are also set in field.
func GetFlags(field, mask Bitmask) Bitmask {
	return field & mask
}

// HasAnyFlag returns true if at least one bit of mask is set in field.
func HasAnyFlag(field, mask Bitmask) bool {
	return field&mask != 0
}

// HasAllFlags returns true if every bit of mask is set in field. An empty
// mask is always contained.
func HasAllFlags(field, mask Bitmask) bool {
	return field&mask == mask
}

// SetFlags returns field with every bit of mask set
func SetFlags(field, mask Bitmask) Bitmask {
	return field | mask
}

// ClearFlags returns field with every bit of mask cleared
func ClearFlags(field, mask Bitmask) Bitmask {
	return field &^ mask
}

// FlipFlags returns field with every bit of mask toggled
func FlipFlags(field, mask Bitmask) Bitmask {
	return field ^ mask
}

// Bits returns the positions of all set bits in ascending order.
func (value Bitmask) Bits() []int {
	return BitMaskToBits(value)
}

// Has returns true if the bit at position bit is set
func (value Bitmask) Has(bit int) bool {
	return HasBit(value, bit)
}

// IsSet returns true if any bit of test is set
func (value Bitmask) IsSet(test Bitmask) bool {
	return HasAnyFlag(value, test)
}

// HasAny returns true if any bit of mask is set
func (value Bitmask) HasAny(mask Bitmask) bool {
	return HasAnyFlag(value, mask)
}

// HasAll returns true if every bit of mask is set
func (value Bitmask) HasAll(mask Bitmask) bool {
	return HasAllFlags(value, mask)
}

// With returns the mask with the bits of mask added
func (value Bitmask) With(mask Bitmask) Bitmask {
	return SetFlags(value, mask)
}

// Without returns the mask with the bits of mask removed
func (value Bitmask) Without(mask Bitmask) Bitmask {
	return ClearFlags(value, mask)
}

// Toggle returns the mask with the bits of mask flipped
func (value Bitmask) Toggle(mask Bitmask) Bitmask {
	return FlipFlags(value, mask)
}

// IsEmpty returns true if no bits are set
func (value Bitmask) IsEmpty() bool {
	return value == EmptyBitfield
}

// String renders the mask in binary with a 0b prefix. Negative masks are shown
// as their full 64 bit two's complement.
func (value Bitmask) String() string {
	return "0b" + strconv.FormatUint(uint64(value), 2)
}
