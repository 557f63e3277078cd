package bitwise

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Flag is implemented by enumerated types whose variants are bound to bit
// positions. Bit returns the variant's position, which should lie in
// [0, Width) and be unique among the variants of its type.
type Flag interface {
	Bit() int
}

// Lookup returns the variant bound to bit, or false if there is none.
type Lookup[F Flag] func(bit int) (F, bool)

// Enum converts between bit positions, bitmasks and the variants of a flag
// enumeration. It is immutable once built and safe for concurrent use.
type Enum[F Flag] struct {
	lookup   Lookup[F]
	variants []F
}

// BitOf returns an integer discriminant as a bit position. It lets integer
// backed enumerations implement Flag in one line:
//
//	func (p Permission) Bit() int { return bitwise.BitOf(p) }
func BitOf[I constraints.Integer](v I) int {
	return int(v)
}

// ToMask returns the mask for a single flag.
func ToMask[F Flag](f F) Bitmask {
	return BitToMask(f.Bit())
}

// NewEnum builds an Enum from the full list of variants. Uniqueness of bit
// positions is not enforced; when two variants share a position the first one
// listed is the one returned by lookups.
func NewEnum[F Flag](variants ...F) *Enum[F] {
	sorted := slices.Clone(variants)
	slices.SortStableFunc(sorted, func(a, b F) int {
		return a.Bit() - b.Bit()
	})
	sorted = slices.CompactFunc(sorted, func(a, b F) bool {
		return a.Bit() == b.Bit()
	})

	byBit := make(map[int]F, len(sorted))
	for _, v := range sorted {
		byBit[v.Bit()] = v
	}

	return &Enum[F]{
		lookup: func(bit int) (F, bool) {
			v, ok := byBit[bit]
			return v, ok
		},
		variants: sorted,
	}
}

// NewEnumFunc builds an Enum around a caller supplied lookup. Only positions
// in [0, Width) are ever probed by Mask and Variants.
func NewEnumFunc[F Flag](lookup Lookup[F]) *Enum[F] {
	e := &Enum[F]{lookup: lookup}
	for bit := 0; bit < Width; bit++ {
		if v, ok := lookup(bit); ok {
			e.variants = append(e.variants, v)
		}
	}
	return e
}

// TryFromBit returns the variant bound to bit. The boolean is false when bit
// is not bound, which is not an error.
func (e *Enum[F]) TryFromBit(bit int) (F, bool) {
	return e.lookup(bit)
}

// FromBit returns the variant bound to bit, or an *InvalidBitPositionError.
func (e *Enum[F]) FromBit(bit int) (F, error) {
	v, ok := e.lookup(bit)
	if !ok {
		return v, errors.WithStack(&InvalidBitPositionError{Bit: bit})
	}
	return v, nil
}

// FromMask decodes mask into its variants, ordered by ascending bit position.
// If any set bit is not bound to a variant the whole decode fails and no
// variants are returned.
func (e *Enum[F]) FromMask(mask Bitmask) ([]F, error) {
	positions := BitMaskToBits(mask)
	flags := make([]F, 0, len(positions))
	for _, bit := range positions {
		v, err := e.FromBit(bit)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding mask %d", mask)
		}
		flags = append(flags, v)
	}
	return flags, nil
}

// ToMask combines flags into a single mask. It is the reverse of FromMask.
func (e *Enum[F]) ToMask(flags ...F) Bitmask {
	mask := EmptyBitfield
	for _, f := range flags {
		mask |= ToMask(f)
	}
	return mask
}

// Mask returns the union of every defined variant.
func (e *Enum[F]) Mask() Bitmask {
	return e.ToMask(e.variants...)
}

// Validate returns nil if every bit set in mask is bound to a variant.
// Otherwise it reports the lowest unbound position.
func (e *Enum[F]) Validate(mask Bitmask) error {
	unbound := ClearFlags(mask, e.Mask())
	if unbound.IsEmpty() {
		return nil
	}
	bit := unbound.Bits()[0]
	return errors.Wrapf(&InvalidBitPositionError{Bit: bit}, "validating mask %d", mask)
}

// Variants returns the defined variants in ascending bit order.
func (e *Enum[F]) Variants() []F {
	return slices.Clone(e.variants)
}

// Describe returns a label for every set bit of mask in ascending order.
// Variants are formatted with fmt, so a String method is honoured. Unbound
// bits are labelled bit(N).
func (e *Enum[F]) Describe(mask Bitmask) []string {
	positions := BitMaskToBits(mask)
	list := make([]string, 0, len(positions))
	for _, bit := range positions {
		if v, ok := e.lookup(bit); ok {
			list = append(list, fmt.Sprint(v))
			continue
		}
		list = append(list, fmt.Sprintf("bit(%d)", bit))
	}
	return list
}
