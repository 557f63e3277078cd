package bitwise

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidBitPosition is matched by errors.Is for every
// InvalidBitPositionError.
var ErrInvalidBitPosition = errors.New("invalid bit position")

// InvalidBitPositionError reports a bit position that no variant of a flag
// enumeration is bound to.
type InvalidBitPositionError struct {
	Bit int
}

func (e *InvalidBitPositionError) Error() string {
	return fmt.Sprintf("flipped bit in position `%d` is not in the range of valid bits", e.Bit)
}

func (e *InvalidBitPositionError) Is(target error) bool {
	return target == ErrInvalidBitPosition
}
