package ring

import (
	"fmt"
)

// LengthMismatchError is returned when an operation that requires operands
// of equal ring degree is given polynomials of different lengths.
type LengthMismatchError struct {
	Left, Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("ring degree mismatch: %d != %d", e.Left, e.Right)
}

// RangeError is returned when a coefficient cannot be represented
// in the requested output integer type.
type RangeError struct {
	Index int
	Value uint64
	Type  string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("coefficient %d (value %d) does not fit in %s", e.Index, e.Value, e.Type)
}
