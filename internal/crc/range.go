package crc

import "errors"

var (
	// ErrInvalidRegisterWidth is returned when the register width is not 8, 16 or 32.
	ErrInvalidRegisterWidth = errors.New("register width must be 8, 16 or 32")
	// ErrMisalignedRange is returned when the range length is not a multiple of the access word size.
	ErrMisalignedRange = errors.New("range length is not a multiple of the word size")
)

// WordSize is the access word size of the engine, it consumes the image byte by byte.
const WordSize = 1

// Range is a half-open address interval [Start, End).
type Range struct {
	Start uint32
	End   uint32
}

// Len returns the number of addresses covered by the range.
func (r Range) Len() uint32 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// ValidateRange checks a range against the word size and register width
// constraints. It has no side effects and runs before any byte is read,
// a failure short-circuits the whole computation.
func ValidateRange(r Range, wordSize uint32, registerWidth uint) error {
	switch registerWidth {
	case 8, 16, 32:
	default:
		return ErrInvalidRegisterWidth
	}
	if r.Len()%wordSize != 0 {
		return ErrMisalignedRange
	}
	return nil
}
