package dictionary

import "errors"

var (
	// ErrInvalidCharacter is returned when a word holds a byte outside a-z.
	ErrInvalidCharacter = errors.New("character outside a-z")

	// ErrTooLarge is returned when a dictionary does not fit the fixed
	// width fields of an encoding.
	ErrTooLarge = errors.New("dictionary too large for encoding")
)
