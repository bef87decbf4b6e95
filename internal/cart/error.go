package cart

import "errors"

var (
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidCoals    = errors.New("extra coals must not be negative")
)
