package registry

import "errors"

var (
	// ErrZeroAddress is returned when asset or nft is the zero address. The
	// Registry holds no implementation address, so none is checked.
	ErrZeroAddress = errors.New("registry: zero address")
	// ErrInvalidSeats is returned when seats is outside [1, 20].
	ErrInvalidSeats = errors.New("registry: seats out of range")
)
