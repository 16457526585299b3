package packing

import "errors"

var (
	// ErrInvalidCapacity is returned when the bin capacity is zero, negative, or not a finite number.
	ErrInvalidCapacity = errors.New("capacity must be a positive finite number")
	// ErrInvalidWeight is returned when a weight is non-positive, not finite, or exceeds the capacity.
	ErrInvalidWeight = errors.New("invalid weight")
	// ErrOverCapacity is returned when a placement would push a bin past its capacity.
	// The packing algorithms check CanFit before every placement, so this error is a
	// defensive invariant guard rather than a reachable failure mode.
	ErrOverCapacity = errors.New("placement would exceed bin capacity")
	// ErrUnknownStrategy is returned when a strategy name does not match any packer.
	ErrUnknownStrategy = errors.New("unknown packing strategy")
)
