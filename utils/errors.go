package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind shared by every rejected input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivideByZero is returned by Lcm when both operands are zero.
	ErrDivideByZero = fmt.Errorf("%w: divide by zero", ErrInvalidArgument)

	// ErrInvalidRange is returned when a lower bound exceeds its upper bound.
	ErrInvalidRange = fmt.Errorf("%w: min is greater than max", ErrInvalidArgument)
)
