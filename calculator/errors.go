package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind shared by every rejected input.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrDivisionByZero = fmt.Errorf("%w: division by zero is not allowed", ErrInvalidArgument)

	// ErrNegativeInput covers square roots and factorials of negative numbers.
	ErrNegativeInput = fmt.Errorf("%w: negative input is not allowed", ErrInvalidArgument)
)
