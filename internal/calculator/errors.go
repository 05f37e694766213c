package calculator

import (
	"errors"
	"fmt"
	"strconv"
)

// Calculator errors.
var (
	// ErrInvalidArgument indicates a required input was absent or malformed.
	ErrInvalidArgument = errors.New("calculator: invalid argument")

	// ErrInvalidOperation indicates an empty or unrecognized operation symbol.
	ErrInvalidOperation = errors.New("calculator: invalid operation")

	// ErrDivideByZero indicates a zero right operand for / or %.
	ErrDivideByZero = errors.New("calculator: divide by zero")
)

// OperationError reports a failure raised by a registered operation function.
// It matches ErrInvalidOperation and the underlying cause with errors.Is.
type OperationError struct {
	Symbol string
	Err    error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("calculator: error executing operation %q: %v", e.Symbol, e.Err)
}

// Unwrap exposes both the operation kind and the cause.
func (e *OperationError) Unwrap() []error {
	return []error{ErrInvalidOperation, e.Err}
}

// ParseError reports an operand that could not be parsed into the target
// representation. The message never repeats the operand text.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	var numErr *strconv.NumError
	if errors.As(e.Err, &numErr) {
		return fmt.Sprintf("calculator: operand is not a valid number (%v)", numErr.Err)
	}
	return "calculator: operand is not a valid number"
}

// Unwrap exposes both ErrInvalidArgument and the parser's error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidArgument, e.Err}
}

func unknownRepresentation(rep Representation) error {
	return fmt.Errorf("%w: unknown representation: %d", ErrInvalidArgument, int(rep))
}

func unknownOperation(symbol string) error {
	return fmt.Errorf("%w: unknown operation: %s", ErrInvalidOperation, symbol)
}

func emptySymbol() error {
	return fmt.Errorf("%w: operation symbol cannot be empty", ErrInvalidOperation)
}
