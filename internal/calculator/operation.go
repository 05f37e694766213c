package calculator

import (
	gomath "math"
)

// Operation is a binary float64 operation identified by its symbol.
type Operation interface {
	Symbol() string
	Calculate(a, b float64) (float64, error)
}

// AddOperation adds two numbers
type AddOperation struct{}

func (AddOperation) Symbol() string { return "+" }

func (AddOperation) Calculate(a, b float64) (float64, error) { return a + b, nil }

// SubtractOperation subtracts b from a
type SubtractOperation struct{}

func (SubtractOperation) Symbol() string { return "-" }

func (SubtractOperation) Calculate(a, b float64) (float64, error) { return a - b, nil }

// MultiplyOperation multiplies two numbers
type MultiplyOperation struct{}

func (MultiplyOperation) Symbol() string { return "*" }

func (MultiplyOperation) Calculate(a, b float64) (float64, error) { return a * b, nil }

// DivideOperation divides a by b
type DivideOperation struct{}

func (DivideOperation) Symbol() string { return "/" }

func (DivideOperation) Calculate(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// ModuloOperation returns the floating-point remainder of a/b
type ModuloOperation struct{}

func (ModuloOperation) Symbol() string { return "%" }

func (ModuloOperation) Calculate(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return gomath.Mod(a, b), nil
}

// PowerOperation raises a to the power of b
type PowerOperation struct{}

func (PowerOperation) Symbol() string { return "^" }

func (PowerOperation) Calculate(a, b float64) (float64, error) { return gomath.Pow(a, b), nil }

// DefaultOperations returns the basic four-function operation set.
func DefaultOperations() []Operation {
	return []Operation{
		AddOperation{},
		SubtractOperation{},
		MultiplyOperation{},
		DivideOperation{},
	}
}
