// Package calculator provides symbol-dispatched binary arithmetic.
//
// Three dispatch mechanisms are available:
//   - Calculator: a fixed float64 registry built from Operation values
//   - Registry[T]: an initially empty registry of caller-supplied functions
//     over any operand type
//   - Universal: hardcoded symbol tables for int, float, double, decimal and long
//
// Errors:
//   - ErrInvalidArgument: a required input is missing or malformed
//   - ErrInvalidOperation: the symbol is empty or not registered
//   - ErrDivideByZero: the right operand of / or % is zero
//
// ErrDivideByZero is never folded into ErrInvalidOperation, so callers can
// test for it with errors.Is.
//
// Registries are owned per instance and are not safe for concurrent
// registration and execution.
//
// Example Usage:
//
//	calc, _ := calculator.NewCalculator(calculator.DefaultOperations())
//	result, err := calc.Execute("/", 6, 3)
//	if errors.Is(err, calculator.ErrDivideByZero) {
//	    ...
//	}
package calculator
