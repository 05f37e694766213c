package calculator

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any native integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Func is a binary operation over T.
type Func[T any] func(a, b T) (T, error)

// Registry maps symbols to caller-supplied operations over T.
// It is not safe for concurrent registration and execution.
type Registry[T any] struct {
	operations map[string]Func[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{operations: make(map[string]Func[T])}
}

// NewArithmeticRegistry creates a registry with + - * / for a native numeric type.
func NewArithmeticRegistry[T Number]() *Registry[T] {
	r := NewRegistry[T]()
	_ = r.Register("+", func(a, b T) (T, error) { return a + b, nil })
	_ = r.Register("-", func(a, b T) (T, error) { return a - b, nil })
	_ = r.Register("*", func(a, b T) (T, error) { return a * b, nil })
	_ = r.Register("/", func(a, b T) (T, error) {
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	})
	return r
}

// Register binds fn to symbol, replacing any previous binding.
func (r *Registry[T]) Register(symbol string, fn Func[T]) error {
	if strings.TrimSpace(symbol) == "" {
		return fmt.Errorf("%w: symbol cannot be empty", ErrInvalidArgument)
	}
	if fn == nil {
		return fmt.Errorf("%w: operation for %q cannot be nil", ErrInvalidArgument, symbol)
	}

	r.operations[symbol] = fn
	return nil
}

// Execute runs the function registered under symbol. Divide-by-zero failures
// pass through unchanged; any other failure is returned as an *OperationError.
func (r *Registry[T]) Execute(symbol string, a, b T) (result T, err error) {
	if strings.TrimSpace(symbol) == "" {
		return result, emptySymbol()
	}

	fn, ok := r.operations[symbol]
	if !ok {
		return result, fmt.Errorf("%w: invalid operation symbol: %s", ErrInvalidOperation, symbol)
	}

	defer func() {
		if p := recover(); p != nil {
			var zero T
			result, err = zero, panicError(symbol, p)
		}
	}()

	result, err = fn(a, b)
	if err != nil && !errors.Is(err, ErrDivideByZero) {
		return result, &OperationError{Symbol: symbol, Err: err}
	}
	return result, err
}

// Symbols returns the registered symbols in sorted order.
func (r *Registry[T]) Symbols() []string {
	return sortedKeys(r.operations)
}

// panicError converts a recovered panic into a calculator error. Integer
// division by zero in Go panics rather than returning an error.
func panicError(symbol string, p any) error {
	if isIntegerDivide(p) {
		return ErrDivideByZero
	}
	if e, ok := p.(error); ok {
		return &OperationError{Symbol: symbol, Err: e}
	}
	return &OperationError{Symbol: symbol, Err: fmt.Errorf("panic: %v", p)}
}

// errIntegerDivide is the value the runtime panics with on integer division
// by zero.
var errIntegerDivide = func() (err runtime.Error) {
	defer func() { err, _ = recover().(runtime.Error) }()
	zero := 0
	_ = 1 / zero
	return nil
}()

func isIntegerDivide(p any) bool {
	re, ok := p.(runtime.Error)
	return ok && errIntegerDivide != nil && errors.Is(re, errIntegerDivide)
}
