package vector

import (
	"fmt"

	"github.com/GriffinCanCode/calculator/internal/calculator"
)

// Operation2D is a binary operation on 2D vectors. Implementations return
// calculator.ErrInvalidArgument when either operand is nil and never modify
// their inputs.
type Operation2D interface {
	Calculate(a, b *Vector2D) (*Vector2D, error)
}

// Operation3D is a binary operation on 3D vectors.
type Operation3D interface {
	Calculate(a, b *Vector3D) (*Vector3D, error)
}

// Add2D adds two 2D vectors.
type Add2D struct{}

func (Add2D) Calculate(a, b *Vector2D) (*Vector2D, error) {
	return apply(a, b, Vector2D.Add)
}

// Subtract2D subtracts b from a.
type Subtract2D struct{}

func (Subtract2D) Calculate(a, b *Vector2D) (*Vector2D, error) {
	return apply(a, b, Vector2D.Sub)
}

// Add3D adds two 3D vectors.
type Add3D struct{}

func (Add3D) Calculate(a, b *Vector3D) (*Vector3D, error) {
	return apply(a, b, Vector3D.Add)
}

// Subtract3D subtracts b from a.
type Subtract3D struct{}

func (Subtract3D) Calculate(a, b *Vector3D) (*Vector3D, error) {
	return apply(a, b, Vector3D.Sub)
}

// Cross3D computes a × b.
type Cross3D struct{}

func (Cross3D) Calculate(a, b *Vector3D) (*Vector3D, error) {
	return apply(a, b, Vector3D.Cross)
}

// Dot2D returns the dot product of a and b.
func Dot2D(a, b *Vector2D) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return a.Dot(*b), nil
}

// Dot3D returns the dot product of a and b.
func Dot3D(a, b *Vector3D) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return a.Dot(*b), nil
}

// Add returns a + b for generic vectors of either dimension.
func Add[V interface{ Add(V) V }](a, b *V) (*V, error) {
	return apply(a, b, func(x, y V) V { return x.Add(y) })
}

// Subtract returns a - b for generic vectors of either dimension.
func Subtract[V interface{ Sub(V) V }](a, b *V) (*V, error) {
	return apply(a, b, func(x, y V) V { return x.Sub(y) })
}

// Cross returns a × b for generic 3D vectors.
func Cross[T calculator.Number](a, b *Vec3[T]) (*Vec3[T], error) {
	return apply(a, b, Vec3[T].Cross)
}

// Dot2 returns the dot product of generic 2D vectors.
func Dot2[T calculator.Number](a, b *Vec2[T]) (T, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return a.Dot(*b), nil
}

// Dot3 returns the dot product of generic 3D vectors.
func Dot3[T calculator.Number](a, b *Vec3[T]) (T, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return a.Dot(*b), nil
}

func apply[V any](a, b *V, fn func(V, V) V) (*V, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	result := fn(*a, *b)
	return &result, nil
}

func checkOperands[V any](a, b *V) error {
	if a == nil {
		return fmt.Errorf("%w: vector a cannot be nil", calculator.ErrInvalidArgument)
	}
	if b == nil {
		return fmt.Errorf("%w: vector b cannot be nil", calculator.ErrInvalidArgument)
	}
	return nil
}
