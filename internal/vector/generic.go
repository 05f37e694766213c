package vector

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/calculator/internal/calculator"
)

// Vec2 is a 2D vector over any native numeric type.
type Vec2[T calculator.Number] struct {
	X, Y T
}

// NewVec2 creates a generic 2D vector.
func NewVec2[T calculator.Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Negate returns -v.
func (v Vec2[T]) Negate() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Dot returns the dot product in T; integer types may overflow.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// Magnitude converts each component to float64 before summing squares.
func (v Vec2[T]) Magnitude() float64 {
	x, y := float64(v.X), float64(v.Y)
	return gomath.Sqrt(x*x + y*y)
}

// Equal reports whether both components match exactly.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return v.X == o.X && v.Y == o.Y }

// String formats v as (x, y).
func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%s, %s)", formatComponent(v.X), formatComponent(v.Y))
}

// Vec3 is a 3D vector over any native numeric type.
type Vec3[T calculator.Number] struct {
	X, Y, Z T
}

// NewVec3 creates a generic 3D vector.
func NewVec3[T calculator.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Negate returns -v.
func (v Vec3[T]) Negate() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product in T; integer types may overflow.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Magnitude converts each component to float64 before summing squares.
func (v Vec3[T]) Magnitude() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return gomath.Sqrt(x*x + y*y + z*z)
}

// Equal reports whether all three components match exactly.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

// String formats v as (x, y, z).
func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%s, %s, %s)", formatComponent(v.X), formatComponent(v.Y), formatComponent(v.Z))
}
