package vector

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/GriffinCanCode/calculator/internal/calculator"
)

// Vector2D is a double-precision 2D vector. The zero value is the zero vector.
type Vector2D struct {
	X, Y float64
}

// New2D creates a 2D vector.
func New2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

func (v Vector2D) r2() r2.Vec { return r2.Vec(v) }

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D(r2.Add(v.r2(), o.r2()))
}

// Sub returns v - o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D(r2.Sub(v.r2(), o.r2()))
}

// Negate returns -v.
func (v Vector2D) Negate() Vector2D {
	return Vector2D(r2.Scale(-1, v.r2()))
}

// Dot returns the dot product of v and o.
func (v Vector2D) Dot(o Vector2D) float64 {
	return r2.Dot(v.r2(), o.r2())
}

// Magnitude returns the Euclidean norm of v.
func (v Vector2D) Magnitude() float64 {
	return r2.Norm(v.r2())
}

// Equal reports whether every component is exactly equal.
func (v Vector2D) Equal(o Vector2D) bool {
	return v.X == o.X && v.Y == o.Y
}

// String returns "(x, y)".
func (v Vector2D) String() string {
	return fmt.Sprintf("(%s, %s)", formatComponent(v.X), formatComponent(v.Y))
}

// Vector3D is a double-precision 3D vector. The zero value is the zero vector.
type Vector3D struct {
	X, Y, Z float64
}

// New3D creates a 3D vector.
func New3D(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

func (v Vector3D) r3() r3.Vec { return r3.Vec(v) }

// Add returns v + o.
func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D(r3.Add(v.r3(), o.r3()))
}

// Sub returns v - o.
func (v Vector3D) Sub(o Vector3D) Vector3D {
	return Vector3D(r3.Sub(v.r3(), o.r3()))
}

// Negate returns -v.
func (v Vector3D) Negate() Vector3D {
	return Vector3D(r3.Scale(-1, v.r3()))
}

// Dot returns the dot product of v and o.
func (v Vector3D) Dot(o Vector3D) float64 {
	return r3.Dot(v.r3(), o.r3())
}

// Cross returns the right-handed cross product v × o.
func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D(r3.Cross(v.r3(), o.r3()))
}

// Magnitude returns the Euclidean norm of v.
func (v Vector3D) Magnitude() float64 {
	return r3.Norm(v.r3())
}

// Equal reports whether every component is exactly equal.
func (v Vector3D) Equal(o Vector3D) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// String returns "(x, y, z)".
func (v Vector3D) String() string {
	return fmt.Sprintf("(%s, %s, %s)", formatComponent(v.X), formatComponent(v.Y), formatComponent(v.Z))
}

func formatComponent(x any) string {
	switch f := x.(type) {
	case float64:
		return calculator.FormatFloat(f, 64)
	case float32:
		return calculator.FormatFloat(float64(f), 32)
	default:
		return fmt.Sprint(x)
	}
}
