// Package vector provides 2D and 3D vector value types.
//
// Vector2D and Vector3D hold float64 components and delegate their
// arithmetic to gonum.org/v1/gonum/spatial. Vec2[T] and Vec3[T] carry any
// native numeric component type; their magnitude is always computed in
// float64. Every operation returns a new value and equality is exact.
//
// The Operation2D and Operation3D components, and the package-level Add,
// Subtract, Cross and Dot helpers, take pointers so that a missing operand
// is reported as calculator.ErrInvalidArgument.
package vector
