package core

import (
	"errors"
	"fmt"
)

// ErrZeroDirection is returned when a ray has no direction
var ErrZeroDirection = errors.New("ray direction has zero length")

// Ray represents a ray with an origin and direction
type Ray[T Real] struct {
	Origin    Vec3[T]
	Direction Vec3[T]
}

// NewRay creates a new ray with a normalized direction
func NewRay[T Real](origin, direction Vec3[T]) Ray[T] {
	return Ray[T]{Origin: origin, Direction: direction.Normalize()}
}

// NewRayUnnormalized creates a ray that keeps direction as given.
// Ray parameters then scale with the direction's length.
func NewRayUnnormalized[T Real](origin, direction Vec3[T]) Ray[T] {
	return Ray[T]{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray[T]) At(t T) Vec3[T] {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Validate reports whether the ray can be used for intersection queries
func (r Ray[T]) Validate() error {
	if r.Direction.LengthSquared() == 0 {
		return fmt.Errorf("ray from %v: %w", r.Origin, ErrZeroDirection)
	}
	return nil
}
