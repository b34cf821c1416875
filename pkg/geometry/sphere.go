package geometry

import (
	"fmt"

	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/roots"
)

// Sphere represents a sphere shape
type Sphere[T core.Real] struct {
	Origin core.Vec3[T]
	Radius T
}

// NewSphere creates a new sphere
func NewSphere[T core.Real](origin core.Vec3[T], radius T) Sphere[T] {
	return Sphere[T]{Origin: origin, Radius: radius}
}

// Validate rejects negative radii
func (s Sphere[T]) Validate() error {
	if s.Radius < 0 {
		return fmt.Errorf("sphere radius must be non-negative, got %v: %w", s.Radius, ErrDegenerateShape)
	}
	return nil
}

func (s Sphere[T]) center() core.Vec3[T] { return s.Origin }

func (s Sphere[T]) hits(o, d core.Vec3[T]) []T {
	// |o + td|² = r²
	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) - s.Radius*s.Radius
	return forward(roots.SolveQuadric(a, b, c))
}

func (s Sphere[T]) normalAt(p core.Vec3[T]) core.Vec3[T] {
	return p.Normalize()
}

func (s Sphere[T]) distance(p core.Vec3[T]) T {
	return p.Length() - s.Radius
}

func (s Sphere[T]) localBounds() core.AABB[T] {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(r.Negate(), r)
}
