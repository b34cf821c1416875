package geometry

import (
	"fmt"

	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/roots"
)

// Capsule is the set of points within Radius of the local segment from
// y = 0 to y = Height: a cylinder closed by two hemispheres.
type Capsule[T core.Real] struct {
	Origin core.Vec3[T]
	Height T
	Radius T
}

// NewCapsule creates a new capsule
func NewCapsule[T core.Real](origin core.Vec3[T], height, radius T) Capsule[T] {
	return Capsule[T]{Origin: origin, Height: height, Radius: radius}
}

// Validate rejects negative heights and radii
func (c Capsule[T]) Validate() error {
	if c.Height < 0 {
		return fmt.Errorf("capsule height must be non-negative, got %v: %w", c.Height, ErrDegenerateShape)
	}
	if c.Radius < 0 {
		return fmt.Errorf("capsule radius must be non-negative, got %v: %w", c.Radius, ErrDegenerateShape)
	}
	return nil
}

func (c Capsule[T]) center() core.Vec3[T] { return c.Origin }

func (c Capsule[T]) hits(o, d core.Vec3[T]) []T {
	r2 := c.Radius * c.Radius
	var ts []T

	// Cylinder body, kept between the cap centers
	a := d.X*d.X + d.Z*d.Z
	if !isParallel(a) {
		b := 2 * (o.X*d.X + o.Z*d.Z)
		cc := o.X*o.X + o.Z*o.Z - r2
		for _, t := range roots.SolveQuadric(a, b, cc) {
			if y := o.Y + t*d.Y; y >= 0 && y <= c.Height {
				ts = append(ts, t)
			}
		}
	}

	// Bottom hemisphere around y = 0
	for _, t := range sphereRoots(o, d, r2) {
		if o.Y+t*d.Y < 0 {
			ts = append(ts, t)
		}
	}

	// Top hemisphere around y = Height
	top := o.Subtract(core.NewVec3(0, c.Height, 0))
	for _, t := range sphereRoots(top, d, r2) {
		if o.Y+t*d.Y > c.Height {
			ts = append(ts, t)
		}
	}

	return forward(ts)
}

// sphereRoots returns every crossing of the ray with the sphere of squared
// radius r2 centered on the local origin
func sphereRoots[T core.Real](o, d core.Vec3[T], r2 T) []T {
	return roots.SolveQuadric(d.Dot(d), 2*o.Dot(d), o.Dot(o)-r2)
}

func (c Capsule[T]) normalAt(p core.Vec3[T]) core.Vec3[T] {
	axis := core.NewVec3(0, core.Clamp(p.Y, 0, c.Height), 0)
	return p.Subtract(axis).Normalize()
}

func (c Capsule[T]) distance(p core.Vec3[T]) T {
	p.Y -= core.Clamp(p.Y, 0, c.Height)
	return p.Length() - c.Radius
}

func (c Capsule[T]) localBounds() core.AABB[T] {
	return core.NewAABB(
		core.NewVec3(-c.Radius, -c.Radius, -c.Radius),
		core.NewVec3(c.Radius, c.Height+c.Radius, c.Radius),
	)
}
