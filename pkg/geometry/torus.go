package geometry

import (
	"fmt"

	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/roots"
)

// Torus is a ring around the local Y axis. Distance is the radius of the
// circle through the tube centers and TubeRadius the radius of the tube.
type Torus[T core.Real] struct {
	Origin     core.Vec3[T]
	TubeRadius T
	Distance   T
}

// NewTorus creates a new torus
func NewTorus[T core.Real](origin core.Vec3[T], tubeRadius, distance T) Torus[T] {
	return Torus[T]{Origin: origin, TubeRadius: tubeRadius, Distance: distance}
}

// Validate rejects negative radii
func (s Torus[T]) Validate() error {
	if s.TubeRadius < 0 {
		return fmt.Errorf("torus tube radius must be non-negative, got %v: %w", s.TubeRadius, ErrDegenerateShape)
	}
	if s.Distance < 0 {
		return fmt.Errorf("torus distance must be non-negative, got %v: %w", s.Distance, ErrDegenerateShape)
	}
	return nil
}

func (s Torus[T]) center() core.Vec3[T] { return s.Origin }

// hits solves (|p|² + R² - r²)² = 4R²(x² + z²) for p = o + td
func (s Torus[T]) hits(o, d core.Vec3[T]) []T {
	bigR2 := s.Distance * s.Distance
	smallR2 := s.TubeRadius * s.TubeRadius

	// |p|² + R² - r² = a t² + b t + c
	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) + bigR2 - smallR2

	// x² + z² = e t² + f t + g
	e := d.X*d.X + d.Z*d.Z
	f := 2 * (o.X*d.X + o.Z*d.Z)
	g := o.X*o.X + o.Z*o.Z

	k := 4 * bigR2
	return forward(roots.SolveQuartic(
		a*a,
		2*a*b,
		b*b+2*a*c-k*e,
		2*b*c-k*f,
		c*c-k*g,
	))
}

func (s Torus[T]) normalAt(p core.Vec3[T]) core.Vec3[T] {
	// Gradient of (|p|² + R² - r²)² - 4R²(x² + z²), halved
	sum := p.Dot(p) + s.Distance*s.Distance - s.TubeRadius*s.TubeRadius
	k := 2 * s.Distance * s.Distance
	return core.NewVec3(
		sum*p.X-k*p.X,
		sum*p.Y,
		sum*p.Z-k*p.Z,
	).Normalize()
}

func (s Torus[T]) distance(p core.Vec3[T]) T {
	return length2(hypotXZ(p)-s.Distance, p.Y) - s.TubeRadius
}

func (s Torus[T]) localBounds() core.AABB[T] {
	outer := s.Distance + s.TubeRadius
	return core.NewAABB(
		core.NewVec3(-outer, -s.TubeRadius, -outer),
		core.NewVec3(outer, s.TubeRadius, outer),
	)
}
