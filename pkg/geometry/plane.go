package geometry

import (
	"fmt"

	"github.com/df07/go-shapemath/pkg/core"
)

// planeExtent is the half size of the slab reported as a plane's bounds
const planeExtent = 1e6

// Plane is the infinite plane dot(Normal, p) = D. It has no origin of its
// own; a rotation passed to a query turns it about the world origin.
type Plane[T core.Real] struct {
	Normal core.Vec3[T] // Unit normal
	D      T            // Signed offset from the origin along Normal
}

// NewPlane creates the plane through point with the given normal
func NewPlane[T core.Real](point, normal core.Vec3[T]) Plane[T] {
	n := normal.Normalize()
	return Plane[T]{Normal: n, D: n.Dot(point)}
}

// Validate rejects a zero normal
func (p Plane[T]) Validate() error {
	if p.Normal.LengthSquared() == 0 {
		return fmt.Errorf("plane normal must be non-zero: %w", ErrDegenerateShape)
	}
	return nil
}

func (p Plane[T]) center() core.Vec3[T] { return core.Vec3[T]{} }

func (p Plane[T]) hits(o, d core.Vec3[T]) []T {
	denominator := p.Normal.Dot(d)
	if isParallel(denominator) {
		return nil
	}

	t := (p.D - p.Normal.Dot(o)) / denominator
	if t < 0 {
		return nil
	}
	return []T{t}
}

func (p Plane[T]) normalAt(core.Vec3[T]) core.Vec3[T] {
	return p.Normal
}

func (p Plane[T]) distance(point core.Vec3[T]) T {
	return p.Normal.Dot(point) - p.D
}

// localBounds is a thin slab for axis-aligned planes and a large cube
// otherwise
func (p Plane[T]) localBounds() core.AABB[T] {
	const thickness = 0.001
	large := T(planeExtent)
	onPlane := p.Normal.Multiply(p.D)

	n := p.Normal.Abs()
	switch {
	case n.X >= 1-1e-6:
		return core.NewAABB(core.NewVec3(onPlane.X-thickness, -large, -large), core.NewVec3(onPlane.X+thickness, large, large))
	case n.Y >= 1-1e-6:
		return core.NewAABB(core.NewVec3(-large, onPlane.Y-thickness, -large), core.NewVec3(large, onPlane.Y+thickness, large))
	case n.Z >= 1-1e-6:
		return core.NewAABB(core.NewVec3(-large, -large, onPlane.Z-thickness), core.NewVec3(large, large, onPlane.Z+thickness))
	default:
		return core.NewAABB(core.NewVec3(-large, -large, -large), core.NewVec3(large, large, large))
	}
}

