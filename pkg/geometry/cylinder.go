package geometry

import (
	"fmt"

	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/roots"
)

// Cylinder is a right circular cylinder around the local Y axis from y = 0 to
// y = Height. A capped cylinder is a closed solid; an uncapped one is an open
// tube whose distance field is unsigned.
type Cylinder[T core.Real] struct {
	Origin core.Vec3[T]
	Height T
	Radius T
	Capped bool
}

// NewCylinder creates a new cylinder
func NewCylinder[T core.Real](origin core.Vec3[T], height, radius T, capped bool) Cylinder[T] {
	return Cylinder[T]{Origin: origin, Height: height, Radius: radius, Capped: capped}
}

// Validate rejects negative heights and radii
func (c Cylinder[T]) Validate() error {
	if c.Height < 0 {
		return fmt.Errorf("cylinder height must be non-negative, got %v: %w", c.Height, ErrDegenerateShape)
	}
	if c.Radius < 0 {
		return fmt.Errorf("cylinder radius must be non-negative, got %v: %w", c.Radius, ErrDegenerateShape)
	}
	return nil
}

func (c Cylinder[T]) center() core.Vec3[T] { return c.Origin }

func (c Cylinder[T]) hits(o, d core.Vec3[T]) []T {
	var ts []T

	// Quadratic in the plane perpendicular to the axis; a ray along the axis
	// never crosses the side
	a := d.X*d.X + d.Z*d.Z
	if !isParallel(a) {
		b := 2 * (o.X*d.X + o.Z*d.Z)
		cc := o.X*o.X + o.Z*o.Z - c.Radius*c.Radius
		for _, t := range roots.SolveQuadric(a, b, cc) {
			if y := o.Y + t*d.Y; y >= 0 && y <= c.Height {
				ts = append(ts, t)
			}
		}
	}

	if c.Capped && !isParallel(d.Y) {
		for _, y := range [2]T{0, c.Height} {
			t := (y - o.Y) / d.Y
			p := o.Add(d.Multiply(t))
			if p.X*p.X+p.Z*p.Z <= c.Radius*c.Radius {
				ts = append(ts, t)
			}
		}
	}

	return forward(ts)
}

func (c Cylinder[T]) normalAt(p core.Vec3[T]) core.Vec3[T] {
	if c.Capped && hypotXZ(p) < c.Radius-SurfaceEpsilon {
		if core.Abs(p.Y) <= SurfaceEpsilon {
			return core.NewVec3[T](0, -1, 0)
		}
		if core.Abs(p.Y-c.Height) <= SurfaceEpsilon {
			return core.NewVec3[T](0, 1, 0)
		}
	}

	// Radial direction from the axis point at the same height
	return core.NewVec3(p.X, 0, p.Z).Normalize()
}

func (c Cylinder[T]) distance(p core.Vec3[T]) T {
	radial := hypotXZ(p) - c.Radius

	if !c.Capped {
		// Distance to the tube: straight across inside the height range,
		// to the nearer rim outside it
		beyond := max(-p.Y, p.Y-c.Height, 0)
		return length2(radial, beyond)
	}

	h := c.Height / 2
	axial := core.Abs(p.Y-h) - h
	return min(max(radial, axial), 0) + length2(max(radial, 0), max(axial, 0))
}

func (c Cylinder[T]) localBounds() core.AABB[T] {
	return core.NewAABB(
		core.NewVec3(-c.Radius, 0, -c.Radius),
		core.NewVec3(c.Radius, c.Height, c.Radius),
	)
}
