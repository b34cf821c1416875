package geometry

import (
	"fmt"

	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/roots"
)

// Cone is a solid right circular cone. In the local frame its base disk of
// the given Radius lies at y = 0 and its apex at y = Height. The base cap is
// part of the surface.
type Cone[T core.Real] struct {
	Origin core.Vec3[T]
	Height T
	Radius T
}

// NewCone creates a new cone
func NewCone[T core.Real](origin core.Vec3[T], height, radius T) Cone[T] {
	return Cone[T]{Origin: origin, Height: height, Radius: radius}
}

// Validate rejects non-positive heights and negative radii
func (c Cone[T]) Validate() error {
	if c.Height <= 0 {
		return fmt.Errorf("cone height must be positive, got %v: %w", c.Height, ErrDegenerateShape)
	}
	if c.Radius < 0 {
		return fmt.Errorf("cone radius must be non-negative, got %v: %w", c.Radius, ErrDegenerateShape)
	}
	return nil
}

func (c Cone[T]) center() core.Vec3[T] { return c.Origin }

func (c Cone[T]) hits(o, d core.Vec3[T]) []T {
	ts := c.hitsBody(o, d)

	// Base cap
	if !isParallel(d.Y) {
		t := -o.Y / d.Y
		p := o.Add(d.Multiply(t))
		if p.X*p.X+p.Z*p.Z <= c.Radius*c.Radius {
			ts = append(ts, t)
		}
	}

	return forward(ts)
}

// hitsBody intersects the lateral surface x² + z² = k²(H - y)², k = R/H,
// keeping crossings between the base and the apex
func (c Cone[T]) hitsBody(o, d core.Vec3[T]) []T {
	k := c.Radius / c.Height
	k2 := k * k
	w := c.Height - o.Y

	a := d.X*d.X + d.Z*d.Z - k2*d.Y*d.Y
	b := 2 * (o.X*d.X + o.Z*d.Z + k2*w*d.Y)
	cc := o.X*o.X + o.Z*o.Z - k2*w*w

	var candidates []T
	if isParallel(a) {
		// Ray parallel to a generating line: the equation is linear
		if isParallel(b) {
			return nil
		}
		candidates = []T{-cc / b}
	} else {
		candidates = roots.SolveQuadric(a, b, cc)
	}

	ts := candidates[:0]
	for _, t := range candidates {
		y := o.Y + t*d.Y
		if y >= 0 && y <= c.Height {
			ts = append(ts, t)
		}
	}
	return ts
}

func (c Cone[T]) normalAt(p core.Vec3[T]) core.Vec3[T] {
	if core.Abs(p.Y) <= SurfaceEpsilon && hypotXZ(p) < c.Radius-SurfaceEpsilon {
		return core.NewVec3[T](0, -1, 0)
	}

	// Gradient of x² + z² - k²(H - y)², halved
	k := c.Radius / c.Height
	n := core.NewVec3(p.X, k*k*(c.Height-p.Y), p.Z)
	if n.LengthSquared() == 0 {
		// Apex
		return core.NewVec3[T](0, 1, 0)
	}
	return n.Normalize()
}

// distance is the exact capped cone distance with the apex as a zero-radius
// top cap
func (c Cone[T]) distance(p core.Vec3[T]) T {
	h := c.Height / 2
	qx := hypotXZ(p)
	qy := p.Y - h

	capRadius := T(0)
	if qy < 0 {
		capRadius = c.Radius
	}
	caX := qx - min(qx, capRadius)
	caY := core.Abs(qy) - h

	// Project onto the slanted side from the apex (0, h) along k2 = (-R, 2h)
	k2x, k2y := -c.Radius, c.Height
	along := core.Clamp(((0-qx)*k2x+(h-qy)*k2y)/(k2x*k2x+k2y*k2y), 0, 1)
	cbX := qx + k2x*along
	cbY := qy - h + k2y*along

	sign := T(1)
	if cbX < 0 && caY < 0 {
		sign = -1
	}
	return sign * core.Sqrt(min(caX*caX+caY*caY, cbX*cbX+cbY*cbY))
}

func (c Cone[T]) localBounds() core.AABB[T] {
	return core.NewAABB(
		core.NewVec3(-c.Radius, 0, -c.Radius),
		core.NewVec3(c.Radius, c.Height, c.Radius),
	)
}
