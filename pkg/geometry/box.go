package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-shapemath/pkg/core"
)

// Box is a box given by the distance from its origin to each of its six
// faces. In the local frame Right/Left bound +X/-X, Up/Down bound +Y/-Y and
// Front/Back bound +Z/-Z, so the origin need not be the center.
type Box[T core.Real] struct {
	Origin core.Vec3[T]
	Right  T
	Left   T
	Up     T
	Down   T
	Front  T
	Back   T
}

// NewBox creates a box centered on origin with the given half extents
func NewBox[T core.Real](origin, halfExtents core.Vec3[T]) Box[T] {
	return Box[T]{
		Origin: origin,
		Right:  halfExtents.X,
		Left:   halfExtents.X,
		Up:     halfExtents.Y,
		Down:   halfExtents.Y,
		Front:  halfExtents.Z,
		Back:   halfExtents.Z,
	}
}

// Validate rejects negative face distances
func (b Box[T]) Validate() error {
	faces := []struct {
		name string
		dist T
	}{
		{"right", b.Right}, {"left", b.Left},
		{"up", b.Up}, {"down", b.Down},
		{"front", b.Front}, {"back", b.Back},
	}
	for _, f := range faces {
		if f.dist < 0 {
			return fmt.Errorf("box %s distance must be non-negative, got %v: %w", f.name, f.dist, ErrDegenerateShape)
		}
	}
	return nil
}

func (b Box[T]) min() core.Vec3[T] { return core.NewVec3(-b.Left, -b.Down, -b.Back) }
func (b Box[T]) max() core.Vec3[T] { return core.NewVec3(b.Right, b.Up, b.Front) }

func (b Box[T]) center() core.Vec3[T] { return b.Origin }

// hits uses the slab method on the local axis-aligned box
func (b Box[T]) hits(o, d core.Vec3[T]) []T {
	lo, hi := b.min(), b.max()
	tMin := T(math.Inf(-1))
	tMax := T(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		origin := o.Component(axis)
		direction := d.Component(axis)
		slabMin := lo.Component(axis)
		slabMax := hi.Component(axis)

		if isParallel(direction) {
			if origin < slabMin || origin > slabMax {
				return nil
			}
			continue
		}

		t1 := (slabMin - origin) / direction
		t2 := (slabMax - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
	}

	switch {
	case tMin > tMax || tMax < 0:
		return nil
	case tMin == tMax:
		return []T{tMax}
	case tMin < 0:
		// Origin inside the box: only the exit crossing is ahead
		return []T{tMax}
	default:
		return []T{tMin, tMax}
	}
}

// normalAt picks the face whose plane is nearest to p
func (b Box[T]) normalAt(p core.Vec3[T]) core.Vec3[T] {
	faces := [6]struct {
		dist   T
		normal core.Vec3[T]
	}{
		{core.Abs(p.X - b.Right), core.NewVec3[T](1, 0, 0)},
		{core.Abs(p.X + b.Left), core.NewVec3[T](-1, 0, 0)},
		{core.Abs(p.Y - b.Up), core.NewVec3[T](0, 1, 0)},
		{core.Abs(p.Y + b.Down), core.NewVec3[T](0, -1, 0)},
		{core.Abs(p.Z - b.Front), core.NewVec3[T](0, 0, 1)},
		{core.Abs(p.Z + b.Back), core.NewVec3[T](0, 0, -1)},
	}

	best := 0
	for i := 1; i < len(faces); i++ {
		if faces[i].dist < faces[best].dist {
			best = i
		}
	}
	return faces[best].normal
}

func (b Box[T]) distance(p core.Vec3[T]) T {
	lo, hi := b.min(), b.max()
	mid := lo.Add(hi).Multiply(0.5)
	half := hi.Subtract(lo).Multiply(0.5)

	q := p.Subtract(mid).Abs().Subtract(half)
	outside := q.Max(core.Vec3[T]{}).Length()
	inside := min(q.MaxComponent(), 0)
	return outside + inside
}

func (b Box[T]) localBounds() core.AABB[T] {
	return core.NewAABB(b.min(), b.max())
}
