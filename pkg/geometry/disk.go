package geometry

import (
	"fmt"

	"github.com/df07/go-shapemath/pkg/core"
)

// Disk is a zero-thickness circular disk in the local XZ plane, facing +Y
type Disk[T core.Real] struct {
	Origin core.Vec3[T]
	Radius T
}

// NewDisk creates a new disk
func NewDisk[T core.Real](origin core.Vec3[T], radius T) Disk[T] {
	return Disk[T]{Origin: origin, Radius: radius}
}

// Validate rejects negative radii
func (k Disk[T]) Validate() error {
	if k.Radius < 0 {
		return fmt.Errorf("disk radius must be non-negative, got %v: %w", k.Radius, ErrDegenerateShape)
	}
	return nil
}

func (k Disk[T]) center() core.Vec3[T] { return k.Origin }

func (k Disk[T]) hits(o, d core.Vec3[T]) []T {
	if isParallel(d.Y) {
		return nil
	}

	t := -o.Y / d.Y
	if t < 0 {
		return nil
	}
	p := o.Add(d.Multiply(t))
	if p.X*p.X+p.Z*p.Z > k.Radius*k.Radius {
		return nil
	}
	return []T{t}
}

func (k Disk[T]) normalAt(core.Vec3[T]) core.Vec3[T] {
	return core.NewVec3[T](0, 1, 0)
}

// distance is unsigned: a disk has no inside
func (k Disk[T]) distance(p core.Vec3[T]) T {
	radial := max(hypotXZ(p)-k.Radius, 0)
	return length2(radial, p.Y)
}

func (k Disk[T]) localBounds() core.AABB[T] {
	return core.NewAABB(
		core.NewVec3(-k.Radius, 0, -k.Radius),
		core.NewVec3(k.Radius, 0, k.Radius),
	)
}
