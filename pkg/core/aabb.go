package core

// AABB represents an axis-aligned bounding box
type AABB[T Real] struct {
	Min Vec3[T] // Minimum corner
	Max Vec3[T] // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB[T Real](min, max Vec3[T]) AABB[T] {
	return AABB[T]{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints[T Real](points ...Vec3[T]) AABB[T] {
	if len(points) == 0 {
		return AABB[T]{}
	}

	lo := points[0]
	hi := points[0]
	for _, point := range points[1:] {
		lo = lo.Min(point)
		hi = hi.Max(point)
	}

	return AABB[T]{Min: lo, Max: hi}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB[T]) Hit(ray Ray[T], tMin, tMax T) bool {
	for axis := 0; axis < 3; axis++ {
		lo := aabb.Min.Component(axis)
		hi := aabb.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		// Handle parallel rays (direction near zero)
		if Abs(direction) < 1e-8 {
			if origin < lo || origin > hi {
				return false // Ray origin outside slab
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB[T]) Union(other AABB[T]) AABB[T] {
	return AABB[T]{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Center returns the center point of the AABB
func (aabb AABB[T]) Center() Vec3[T] {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB[T]) Size() Vec3[T] {
	return aabb.Max.Subtract(aabb.Min)
}

// Corners returns the eight corner points
func (aabb AABB[T]) Corners() [8]Vec3[T] {
	lo, hi := aabb.Min, aabb.Max
	return [8]Vec3[T]{
		{lo.X, lo.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{lo.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
		{lo.X, hi.Y, hi.Z},
	}
}

// Contains reports whether p lies inside or on the box
func (aabb AABB[T]) Contains(p Vec3[T]) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB[T]) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB[T]) Expand(amount T) AABB[T] {
	expansion := NewVec3(amount, amount, amount)
	return AABB[T]{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
