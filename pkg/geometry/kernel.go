package geometry

import "github.com/df07/go-shapemath/pkg/core"

// localRay moves the ray into the shape's local frame. A nil rotation is the
// identity.
func localRay[T core.Real, S Shape[T]](ray core.Ray[T], shape S, rot core.Rotation[T]) (o, d core.Vec3[T]) {
	o = ray.Origin.Subtract(shape.center())
	d = ray.Direction
	if rot != nil {
		o = rot.InverseRotate(o)
		d = rot.InverseRotate(d)
	}
	return o, d
}

// IsRayIntersected reports whether the ray crosses the shape's boundary at
// some t >= 0
func IsRayIntersected[T core.Real, S Shape[T]](ray core.Ray[T], shape S) bool {
	return IsRayIntersectedRotated(ray, shape, nil)
}

// IsRayIntersectedRotated is IsRayIntersected for a shape whose local frame
// is oriented by rot
func IsRayIntersectedRotated[T core.Real, S Shape[T]](ray core.Ray[T], shape S, rot core.Rotation[T]) bool {
	return len(TValuesOfRotated(ray, shape, rot)) > 0
}

// TValuesOf returns every ray parameter t >= 0 at which the ray crosses the
// shape's boundary, in ascending order. An empty result means a miss.
func TValuesOf[T core.Real, S Shape[T]](ray core.Ray[T], shape S) []T {
	return TValuesOfRotated(ray, shape, nil)
}

// TValuesOfRotated is TValuesOf for a shape whose local frame is oriented
// by rot
func TValuesOfRotated[T core.Real, S Shape[T]](ray core.Ray[T], shape S, rot core.Rotation[T]) []T {
	o, d := localRay(ray, shape, rot)
	return shape.hits(o, d)
}

// ClosestTValueOf returns the smallest t >= 0 at which the ray crosses the
// shape's boundary. ok is false when the ray misses.
func ClosestTValueOf[T core.Real, S Shape[T]](ray core.Ray[T], shape S) (t T, ok bool) {
	return ClosestTValueOfRotated(ray, shape, nil)
}

// ClosestTValueOfRotated is ClosestTValueOf for a shape whose local frame is
// oriented by rot
func ClosestTValueOfRotated[T core.Real, S Shape[T]](ray core.Ray[T], shape S, rot core.Rotation[T]) (t T, ok bool) {
	ts := TValuesOfRotated(ray, shape, rot)
	if len(ts) == 0 {
		return 0, false
	}
	return ts[0], true
}

// NormalOf returns the outward unit normal at the ray's closest hit. ok is
// false when the ray misses.
func NormalOf[T core.Real, S Shape[T]](ray core.Ray[T], shape S) (normal core.Vec3[T], ok bool) {
	return NormalOfRotated(ray, shape, nil)
}

// NormalOfRotated is NormalOf for a shape whose local frame is oriented by
// rot. The normal is returned in world space.
func NormalOfRotated[T core.Real, S Shape[T]](ray core.Ray[T], shape S, rot core.Rotation[T]) (normal core.Vec3[T], ok bool) {
	o, d := localRay(ray, shape, rot)
	ts := shape.hits(o, d)
	if len(ts) == 0 {
		return core.Vec3[T]{}, false
	}

	normal = shape.normalAt(o.Add(d.Multiply(ts[0])))
	if rot != nil {
		normal = rot.Rotate(normal)
	}
	return normal, true
}

// SDFValueOf returns the signed distance from point to the shape's surface:
// negative inside, positive outside, zero on the boundary
func SDFValueOf[T core.Real, S Shape[T]](point core.Vec3[T], shape S) T {
	return SDFValueOfRotated(point, shape, nil)
}

// SDFValueOfRotated is SDFValueOf for a shape whose local frame is oriented
// by rot
func SDFValueOfRotated[T core.Real, S Shape[T]](point core.Vec3[T], shape S, rot core.Rotation[T]) T {
	p := point.Subtract(shape.center())
	if rot != nil {
		p = rot.InverseRotate(p)
	}
	return shape.distance(p)
}

// BoundsOf returns the world-space axis-aligned bounds of the shape
func BoundsOf[T core.Real, S Shape[T]](shape S) core.AABB[T] {
	return BoundsOfRotated[T](shape, nil)
}

// BoundsOfRotated returns the world-space axis-aligned bounds of the shape
// with its local frame oriented by rot. The result bounds the rotated local
// box, so it can be looser than the shape itself.
func BoundsOfRotated[T core.Real, S Shape[T]](shape S, rot core.Rotation[T]) core.AABB[T] {
	local := shape.localBounds()
	if rot == nil {
		return core.NewAABB(local.Min.Add(shape.center()), local.Max.Add(shape.center()))
	}

	corners := local.Corners()
	for i, c := range corners {
		corners[i] = rot.Rotate(c).Add(shape.center())
	}
	return core.NewAABBFromPoints(corners[:]...)
}
