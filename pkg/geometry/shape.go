// Package geometry answers ray and distance queries against analytic shapes:
// spheres, boxes, planes, tori, cones, capsules, disks and cylinders.
//
// Every query is a pure function. A shape is described in its own local frame
// (origin at the shape's Origin, axis shapes along +Y); the Rotated variants
// of each query additionally orient that frame with a matrix or quaternion.
package geometry

import (
	"errors"
	"slices"

	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/roots"
)

// ErrDegenerateShape is wrapped by every Validate error
var ErrDegenerateShape = errors.New("degenerate shape")

// SurfaceEpsilon is the distance within which a point counts as lying on a
// face when choosing which face's normal to report
const SurfaceEpsilon = 1e-6

// Shape is implemented by Sphere, Box, Plane, Torus, Cone, Capsule, Disk and
// Cylinder only. The query functions accept any of them.
type Shape[T core.Real] interface {
	// Validate reports parameters that make the shape degenerate. Queries
	// never call it.
	Validate() error

	// center is the world position of the local frame's origin
	center() core.Vec3[T]
	// hits returns the ascending ray parameters t >= 0 at which the local ray
	// o + t*d crosses the boundary
	hits(o, d core.Vec3[T]) []T
	// normalAt returns the outward unit normal at a local boundary point
	normalAt(p core.Vec3[T]) core.Vec3[T]
	// distance returns the signed distance from a local point to the boundary
	distance(p core.Vec3[T]) T
	// localBounds bounds the shape in its local frame
	localBounds() core.AABB[T]
}

var (
	_ Shape[float64] = Sphere[float64]{}
	_ Shape[float64] = Box[float64]{}
	_ Shape[float64] = Plane[float64]{}
	_ Shape[float64] = Torus[float64]{}
	_ Shape[float64] = Cone[float64]{}
	_ Shape[float64] = Capsule[float64]{}
	_ Shape[float64] = Disk[float64]{}
	_ Shape[float64] = Cylinder[float64]{}
)

// forward keeps the parameters in front of the ray origin, sorted ascending
func forward[T core.Real](ts []T) []T {
	out := ts[:0]
	for _, t := range ts {
		if t >= 0 {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}

func isParallel[T core.Real](denominator T) bool {
	return core.Abs(denominator) < roots.ZeroEpsilon
}

// hypotXZ returns the distance of p from the local Y axis
func hypotXZ[T core.Real](p core.Vec3[T]) T {
	return core.Sqrt(p.X*p.X + p.Z*p.Z)
}

// length2 returns the length of the 2D vector (x, y)
func length2[T core.Real](x, y T) T {
	return core.Sqrt(x*x + y*y)
}
