// Package sdf3 exposes geometry shapes as github.com/deadsy/sdfx solids, so a
// shape can be combined with sdfx CSG operations and fed to its renderers.
package sdf3

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/geometry"
)

// Compile-time interface check.
var _ sdf.SDF3 = (*solid[geometry.Sphere[float64]])(nil)

// solid wraps a shape and its optional orientation as an sdf.SDF3
type solid[S geometry.Shape[float64]] struct {
	shape S
	rot   core.Rotation[float64]
	bb    sdf.Box3
}

// New returns shape, oriented by rot, as an sdfx solid. A nil rot leaves the
// shape in its local orientation. Degenerate shapes are rejected.
func New[S geometry.Shape[float64]](shape S, rot core.Rotation[float64]) (sdf.SDF3, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("sdf3: %w", err)
	}

	bounds := geometry.BoundsOfRotated(shape, rot)
	return &solid[S]{
		shape: shape,
		rot:   rot,
		bb:    sdf.Box3{Min: toVec(bounds.Min), Max: toVec(bounds.Max)},
	}, nil
}

// Evaluate returns the signed distance from p to the shape.
func (s *solid[S]) Evaluate(p v3.Vec) float64 {
	return geometry.SDFValueOfRotated(fromVec(p), s.shape, s.rot)
}

// BoundingBox returns the axis-aligned bounding box.
func (s *solid[S]) BoundingBox() sdf.Box3 {
	return s.bb
}

func toVec(v core.Vec3[float64]) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromVec(v v3.Vec) core.Vec3[float64] {
	return core.NewVec3(v.X, v.Y, v.Z)
}
