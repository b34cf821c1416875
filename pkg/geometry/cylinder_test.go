package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-shapemath/pkg/core"
)

func TestCylinder_RayQueries(t *testing.T) {
	tests := []struct {
		name   string
		capped bool
		cases  []rayTest
	}{
		{
			name:   "capped",
			capped: true,
			cases: []rayTest{
				{
					name:   "through the side",
					ray:    core.NewRay(vec(0, 1, -5), vec(0, 0, 1)),
					ts:     []float64{4, 6},
					normal: vec(0, 0, -1),
				},
				{
					name:   "up the axis through both caps",
					ray:    core.NewRay(vec(0, -5, 0), vec(0, 1, 0)),
					ts:     []float64{5, 7},
					normal: vec(0, -1, 0),
				},
				{
					name:   "down off axis through both caps",
					ray:    core.NewRay(vec(0.5, 5, 0), vec(0, -1, 0)),
					ts:     []float64{3, 5},
					normal: vec(0, 1, 0),
				},
				{
					name: "beside",
					ray:  core.NewRay(vec(2, 1, -5), vec(0, 0, 1)),
				},
				{
					name: "above",
					ray:  core.NewRay(vec(0, 3, -5), vec(0, 0, 1)),
				},
			},
		},
		{
			name:   "uncapped",
			capped: false,
			cases: []rayTest{
				{
					name:   "through the side",
					ray:    core.NewRay(vec(0, 1, -5), vec(0, 0, 1)),
					ts:     []float64{4, 6},
					normal: vec(0, 0, -1),
				},
				{
					name: "up the open axis",
					ray:  core.NewRay(vec(0, -5, 0), vec(0, 1, 0)),
				},
				{
					name: "down through the open ends",
					ray:  core.NewRay(vec(0.5, 5, 0), vec(0, -1, 0)),
				},
				{
					name:   "from inside the tube",
					ray:    core.NewRay(vec(0, 1, 0), vec(1, 0, 0)),
					ts:     []float64{1},
					normal: vec(1, 0, 0),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyl := NewCylinder(vec(0, 0, 0), 2.0, 1.0, tt.capped)
			runRayTests(t, cyl, nil, tt.cases)
		})
	}
}

func TestCylinder_SDF(t *testing.T) {
	runSDFTests(t, NewCylinder(vec(0, 0, 0), 2.0, 1.0, true), []sdfTest{
		{vec(0, 1, 0), -1},
		{vec(0.5, 1, 0), -0.5},
		{vec(1, 1, 0), 0},
		{vec(0, 2, 0), 0},
		{vec(0, 3, 0), 1},
		{vec(2, 1, 0), 1},
		{vec(2, 3, 0), math.Sqrt2},
	})

	runSDFTests(t, NewCylinder(vec(0, 0, 0), 2.0, 1.0, false), []sdfTest{
		{vec(0, 1, 0), 1},
		{vec(0.5, 1, 0), 0.5},
		{vec(2, 1, 0), 1},
		{vec(1, 3, 0), 1},
		{vec(0, 3, 0), math.Sqrt2},
	})
}

func TestCylinder_Rotated(t *testing.T) {
	// A quarter turn about X lays the axis along +Z
	cyl := NewCylinder(vec(0, 0, 0), 2.0, 1.0, true)
	var rot core.Rotation[float64] = core.RotationX(math.Pi / 2)

	runRayTests(t, cyl, rot, []rayTest{
		{
			name:   "along the axis",
			ray:    core.NewRay(vec(0, 0, -5), vec(0, 0, 1)),
			ts:     []float64{5, 7},
			normal: vec(0, 0, -1),
		},
		{
			name:   "across the axis",
			ray:    core.NewRay(vec(-5, 0, 1), vec(1, 0, 0)),
			ts:     []float64{4, 6},
			normal: vec(-1, 0, 0),
		},
	})
}

func TestCylinder_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		rot      core.Rotation[float64]
		min, max core.Vec3[float64]
	}{
		{"along Y", nil, vec(4, 5, 4), vec(6, 7, 6)},
		{"along Z", core.RotationX(math.Pi / 2), vec(4, 4, 5), vec(6, 6, 7)},
	}

	cyl := NewCylinder(vec(5, 5, 5), 2.0, 1.0, true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := BoundsOfRotated(cyl, tt.rot)
			if !bounds.Min.ApproxEquals(tt.min, 1e-9) || !bounds.Max.ApproxEquals(tt.max, 1e-9) {
				t.Errorf("Expected bounds [%v, %v], got [%v, %v]", tt.min, tt.max, bounds.Min, bounds.Max)
			}
		})
	}
}

func TestCylinder_Validate(t *testing.T) {
	if err := NewCylinder(vec(0, 0, 0), 2.0, 1.0, true).Validate(); err != nil {
		t.Errorf("Expected valid cylinder, got %v", err)
	}
	if err := NewCylinder(vec(0, 0, 0), -2.0, 1.0, true).Validate(); !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("Expected ErrDegenerateShape, got %v", err)
	}
}
