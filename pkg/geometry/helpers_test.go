package geometry

import (
	"testing"

	"github.com/df07/go-shapemath/pkg/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-9

var approxRoots = cmp.Options{
	cmpopts.EquateApprox(0, 1e-9),
	cmpopts.EquateEmpty(),
}

func vec(x, y, z float64) core.Vec3[float64] {
	return core.NewVec3(x, y, z)
}

// rayTest is one ray against one shape with its expected crossings and,
// when hit, the expected normal at the closest crossing
type rayTest struct {
	name   string
	ray    core.Ray[float64]
	ts     []float64
	normal core.Vec3[float64]
}

func runRayTests[S Shape[float64]](t *testing.T, shape S, rot core.Rotation[float64], tests []rayTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := TValuesOfRotated(tt.ray, shape, rot)
			if diff := cmp.Diff(tt.ts, ts, approxRoots); diff != "" {
				t.Errorf("TValues mismatch (-want +got):\n%s", diff)
			}

			hit := IsRayIntersectedRotated(tt.ray, shape, rot)
			if hit != (len(tt.ts) > 0) {
				t.Errorf("Expected intersected=%v, got %v", len(tt.ts) > 0, hit)
			}

			closest, ok := ClosestTValueOfRotated(tt.ray, shape, rot)
			normal, normalOK := NormalOfRotated(tt.ray, shape, rot)
			if len(tt.ts) == 0 {
				if ok {
					t.Errorf("Expected no closest t, got %f", closest)
				}
				if normalOK {
					t.Errorf("Expected no normal, got %v", normal)
				}
				return
			}

			if !ok {
				t.Fatal("Expected closest t, got none")
			}
			if diff := cmp.Diff(tt.ts[0], closest, approxRoots); diff != "" {
				t.Errorf("Closest t mismatch (-want +got):\n%s", diff)
			}
			if !normalOK {
				t.Fatal("Expected normal, got none")
			}
			if !normal.ApproxEquals(tt.normal, 1e-6) {
				t.Errorf("Expected normal %v, got %v", tt.normal, normal)
			}
		})
	}
}

// sdfTest is one point with its expected signed distance
type sdfTest struct {
	point    core.Vec3[float64]
	expected float64
}

func runSDFTests[S Shape[float64]](t *testing.T, shape S, tests []sdfTest) {
	t.Helper()
	for _, tt := range tests {
		if got := SDFValueOf(tt.point, shape); cmp.Diff(tt.expected, got, approxRoots) != "" {
			t.Errorf("SDF at %v: expected %f, got %f", tt.point, tt.expected, got)
		}
	}
}
