package sdf3

import (
	"errors"
	"math"
	"testing"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/geometry"
)

// probes spans points inside, on and outside the shapes under test
func probes() []v3.Vec {
	var points []v3.Vec
	for i := -4; i <= 4; i++ {
		for j := -4; j <= 4; j++ {
			for k := -4; k <= 4; k++ {
				points = append(points, v3.Vec{X: 0.9 * float64(i), Y: 0.7 * float64(j), Z: 1.1 * float64(k)})
			}
		}
	}
	return points
}

func assertSameField(t *testing.T, want, got sdf.SDF3) {
	t.Helper()
	for _, p := range probes() {
		if w, g := want.Evaluate(p), got.Evaluate(p); math.Abs(w-g) > 1e-9 {
			t.Fatalf("At %v: expected %f, got %f", p, w, g)
		}
	}
}

func TestNew_MatchesSdfxSphere(t *testing.T) {
	want, err := sdf.Sphere3D(1.5)
	if err != nil {
		t.Fatalf("Sphere3D failed: %v", err)
	}
	got, err := New(geometry.NewSphere(core.NewVec3(0.0, 0, 0), 1.5), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	assertSameField(t, want, got)

	bb := got.BoundingBox()
	if bb.Min != (v3.Vec{X: -1.5, Y: -1.5, Z: -1.5}) || bb.Max != (v3.Vec{X: 1.5, Y: 1.5, Z: 1.5}) {
		t.Errorf("Expected bounding box [-1.5, 1.5]^3, got %v", bb)
	}
}

func TestNew_MatchesSdfxBox(t *testing.T) {
	want, err := sdf.Box3D(v3.Vec{X: 2, Y: 4, Z: 6}, 0)
	if err != nil {
		t.Fatalf("Box3D failed: %v", err)
	}
	got, err := New(geometry.NewBox(core.NewVec3(0.0, 0, 0), core.NewVec3(1.0, 2, 3)), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	assertSameField(t, want, got)
}

func TestNew_RotatedMatchesSdfxTransform(t *testing.T) {
	box, err := sdf.Box3D(v3.Vec{X: 2, Y: 4, Z: 6}, 0)
	if err != nil {
		t.Fatalf("Box3D failed: %v", err)
	}
	// A box turned a quarter turn is the same solid either way round
	want := sdf.Transform3D(box, sdf.RotateY(math.Pi/2))

	shape := geometry.NewBox(core.NewVec3(0.0, 0, 0), core.NewVec3(1.0, 2, 3))
	for name, rot := range map[string]core.Rotation[float64]{
		"matrix":     core.RotationY(math.Pi / 2),
		"quaternion": core.QuatFromAxisAngle(core.NewVec3(0.0, 1, 0), math.Pi/2),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := New(shape, rot)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			assertSameField(t, want, got)
		})
	}
}

func TestNew_Union(t *testing.T) {
	sphere, err := New(geometry.NewSphere(core.NewVec3(-2.0, 0, 0), 1), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	torus, err := New(geometry.NewTorus(core.NewVec3(2.0, 0, 0), 0.5, 1), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	union := sdf.Union3D(sphere, torus)
	for _, p := range probes() {
		want := math.Min(sphere.Evaluate(p), torus.Evaluate(p))
		if got := union.Evaluate(p); math.Abs(got-want) > 1e-12 {
			t.Fatalf("At %v: expected %f, got %f", p, want, got)
		}
	}

	bb := union.BoundingBox()
	if bb.Min.X != -3 || bb.Max.X != 3.5 {
		t.Errorf("Expected union to span x in [-3, 3.5], got [%f, %f]", bb.Min.X, bb.Max.X)
	}
}

func TestNew_Meshes(t *testing.T) {
	capsule, err := New(geometry.NewCapsule(core.NewVec3(0.0, 0, 0), 2, 0.5), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	triangles := render.ToTriangles(capsule, render.NewMarchingCubesUniform(40))
	if len(triangles) == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	for _, tri := range triangles {
		for j := 0; j < 3; j++ {
			if d := capsule.Evaluate(tri[j]); math.Abs(d) > 0.05 {
				t.Fatalf("Mesh vertex %v is %f from the surface", tri[j], d)
			}
		}
	}
	t.Logf("capsule triangle count: %d", len(triangles))
}

func TestNew_RejectsDegenerateShape(t *testing.T) {
	_, err := New(geometry.NewCone(core.NewVec3(0.0, 0, 0), 0, 1), nil)
	if !errors.Is(err, geometry.ErrDegenerateShape) {
		t.Errorf("Expected ErrDegenerateShape, got %v", err)
	}
}
