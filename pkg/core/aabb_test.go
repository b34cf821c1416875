package core

import "testing"

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1.0, -1, -1), NewVec3(1.0, 1, 1))

	tests := []struct {
		name     string
		ray      Ray[float64]
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, -5.0), NewVec3(0, 0, 1.0)), true},
		{"pointing away", NewRay(NewVec3(0, 0, -5.0), NewVec3(0, 0, -1.0)), false},
		{"parallel outside slab", NewRay(NewVec3(2, 0, -5.0), NewVec3(0, 0, 1.0)), false},
		{"diagonal", NewRay(NewVec3(-5, -5, -5.0), NewVec3(1, 1, 1.0)), true},
		{"origin inside", NewRay(NewVec3(0, 0, 0.0), NewVec3(0, 1, 0.0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0, 1000); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_FromPointsAndUnion(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1.0, 5, -2), NewVec3(-3.0, 2, 4), NewVec3(0, 0, 0.0))
	if !box.Min.Equals(NewVec3(-3.0, 0, -2)) || !box.Max.Equals(NewVec3(1.0, 5, 4)) {
		t.Errorf("Unexpected bounds %v", box)
	}
	if !box.IsValid() {
		t.Error("Expected valid box")
	}
	if !box.Contains(NewVec3(0, 1.0, 0)) {
		t.Error("Expected box to contain (0,1,0)")
	}

	other := NewAABB(NewVec3(2.0, 2, 2), NewVec3(3.0, 3, 3))
	union := box.Union(other)
	if !union.Max.Equals(NewVec3(3.0, 5, 4)) {
		t.Errorf("Unexpected union max %v", union.Max)
	}
	if got := NewAABB(NewVec3(0, 0, 0.0), NewVec3(2.0, 4, 6)).Center(); !got.Equals(NewVec3(1.0, 2, 3)) {
		t.Errorf("Unexpected center %v", got)
	}
	if got := other.Expand(1).Size(); !got.Equals(NewVec3(3.0, 3, 3)) {
		t.Errorf("Unexpected expanded size %v", got)
	}
}
