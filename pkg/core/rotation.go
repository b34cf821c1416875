package core

// Rotation maps vectors between a shape's local frame and world space.
// Mat3 and Quat implement it. Callers must supply an orthonormal matrix or a
// unit quaternion; neither is checked.
type Rotation[T Real] interface {
	// Rotate maps a local-frame vector to world space
	Rotate(v Vec3[T]) Vec3[T]
	// InverseRotate maps a world-space vector to the local frame
	InverseRotate(v Vec3[T]) Vec3[T]
}

var (
	_ Rotation[float64] = Mat3[float64]{}
	_ Rotation[float32] = Quat[float32]{}
)
