package core

// Vec3 represents a 3D vector
type Vec3[T Real] struct {
	X, Y, Z T
}

// NewVec3 creates a new Vec3
func NewVec3[T Real](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3[T]) Subtract(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3[T]) Multiply(scalar T) Vec3[T] {
	return Vec3[T]{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3[T]) Divide(scalar T) Vec3[T] {
	return Vec3[T]{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Length returns the magnitude of the vector
func (v Vec3[T]) Length() T {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{v.X / length, v.Y / length, v.Z / length}
}

// Cross returns the cross product of two vectors
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3[T]) MultiplyVec(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Negate returns the negative of the vector
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Abs returns the component-wise absolute value
func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

// Min returns the component-wise minimum of two vectors
func (v Vec3[T]) Min(other Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3[T]) Max(other Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// MaxComponent returns the largest of X, Y and Z
func (v Vec3[T]) MaxComponent() T {
	return max(v.X, v.Y, v.Z)
}

// Component returns the coordinate along axis (0=X, 1=Y, 2=Z)
func (v Vec3[T]) Component(axis int) T {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Equals reports whether two vectors are exactly equal
func (v Vec3[T]) Equals(other Vec3[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ApproxEquals reports whether every component differs by at most tolerance
func (v Vec3[T]) ApproxEquals(other Vec3[T], tolerance T) bool {
	return Abs(v.X-other.X) <= tolerance &&
		Abs(v.Y-other.Y) <= tolerance &&
		Abs(v.Z-other.Z) <= tolerance
}
