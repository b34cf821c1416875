package core

import "math"

// Quat is a quaternion W + Xi + Yj + Zk. Rotations use unit quaternions.
type Quat[T Real] struct {
	X, Y, Z, W T
}

// IdentityQuat returns the quaternion representing no rotation
func IdentityQuat[T Real]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians about axis.
// The axis is normalized before use.
func QuatFromAxisAngle[T Real](axis Vec3[T], angle T) Quat[T] {
	a := axis.Normalize()
	s, c := math.Sincos(float64(angle) / 2)
	return Quat[T]{X: a.X * T(s), Y: a.Y * T(s), Z: a.Z * T(s), W: T(c)}
}

// Mul returns the Hamilton product q * other (other is applied first)
func (q Quat[T]) Mul(other Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Conjugate returns the conjugate, which is the inverse for unit quaternions
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Length returns the quaternion norm
func (q Quat[T]) Length() T {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns a unit quaternion
func (q Quat[T]) Normalize() Quat[T] {
	length := q.Length()
	if length == 0 {
		return IdentityQuat[T]()
	}
	return Quat[T]{X: q.X / length, Y: q.Y / length, Z: q.Z / length, W: q.W / length}
}

// Rotate applies the rotation to v
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	// v' = v + 2w(u x v) + 2(u x (u x v)), u the vector part
	u := Vec3[T]{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Multiply(2 * q.W)).Add(uuv.Multiply(2))
}

// InverseRotate applies the inverse rotation to v
func (q Quat[T]) InverseRotate(v Vec3[T]) Vec3[T] {
	return q.Conjugate().Rotate(v)
}

// ToMat3 converts a unit quaternion to a rotation matrix
func (q Quat[T]) ToMat3() Mat3[T] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	return Mat3[T]{M: [3][3]T{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}}
}
