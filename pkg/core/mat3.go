package core

import "math"

// Mat3 is a row-major 3x3 matrix. M[r][c] is row r, column c.
type Mat3[T Real] struct {
	M [3][3]T
}

// Identity3 returns the identity matrix
func Identity3[T Real]() Mat3[T] {
	return Mat3[T]{M: [3][3]T{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// NewMat3FromRows builds a matrix from its three rows
func NewMat3FromRows[T Real](r0, r1, r2 Vec3[T]) Mat3[T] {
	return Mat3[T]{M: [3][3]T{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}}
}

// NewMat3FromColumns builds a matrix from its three columns, for callers
// holding column-major data
func NewMat3FromColumns[T Real](c0, c1, c2 Vec3[T]) Mat3[T] {
	return NewMat3FromRows(c0, c1, c2).Transpose()
}

// RotationX returns a rotation of angle radians about the X axis
func RotationX[T Real](angle T) Mat3[T] {
	s, c := sincos(angle)
	return Mat3[T]{M: [3][3]T{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}}
}

// RotationY returns a rotation of angle radians about the Y axis
func RotationY[T Real](angle T) Mat3[T] {
	s, c := sincos(angle)
	return Mat3[T]{M: [3][3]T{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}}
}

// RotationZ returns a rotation of angle radians about the Z axis
func RotationZ[T Real](angle T) Mat3[T] {
	s, c := sincos(angle)
	return Mat3[T]{M: [3][3]T{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}

func sincos[T Real](angle T) (T, T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

// Row returns row r as a vector
func (m Mat3[T]) Row(r int) Vec3[T] {
	return Vec3[T]{m.M[r][0], m.M[r][1], m.M[r][2]}
}

// Column returns column c as a vector
func (m Mat3[T]) Column(c int) Vec3[T] {
	return Vec3[T]{m.M[0][c], m.M[1][c], m.M[2][c]}
}

// MulVec returns m * v
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Mul returns the matrix product m * other
func (m Mat3[T]) Mul(other Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[r][c] = m.M[r][0]*other.M[0][c] + m.M[r][1]*other.M[1][c] + m.M[r][2]*other.M[2][c]
		}
	}
	return out
}

// Transpose returns the transposed matrix
func (m Mat3[T]) Transpose() Mat3[T] {
	var out Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[c][r] = m.M[r][c]
		}
	}
	return out
}

// Determinant returns the determinant of the matrix
func (m Mat3[T]) Determinant() T {
	return m.Row(0).Dot(m.Row(1).Cross(m.Row(2)))
}

// Rotate applies the matrix to v
func (m Mat3[T]) Rotate(v Vec3[T]) Vec3[T] {
	return m.MulVec(v)
}

// InverseRotate applies the inverse rotation. The matrix is assumed
// orthonormal, so the transpose is used.
func (m Mat3[T]) InverseRotate(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m.M[0][0]*v.X + m.M[1][0]*v.Y + m.M[2][0]*v.Z,
		Y: m.M[0][1]*v.X + m.M[1][1]*v.Y + m.M[2][1]*v.Z,
		Z: m.M[0][2]*v.X + m.M[1][2]*v.Y + m.M[2][2]*v.Z,
	}
}
