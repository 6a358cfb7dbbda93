package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotInvertible is returned when inverting a matrix whose determinant is zero
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix is a square matrix of size 2, 3 or 4. Transforms are always 4x4.
type Matrix struct {
	size int
	m    [4][4]float64
}

// NewMatrix2 creates a 2x2 matrix from rows
func NewMatrix2(rows [2][2]float64) Matrix {
	var out Matrix
	out.size = 2
	for r := range rows {
		copy(out.m[r][:2], rows[r][:])
	}
	return out
}

// NewMatrix3 creates a 3x3 matrix from rows
func NewMatrix3(rows [3][3]float64) Matrix {
	var out Matrix
	out.size = 3
	for r := range rows {
		copy(out.m[r][:3], rows[r][:])
	}
	return out
}

// NewMatrix4 creates a 4x4 matrix from rows
func NewMatrix4(rows [4][4]float64) Matrix {
	return Matrix{size: 4, m: rows}
}

// Identity4 returns the 4x4 identity matrix
func Identity4() Matrix {
	return NewMatrix4([4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Size returns the number of rows (and columns)
func (a Matrix) Size() int {
	return a.size
}

// At returns the element at row, col
func (a Matrix) At(row, col int) float64 {
	return a.m[row][col]
}

// Equals compares two matrices element-wise within Epsilon
func (a Matrix) Equals(b Matrix) bool {
	if a.size != b.size {
		return false
	}
	for r := 0; r < a.size; r++ {
		for c := 0; c < a.size; c++ {
			if !ApproxEqual(a.m[r][c], b.m[r][c]) {
				return false
			}
		}
	}
	return true
}

// Multiply returns the matrix product a*b. Both operands must have the same size.
func (a Matrix) Multiply(b Matrix) Matrix {
	if a.size != b.size {
		panic(fmt.Sprintf("core: multiplying %dx%d by %dx%d matrix", a.size, a.size, b.size, b.size))
	}
	out := Matrix{size: a.size}
	for r := 0; r < a.size; r++ {
		for c := 0; c < a.size; c++ {
			sum := 0.0
			for k := 0; k < a.size; k++ {
				sum += a.m[r][k] * b.m[k][c]
			}
			out.m[r][c] = sum
		}
	}
	return out
}

// MultiplyTuple returns the 4x4 matrix applied to a tuple
func (a Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: a.m[0][0]*t.X + a.m[0][1]*t.Y + a.m[0][2]*t.Z + a.m[0][3]*t.W,
		Y: a.m[1][0]*t.X + a.m[1][1]*t.Y + a.m[1][2]*t.Z + a.m[1][3]*t.W,
		Z: a.m[2][0]*t.X + a.m[2][1]*t.Y + a.m[2][2]*t.Z + a.m[2][3]*t.W,
		W: a.m[3][0]*t.X + a.m[3][1]*t.Y + a.m[3][2]*t.Z + a.m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (a Matrix) Transpose() Matrix {
	out := Matrix{size: a.size}
	for r := 0; r < a.size; r++ {
		for c := 0; c < a.size; c++ {
			out.m[c][r] = a.m[r][c]
		}
	}
	return out
}

// Submatrix returns a copy with the given row and column removed
func (a Matrix) Submatrix(row, col int) Matrix {
	if a.size <= 2 {
		panic("core: submatrix of a 2x2 matrix")
	}
	out := Matrix{size: a.size - 1}
	dr := 0
	for r := 0; r < a.size; r++ {
		if r == row {
			continue
		}
		dc := 0
		for c := 0; c < a.size; c++ {
			if c == col {
				continue
			}
			out.m[dr][dc] = a.m[r][c]
			dc++
		}
		dr++
	}
	return out
}

// Determinant computes the determinant by cofactor expansion along the first row
func (a Matrix) Determinant() float64 {
	if a.size == 2 {
		return a.m[0][0]*a.m[1][1] - a.m[0][1]*a.m[1][0]
	}
	det := 0.0
	for c := 0; c < a.size; c++ {
		det += a.m[0][c] * a.Cofactor(0, c)
	}
	return det
}

// Minor is the determinant of the submatrix at row, col
func (a Matrix) Minor(row, col int) float64 {
	return a.Submatrix(row, col).Determinant()
}

// Cofactor is the minor at row, col negated when row+col is odd
func (a Matrix) Cofactor(row, col int) float64 {
	minor := a.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// IsInvertible reports whether the determinant is nonzero
func (a Matrix) IsInvertible() bool {
	return a.Determinant() != 0
}

// Inverse returns the inverse matrix, or ErrNotInvertible for a singular matrix
func (a Matrix) Inverse() (Matrix, error) {
	det := a.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}
	out := Matrix{size: a.size}
	for r := 0; r < a.size; r++ {
		for c := 0; c < a.size; c++ {
			// transposed write
			out.m[c][r] = a.Cofactor(r, c) / det
		}
	}
	return out, nil
}

func (a Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < a.size; r++ {
		sb.WriteString("|")
		for c := 0; c < a.size; c++ {
			fmt.Fprintf(&sb, " %8.5f |", a.m[r][c])
		}
		if r < a.size-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
