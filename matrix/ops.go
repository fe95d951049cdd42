// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels over any Matrix
// implementation — elementwise addition and subtraction, scalar
// scaling, matrix multiplication, transpose, and the 2×2 determinant.
// All kernels perform strict fail-fast validation, never mutate their
// operands, and return freshly allocated Dense results.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opZeros     = "Zeros"
	opIdentity  = "Identity"
	opFromRows  = "FromRows"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opDet2x2    = "Det2x2"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel for errors.Is/As. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil reports ErrNilMatrix for any nil operand.
func validateNotNil(ms ...Matrix) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes; a fresh Dense is allocated and
// operands are left untouched. Shared by Add and Sub.
// Fast path: both operands *Dense → one flat loop over the backing
// slices. Fallback: At with fixed i→j order for foreign implementations.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, matrixErrorf(opTag, ErrDimensionMismatch)
	}

	res, err := Zeros(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: flat walk over both backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := range da.data {
				res.data[i] = da.data[i] + sign*db.data[i]
			}

			return res, nil
		}
	}

	// Fallback: fixed i→j traversal via the interface.
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			va, errA := a.At(i, j)
			if errA != nil {
				return nil, matrixErrorf(opTag, errA)
			}
			vb, errB := b.At(i, j)
			if errB != nil {
				return nil, matrixErrorf(opTag, errB)
			}
			res.data[i*res.c+j] = va + sign*vb
		}
	}

	return res, nil
}

// Add returns the elementwise sum a + b as a fresh Dense.
// Errors: ErrNilMatrix; ErrDimensionMismatch unless both row and column
// counts match. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return addSub(a, b, +1, opAdd)
}

// Sub returns the elementwise difference a − b as a fresh Dense.
// Errors: ErrNilMatrix; ErrDimensionMismatch unless both row and column
// counts match. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	return addSub(a, b, -1, opSub)
}

// Scale returns k·m as a fresh Dense.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, k float64) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := Zeros(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for i := range dm.data {
			res.data[i] = k * dm.data[i]
		}

		return res, nil
	}

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, errAt := m.At(i, j)
			if errAt != nil {
				return nil, matrixErrorf(opScale, errAt)
			}
			res.data[i*res.c+j] = k * v
		}
	}

	return res, nil
}

// Mul returns the matrix product a·b as a fresh (a.Rows × b.Cols) Dense,
// computed by the standard triple-nested-loop definition with fixed
// i→k→j order (no Strassen, no blocking — correctness over asymptotics).
// A zero inner dimension (a is r×0, b is 0×c) legally yields an all-zero
// r×c result.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch unless a.Cols == b.Rows.
// Complexity: O(r*k*c) time, O(r*c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := Zeros(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: both *Dense → flat index arithmetic, i→k→j order keeps
	// the inner loop walking both b and res rows sequentially.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < rows; i++ {
				for k := 0; k < inner; k++ {
					aik := da.data[i*inner+k]
					if aik == 0 {
						continue
					}
					for j := 0; j < cols; j++ {
						res.data[i*cols+j] += aik * db.data[k*cols+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback via the interface, same fixed traversal.
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			aik, errA := a.At(i, k)
			if errA != nil {
				return nil, matrixErrorf(opMul, errA)
			}
			for j := 0; j < cols; j++ {
				bkj, errB := b.At(k, j)
				if errB != nil {
					return nil, matrixErrorf(opMul, errB)
				}
				res.data[i*cols+j] += aik * bkj
			}
		}
	}

	return res, nil
}

// Transpose returns the (cols × rows) transpose of m as a fresh Dense:
// result[j][i] = m[i][j].
//
// A zero-row input is rejected with ErrDimensionMismatch — it carries
// no column count to derive the result width from, so the kernel fails
// fast rather than guessing. A zero-column input with r>0 rows is well
// defined and transposes to the 0×r matrix.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch for zero-row input.
// Complexity: O(r*c) time and memory.
func Transpose(m Matrix) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if m.Rows() == 0 {
		return nil, matrixErrorf(opTranspose, ErrDimensionMismatch)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := Zeros(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, errAt := m.At(i, j)
			if errAt != nil {
				return nil, matrixErrorf(opTranspose, errAt)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Det2x2 returns the determinant m[0][0]·m[1][1] − m[0][1]·m[1][0] of
// an exactly 2×2 matrix. The general n×n determinant is deliberately
// out of scope.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch unless m is 2×2.
// Complexity: O(1).
func Det2x2(m Matrix) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		return 0, matrixErrorf(opDet2x2, ErrDimensionMismatch)
	}

	if dm, ok := m.(*Dense); ok {
		return dm.data[0]*dm.data[3] - dm.data[1]*dm.data[2], nil
	}

	a, err := m.At(0, 0)
	if err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}
	b, err := m.At(0, 1)
	if err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}
	c, err := m.At(1, 0)
	if err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}
	d, err := m.At(1, 1)
	if err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}

	return a*d - b*c, nil
}
