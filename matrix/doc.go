// SPDX-License-Identifier: MIT

// Package matrix provides a row-major dense float64 matrix and the
// linear-algebra kernels over it: construction (Zeros, Identity,
// FromRows), elementwise Add/Sub/Scale, matrix Mul, Transpose, and the
// 2×2 determinant.
//
// ✨ Key properties:
//   - Dense stores elements in one flat slice for cache friendliness;
//     every accessor is O(1).
//   - Degenerate shapes are first-class: 0×c and r×0 matrices are valid
//     values (Zeros accepts zero dimensions), and every kernel documents
//     its behavior on them. Negative dimensions are ErrBadShape.
//   - Operands are never mutated — every kernel allocates a fresh
//     result; Clone is a deep copy.
//   - Strict fail-fast validation: nil operands → ErrNilMatrix,
//     incompatible shapes → ErrDimensionMismatch, ragged row input →
//     ErrRagged, out-of-bounds indices → ErrOutOfRange. All sentinels
//     are matched with errors.Is through the operation-tagged wrappers.
//   - No pivoting, blocking, or stability tricks: kernels are the
//     direct textbook definitions (Mul is the triple loop), chosen for
//     correctness and predictability over asymptotics.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathkit/matrix"
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	i2, _ := matrix.Identity(2)
//	p, err := matrix.Mul(i2, a) // p equals a
//	d, err := matrix.Det2x2(a)  // -2
//
// The general n×n determinant, inverses, and decompositions are out of
// scope.
package matrix
