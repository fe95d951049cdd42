// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Sentinels are returned wrapped with
// an operation tag via matrixErrorf ("Op: underlying") so callers see
// context while errors.Is still matches.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative row or column count). Zero is a valid dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub on different shapes, Mul where a.Cols != b.Rows,
	// Det2x2 on anything but 2×2, Transpose of a zero-row matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged indicates that FromRows received rows of differing
	// lengths; a dense matrix is rectangular by construction.
	ErrRagged = errors.New("matrix: rows have differing lengths")

	// ErrNilMatrix indicates that a nil Matrix operand was passed into
	// a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
