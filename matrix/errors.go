// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and callers match them with errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so wrapped chains stay
// greppable. Do not stringify parameters into the sentinels themselves.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/dimensions -> NaN/Inf -> numeric failure (singular, convergence).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Column) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// ragged row input, or a right-hand side whose length differs from Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNoConvergence indicates that the Jacobi SVD sweeps did not
	// orthogonalize all column pairs within the sweep cap.
	ErrNoConvergence = errors.New("matrix: jacobi sweeps did not converge")

	// ErrSingular is returned by Solve when the coefficient matrix does not
	// have full column rank (a diagonal of R fell below the singular tolerance).
	// It is an expected, recoverable signal: independence tests branch on it.
	ErrSingular = errors.New("matrix: singular matrix")
)
