// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels on any Matrix implementation:
// transpose, matrix-vector product, Householder QR, least-squares solve with
// singularity detection, and singular values / numeric rank via one-sided
// Jacobi rotations. All functions validate fail-fast and return sentinels.
//
// Notes:
//   - Every kernel takes a *Dense fast-path; other implementations are first
//     materialized through toDense (one At pass) so loops stay single-sourced.
//   - Errors are wrapped through matrixErrorf with the op* tags below.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// ZeroSum is the initial sum value for substitution and dot products.
const ZeroSum = 0.0

// SingularEpsilon is the relative threshold below which a diagonal entry of R
// (Solve) or a singular value (Rank) is treated as zero. The effective
// tolerance is max(rows, cols) · scale · SingularEpsilon, where scale is the
// largest |R[k,k]| or the largest singular value respectively.
//
// Incidence data is small-integer valued, so exact rank deficiencies surface
// at roughly 1e-16·scale while genuine pivots stay far above 1e-10·scale.
const SingularEpsilon = 1e-10

// Jacobi SVD controls: off-diagonal convergence threshold relative to the
// column norms, and the hard sweep cap. A column whose squared norm is at most
// (svdTolerance·‖A‖_F)² counts as converged to zero and is no longer rotated.
const (
	svdTolerance = 1e-14
	svdMaxSweeps = 60
)

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opQR        = "QR"
	opSolve     = "Solve"
	opSVD       = "SingularValues"
	opRank      = "Rank"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it already is *Dense, or a Dense copy otherwise.
// Complexity: O(1) for *Dense, O(r*c) for the generic path.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: flat copy data[i*cols+j] → res.data[j*rows+i].
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var (
		i, j, base int
		acc        float64
	)
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if x[j] != 0 {
				acc += d.data[base+j] * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}

// QR computes a Householder-based factorization such that A = Qᵀ * R for a
// rows×cols input with rows ≥ cols.
//
// Implementation:
//   - Stage 1: Validate m (not nil, rows ≥ cols); clone A; init Q (rows×rows) to identity.
//   - Stage 2: For k=0..cols-1, build a column reflector and apply it to A (forming R) and to Q.
//
// Behavior highlights:
//   - Deterministic column order; no sign canonicalization inside.
//   - Zero sub-columns are skipped, leaving an exact zero on R's diagonal.
//
// Returns:
//   - *Dense: Q (accumulated reflectors; note A = Qᵀ * R, i.e. Q*A = R).
//   - *Dense: R (rows×cols, upper trapezoidal).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows < cols).
//
// Complexity:
//   - Time O(rows² * cols), Space O(rows² + rows*cols).
func QR(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < cols {
		return nil, nil, matrixErrorf(opQR, ErrDimensionMismatch)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	// Working copy A (becomes R) and orthogonal accumulator Q.
	A := src.Clone().(*Dense)
	Q, err := NewDense(rows, rows)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < rows; i++ {
		Q.data[i*rows+i] = 1.0
	}

	v := make([]float64, rows)
	var (
		i, j, k    int
		norm, beta float64 // column norm and β = vᵀv
		alpha, tau float64 // reflection scalar and 2/β factor
		sum, aij   float64
		steps      = cols
	)
	if steps > rows-1 && rows == cols {
		// The trailing 1×1 block of a square input needs no reflector.
		steps = rows - 1
	}
	for k = 0; k < steps; k++ {
		// Norm of A[k:rows][k].
		norm = ZeroSum
		for i = k; i < rows; i++ {
			aij = A.data[i*cols+k]
			norm += aij * aij
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero sub-column: R[k,k] stays exactly 0
		}

		// alpha = -sign(A[k,k]) * norm
		alpha = -math.Copysign(norm, A.data[k*cols+k])

		// Householder vector v = x - alpha*e_k over [k..rows).
		for i = 0; i < rows; i++ {
			v[i] = 0
		}
		for i = k; i < rows; i++ {
			v[i] = A.data[i*cols+k]
		}
		v[k] -= alpha

		beta = ZeroSum
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		// Apply reflection to A (update R).
		for j = k; j < cols; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * A.data[i*cols+j]
			}
			for i = k; i < rows; i++ {
				A.data[i*cols+j] -= tau * v[i] * sum
			}
		}

		// Apply reflection to Q.
		for j = 0; j < rows; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * Q.data[i*rows+j]
			}
			for i = k; i < rows; i++ {
				Q.data[i*rows+j] -= tau * v[i] * sum
			}
		}
	}

	return Q, A, nil
}

// Solve returns the least-squares solution x of a·x = b.
//
// Implementation:
//   - Stage 1: validate a (non-nil), b (len == Rows, finite).
//   - Stage 2: rows < cols ⇒ ErrSingular (a nontrivial null space always exists).
//   - Stage 3: factor Q*a = R via QR; check every |R[k,k]| against
//     max(rows,cols)·max|R[k,k]|·SingularEpsilon; below ⇒ ErrSingular.
//   - Stage 4: y = MatVec(Q, b), back-substitute R[:cols,:cols]·x = y[:cols].
//
// Behavior highlights:
//   - Singularity is a distinguishable, recoverable failure (errors.Is(err, ErrSingular)),
//     never a NaN-filled answer.
//   - For square non-singular a this is the exact solution; for tall a with full
//     column rank it is the unique least-squares minimizer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(rows² * cols), Space O(rows²).
//
// AI-Hints:
//   - Solving a·x = 0 succeeds exactly when the columns of a are linearly independent.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if err := ValidateVecLen(b, rows); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if rows < cols {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	Q, R, err := QR(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Singularity guard on the diagonal of R.
	var (
		k, i  int
		scale float64
		piv   float64
	)
	for k = 0; k < cols; k++ {
		if piv = math.Abs(R.data[k*cols+k]); piv > scale {
			scale = piv
		}
	}
	if scale == 0 {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	tol := float64(max(rows, cols)) * scale * SingularEpsilon
	for k = 0; k < cols; k++ {
		if math.Abs(R.data[k*cols+k]) <= tol {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
	}

	// y = Q*b; only the first cols entries enter back-substitution.
	y, err := MatVec(Q, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	var sum float64

	// Backward substitution on the leading cols×cols triangle.
	x := make([]float64, cols)
	for k = cols - 1; k >= 0; k-- {
		sum = ZeroSum
		for i = k + 1; i < cols; i++ {
			sum += R.data[k*cols+i] * x[i]
		}
		x[k] = (y[k] - sum) / R.data[k*cols+k]
	}

	return x, nil
}

// SingularValues returns the singular values of m in descending order.
//
// Implementation:
//   - Stage 1: work on the orientation with fewer columns (m or mᵀ), copied into U.
//   - Stage 2: one-sided (Hestenes) Jacobi: sweep all column pairs (p<q) in fixed
//     order and rotate each pair until its columns are orthogonal within
//     svdTolerance·‖u_p‖·‖u_q‖. Pairs holding a round-off column (squared
//     norm ≤ (svdTolerance·‖A‖_F)², e.g. the remainder of a duplicated
//     column) are skipped.
//   - Stage 3: σ_j = ‖u_j‖; sort descending.
//
// Behavior highlights:
//   - Rotation parameters use the symmetric Jacobi (θ, t, c, s) recipe, applied
//     implicitly to UᵀU without forming it, so zero singular values come out at
//     round-off level instead of √round-off.
//
// Errors:
//   - ErrNilMatrix, ErrNoConvergence (no convergence within svdMaxSweeps).
//
// Complexity:
//   - Time O(sweeps · n² · m) for an m×n working matrix, Space O(m*n).
func SingularValues(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	work := m
	if m.Rows() < m.Cols() {
		t, err := Transpose(m)
		if err != nil {
			return nil, matrixErrorf(opSVD, err)
		}
		work = t
	}
	src, err := toDense(work)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	U := src.Clone().(*Dense)
	rows, n := U.r, U.c

	var fro2 float64
	for _, v := range U.data {
		fro2 += v * v
	}
	floor := svdTolerance * svdTolerance * fro2

	var (
		sweep, p, q, i     int
		alpha, beta, gamma float64
		zeta, t, c, s      float64
		up, uq             float64
		rotated            bool
	)
	for sweep = 0; sweep < svdMaxSweeps; sweep++ {
		rotated = false
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				alpha, beta, gamma = ZeroSum, ZeroSum, ZeroSum
				for i = 0; i < rows; i++ {
					up = U.data[i*n+p]
					uq = U.data[i*n+q]
					alpha += up * up
					beta += uq * uq
					gamma += up * uq
				}
				if alpha <= floor || beta <= floor {
					continue
				}
				if gamma == 0 || math.Abs(gamma) <= svdTolerance*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true

				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1.0/(math.Abs(zeta)+math.Hypot(zeta, 1)), zeta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < rows; i++ {
					up = U.data[i*n+p]
					uq = U.data[i*n+q]
					U.data[i*n+p] = c*up - s*uq
					U.data[i*n+q] = s*up + c*uq
				}
			}
		}
		if !rotated {
			break
		}
	}
	if sweep == svdMaxSweeps {
		return nil, matrixErrorf(opSVD, ErrNoConvergence)
	}

	sv := make([]float64, n)
	var norm float64
	for p = 0; p < n; p++ {
		norm = ZeroSum
		for i = 0; i < rows; i++ {
			norm += U.data[i*n+p] * U.data[i*n+p]
		}
		sv[p] = math.Sqrt(norm)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sv)))

	return sv, nil
}

// Rank returns the numeric rank of m: the number of singular values above
// max(rows, cols) · σ_max · SingularEpsilon. A zero matrix has rank 0.
//
// Errors: those of SingularValues, wrapped with opRank.
// Complexity: dominated by SingularValues.
func Rank(m Matrix) (int, error) {
	sv, err := SingularValues(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if len(sv) == 0 || sv[0] == 0 {
		return 0, nil
	}
	tol := float64(max(m.Rows(), m.Cols())) * sv[0] * SingularEpsilon
	rank := 0
	for _, v := range sv {
		if v > tol {
			rank++
		}
	}

	return rank, nil
}
