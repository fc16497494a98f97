// Package matrix is the dense numeric backend used by the hypergraph engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with bounds-checked At/Set, Clone,
//     column extraction and copy-based submatrices (Induced).
//   - Construction helpers: NewDense (zero-filled) and NewDenseFromRows
//     (row-major input; transpose it to reach vertex×arc orientation).
//   - Kernels: Transpose, MatVec, QR (Householder, rows ≥ cols),
//     Solve (least-squares via QR, ErrSingular on rank deficiency),
//     SingularValues (one-sided Jacobi) and Rank.
//
// Singularity is a distinguishable failure mode: callers test for it with
// errors.Is(err, ErrSingular) and never receive NaN-filled solutions.
//
// All kernels are deterministic (fixed loop orders, no map iteration) and
// allocate fresh results; inputs are never mutated.
package matrix
