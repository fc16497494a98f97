// Package hypergraph analyzes directional hypergraphs given as vertex-arc
// incidence matrices.
//
// A directional hypergraph H = (V, A) is stored as a |V|×|A| matrix where
// column j describes arc j: -1 marks a tail vertex, +1 a head vertex and 0 an
// uninvolved vertex. Three arc shapes occur:
//
//   - Regular:    one tail, one head      ([-1, +1])
//   - Two-headed: one tail, two heads     ([-1, +1, +1])
//   - Two-tailed: two tails, one head     ([-1, -1, +1])
//
// IncidenceMatrix owns the cleaned columns (all-zero columns are dropped at
// construction) and answers three questions about the column space:
//
//   - Rank():                  numeric rank via matrix.Rank.
//   - IsLinearlyIndependent(): whether a·x = 0 forces x = 0 (matrix.Solve).
//   - Bases():                 distinct rank-sized independent column subsets.
//
// Bases are found by a greedy circular walk: from every start column i, the
// walk visits i+1, i+2, … (mod |A|) and keeps each column that stays
// independent of those already kept, until rank columns are kept. The search
// is deterministic and returns at most |A| bases. It is NOT an exhaustive
// enumeration of all bases of the column matroid.
//
// Rank, IsLinearlyIndependent and Bases recompute on every call. The Cached*
// accessors return the value of the last computation in O(1).
//
// DirectionalHypergraph wraps one IncidenceMatrix with vertex, arc and
// hyperarc counts. A hyperarc is counted for every column whose entries do
// not sum to zero, so regular arcs are not hyperarcs.
//
// Values are not safe for concurrent mutation. BasesConcurrent runs the
// independent per-start walks on an errgroup and returns the same list as
// Bases.
package hypergraph
