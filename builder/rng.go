// Package builder - RNG utilities shared by the generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical columns across platforms.
//   - Encapsulation: every draw goes through the configured *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package builder

import "math/rand"

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a uniformly random permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}
