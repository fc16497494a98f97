// Package builder provides validation helpers to enforce parameter contracts
// of the generators.
//
// Each function returns a sentinel wrapped via builderErrorf when its
// precondition is violated.
package builder

// validateMin ensures that got ≥ min, returning sentinel otherwise.
//
// Parameters:
//   - method:   constructor name constant, e.g. MethodGenerate.
//   - name:     parameter name used in the message.
//   - got, min: actual value and minimal acceptable value.
//   - sentinel: error class to wrap (ErrTooFewVertices, ErrTooFewArcs, ...).
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int, sentinel error) error {
	if got < min {
		return builderErrorf(method, sentinel, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN is rejected as well.
//
// Complexity: O(1) time and space.
func validateProbability(method, name string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability,
			"%s must be in [%.1f,%.1f], got %v", name, MinProbability, MaxProbability, p)
	}

	return nil
}

// validateShapeMix checks both hyperarc probabilities and their sum.
func validateShapeMix(method string, pTwoHead, pTwoTail float64) error {
	if err := validateProbability(method, "pTwoHead", pTwoHead); err != nil {
		return err
	}
	if err := validateProbability(method, "pTwoTail", pTwoTail); err != nil {
		return err
	}
	if pTwoHead+pTwoTail > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"pTwoHead+pTwoTail must be ≤ %.1f, got %v", MaxProbability, pTwoHead+pTwoTail)
	}

	return nil
}
