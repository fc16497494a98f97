// SPDX-License-Identifier: MIT
// Package hypergraph - arc shape classification.

package hypergraph

// ArcShape names the sign pattern of one incidence column.
type ArcShape int

const (
	// ShapeUnknown is any column that is not one of the three arc shapes.
	ShapeUnknown ArcShape = iota
	// ShapeRegular has one tail (-1) and one head (+1).
	ShapeRegular
	// ShapeTwoHead has one tail (-1) and two heads (+1, +1).
	ShapeTwoHead
	// ShapeTwoTail has two tails (-1, -1) and one head (+1).
	ShapeTwoTail
)

// String returns a short lowercase name suitable for reports.
func (s ArcShape) String() string {
	switch s {
	case ShapeRegular:
		return "regular"
	case ShapeTwoHead:
		return "two-head"
	case ShapeTwoTail:
		return "two-tail"
	default:
		return "unknown"
	}
}

// ClassifyArc returns the shape of col. Entries other than -1, 0 and +1
// make the column ShapeUnknown.
// Complexity: O(len(col)).
func ClassifyArc(col []float64) ArcShape {
	var tails, heads int
	for _, v := range col {
		switch v {
		case 0:
		case -1:
			tails++
		case 1:
			heads++
		default:
			return ShapeUnknown
		}
	}

	switch {
	case tails == 1 && heads == 1:
		return ShapeRegular
	case tails == 1 && heads == 2:
		return ShapeTwoHead
	case tails == 2 && heads == 1:
		return ShapeTwoTail
	default:
		return ShapeUnknown
	}
}
