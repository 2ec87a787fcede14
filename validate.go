package unifrac

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// validateCountsVectors checks that all vectors have the same length and
// hold finite, non-negative counts.
func validateCountsVectors(vectors ...[]float64) error {
	for i, v := range vectors {
		if len(v) != len(vectors[0]) {
			return fmt.Errorf("unifrac: count vector %d has length %d, want %d: %w",
				i, len(v), len(vectors[0]), ErrShapeMismatch)
		}
		for j, c := range v {
			if !validCount(c) {
				return fmt.Errorf("unifrac: count vector %d, position %d: %v: %w", i, j, c, ErrNegativeCount)
			}
		}
	}
	return nil
}

// validateCountsMatrix checks a samples × observations count matrix.
func validateCountsMatrix(counts mat.Matrix, ids []string) error {
	r, c := counts.Dims()
	if r == 0 {
		return fmt.Errorf("unifrac: count matrix has no samples: %w", ErrShapeMismatch)
	}
	if c != len(ids) {
		return fmt.Errorf("unifrac: count matrix has %d columns but %d observation IDs: %w",
			c, len(ids), ErrShapeMismatch)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := counts.At(i, j); !validCount(v) {
				return fmt.Errorf("unifrac: sample %d, observation %q: %v: %w", i, ids[j], v, ErrNegativeCount)
			}
		}
	}
	return nil
}

func validCount(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1)
}

// validateObservationIDsAndTree checks that ids matches the count vector
// length, holds no duplicates, and names only tips of the indexed tree.
// The tree may have tips that are not in ids.
func validateObservationIDsAndTree(n int, ids []string, ix *Index) error {
	if n != len(ids) {
		return fmt.Errorf("unifrac: %d counts but %d observation IDs: %w", n, len(ids), ErrShapeMismatch)
	}

	seen := make(map[string]bool, len(ids))
	var missing []string
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("unifrac: observation %q: %w", id, ErrDuplicateObservation)
		}
		seen[id] = true
		if _, ok := ix.Tip(id); !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unifrac: %s: %w", strings.Join(missing, ", "), ErrMissingObservation)
	}
	return nil
}
