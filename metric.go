package unifrac

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// unweightedUniFrac is one minus the fraction of branch length shared by
// both samples over the branch length observed in either. i and j are
// aggregated states aligned with m; any nonzero entry counts as present.
//
// If neither sample observes any branch the result is NaN (0/0).
// boundaryCase intercepts that before the metric is reached.
func unweightedUniFrac(m, i, j []float64) float64 {
	var shared, observed float64
	for k, l := range m {
		a, b := i[k] != 0, j[k] != 0
		if a || b {
			observed += l
		}
		if a && b {
			shared += l
		}
	}
	return 1 - shared/observed
}

// weightedUniFrac sums branch lengths weighted by the absolute difference
// between the fractions of each sample that reach the branch. A sample with
// a zero total contributes 0 on every branch.
func weightedUniFrac(m, i, j []float64, iSum, jSum float64) float64 {
	var d float64
	for k, l := range m {
		var a, b float64
		if iSum != 0 {
			a = i[k] / iSum
		}
		if jSum != 0 {
			b = j[k] / jSum
		}
		d += l * math.Abs(a-b)
	}
	return d
}

// branchCorrect is the denominator of normalized weighted UniFrac: the
// largest weighted distance the two samples could have given the tip
// depths. tipDists is zero away from tips, so only tips contribute.
func branchCorrect(tipDists, i, j []float64, iSum, jSum float64) float64 {
	return floats.Dot(tipDists, i)/iSum + floats.Dot(tipDists, j)/jSum
}
