package unifrac

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Unweighted computes the unweighted (presence/absence) UniFrac distance
// between samples u and v. ids names the observation of each count and
// must be tips of t; t may have extra tips. Only cfg.Validate and
// cfg.Index are used.
//
// Two empty samples are at distance 0; an empty and a non-empty sample are
// at distance 1.
func Unweighted(u, v []float64, ids []string, t Tree, cfg Config) (float64, error) {
	ix, err := prepare(u, v, ids, t, cfg)
	if err != nil {
		return 0, err
	}

	if d, ok := boundaryCase(floats.Sum(u), floats.Sum(v), false, true); ok {
		return d, nil
	}

	ui, vi, ix, err := aggregatePair(u, v, ids, t, ix)
	if err != nil {
		return 0, err
	}
	return unweightedUniFrac(ix.Lengths(), ui, vi), nil
}

// Weighted computes the weighted (abundance) UniFrac distance between
// samples u and v. With cfg.Normalized the distance is divided by its
// largest possible value and lies in [0, 1].
//
// Two empty samples are at distance 0. An empty and a non-empty sample are
// at distance 1 when normalized; unnormalized, the distance is the
// abundance-weighted depth of the non-empty sample.
func Weighted(u, v []float64, ids []string, t Tree, cfg Config) (float64, error) {
	ix, err := prepare(u, v, ids, t, cfg)
	if err != nil {
		return 0, err
	}

	uSum, vSum := floats.Sum(u), floats.Sum(v)
	if d, ok := boundaryCase(uSum, vSum, cfg.Normalized, false); ok {
		return d, nil
	}

	ui, vi, ix, err := aggregatePair(u, v, ids, t, ix)
	if err != nil {
		return 0, err
	}

	lengths := ix.Lengths()
	d := weightedUniFrac(lengths, ui, vi, uSum, vSum)
	if cfg.Normalized {
		tipDists := TipDistances(lengths, ix, ix.TipIDs())
		d /= branchCorrect(tipDists, ui, vi, uSum, vSum)
	}
	return d, nil
}

// prepare validates the inputs when requested. Resolving observation IDs
// needs the tree's tips, so the index is built here if the caller did not
// supply one; it is returned for reuse.
func prepare(u, v []float64, ids []string, t Tree, cfg Config) (*Index, error) {
	ix := cfg.Index
	if !cfg.Validate {
		return ix, nil
	}

	if err := validateCountsVectors(u, v); err != nil {
		return nil, err
	}
	if ix == nil {
		var err error
		ix, err = NewIndex(t)
		if err != nil {
			return nil, err
		}
	}
	if err := validateObservationIDsAndTree(len(u), ids, ix); err != nil {
		return nil, err
	}
	return ix, nil
}

// aggregatePair stacks u and v into a two-sample count matrix, aggregates
// it over the tree in one pass and splits the result back per sample.
func aggregatePair(u, v []float64, ids []string, t Tree, ix *Index) ([]float64, []float64, *Index, error) {
	n := max(len(u), len(v))
	data := make([]float64, 2*n)
	copy(data, u)
	copy(data[n:], v)

	agg, ix, err := IndexAndAggregate(mat.NewDense(2, n, data), ids, t, ix)
	if err != nil {
		return nil, nil, nil, err
	}
	return mat.Col(nil, 0, agg), mat.Col(nil, 1, agg), ix, nil
}
