package unifrac

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Pdist is a UniFrac metric bound to one tree. It works on rows that were
// already aggregated over that tree by MakePdist, so evaluating a pair
// never traverses the tree.
//
// A Pdist is read-only after MakePdist returns and is safe for concurrent
// use.
type Pdist struct {
	metric     Metric
	normalized bool
	index      *Index
	lengths    []float64
	tipDists   []float64 // set only for normalized weighted
	counts     *mat.Dense
}

// MakePdist aggregates every sample of counts over t once and returns a
// metric for evaluating pairs of the aggregated rows, for use by a
// pairwise distance-matrix driver.
//
// counts has one row per sample and one column per observation, with
// columns named by ids. cfg.Metric picks the variant and cfg.Normalized the
// weighted sub-variant; an unknown metric fails before the tree is touched.
//
// Besides the metric it returns the aggregated counts transposed to one row
// per sample (each row aligned with the branch lengths) and a copy of the
// postorder branch lengths. The returned matrix shares storage with the
// metric and must not be modified.
func MakePdist(counts mat.Matrix, ids []string, t Tree, cfg Config) (*Pdist, *mat.Dense, []float64, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, nil, nil, err
	}

	ix := cfg.Index
	if cfg.Validate {
		if err := validateCountsMatrix(counts, ids); err != nil {
			return nil, nil, nil, err
		}
		if ix == nil {
			var err error
			ix, err = NewIndex(t)
			if err != nil {
				return nil, nil, nil, err
			}
		}
		_, c := counts.Dims()
		if err := validateObservationIDsAndTree(c, ids, ix); err != nil {
			return nil, nil, nil, err
		}
	}

	agg, ix, err := IndexAndAggregate(counts, ids, t, ix)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &Pdist{
		metric:     cfg.Metric,
		normalized: cfg.Normalized,
		index:      ix,
		lengths:    ix.Lengths(),
		counts:     mat.DenseCopyOf(agg.T()),
	}
	if p.metric == MetricWeighted && p.normalized {
		p.tipDists = TipDistances(p.lengths, ix, ix.TipIDs())
	}

	samples, _ := counts.Dims()
	slog.Debug("unifrac: pairwise metric ready",
		slog.String("metric", string(p.metric)),
		slog.Bool("normalized", p.normalized),
		slog.Int("samples", samples),
		slog.Int("nodes", ix.Len()))

	return p, p.counts, slices.Clone(p.lengths), nil
}

// Distance returns the UniFrac distance between two aggregated rows, such
// as rows of the matrix returned by MakePdist.
func (p *Pdist) Distance(u, v []float64) float64 {
	uSum, vSum := p.tipSum(u), p.tipSum(v)

	if p.metric == MetricUnweighted {
		if d, ok := boundaryCase(uSum, vSum, false, true); ok {
			return d
		}
		return unweightedUniFrac(p.lengths, u, v)
	}

	if d, ok := boundaryCase(uSum, vSum, p.normalized, false); ok {
		return d
	}
	d := weightedUniFrac(p.lengths, u, v, uSum, vSum)
	if p.normalized {
		d /= branchCorrect(p.tipDists, u, v, uSum, vSum)
	}
	return d
}

// ReducedDistance is Distance; UniFrac has no cheaper equivalent.
func (p *Pdist) ReducedDistance(u, v []float64) float64 { return p.Distance(u, v) }

// Func returns Distance as a plain function.
func (p *Pdist) Func() DistanceFunc { return p.Distance }

// Pair returns the distance between samples a and b of the count matrix
// given to MakePdist.
func (p *Pdist) Pair(a, b int) float64 {
	return p.Distance(p.counts.RawRowView(a), p.counts.RawRowView(b))
}

// Samples returns the number of samples given to MakePdist.
func (p *Pdist) Samples() int {
	r, _ := p.counts.Dims()
	return r
}

// Metric returns the metric variant.
func (p *Pdist) Metric() Metric { return p.metric }

// Normalized reports whether weighted distances are normalized.
func (p *Pdist) Normalized() bool { return p.normalized }

// Index returns the tree index the metric was built on.
func (p *Pdist) Index() *Index { return p.index }

// tipSum is the total count of an aggregated row. Internal nodes repeat
// the counts of their tips, so only tips are summed.
func (p *Pdist) tipSum(x []float64) float64 {
	var s float64
	for _, t := range p.index.TipIDs() {
		s += x[t]
	}
	return s
}
