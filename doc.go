// Package unifrac computes UniFrac phylogenetic beta-diversity distances
// between pairs of samples.
//
// Each sample is a vector of observation (taxon/OTU) counts; observations
// are named by the tips of a rooted phylogeny. Counts are summed up the tree
// once, giving for every branch the amount of each sample that lies below
// it, and the distances are reductions over those per-branch totals.
//
// Basic usage:
//
//	top, err := unifrac.FromGotree(t) // or FromTimeTree, or NewTopology + Add
//	cfg := unifrac.DefaultConfig()
//	d, err := unifrac.Unweighted(u, v, ids, top, cfg)
//	cfg.Normalized = true
//	w, err := unifrac.Weighted(u, v, ids, top, cfg)
//
// # Reusing the tree
//
// The tree is traversed once per call unless a precomputed index is given:
//
//	ix, err := unifrac.NewIndex(top)
//	cfg.Index = ix
//	cfg.Validate = false // inputs already checked
//
// For many pairs, MakePdist aggregates every sample at once and returns a
// metric over the aggregated rows that never touches the tree again:
//
//	cfg := unifrac.DefaultConfig()
//	cfg.Metric = unifrac.MetricWeighted
//	pd, rows, lengths, err := unifrac.MakePdist(counts, ids, top, cfg)
//	d := pd.Distance(rows.RawRowView(0), rows.RawRowView(1))
//
// Index and Pdist values are immutable and may be shared between
// goroutines.
//
// # Boundary cases
//
// Two samples without observations are at distance 0. When exactly one
// sample is empty, unweighted and normalized weighted UniFrac are 1;
// unnormalized weighted UniFrac is computed in full.
package unifrac
