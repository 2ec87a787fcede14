package unifrac

// boundaryCase resolves degenerate sample pairs from the per-sample totals
// alone. It returns ok == false when the full computation is required.
//
//   - both totals zero: two empty samples are identical, distance 0.
//   - exactly one total zero: unweighted and normalized weighted UniFrac
//     saturate at 1. Unnormalized weighted UniFrac still depends on where
//     the non-empty sample sits in the tree, so it is left to the caller.
//   - both totals nonzero: no boundary.
func boundaryCase(uSum, vSum float64, normalized, unweighted bool) (float64, bool) {
	if uSum != 0 && vSum != 0 {
		return 0, false
	}
	if uSum+vSum != 0 {
		if unweighted || normalized {
			return 1, true
		}
		return 0, false
	}
	return 0, true
}
