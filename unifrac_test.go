package unifrac

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	threeIDs = []string{"A", "B", "C"}
	sevenIDs = []string{"OTU1", "OTU2", "OTU3", "OTU4", "OTU5", "OTU6", "OTU7"}
)

func weightedConfig(normalized bool) Config {
	cfg := DefaultConfig()
	cfg.Metric = MetricWeighted
	cfg.Normalized = normalized
	return cfg
}

func TestStarTree_Disjoint(t *testing.T) {
	top := mustNewick(t, twoTipStar)
	u, v := []float64{1, 0}, []float64{0, 1}
	ids := []string{"A", "B"}

	d, err := Unweighted(u, v, ids, top, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, floatTol)

	d, err = Weighted(u, v, ids, top, weightedConfig(true))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, floatTol)

	// Unnormalized, each sample's full mass sits on its own unit branch.
	d, err = Weighted(u, v, ids, top, weightedConfig(false))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, floatTol)
}

func TestStarTree_SameProportions(t *testing.T) {
	top := mustNewick(t, twoTipStar)
	u, v := []float64{1, 1}, []float64{2, 2}
	ids := []string{"A", "B"}

	d, err := Unweighted(u, v, ids, top, DefaultConfig())
	require.NoError(t, err)
	assert.Zero(t, d)

	for _, normalized := range []bool{false, true} {
		d, err = Weighted(u, v, ids, top, weightedConfig(normalized))
		require.NoError(t, err)
		assert.InDelta(t, 0.0, d, floatTol, "normalized=%v", normalized)
	}
}

func TestThreeTips_HandComputed(t *testing.T) {
	top := mustNewick(t, threeTips)
	u, v := []float64{1, 1, 0}, []float64{0, 1, 1}

	d, err := Unweighted(u, v, threeIDs, top, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, floatTol)

	d, err = Weighted(u, v, threeIDs, top, weightedConfig(false))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, d, floatTol)

	d, err = Weighted(u, v, threeIDs, top, weightedConfig(true))
	require.NoError(t, err)
	assert.InDelta(t, 4.0/9.0, d, floatTol)
}

func TestBothEmpty(t *testing.T) {
	top := mustNewick(t, threeTips)
	zero := []float64{0, 0, 0}

	d, err := Unweighted(zero, zero, threeIDs, top, DefaultConfig())
	require.NoError(t, err)
	assert.Zero(t, d)

	for _, normalized := range []bool{false, true} {
		d, err = Weighted(zero, zero, threeIDs, top, weightedConfig(normalized))
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

func TestOneEmpty(t *testing.T) {
	top := mustNewick(t, threeTips)
	u, zero := []float64{1, 0, 0}, []float64{0, 0, 0}

	for _, pair := range [][2][]float64{{u, zero}, {zero, u}} {
		d, err := Unweighted(pair[0], pair[1], threeIDs, top, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, 1.0, d)

		d, err = Weighted(pair[0], pair[1], threeIDs, top, weightedConfig(true))
		require.NoError(t, err)
		assert.Equal(t, 1.0, d)

		// Not short-circuited: A (1) + ab (3).
		d, err = Weighted(pair[0], pair[1], threeIDs, top, weightedConfig(false))
		require.NoError(t, err)
		assert.InDelta(t, 4.0, d, floatTol)
	}
}

func randomCounts(rng *rand.Rand, n int) []float64 {
	c := make([]float64, n)
	for i := range c {
		if rng.Intn(3) > 0 {
			c[i] = float64(rng.Intn(20))
		}
	}
	return c
}

func TestSymmetryAndRange(t *testing.T) {
	top := mustNewick(t, sevenTips)
	ix, err := NewIndex(top)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.Index = ix

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		u := randomCounts(rng, len(sevenIDs))
		v := randomCounts(rng, len(sevenIDs))

		uv, err := Unweighted(u, v, sevenIDs, top, cfg)
		require.NoError(t, err)
		vu, err := Unweighted(v, u, sevenIDs, top, cfg)
		require.NoError(t, err)
		assert.InDelta(t, uv, vu, floatTol)
		assert.GreaterOrEqual(t, uv, 0.0)
		assert.LessOrEqual(t, uv, 1.0+floatTol)

		for _, normalized := range []bool{false, true} {
			cfg.Normalized = normalized
			uv, err := Weighted(u, v, sevenIDs, top, cfg)
			require.NoError(t, err)
			vu, err := Weighted(v, u, sevenIDs, top, cfg)
			require.NoError(t, err)
			assert.InDelta(t, uv, vu, floatTol)
			assert.False(t, math.IsNaN(uv))
			if normalized {
				assert.GreaterOrEqual(t, uv, 0.0)
				assert.LessOrEqual(t, uv, 1.0+floatTol)
			}
		}
		cfg.Normalized = false
	}
}

func TestIdenticalSamples(t *testing.T) {
	top := mustNewick(t, sevenTips)
	u := []float64{1, 3, 0, 1, 0, 2, 7}

	d, err := Unweighted(u, u, sevenIDs, top, DefaultConfig())
	require.NoError(t, err)
	assert.Zero(t, d)

	for _, normalized := range []bool{false, true} {
		d, err = Weighted(u, u, sevenIDs, top, weightedConfig(normalized))
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

func TestObservationOrderDoesNotMatter(t *testing.T) {
	top := mustNewick(t, sevenTips)
	u := []float64{1, 3, 0, 1, 0}
	v := []float64{0, 2, 0, 4, 4}
	ids := []string{"OTU1", "OTU2", "OTU3", "OTU4", "OTU5"}

	ru := []float64{0, 1, 0, 3, 1}
	rv := []float64{4, 4, 0, 2, 0}
	rids := []string{"OTU5", "OTU4", "OTU3", "OTU2", "OTU1"}

	a, err := Weighted(u, v, ids, top, weightedConfig(true))
	require.NoError(t, err)
	b, err := Weighted(ru, rv, rids, top, weightedConfig(true))
	require.NoError(t, err)
	assert.InDelta(t, a, b, floatTol)

	a, err = Unweighted(u, v, ids, top, DefaultConfig())
	require.NoError(t, err)
	b, err = Unweighted(ru, rv, rids, top, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, a, b, floatTol)
}

func TestValidationErrors(t *testing.T) {
	top := mustNewick(t, threeTips)

	tests := []struct {
		name string
		u, v []float64
		ids  []string
		want error
	}{
		{"counts length", []float64{1, 2}, []float64{1, 2, 3}, threeIDs, ErrShapeMismatch},
		{"ids length", []float64{1, 2, 3}, []float64{1, 2, 3}, []string{"A", "B"}, ErrShapeMismatch},
		{"negative", []float64{1, -2, 3}, []float64{1, 2, 3}, threeIDs, ErrNegativeCount},
		{"NaN", []float64{1, 2, 3}, []float64{1, math.NaN(), 3}, threeIDs, ErrNegativeCount},
		{"infinite", []float64{1, 2, math.Inf(1)}, []float64{1, 2, 3}, threeIDs, ErrNegativeCount},
		{"duplicate id", []float64{1, 2, 3}, []float64{1, 2, 3}, []string{"A", "B", "A"}, ErrDuplicateObservation},
		{"missing id", []float64{1, 2, 3}, []float64{1, 2, 3}, []string{"A", "B", "D"}, ErrMissingObservation},
		{"internal node id", []float64{1, 2, 3}, []float64{1, 2, 3}, []string{"A", "B", "ab"}, ErrMissingObservation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unweighted(tt.u, tt.v, tt.ids, top, DefaultConfig())
			assert.ErrorIs(t, err, tt.want)
			_, err = Weighted(tt.u, tt.v, tt.ids, top, weightedConfig(true))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidationErrors_MissingListed(t *testing.T) {
	top := mustNewick(t, threeTips)
	_, err := Unweighted([]float64{1, 1, 1}, []float64{1, 1, 1}, []string{"X", "B", "Y"}, top, DefaultConfig())
	require.ErrorIs(t, err, ErrMissingObservation)
	assert.Contains(t, err.Error(), "X, Y")
}

func TestSupersetTree(t *testing.T) {
	top := mustNewick(t, sevenTips)
	d, err := Unweighted([]float64{1, 0}, []float64{0, 1}, []string{"OTU6", "OTU7"}, top, DefaultConfig())
	require.NoError(t, err)
	// Only the two sibling tips differ; everything above them is shared.
	// shared 0.5 + 0.5 + 1.25 = 2.25, observed 2.25 + 0.5 + 0.5 = 3.25
	assert.InDelta(t, 1-2.25/3.25, d, floatTol)
}

func TestNoValidation_DoesNotPanic(t *testing.T) {
	top := mustNewick(t, threeTips)
	cfg := DefaultConfig()
	cfg.Validate = false

	assert.NotPanics(t, func() {
		_, _ = Unweighted([]float64{1, 2}, []float64{1, 2, 3, 4}, []string{"A", "Z"}, top, cfg)
		_, _ = Weighted([]float64{1, 2}, []float64{1, 2, 3, 4}, []string{"A"}, top, cfg)
		cfg.Normalized = true
		_, _ = Weighted([]float64{5}, []float64{0, 3}, []string{"Z", "C"}, top, cfg)
	})
}

func TestPrecomputedIndex(t *testing.T) {
	top := mustNewick(t, sevenTips)
	ix, err := NewIndex(top)
	require.NoError(t, err)

	u := []float64{1, 3, 0, 1, 0, 0, 0}
	v := []float64{0, 2, 0, 4, 4, 0, 0}

	want, err := Weighted(u, v, sevenIDs, top, weightedConfig(true))
	require.NoError(t, err)

	cfg := weightedConfig(true)
	cfg.Index = ix
	cfg.Validate = false
	// With an index the tree itself is never read.
	got, err := Weighted(u, v, sevenIDs, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
