package unifrac

import "fmt"

// Metric selects the UniFrac variant built by MakePdist.
type Metric string

const (
	MetricUnweighted Metric = "unweighted"
	MetricWeighted   Metric = "weighted"
)

// Config controls a UniFrac computation.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the variant built by MakePdist. Unweighted and Weighted
	// ignore it. An empty value means MetricUnweighted.
	// Default: "unweighted".
	Metric Metric

	// Normalized divides weighted UniFrac by its largest possible value
	// given the tip depths, bounding it to [0, 1]. Ignored by the
	// unweighted metric. Default: false.
	Normalized bool

	// Validate checks counts, observation IDs and the tree before
	// computing. Disable it only when the same inputs were validated
	// earlier: invalid input then gives meaningless distances.
	// Default: true.
	Validate bool

	// Index is a precomputed index of the tree. When set the tree is not
	// traversed again. It must have been built from the same tree.
	// Default: nil.
	Index *Index
}

// DefaultConfig returns a Config with validation enabled.
func DefaultConfig() Config {
	return Config{
		Metric:   MetricUnweighted,
		Validate: true,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == "" {
		cfg.Metric = MetricUnweighted
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Metric {
	case MetricUnweighted, MetricWeighted:
		// valid
	default:
		return fmt.Errorf("unifrac: Metric must be %q or %q, got %q: %w",
			MetricUnweighted, MetricWeighted, cfg.Metric, ErrUnknownMetric)
	}
	return nil
}
