package unifrac

import "errors"

// Sentinel errors. Functions wrap these with context, so match them with
// errors.Is.
var (
	// ErrShapeMismatch is returned when count vectors, count matrix columns
	// and observation IDs do not all have the same length.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMissingObservation is returned when an observation ID does not
	// name a tip of the tree. Such IDs are never silently dropped.
	ErrMissingObservation = errors.New("observation not found in tree")

	// ErrUnknownMetric is returned by MakePdist for a metric selector other
	// than MetricUnweighted or MetricWeighted.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrNegativeCount is returned for negative, NaN or infinite counts.
	ErrNegativeCount = errors.New("counts must be finite and non-negative")

	// ErrDuplicateObservation is returned when the same observation ID is
	// given more than once.
	ErrDuplicateObservation = errors.New("duplicate observation ID")

	// ErrDuplicateTip is returned when two tips of a tree share a name.
	ErrDuplicateTip = errors.New("duplicate tip name")

	// ErrMissingBranchLength is returned by the tree adapters when a
	// non-root node has no branch length.
	ErrMissingBranchLength = errors.New("missing branch length")

	// ErrInvalidBranchLength is returned for negative, NaN or infinite
	// branch lengths.
	ErrInvalidBranchLength = errors.New("invalid branch length")

	// ErrInvalidTree is returned for nil trees, unknown parents and
	// topologies that reach a node twice.
	ErrInvalidTree = errors.New("invalid tree")
)
