package unifrac

// DistanceMetric provides distance computation between two sample rows.
// ReducedDistance may return any monotone transform of Distance that is
// cheaper to compute; callers that only rank pairs can use it.
type DistanceMetric interface {
	Distance(a, b []float64) float64
	ReducedDistance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
// ReducedDistance delegates to the same function.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64        { return f(a, b) }
func (f DistanceFunc) ReducedDistance(a, b []float64) float64 { return f(a, b) }

var (
	_ DistanceMetric = DistanceFunc(nil)
	_ DistanceMetric = (*Pdist)(nil)
)
