package FEM1D

import "math"

// Range is the half open interval [Low, High)
type Range struct {
	Low, High float64
}

func NewRange(low, high float64) Range {
	return Range{Low: low, High: high}
}

func (r Range) Len() float64 { return r.High - r.Low }

// Intersection returns the overlap of all ranges. Disjoint ranges produce an
// empty range (High == Low) positioned at the largest Low.
func Intersection(ranges ...Range) (R Range) {
	var (
		low  = -math.MaxFloat64
		high = math.MaxFloat64
	)
	for _, r := range ranges {
		low = math.Max(low, r.Low)
		high = math.Min(high, r.High)
	}
	R = Range{Low: low, High: math.Max(high, low)}
	return
}
