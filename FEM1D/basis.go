package FEM1D

import "fmt"

type BasisFunction interface {
	Regular(x float64) float64
	Derivative(x float64) float64
	NonZeroRange() Range
}

// Kinked is implemented by piecewise smooth basis functions, Kinks are the
// points where the derivative jumps
type Kinked interface {
	Kinks() []float64
}

// BasisFactory builds the basis function attached to node index of a uniform
// partition of r into elementsCount elements.
type BasisFactory func(index, elementsCount int, r Range) BasisFunction

// HatFunction is the piecewise linear "tent" that is one at its node and zero
// at both neighboring nodes.
type HatFunction struct {
	index, elementsCount int
	domain               Range
}

func NewHatFunction(index, elementsCount int, r Range) BasisFunction {
	if elementsCount < 1 {
		panic(fmt.Sprintf("hat function needs at least one element, have %d", elementsCount))
	}
	return &HatFunction{
		index:         index,
		elementsCount: elementsCount,
		domain:        r,
	}
}

func (hf *HatFunction) Index() int { return hf.index }

func (hf *HatFunction) ElementSize() float64 {
	return hf.domain.Len() / float64(hf.elementsCount)
}

// Node is the position where the hat function peaks
func (hf *HatFunction) Node() float64 {
	_, mid, _ := hf.points()
	return mid
}

func (hf *HatFunction) points() (low, mid, high float64) {
	var (
		h = hf.ElementSize()
	)
	mid = hf.domain.Low + float64(hf.index)*h
	low = mid - h
	high = mid + h
	return
}

/*
The rising half [low, mid] is tested before the falling half (mid, high], so
the node itself and the left support end belong to the rising half. The
derivative at x == mid is therefore +1/h, and at x == high it is -1/h.
*/
func (hf *HatFunction) Regular(x float64) float64 {
	var (
		h              = hf.ElementSize()
		low, mid, high = hf.points()
	)
	switch {
	case low <= x && x <= mid:
		return (x - low) / h
	case mid < x && x <= high:
		return (high - x) / h
	}
	return 0
}

func (hf *HatFunction) Derivative(x float64) float64 {
	var (
		h              = hf.ElementSize()
		low, mid, high = hf.points()
	)
	switch {
	case low <= x && x <= mid:
		return 1. / h
	case mid < x && x <= high:
		return -1. / h
	}
	return 0
}

func (hf *HatFunction) NonZeroRange() Range {
	low, _, high := hf.points()
	return Range{Low: low, High: high}
}

func (hf *HatFunction) Kinks() []float64 {
	low, mid, high := hf.points()
	return []float64{low, mid, high}
}

func (hf *HatFunction) String() string {
	low, mid, high := hf.points()
	return fmt.Sprintf("hat[%d/%d](%8.5f, %8.5f, %8.5f)", hf.index, hf.elementsCount, low, mid, high)
}
