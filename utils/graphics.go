package utils

import (
	"fmt"
	"image/color"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 255}
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 50, A: 255}
	case Green:
		c = color.RGBA{R: 25, G: 180, B: 25, A: 255}
	case Black:
		c = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	return
}

// LineChart collects polylines as segment lists, x1, y1, x2, y2, ..., keyed
// by color, and renders them all at once in an avs window
type LineChart struct {
	Width, Height          int
	XMin, XMax, FMin, FMax float64
	lines                  map[color.RGBA][]float32
	colors                 []color.RGBA
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Width: width, Height: height,
		XMin: xmin, XMax: xmax,
		FMin: fmin, FMax: fmax,
		lines: make(map[color.RGBA][]float32),
	}
	return
}

func (lc *LineChart) AddSeries(x, f []float64, col color.RGBA) (err error) {
	if len(x) != len(f) {
		return fmt.Errorf("series has %d abscissas and %d ordinates", len(x), len(f))
	}
	if _, present := lc.lines[col]; !present {
		lc.colors = append(lc.colors, col)
	}
	for i := 1; i < len(x); i++ {
		lc.lines[col] = append(lc.lines[col],
			float32(x[i-1]), float32(f[i-1]),
			float32(x[i]), float32(f[i]),
		)
	}
	return
}

// Segments returns the line segments accumulated for col
func (lc *LineChart) Segments(col color.RGBA) []float32 { return lc.lines[col] }

// Show opens the window and draws each color in the order it was added,
// pausing graphDelay between them, then keeps the window up for hold
func (lc *LineChart) Show(graphDelay, hold time.Duration) {
	ch := chart2d.NewChart2D(float32(lc.XMin), float32(lc.XMax), float32(lc.FMin), float32(lc.FMax),
		lc.Width, lc.Height, utils2.WHITE, utils2.BLACK)
	for _, col := range lc.colors {
		ch.AddLine(lc.lines[col], col)
		time.Sleep(graphDelay)
	}
	time.Sleep(hold)
}

// MinMax returns the extent of all series, padded by scale times the span
func MinMax(scale float64, series ...[]float64) (fmin, fmax float64) {
	var first = true
	for _, s := range series {
		for _, val := range s {
			if first || val < fmin {
				fmin = val
			}
			if first || val > fmax {
				fmax = val
			}
			first = false
		}
	}
	pad := scale * (fmax - fmin)
	if pad == 0 {
		pad = scale
	}
	fmin, fmax = fmin-pad, fmax+pad
	return
}
