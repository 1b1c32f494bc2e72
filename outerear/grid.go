package outerear

import "math"

// Audible band limits for the analysis grid.
const (
	gridLowHz  = 20.0
	gridHighHz = 20e3
)

// Grid is the set of transform bins covering the audible band.
// Bins are 0-based, so Freqs[i] = Bins[i]*Delta.
type Grid struct {
	Bins  []int
	Freqs []float64
	Delta float64
}

// Len returns the number of bins in the grid.
func (g Grid) Len() int { return len(g.Bins) }

// NewGrid derives the audible-band analysis grid for a transform of
// length n at sample rate fs. The first bin is round(20 Hz/Δf), the
// last round(20 kHz/Δf), with Δf = fs/n.
//
// The last bin is clamped to n-1 so that a length-n gain vector stays
// indexable at coarse resolutions; when the whole band rounds above
// n-1 the grid is empty. An empty grid is not an error.
func NewGrid(fs float64, n int) (Grid, error) {
	if fs <= 0 {
		return Grid{}, ErrInvalidSampleRate
	}
	if n <= 0 {
		return Grid{}, ErrInvalidLength
	}

	delta := fs / float64(n)
	lo := int(math.Round(gridLowHz / delta))
	hi := int(math.Round(gridHighHz / delta))
	if hi > n-1 {
		hi = n - 1
	}

	g := Grid{Delta: delta}
	if lo > hi {
		return g, nil
	}

	g.Bins = make([]int, 0, hi-lo+1)
	g.Freqs = make([]float64, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		g.Bins = append(g.Bins, k)
		g.Freqs = append(g.Freqs, float64(k)*delta)
	}
	return g, nil
}
