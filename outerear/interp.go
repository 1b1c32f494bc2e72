package outerear

import (
	"math"
	"sort"
)

// interpGainDB interpolates the table's dB gain at Bark value q.
//
// Queries exactly at a knot return that knot's gain; queries between
// knots interpolate linearly; queries outside [first, last] Bark return
// NaN. No extrapolation: zeroing out-of-range bins is a downstream
// policy, encoded by the NaN.
func interpGainDB(points []Point, q float64) float64 {
	n := len(points)
	if n == 0 || q < points[0].Bark || q > points[n-1].Bark {
		return math.NaN()
	}

	j := sort.Search(n, func(i int) bool { return points[i].Bark >= q })
	if points[j].Bark == q {
		return points[j].GainDB
	}

	p0, p1 := points[j-1], points[j]
	t := (q - p0.Bark) / (p1.Bark - p0.Bark)
	return p0.GainDB + t*(p1.GainDB-p0.GainDB)
}

// fromDB converts a dB gain to linear scale. NaN passes through.
func fromDB(db float64) float64 {
	return math.Pow(10, db/20)
}

// interpLinearGains resolves the linear a0 gain for each Bark value.
// NaN results (out-of-range queries) are coerced to zero.
func interpLinearGains(points []Point, barks []float64) []float64 {
	out := make([]float64, len(barks))
	for i, z := range barks {
		g := fromDB(interpGainDB(points, z))
		if math.IsNaN(g) {
			g = 0
		}
		out[i] = g
	}
	return out
}
