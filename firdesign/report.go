package firdesign

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Report compares a coefficient set against its design target.
// TargetDB entries are -Inf where the target gain is zero; such points
// are excluded from MaxAbsErrorDB.
type Report struct {
	Freqs    []float64
	TargetDB []float64
	ActualDB []float64

	// MaxAbsErrorDB is the largest |actual - target| over all points
	// with a finite target.
	MaxAbsErrorDB float64
}

// Analyze evaluates the magnitude response of coeffs at each design
// frequency and compares it against the target linear gains. It is the
// explicit diagnostic counterpart to [Synthesize]: synthesis itself
// never renders or reports anything.
func Analyze(coeffs, freqs, gains []float64, fs float64) (*Report, error) {
	if fs <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, fs)
	}
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}
	if len(freqs) != len(gains) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(freqs), len(gains))
	}

	r := &Report{
		Freqs:    append([]float64(nil), freqs...),
		TargetDB: make([]float64, len(freqs)),
		ActualDB: make([]float64, len(freqs)),
	}
	for i, f := range freqs {
		r.TargetDB[i] = 20 * math.Log10(gains[i])
		r.ActualDB[i] = MagnitudeDB(coeffs, f, fs)
		if math.IsInf(r.TargetDB[i], 0) {
			continue
		}
		if d := math.Abs(r.ActualDB[i] - r.TargetDB[i]); d > r.MaxAbsErrorDB {
			r.MaxAbsErrorDB = d
		}
	}
	return r, nil
}

// WriteCSV serializes the report as CSV with a header row:
// freq_hz, target_db, actual_db.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"freq_hz", "target_db", "actual_db"}); err != nil {
		return err
	}
	for i := range r.Freqs {
		rec := []string{
			strconv.FormatFloat(r.Freqs[i], 'g', -1, 64),
			strconv.FormatFloat(r.TargetDB[i], 'g', -1, 64),
			strconv.FormatFloat(r.ActualDB[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
