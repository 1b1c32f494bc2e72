package firdesign

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"testing"
)

func TestAnalyze_FlatDesign(t *testing.T) {
	freqs := []float64{0, 24000}
	gains := []float64{1, 1}
	taps, err := Synthesize(freqs, gains, 128, 48000)
	if err != nil {
		t.Fatal(err)
	}

	rep, err := Analyze(taps, freqs, gains, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Freqs) != 2 || len(rep.TargetDB) != 2 || len(rep.ActualDB) != 2 {
		t.Fatalf("unexpected report shape: %d/%d/%d", len(rep.Freqs), len(rep.TargetDB), len(rep.ActualDB))
	}
	if rep.MaxAbsErrorDB > 1e-6 {
		t.Errorf("MaxAbsErrorDB = %v, want ~0 for a flat design", rep.MaxAbsErrorDB)
	}
}

func TestAnalyze_SkipsZeroTargets(t *testing.T) {
	freqs := []float64{0, 4000, 5000, 24000}
	gains := []float64{1, 1, 0, 0}
	taps, err := Synthesize(freqs, gains, 128, 48000)
	if err != nil {
		t.Fatal(err)
	}

	rep, err := Analyze(taps, freqs, gains, 48000)
	if err != nil {
		t.Fatal(err)
	}
	// Zero-gain points carry a -Inf target and must not poison the
	// error metric.
	if math.IsInf(rep.MaxAbsErrorDB, 0) || math.IsNaN(rep.MaxAbsErrorDB) {
		t.Fatalf("MaxAbsErrorDB = %v", rep.MaxAbsErrorDB)
	}
	if !math.IsInf(rep.TargetDB[2], -1) {
		t.Errorf("TargetDB[2] = %v, want -Inf", rep.TargetDB[2])
	}
}

func TestAnalyze_Validation(t *testing.T) {
	if _, err := Analyze(nil, []float64{1}, []float64{1}, 48000); !errors.Is(err, ErrEmptyCoefficients) {
		t.Errorf("empty coeffs: err = %v", err)
	}
	if _, err := Analyze([]float64{1}, []float64{1, 2}, []float64{1}, 48000); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatch: err = %v", err)
	}
	if _, err := Analyze([]float64{1}, []float64{1}, []float64{1}, -1); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("fs<0: err = %v", err)
	}
}

func TestReport_WriteCSV(t *testing.T) {
	freqs := []float64{0, 24000}
	gains := []float64{1, 1}
	taps, err := Synthesize(freqs, gains, 64, 48000)
	if err != nil {
		t.Fatal(err)
	}
	rep, err := Analyze(taps, freqs, gains, 48000)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := rep.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(records))
	}
	wantHeader := []string{"freq_hz", "target_db", "actual_db"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}
	if records[1][0] != "0" {
		t.Errorf("first freq = %q, want \"0\"", records[1][0])
	}
}
