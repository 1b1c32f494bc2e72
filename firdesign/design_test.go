package firdesign

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-auditory/internal/testutil"
)

func TestSynthesize_FlatTargetIsDelayedImpulse(t *testing.T) {
	taps, err := Synthesize([]float64{0, 24000}, []float64{1, 1}, 256, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(taps) != 257 {
		t.Fatalf("taps = %d, want 257", len(taps))
	}

	// A flat unity target over the whole band synthesizes to a pure
	// delay of order/2 samples: one unit tap, everything else ~0.
	if math.Abs(taps[128]-1) > 1e-9 {
		t.Errorf("center tap = %v, want 1", taps[128])
	}
	for i, c := range taps {
		if i == 128 {
			continue
		}
		if math.Abs(c) > 1e-9 {
			t.Errorf("tap %d = %v, want ~0", i, c)
		}
	}

	for _, f := range []float64{100, 1000, 10000, 20000} {
		if got := MagnitudeDB(taps, f, 48000); math.Abs(got) > 1e-6 {
			t.Errorf("|H(%g)| = %v dB, want 0 dB", f, got)
		}
	}
}

func TestSynthesize_Lowpass(t *testing.T) {
	freqs := []float64{0, 4000, 5000, 24000}
	gains := []float64{1, 1, 0, 0}
	taps, err := Synthesize(freqs, gains, 256, 48000, WithOrder(128))
	if err != nil {
		t.Fatal(err)
	}
	if len(taps) != 129 {
		t.Fatalf("taps = %d, want 129", len(taps))
	}

	for _, f := range []float64{500, 1000, 2000, 3000} {
		if got := MagnitudeDB(taps, f, 48000); math.Abs(got) > 0.5 {
			t.Errorf("passband |H(%g)| = %.3f dB, want 0 ± 0.5 dB", f, got)
		}
	}
	for _, f := range []float64{8000, 12000, 20000} {
		if got := MagnitudeDB(taps, f, 48000); got > -40 {
			t.Errorf("stopband |H(%g)| = %.3f dB, want < -40 dB", f, got)
		}
	}
}

func TestSynthesize_EdgeHoldBelowFirstPoint(t *testing.T) {
	// Response points starting above DC: the target holds the first
	// gain down to 0 Hz.
	freqs := []float64{1000, 20000}
	gains := []float64{0.5, 0.5}
	taps, err := Synthesize(freqs, gains, 128, 48000)
	if err != nil {
		t.Fatal(err)
	}
	got := MagnitudeDB(taps, 100, 48000)
	want := 20 * math.Log10(0.5)
	if math.Abs(got-want) > 0.5 {
		t.Errorf("|H(100)| = %.3f dB, want %.3f ± 0.5 dB", got, want)
	}
}

func TestSynthesize_LinearPhase(t *testing.T) {
	freqs := []float64{0, 2000, 3000, 24000}
	gains := []float64{1, 1, 0, 0}
	taps, err := Synthesize(freqs, gains, 128, 48000)
	if err != nil {
		t.Fatal(err)
	}
	// Even-order windowed frequency sampling is symmetric about the
	// center tap.
	n := len(taps)
	for i := range n / 2 {
		if d := math.Abs(taps[i] - taps[n-1-i]); d > 1e-12 {
			t.Errorf("taps %d/%d asymmetric by %v", i, n-1-i, d)
		}
	}
}

func TestSynthesize_DefaultOrderFromTransformLength(t *testing.T) {
	taps, err := Synthesize([]float64{0, 20000}, []float64{1, 1}, 512, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if len(taps) != 513 {
		t.Errorf("taps = %d, want 513", len(taps))
	}
}

func TestSynthesize_Windows(t *testing.T) {
	freqs := []float64{0, 4000, 5000, 24000}
	gains := []float64{1, 1, 0, 0}
	for _, w := range []Window{WindowHamming, WindowHann, WindowRectangular} {
		taps, err := Synthesize(freqs, gains, 128, 48000, WithWindow(w))
		if err != nil {
			t.Fatalf("%s: %v", w, err)
		}
		testutil.RequireFinite(t, taps)
		if got := MagnitudeDB(taps, 1000, 48000); math.Abs(got) > 1 {
			t.Errorf("%s: passband |H(1000)| = %.3f dB, want ~0", w, got)
		}
	}
}

func TestSynthesize_Validation(t *testing.T) {
	freqs := []float64{0, 1000}
	gains := []float64{1, 1}

	if _, err := Synthesize(freqs, gains, 128, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("fs=0: err = %v", err)
	}
	if _, err := Synthesize(nil, nil, 128, 48000); !errors.Is(err, ErrNoPoints) {
		t.Errorf("empty: err = %v", err)
	}
	if _, err := Synthesize(freqs, []float64{1}, 128, 48000); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatch: err = %v", err)
	}
	if _, err := Synthesize([]float64{1000, 1000}, gains, 128, 48000); err == nil {
		t.Error("non-increasing freqs accepted")
	}
	if _, err := Synthesize([]float64{-10, 1000}, gains, 128, 48000); err == nil {
		t.Error("negative frequency accepted")
	}
	if _, err := Synthesize(freqs, []float64{1, -0.5}, 128, 48000); !errors.Is(err, ErrNegativeGain) {
		t.Errorf("negative gain: err = %v", err)
	}
	if _, err := Synthesize(freqs, []float64{1, math.NaN()}, 128, 48000); !errors.Is(err, ErrNegativeGain) {
		t.Errorf("NaN gain: err = %v", err)
	}
	if _, err := Synthesize(freqs, gains, 0, 48000); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("n=0 without order: err = %v", err)
	}
}

func TestSampleTarget(t *testing.T) {
	freqs := []float64{100, 200, 400}
	gains := []float64{1, 3, 2}

	tests := []struct {
		q, want float64
	}{
		{50, 1},   // held below
		{100, 1},  // exact knot
		{150, 2},  // midpoint
		{200, 3},  // exact knot
		{300, 2.5},
		{400, 2},
		{9000, 2}, // held above
	}
	for _, tt := range tests {
		if got := sampleTarget(freqs, gains, tt.q); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("sampleTarget(%g) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {1000, 1024}, {1025, 2048},
	}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func BenchmarkSynthesize4096(b *testing.B) {
	freqs := make([]float64, 0, 1857)
	gains := make([]float64, 0, 1857)
	delta := 44100.0 / 4096.0
	for k := 2; k <= 1858; k++ {
		freqs = append(freqs, float64(k)*delta)
		gains = append(gains, 1)
	}
	b.ResetTimer()
	for b.Loop() {
		if _, err := Synthesize(freqs, gains, 4096, 44100); err != nil {
			b.Fatal(err)
		}
	}
}
