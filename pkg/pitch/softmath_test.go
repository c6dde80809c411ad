package pitch

import (
	"math"
	"testing"
)

// The software backend has to agree with the standard library closely
// enough that conversions are indistinguishable at MIDI precision.

func TestSoftPow2(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.0625 {
		want := math.Pow(2, x)
		got := softPow2(x)
		if math.Abs(got-want) > 1e-12*want {
			t.Fatalf("softPow2(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestSoftPow2Extremes(t *testing.T) {
	if got := softPow2(-2000); got != 0 {
		t.Errorf("softPow2(-2000) = %v, want 0", got)
	}
	if got := softPow2(2000); !math.IsInf(got, 1) {
		t.Errorf("softPow2(2000) = %v, want +Inf", got)
	}
	if got := softPow2(0); got != 1 {
		t.Errorf("softPow2(0) = %v, want 1", got)
	}
}

func TestSoftLog2(t *testing.T) {
	for _, x := range []float64{1e-6, 0.05, 0.5, 1, 1.5, 2, 8, 440, 12543.85, 1e9} {
		want := math.Log2(x)
		got := softLog2(x)
		if math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)) {
			t.Fatalf("softLog2(%v) = %v, want %v", x, got, want)
		}
	}
	if !math.IsInf(softLog2(0), -1) {
		t.Error("softLog2(0) should be -Inf")
	}
	if !math.IsNaN(softLog2(-1)) {
		t.Error("softLog2(-1) should be NaN")
	}
}

func TestSoftLog2Subnormal(t *testing.T) {
	x := math.Float64frombits(1 << 30) // a subnormal value
	want := math.Log2(x)
	got := softLog2(x)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("softLog2(subnormal) = %v, want %v", got, want)
	}
}

func TestSoftRound(t *testing.T) {
	tests := []float64{
		0, 0.4, 0.5, 0.6, 1.5, 2.5, -0.4, -0.5, -0.6, -1.5, -2.5,
		127.49, 127.5, 1e15, -1e15, 4.9e15,
	}

	for _, x := range tests {
		want := math.Round(x)
		got := softRound(x)
		if got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
			t.Errorf("softRound(%v) = %v, want %v", x, got, want)
		}
	}
}

// Runs the core conversion math through the software backend directly, so
// the portablemath build is covered without a separate test pass.
func TestSoftBackendRoundTrip(t *testing.T) {
	for midi := 0; midi <= 127; midi++ {
		freq := ConcertA * softPow2((float64(midi)-69)/12)
		back := softRound(69 + 12*softLog2(freq/ConcertA))
		if int(back) != midi {
			t.Errorf("soft round trip at MIDI %d gave %v", midi, back)
		}
	}
}
