package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicComplexNoiseReproducible(t *testing.T) {
	a := DeterministicComplexNoise(7, 2.0, 16)
	b := DeterministicComplexNoise(7, 2.0, 16)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(5, 2)
	for i, v := range x {
		want := 0.0
		if i == 2 {
			want = 1
		}
		if v != want {
			t.Fatalf("x[%d] = %v, want %v", i, v, want)
		}
	}
	if got := Impulse(3, 7); got[0] != 0 || got[1] != 0 || got[2] != 0 {
		t.Fatalf("out-of-range impulse should be all zeros, got %v", got)
	}
}

func TestDelay(t *testing.T) {
	got := Delay([]float64{1, 2, 3}, 2, 4)
	want := []float64{0, 0, 1, 2}
	RequireSliceNearlyEqual(t, got, want, 0)
}

func TestFloatConversionsRoundTrip(t *testing.T) {
	x := []float64{0.5, -1.25, 3}
	RequireSliceNearlyEqual(t, ToFloat64(ToFloat32(x)), x, 0)
}
