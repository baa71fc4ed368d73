package units

import (
	"math"
	"testing"
)

func TestKmhToMps(t *testing.T) {
	cases := []struct {
		kmh  float64
		want float64
	}{
		{0, 0},
		{3.6, 1},
		{36, 10},
		{900, 250}, // commercial flight
	}
	for _, c := range cases {
		got := KmhToMps(c.kmh)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("KmhToMps(%v) = %v, want %v", c.kmh, got, c.want)
		}
	}
}

func TestMpsToKmh(t *testing.T) {
	cases := []struct {
		mps  float64
		want float64
	}{
		{0, 0},
		{1, 3.6},
		{13577.777777777777, 48880},
	}
	for _, c := range cases {
		got := MpsToKmh(c.mps)
		if math.Abs(got-c.want) > 1e-9*math.Max(1, c.want) {
			t.Errorf("MpsToKmh(%v) = %v, want %v", c.mps, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, kmh := range []float64{0, 1e-6, 0.5, 42, 10000, 1234567.891, 3e8} {
		got := MpsToKmh(KmhToMps(kmh))
		if kmh == 0 {
			if got != 0 {
				t.Errorf("round trip of 0 = %v", got)
			}
			continue
		}
		if rel := math.Abs(got-kmh) / kmh; rel > 1e-9 {
			t.Errorf("round trip of %v = %v (rel err %v)", kmh, got, rel)
		}
	}
}

func TestSecondsToHours(t *testing.T) {
	if got := SecondsToHours(3600); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := SecondsToHours(90); got != 0.025 {
		t.Errorf("got %v, want 0.025", got)
	}
}
