package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name          string
		v, lo, hi, ex float32
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 7, 0, 1, 1},
		{"at_low", 0, 0, 1, 0},
		{"at_high", 1, 0, 1, 1},
		{"negative_range", -0.3, -1, -0.1, -0.3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.ex {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.ex)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	cases := []struct {
		name       string
		a, b, t, r float32
	}{
		{"start", 2, 10, 0, 2},
		{"end", 2, 10, 1, 10},
		{"half", 2, 10, 0.5, 6},
		{"descending", 10, 2, 0.25, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); got != c.r {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.r)
			}
		})
	}
}

func TestEaseOutCubic(t *testing.T) {
	cases := []struct {
		name string
		t    float32
		ex   float32
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"half", 0.5, 0.875},
		{"quarter", 0.25, 0.578125},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EaseOutCubic(c.t)
			if diff := float64(got - c.ex); math.Abs(diff) > 1e-6 {
				t.Fatalf("EaseOutCubic(%v) = %v, want %v", c.t, got, c.ex)
			}
		})
	}

	// Monotonic and never overshooting on [0, 1].
	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		v := EaseOutCubic(float32(i) / 100)
		if v < prev {
			t.Fatalf("ease curve not monotonic at step %d: %v < %v", i, v, prev)
		}
		if v < 0 || v > 1 {
			t.Fatalf("ease curve out of range at step %d: %v", i, v)
		}
		prev = v
	}
}

func TestWrapAngle(t *testing.T) {
	pi := float32(math.Pi)
	cases := []struct {
		name string
		in   float32
		ex   float32
	}{
		{"zero", 0, 0},
		{"already_wrapped", 1, 1},
		{"just_over_pi", pi + 0.5, -pi + 0.5},
		{"just_under_neg_pi", -pi - 0.5, pi - 0.5},
		{"two_pi", 2 * pi, 0},
		{"three_turns", 6*pi + 0.25, 0.25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WrapAngle(c.in)
			if diff := math.Abs(float64(got - c.ex)); diff > 1e-5 {
				t.Fatalf("WrapAngle(%v) = %v, want %v", c.in, got, c.ex)
			}
			if got < -pi-1e-5 || got > pi+1e-5 {
				t.Fatalf("WrapAngle(%v) = %v, outside [-pi, pi]", c.in, got)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	cases := []struct {
		name string
		v    float32
		ex   bool
	}{
		{"zero", 0, true},
		{"negative", -12.5, true},
		{"nan", nan, false},
		{"pos_inf", inf, false},
		{"neg_inf", -inf, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Finite(c.v); got != c.ex {
				t.Fatalf("Finite(%v) = %v, want %v", c.v, got, c.ex)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 5); got != 5 {
		t.Fatalf("Coalesce(0, 5) = %v, want 5", got)
	}
	if got := Coalesce(float32(2), 5); got != 2 {
		t.Fatalf("Coalesce(2, 5) = %v, want 2", got)
	}
}
