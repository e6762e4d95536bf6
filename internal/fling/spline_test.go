// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"testing"
	"time"

	"github.com/stickyscroll/sticky/unit"
)

func TestSplineZeroVelocity(t *testing.T) {
	s := NewSpline(unit.Density(2.625))
	for _, v := range []float32{0, float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		d, dur := s.Fling(v)
		if d != 0 || dur != 0 {
			t.Errorf("Fling(%v) = (%v, %v), want (0, 0)", v, d, dur)
		}
	}
}

func TestSplineSign(t *testing.T) {
	s := NewSpline(unit.Density(2))
	for _, v := range []float32{1e-3, 0.5, 1, 50, 400, 2500, 8000, 24000} {
		for _, sign := range []float32{1, -1} {
			v := v * sign
			d, dur := s.Fling(v)
			if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
				t.Fatalf("Fling(%v) distance %v", v, d)
			}
			if d != 0 && (d < 0) != (v < 0) {
				t.Errorf("Fling(%v) distance %v has the wrong sign", v, d)
			}
			if dur < 0 {
				t.Errorf("Fling(%v) duration %v < 0", v, dur)
			}
		}
	}
}

func TestSplineMonotonic(t *testing.T) {
	var s Spline
	prevD, prevT := s.Fling(100)
	for v := float32(200); v <= 10000; v += 100 {
		d, dur := s.Fling(v)
		if d <= prevD || dur <= prevT {
			t.Fatalf("Fling(%v) = (%v, %v), not above (%v, %v)", v, d, dur, prevD, prevT)
		}
		prevD, prevT = d, dur
	}
}

func TestSplineKnownValue(t *testing.T) {
	// Density 1, default friction.
	s := NewSpline(unit.Metric{})
	coeff := 0.015 * 160 * 9.80665 * 39.37 * 0.84
	l := math.Log(0.35 * 1000 / coeff)
	r := math.Log(0.78) / math.Log(0.9)
	wantD := coeff * math.Exp(r/(r-1)*l)
	wantT := 1000 * math.Exp(l/(r-1))

	d, dur := s.Fling(1000)
	if math.Abs(float64(d)-wantD) > 0.01 {
		t.Errorf("distance: got %v want %v", d, wantD)
	}
	if got := float64(dur) / float64(time.Millisecond); math.Abs(got-wantT) > 0.01 {
		t.Errorf("duration: got %vms want %vms", got, wantT)
	}
}

func TestSplineFriction(t *testing.T) {
	s := NewSpline(unit.Density(1))
	slippery := s.WithFriction(0.005)
	if a, b := s.Distance(2000), slippery.Distance(2000); b <= a {
		t.Errorf("lower friction travels %v, not further than %v", b, a)
	}
	if a, b := s.Distance(2000), s.WithFriction(0).Distance(2000); a != b {
		t.Errorf("zero friction: got %v want default %v", b, a)
	}
}

func TestSplineVelocityInverse(t *testing.T) {
	s := NewSpline(unit.Density(3))
	for _, v := range []float32{-7000, -1200, -90, 90, 1200, 7000} {
		d := s.Distance(v)
		got := s.Velocity(d)
		if diff := math.Abs(float64(got-v)) / math.Abs(float64(v)); diff > 1e-3 {
			t.Errorf("Velocity(Distance(%v)) = %v", v, got)
		}
	}
	if v := s.Velocity(0); v != 0 {
		t.Errorf("Velocity(0) = %v, want 0", v)
	}
}
