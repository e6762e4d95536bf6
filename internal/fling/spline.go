// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"time"

	"github.com/stickyscroll/sticky/unit"
)

// Spline converts fling velocities to travel distances and
// durations. The deceleration follows the logarithmic spline
// used by Android's scrollers, calibrated to the display density
// and a friction coefficient.
//
// The zero value is a Spline for a density of 1 and the default
// ScrollFriction.
type Spline struct {
	metric   unit.Metric
	friction float32
}

const (
	// ScrollFriction is the default fling friction.
	ScrollFriction = 0.015

	inflexion = 0.35
	// Standard gravity in m/s².
	gravityEarth = 9.80665
	inchPerMeter = 39.37
	// Empirical tuning of the physical deceleration.
	physicalFactor = 0.84
)

var decelerationRate = math.Log(0.78) / math.Log(0.9)

// NewSpline returns a Spline for the display described by m using
// the default friction.
func NewSpline(m unit.Metric) Spline {
	return Spline{metric: m, friction: ScrollFriction}
}

// WithFriction returns a copy of s with a different friction
// coefficient. Non-positive values select ScrollFriction.
func (s Spline) WithFriction(friction float32) Spline {
	s.friction = friction
	return s
}

// Metric returns the display metric s is calibrated for.
func (s Spline) Metric() unit.Metric {
	return s.metric
}

// Fling returns the signed distance in pixels and the duration of a
// fling started with velocity v, in pixels per second. A zero,
// infinite or NaN velocity results in no fling.
func (s Spline) Fling(v float32) (distance float32, duration time.Duration) {
	return s.Distance(v), s.Duration(v)
}

// Distance returns the signed distance travelled by a fling with
// velocity v. The result has the sign of v.
func (s Spline) Distance(v float32) float32 {
	if !finite(v) {
		return 0
	}
	l := s.deceleration(v)
	d := s.coeff() * math.Exp(decelerationRate/(decelerationRate-1)*l)
	return float32(math.Copysign(d, float64(v)))
}

// Duration returns the time a fling with velocity v takes to come
// to rest.
func (s Spline) Duration(v float32) time.Duration {
	if !finite(v) {
		return 0
	}
	l := s.deceleration(v)
	ms := 1000 * math.Exp(l/(decelerationRate-1))
	return time.Duration(ms * float64(time.Millisecond))
}

// Velocity is the inverse of Distance: it returns the signed
// velocity of a fling that travels distance pixels.
func (s Spline) Velocity(distance float32) float32 {
	if !finite(distance) {
		return 0
	}
	k := s.coeff()
	l := math.Log(math.Abs(float64(distance))/k) * (decelerationRate - 1) / decelerationRate
	v := k * math.Exp(l) / inflexion
	return float32(math.Copysign(v, float64(distance)))
}

func (s Spline) deceleration(v float32) float64 {
	return math.Log(inflexion * math.Abs(float64(v)) / s.coeff())
}

// coeff returns the product of the friction and the physical
// deceleration coefficient of the display.
func (s Spline) coeff() float64 {
	f := float64(s.friction)
	if f <= 0 {
		f = ScrollFriction
	}
	physical := gravityEarth * inchPerMeter * float64(s.metric.PPI()) * physicalFactor
	return f * physical
}

func finite(v float32) bool {
	f := float64(v)
	return v != 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}
