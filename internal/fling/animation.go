// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"time"

	"github.com/stickyscroll/sticky/unit"
)

// Animation is the state of a fling animation. The zero value is
// an inactive animation; assigning the zero value stops a fling.
type Animation struct {
	// Start time.
	t0 time.Duration
	// Total distance and duration of the fling.
	dist float32
	dur  time.Duration
	// Distance delivered by Tick so far.
	x float32
}

var (
	// Pixels/second.
	minFlingVelocity = unit.Dp(50)
	maxFlingVelocity = unit.Dp(8000)
)

const (
	splineSamples = 100
	startTension  = 0.5
	endTension    = 1.0
)

// splinePosition samples the normalized distance travelled
// against normalized time.
var splinePosition = func() [splineSamples + 1]float64 {
	const (
		p1 = startTension * inflexion
		p2 = 1.0 - endTension*(1.0-inflexion)
	)
	var pos [splineSamples + 1]float64
	xMin := 0.0
	for i := 0; i < splineSamples; i++ {
		alpha := float64(i) / splineSamples
		xMax := 1.0
		var x, coef float64
		for {
			x = xMin + (xMax-xMin)/2
			coef = 3 * x * (1 - x)
			tx := coef*((1-x)*p1+x*p2) + x*x*x
			if math.Abs(tx-alpha) < 1e-5 {
				break
			}
			if tx > alpha {
				xMax = x
			} else {
				xMin = x
			}
		}
		pos[i] = coef*((1-x)*startTension+x) + x*x*x
	}
	pos[splineSamples] = 1
	return pos
}()

// Start a fling given a starting velocity in pixels per second.
// Returns whether a fling was started.
func (f *Animation) Start(s Spline, now time.Duration, velocity float32) bool {
	m := s.Metric()
	min := float32(m.Dp(minFlingVelocity))
	v := velocity
	if !finite(v) || -min <= v && v <= min {
		return false
	}
	max := float32(m.Dp(maxFlingVelocity))
	if v > max {
		v = max
	} else if v < -max {
		v = -max
	}
	dist, dur := s.Fling(v)
	if dur <= 0 || dist == 0 {
		return false
	}
	*f = Animation{t0: now, dist: dist, dur: dur}
	return true
}

// Active reports whether a fling is in progress.
func (f *Animation) Active() bool {
	return f.dur > 0
}

// Distance returns the total signed distance of the fling.
func (f *Animation) Distance() float32 {
	return f.dist
}

// Duration returns the total duration of the fling.
func (f *Animation) Duration() time.Duration {
	return f.dur
}

// Remaining returns the signed distance the fling has yet to
// deliver through Tick.
func (f *Animation) Remaining() float32 {
	if !f.Active() {
		return 0
	}
	return f.dist - f.x
}

// Tick computes and returns a fling distance since
// the last time Tick was called. The animation stops
// once its duration has elapsed.
func (f *Animation) Tick(now time.Duration) int {
	if !f.Active() {
		return 0
	}
	t := now - f.t0
	pos, _ := splineAt(float64(t) / float64(f.dur))
	x := float32(pos) * f.dist
	idist := int(math.Round(float64(x - f.x)))
	f.x += float32(idist)
	if t >= f.dur {
		*f = Animation{}
	}
	return idist
}

// Velocity returns the signed velocity of the fling at time now,
// in pixels per second.
func (f *Animation) Velocity(now time.Duration) float32 {
	if !f.Active() {
		return 0
	}
	t := now - f.t0
	_, vcoef := splineAt(float64(t) / float64(f.dur))
	return float32(vcoef * float64(f.dist) / f.dur.Seconds())
}

// splineAt interpolates the spline position table at the normalized
// time frac, returning the normalized position and its derivative.
func splineAt(frac float64) (pos, vel float64) {
	if frac < 0 {
		frac = 0
	}
	idx := int(splineSamples * frac)
	if idx >= splineSamples {
		return 1, 0
	}
	tInf := float64(idx) / splineSamples
	tSup := float64(idx+1) / splineSamples
	dInf := splinePosition[idx]
	dSup := splinePosition[idx+1]
	vel = (dSup - dInf) / (tSup - tInf)
	pos = dInf + (frac-tInf)*vel
	return pos, vel
}
