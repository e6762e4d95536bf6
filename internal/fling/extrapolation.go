// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Extrapolation computes a 1-dimensional velocity estimate
// for a set of timestamped points using the least squares
// fit of a 2nd order polynomial. The same method is used
// by Android.
//
// Extrapolation holds no references to itself, so a copy
// carries the full sample history. Drag handoffs between
// scrollable regions rely on that.
type Extrapolation struct {
	// Index of the next slot in samples.
	idx int
	// Number of valid samples.
	n int
	// Circular buffer of samples.
	samples   [historySize]sample
	lastValue float32

	// Filtered values and times
	values [historySize]float32
	times  [historySize]float32
}

type sample struct {
	t time.Duration
	v float32
}

// matrix is a column-major matrix.
type matrix struct {
	rows, cols int
	data       []float32
}

// Estimate is the result of an extrapolation.
type Estimate struct {
	// Velocity is the rate of change of the sampled value,
	// in units per second.
	Velocity float32
	// Distance is the change of the sampled value over the
	// samples used for the estimate.
	Distance float32
}

type coefficients [degree + 1]float32

const (
	degree       = 2
	historySize  = 20
	maxAge       = 100 * time.Millisecond
	maxSampleGap = 40 * time.Millisecond
)

// SampleDelta adds a relative sample to the estimation.
func (e *Extrapolation) SampleDelta(t time.Duration, delta float32) {
	val := delta + e.lastValue
	e.Sample(t, val)
}

// Sample adds an absolute sample to the estimation.
func (e *Extrapolation) Sample(t time.Duration, val float32) {
	e.lastValue = val
	e.samples[e.idx] = sample{t: t, v: val}
	e.idx = (e.idx + 1) % historySize
	if e.n < historySize {
		e.n++
	}
}

// Len returns the number of retained samples.
func (e *Extrapolation) Len() int {
	return e.n
}

// Estimate returns an estimate of the implied velocity and
// distance for the points sampled, or zero if the estimation method
// failed.
func (e *Extrapolation) Estimate() Estimate {
	if e.n == 0 {
		return Estimate{}
	}
	values := e.values[:0]
	times := e.times[:0]
	first := e.get(0)
	t := first.t
	// Walk backwards collecting samples.
	for i := 0; i < e.n; i++ {
		p := e.get(-i)
		age := first.t - p.t
		if age >= maxAge || t-p.t >= maxSampleGap {
			// If the samples are too old or
			// too much time passed between samples
			// assume they're not part of the fling.
			break
		}
		t = p.t
		values = append(values, p.v-first.v)
		times = append(times, float32((p.t - first.t).Seconds()))
	}
	coef, ok := polyFit(times, values)
	if !ok {
		return Estimate{}
	}
	dist := values[0] - values[len(values)-1]
	return Estimate{
		Velocity: coef[1],
		Distance: dist,
	}
}

// get returns the sample i steps from the latest. i must be in
// the range (-n, 0].
func (e *Extrapolation) get(i int) sample {
	idx := ((e.idx-1+i)%historySize + historySize) % historySize
	return e.samples[idx]
}

// polyFit computes the least squares polynomial fit for
// the set of points in X, Y. If the fitting fails
// because of contradicting or insufficient data,
// polyFit returns false.
func polyFit(X, Y []float32) (coefficients, bool) {
	if len(X) != len(Y) {
		panic("X and Y lengths differ")
	}
	if len(X) <= degree {
		// Not enough points to fit a curve.
		return coefficients{}, false
	}

	// Use a method similar to Android's VelocityTracker.cpp
	// where all weights are 1.

	// First, expand the X vector to the Vandermonde matrix A.
	A := newMatrix(len(X), degree+1)
	for i, x := range X {
		A.set(i, 0, 1)
		for j := 1; j < A.cols; j++ {
			A.set(i, j, A.get(i, j-1)*x)
		}
	}

	Q, Rt, ok := decomposeQR(A)
	if !ok {
		return coefficients{}, false
	}
	// Solve R*B = Qt*Y for B, which is then the polynomial coefficients.
	// Since R is upper triangular, we can proceed from bottom right to
	// upper left.
	var B coefficients
	for i := Q.cols - 1; i >= 0; i-- {
		B[i] = dot(Q.col(i), Y)
		for j := Q.cols - 1; j > i; j-- {
			B[i] -= Rt.get(j, i) * B[j]
		}
		B[i] /= Rt.get(i, i)
	}
	return B, true
}

// decomposeQR computes and returns Q, Rt where Q*transpose(Rt) = A, if
// possible. R is guaranteed to be upper triangular and only the square
// part of Rt is returned.
func decomposeQR(A *matrix) (*matrix, *matrix, bool) {
	// Gram-Schmidt QR decompose A where Q*R = A.
	Q := newMatrix(A.rows, A.cols)
	Rt := newMatrix(A.cols, A.cols)
	for i := 0; i < A.cols; i++ {
		qi := Q.col(i)
		copy(qi, A.col(i))
		// Subtract projections. Note that in the projection
		//
		// proju a = <u, a>/<u, u> u
		//
		// the normalized column e replaces u, where <e, e> = 1:
		//
		// proje a = <e, a>/<e, e> e = <e, a> e
		for j := 0; j < i; j++ {
			qj := Q.col(j)
			d := dot(qj, qi)
			for k := range qi {
				qi[k] -= d * qj[k]
			}
		}
		// Normalize the column.
		n := norm(qi)
		if n < 0.000001 {
			// Degenerate data, no solution.
			return nil, nil, false
		}
		invNorm := 1 / n
		for k := range qi {
			qi[k] *= invNorm
		}
		// Update Rt.
		for j := i; j < A.cols; j++ {
			Rt.set(j, i, dot(qi, A.col(j)))
		}
	}
	return Q, Rt, true
}

func norm(V []float32) float32 {
	var n float32
	for _, v := range V {
		n += v * v
	}
	return float32(math.Sqrt(float64(n)))
}

func dot(V1, V2 []float32) float32 {
	var d float32
	for i, v1 := range V1 {
		d += v1 * V2[i]
	}
	return d
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

func (m *matrix) get(row, col int) float32 {
	return m.data[col*m.rows+row]
}

func (m *matrix) set(row, col int, v float32) {
	m.data[col*m.rows+row] = v
}

func (m *matrix) col(c int) []float32 {
	return m.data[c*m.rows : (c+1)*m.rows]
}

func (m *matrix) transpose() *matrix {
	t := newMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			t.set(c, r, m.get(r, c))
		}
	}
	return t
}

func (m *matrix) mul(m2 *matrix) *matrix {
	if m.cols != m2.rows {
		panic("mismatched matrices")
	}
	mm := newMatrix(m.rows, m2.cols)
	for i := 0; i < mm.rows; i++ {
		for j := 0; j < mm.cols; j++ {
			var v float32
			for k := 0; k < m.cols; k++ {
				v += m.get(i, k) * m2.get(k, j)
			}
			mm.set(i, j, v)
		}
	}
	return mm
}

func (m *matrix) approxEqual(m2 *matrix) bool {
	if m.rows != m2.rows || m.cols != m2.cols {
		return false
	}
	for i, v := range m.data {
		if !approxEqual(v, m2.data[i]) {
			return false
		}
	}
	return true
}

func (m *matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", m.get(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c coefficients) approxEqual(c2 coefficients) bool {
	for i, v := range c {
		if !approxEqual(v, c2[i]) {
			return false
		}
	}
	return true
}

func approxEqual(v1, v2 float32) bool {
	const epsilon = 0.001
	return math.Abs(float64(v1-v2)) < epsilon
}
