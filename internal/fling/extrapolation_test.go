// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"
	"time"
)

func TestDecomposeQR(t *testing.T) {
	A := &matrix{
		rows: 3, cols: 3,
		data: []float32{
			12, 6, -4,
			-51, 167, 24,
			4, -68, -41,
		},
	}
	Q, Rt, ok := decomposeQR(A)
	if !ok {
		t.Fatal("decomposeQR failed")
	}
	R := Rt.transpose()
	QR := Q.mul(R)
	if !A.approxEqual(QR) {
		t.Log("A\n", A)
		t.Log("Q\n", Q)
		t.Log("R\n", R)
		t.Log("QR\n", QR)
		t.Fatal("Q*R not approximately equal to A")
	}
}

func TestFit(t *testing.T) {
	X := []float32{-1, 0, 1}
	Y := []float32{2, 0, 2}

	got, ok := polyFit(X, Y)
	if !ok {
		t.Fatal("polyFit failed")
	}
	want := coefficients{0, 0, 2}
	if !got.approxEqual(want) {
		t.Fatalf("polyFit: got %v want %v", got, want)
	}
}

func TestEstimateConstantVelocity(t *testing.T) {
	var e Extrapolation
	// 600 px/s upwards, sampled every 10ms.
	for i := 0; i < 8; i++ {
		e.Sample(time.Duration(i)*10*time.Millisecond, 500-6*float32(i))
	}
	est := e.Estimate()
	if got, want := est.Velocity, float32(-600); got < want*1.01 || got > want*0.99 {
		t.Errorf("velocity: got %v want %v", got, want)
	}
	if got, want := est.Distance, float32(-42); got < want-0.01 || got > want+0.01 {
		t.Errorf("distance: got %v want %v", got, want)
	}
}

func TestEstimateCopy(t *testing.T) {
	var e Extrapolation
	for i := 0; i < 5; i++ {
		e.Sample(time.Duration(i)*10*time.Millisecond, 10*float32(i))
	}
	c := e
	e = Extrapolation{}
	if got := c.Estimate().Velocity; got < 990 || got > 1010 {
		t.Errorf("copied estimator velocity: got %v want 1000", got)
	}
	if got := e.Estimate(); got != (Estimate{}) {
		t.Errorf("reset estimator: got %v want zero", got)
	}
}

func TestEstimateStaleSamples(t *testing.T) {
	var e Extrapolation
	e.Sample(0, 0)
	e.Sample(10*time.Millisecond, 10)
	// A pause longer than maxSampleGap separates the fling
	// from the earlier samples, leaving too few to fit.
	e.Sample(200*time.Millisecond, 20)
	if got := e.Estimate(); got != (Estimate{}) {
		t.Errorf("got %v, want zero estimate", got)
	}
}
