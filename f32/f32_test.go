// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"image"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := FRect(image.Rect(0, 0, 10, 20))
	for _, tc := range []struct {
		p  Point
		in bool
	}{
		{Pt(0, 0), true},
		{Pt(9.5, 19.5), true},
		{Pt(10, 5), false},
		{Pt(5, 20), false},
		{Pt(-1, 5), false},
	} {
		if got := tc.p.In(r); got != tc.in {
			t.Errorf("%v.In(%v) = %v, want %v", tc.p, r, got, tc.in)
		}
	}
}

func TestRectOffset(t *testing.T) {
	r := FRect(image.Rect(0, 100, 50, 150))
	off := Pt(3, -7)
	if got, want := r.Add(off), (Rectangle{Min: Pt(3, 93), Max: Pt(53, 143)}); got != want {
		t.Errorf("Add: got %v want %v", got, want)
	}
	p := FPt(image.Pt(4, 6))
	if got, want := p.Add(off).Sub(off), p; got != want {
		t.Errorf("Add/Sub round trip: got %v want %v", got, want)
	}
	if got, want := p.Mul(.5), Pt(2, 3); got != want {
		t.Errorf("Mul: got %v want %v", got, want)
	}
}
