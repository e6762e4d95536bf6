// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "testing"

func fixedList(n, extent, viewport int) *List {
	return &List{
		Len:      n,
		Extent:   func(int) int { return extent },
		Viewport: viewport,
	}
}

func TestListScrollBy(t *testing.T) {
	l := fixedList(10, 30, 100)
	if got := l.Max(); got != 200 {
		t.Fatalf("max: got %d want 200", got)
	}
	if d := l.ScrollBy(75); d != 75 {
		t.Errorf("scrolled %d, want 75", d)
	}
	if got, want := l.Position, (Position{First: 2, Offset: 15}); got != want {
		t.Errorf("position: got %+v want %+v", got, want)
	}
	if d := l.ScrollBy(1000); d != 125 {
		t.Errorf("scroll past the end moved %d, want 125", d)
	}
	if l.CanScroll(1) || !l.CanScroll(-1) {
		t.Error("list at the end reports the wrong scroll directions")
	}
	if d := l.ScrollBy(-1000); d != -200 {
		t.Errorf("scroll past the start moved %d, want -200", d)
	}
	if l.CanScroll(-1) || !l.CanScroll(1) {
		t.Error("list at the start reports the wrong scroll directions")
	}
}

func TestListPositionExtremes(t *testing.T) {
	l := fixedList(3, 10, 20)
	l.Position.First = -1
	if got := l.Offset(); got != 0 {
		t.Errorf("offset for negative First: got %d", got)
	}
	l.Position.First = 5
	if got := l.Offset(); got != 30 {
		t.Errorf("offset for First past the end: got %d", got)
	}
	l.ScrollBy(0)
	if got, want := l.Position, (Position{First: 1, Offset: 0}); got != want {
		t.Errorf("normalized position: got %+v want %+v", got, want)
	}
}

func TestEmptyList(t *testing.T) {
	var l List
	if l.Max() != 0 || l.CanScroll(0) || l.ScrollBy(10) != 0 {
		t.Error("empty list scrolls")
	}
	if i, _ := l.At(0); i != -1 {
		t.Errorf("item at 0 in empty list: %d", i)
	}
}

func TestListAt(t *testing.T) {
	l := &List{
		Len:      4,
		Extent:   func(i int) int { return 10 * (i + 1) },
		Viewport: 25,
	}
	l.ScrollTo(15)
	i, top := l.At(0)
	if i != 1 || top != -5 {
		t.Errorf("At(0) = %d, %d; want 1, -5", i, top)
	}
	i, top = l.At(20)
	if i != 2 || top != 15 {
		t.Errorf("At(20) = %d, %d; want 2, 15", i, top)
	}
	var visible []int
	l.Visible(func(i, _ int) { visible = append(visible, i) })
	if len(visible) != 2 || visible[0] != 1 || visible[1] != 2 {
		t.Errorf("visible items: %v", visible)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Errorf("clamp above: %d", got)
	}
	if got := clamp(-1.5, 0, 3); got != 0 {
		t.Errorf("clamp below: %v", got)
	}
	if got := clamp(4, 0, -1); got != 0 {
		t.Errorf("clamp to empty range: %d", got)
	}
}
