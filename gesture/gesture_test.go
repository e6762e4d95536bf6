// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"
	"time"

	"github.com/stickyscroll/sticky/f32"
	"github.com/stickyscroll/sticky/io/pointer"
	"github.com/stickyscroll/sticky/unit"
)

func touch(k pointer.Kind, ms int, y float32) pointer.Event {
	return pointer.At(k, time.Duration(ms)*time.Millisecond, f32.Pt(10, y))
}

func TestClick(t *testing.T) {
	var c Click
	if _, ok := c.Update(touch(pointer.Press, 0, 5), false); ok {
		t.Fatal("press outside the area reported an event")
	}
	ev, ok := c.Update(touch(pointer.Press, 0, 5), true)
	if !ok || ev.Type != TypePress || c.State() != StatePressed {
		t.Fatalf("press: got %v, %v in state %v", ev.Type, ok, c.State())
	}
	ev, ok = c.Update(touch(pointer.Release, 50, 5), true)
	if !ok || ev.Type != TypeClick {
		t.Fatalf("release: got %v, %v", ev.Type, ok)
	}
	if c.State() != StateNormal {
		t.Errorf("state after click: %v", c.State())
	}
}

func TestClickCancel(t *testing.T) {
	var c Click
	c.Update(touch(pointer.Press, 0, 5), true)
	ev, ok := c.Update(touch(pointer.Cancel, 10, 5), true)
	if !ok || ev.Type != TypeCancel {
		t.Fatalf("cancel: got %v, %v", ev.Type, ok)
	}
	if _, ok := c.Update(touch(pointer.Release, 20, 5), true); ok {
		t.Error("release after cancel reported a click")
	}
}

func TestScrollSlop(t *testing.T) {
	s := Scroll{Axis: Vertical}
	var m unit.Metric
	s.Update(m, touch(pointer.Press, 0, 100))
	if d := s.Update(m, touch(pointer.Move, 10, 95)); d != 0 || s.Dragging() {
		t.Fatalf("move within slop scrolled %d", d)
	}
	// 20px up, less the 8px slop.
	if d := s.Update(m, touch(pointer.Move, 20, 80)); d != 12 {
		t.Errorf("move past slop: got %d want 12", d)
	}
	if !s.Dragging() || s.State() != StateDragging {
		t.Error("drag not recognized")
	}
	if d := s.Update(m, touch(pointer.Move, 30, 90)); d != -10 {
		t.Errorf("move down: got %d want -10", d)
	}
}

func TestScrollFling(t *testing.T) {
	s := Scroll{Axis: Vertical}
	var m unit.Metric
	s.Update(m, touch(pointer.Press, 0, 500))
	y := float32(500)
	for ms := 10; ms <= 80; ms += 10 {
		y -= 20
		s.Update(m, touch(pointer.Move, ms, y))
	}
	if v := s.Velocity(80 * time.Millisecond); v < 1900 || v > 2100 {
		t.Errorf("drag velocity: got %v want 2000", v)
	}
	s.Update(m, touch(pointer.Release, 90, y-20))
	if s.State() != StateFlinging {
		t.Fatalf("state after release: %v", s.State())
	}
	if s.Remaining() <= 0 {
		t.Errorf("fling remaining %v, want forward distance", s.Remaining())
	}
	total := 0
	for now := 100 * time.Millisecond; s.State() == StateFlinging; now += 16 * time.Millisecond {
		total += s.Tick(now)
	}
	if total <= 0 {
		t.Errorf("fling travelled %d", total)
	}
}

func TestScrollNoFlingWithoutDrag(t *testing.T) {
	s := Scroll{Axis: Vertical}
	var m unit.Metric
	s.Update(m, touch(pointer.Press, 0, 100))
	s.Update(m, touch(pointer.Move, 5, 97))
	s.Update(m, touch(pointer.Release, 10, 95))
	if s.State() != StateIdle {
		t.Errorf("tap flinged: state %v", s.State())
	}
}

func TestScrollStop(t *testing.T) {
	s := Scroll{Axis: Vertical}
	if !s.Fling(unit.Metric{}, 0, 3000) {
		t.Fatal("fling not started")
	}
	s.Stop()
	if s.State() != StateIdle || s.Tick(time.Second) != 0 {
		t.Error("stopped fling still moving")
	}
}

func TestDragHandoff(t *testing.T) {
	var m unit.Metric
	outer := Scroll{Axis: Vertical}
	inner := Scroll{Axis: Vertical}
	outer.Update(m, touch(pointer.Press, 0, 400))
	y := float32(400)
	var prev pointer.Event
	for ms := 10; ms <= 50; ms += 10 {
		y -= 30
		prev = touch(pointer.Move, ms, y)
		outer.Update(m, prev)
	}
	d := outer.EndDrag()
	if !d.Valid() {
		t.Fatal("EndDrag returned an invalid drag")
	}
	if outer.State() != StateIdle {
		t.Errorf("outer state after EndDrag: %v", outer.State())
	}
	next := touch(pointer.Move, 60, y-30)
	if got := inner.ResumeDrag(m, d, prev, next); got != 30 {
		t.Errorf("resumed distance: got %d want 30", got)
	}
	if !inner.Dragging() {
		t.Error("inner not dragging after resume")
	}
	// The velocity history moved with the drag.
	if v := inner.Velocity(60 * time.Millisecond); v < 2900 || v > 3100 {
		t.Errorf("resumed velocity: got %v want 3000", v)
	}
	if got := inner.ResumeDrag(m, Drag{}, prev, next); got != 0 {
		t.Errorf("invalid drag resumed %d", got)
	}
}

func TestScrollHorizontal(t *testing.T) {
	s := Scroll{Axis: Horizontal, Slop: 1}
	m := unit.Density(2)
	s.Update(m, pointer.At(pointer.Press, 0, f32.Pt(100, 0)))
	if d := s.Update(m, pointer.At(pointer.Move, 10, f32.Pt(90, 50))); d != 8 {
		t.Errorf("horizontal move: got %d want 8", d)
	}
}
