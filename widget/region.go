// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"github.com/stickyscroll/sticky/gesture"
	"github.com/stickyscroll/sticky/io/pointer"
	"github.com/stickyscroll/sticky/layout"
	"github.com/stickyscroll/sticky/unit"
)

// region implements the scrolling behaviour shared by List and
// ScrollView: a drag and fling gesture moving a layout.List.
type region struct {
	// self is the Scrollable reported to the listener.
	self     Scrollable
	items    layout.List
	scroll   gesture.Scroll
	metric   unit.Metric
	listener ScrollListener
	now      time.Duration
}

func (r *region) init(self Scrollable, viewport int) {
	r.self = self
	r.items.Viewport = viewport
	r.scroll.Axis = gesture.Vertical
}

// Event implements Handler.
func (r *region) Event(e pointer.Event) bool {
	r.now = e.Time
	if d := r.scroll.Update(r.metric, e); d != 0 {
		r.scrollBy(d, false)
	}
	return true
}

// Tick advances a fling in progress.
func (r *region) Tick(now time.Duration) bool {
	r.now = now
	if r.scroll.State() != gesture.StateFlinging {
		return false
	}
	if d := r.scroll.Tick(now); d != 0 {
		if moved := r.scrollBy(d, true); moved != d {
			// Hit an edge.
			r.scroll.Stop()
		}
	}
	return r.scroll.State() == gesture.StateFlinging
}

func (r *region) CanScroll(dir int) bool {
	return r.items.CanScroll(dir)
}

func (r *region) ScrollOffset() int {
	return r.items.Offset()
}

// ScrollMax returns the largest scroll offset.
func (r *region) ScrollMax() int {
	return r.items.Max()
}

// Position returns the first visible item and its offset.
func (r *region) Position() layout.Position {
	return r.items.Position
}

func (r *region) ResumeDrag(d gesture.Drag, prev, e pointer.Event) {
	r.now = e.Time
	if dist := r.scroll.ResumeDrag(r.metric, d, prev, e); dist != 0 {
		r.scrollBy(dist, false)
	}
}

func (r *region) EndDrag() gesture.Drag {
	return r.scroll.EndDrag()
}

// Dragging reports whether the region is being dragged.
func (r *region) Dragging() bool {
	return r.scroll.Dragging()
}

func (r *region) Fling(velocity float32) {
	r.scroll.Fling(r.metric, r.now, velocity)
}

func (r *region) StopFling() {
	r.scroll.Stop()
}

func (r *region) Velocity() float32 {
	return r.scroll.Velocity(r.now)
}

func (r *region) SetScrollListener(l ScrollListener) {
	r.listener = l
}

func (r *region) ScrollToStart() {
	r.ScrollTo(0)
}

// ScrollTo scrolls to the offset off.
func (r *region) ScrollTo(off int) {
	r.scroll.Stop()
	r.scrollBy(off-r.items.Offset(), false)
}

func (r *region) setMetric(m unit.Metric) {
	r.metric = m
}

func (r *region) setSlop(s unit.Dp) {
	r.scroll.Slop = s
}

func (r *region) setNow(now time.Duration) {
	r.now = now
}

// scrollBy moves the content and notifies the listener. It returns
// the distance actually scrolled.
func (r *region) scrollBy(d int, flinging bool) int {
	old := r.items.Position
	moved := r.items.ScrollBy(d)
	if moved == 0 || r.listener == nil {
		return moved
	}
	ev := ScrollEvent{
		First: r.items.Position.First, OldFirst: old.First,
		Top: -r.items.Position.Offset, OldTop: -old.Offset,
	}
	if flinging {
		r.listener.ContentFlung(r.self, ev, r.scroll.Velocity(r.now))
	} else {
		r.listener.ContentScrolled(r.self, ev)
	}
	return moved
}
