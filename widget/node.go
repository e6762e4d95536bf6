// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"time"

	"github.com/stickyscroll/sticky/gesture"
	"github.com/stickyscroll/sticky/io/pointer"
)

// Node is an element of the tree laid out inside a Container.
type Node interface {
	// Frame returns the bounds of the node in the content
	// coordinates of its parent.
	Frame() image.Rectangle
	// Children returns the child nodes in drawing order.
	Children() []Node
}

// Handler is a Node that accepts pointer events. Event positions are
// in the local coordinates of the node.
type Handler interface {
	Node
	// Event processes e and reports whether it was consumed. A
	// Handler that consumes a Press receives the rest of its gesture.
	Event(e pointer.Event) bool
}

// Scrollable is a Handler that scrolls its children vertically.
type Scrollable interface {
	Handler
	// CanScroll reports whether the region can scroll backwards
	// (dir < 0) or forwards (dir > 0).
	CanScroll(dir int) bool
	// ScrollOffset returns the distance the content is scrolled.
	ScrollOffset() int
	// ResumeDrag continues the drag d that was ended on another
	// region. prev is the last event the other region processed.
	ResumeDrag(d gesture.Drag, prev, e pointer.Event)
	// EndDrag ends the drag in progress, if any, and returns it.
	EndDrag() gesture.Drag
	// Fling starts a fling with the velocity in pixels per second.
	// Positive velocities scroll forwards.
	Fling(velocity float32)
	// StopFling stops a fling in progress.
	StopFling()
	// Velocity returns the current scroll velocity.
	Velocity() float32
	// SetScrollListener sets the listener notified of scroll offset
	// changes. A nil listener removes it.
	SetScrollListener(l ScrollListener)
	// ScrollToStart scrolls the region to offset zero.
	ScrollToStart()
}

// ScrollListener observes the scrolling of a Scrollable.
type ScrollListener interface {
	// ContentScrolled is called when s scrolled by a drag.
	ContentScrolled(s Scrollable, ev ScrollEvent)
	// ContentFlung is called when s scrolled by a fling moving at
	// velocity.
	ContentFlung(s Scrollable, ev ScrollEvent, velocity float32)
}

// Ticker is implemented by nodes that animate.
type Ticker interface {
	// Tick advances animations to now and reports whether any is
	// still running.
	Tick(now time.Duration) bool
}

// ScrollEvent describes a scroll offset change in terms of the first
// visible item and the position of its top edge.
type ScrollEvent struct {
	First, OldFirst int
	Top, OldTop     int
}

// ReachedStart reports whether the change brought the very first item
// to the top edge while moving towards it.
func (e ScrollEvent) ReachedStart() bool {
	return e.First <= e.OldFirst && e.First == 0 && e.Top > e.OldTop && e.Top == 0
}

// nodeID is implemented by nodes that can be found by ID.
type nodeID interface {
	NodeID() string
}
