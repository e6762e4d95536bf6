// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"log/slog"
	"time"

	"github.com/stickyscroll/sticky/f32"
	"github.com/stickyscroll/sticky/gesture"
	"github.com/stickyscroll/sticky/io/pointer"
	"github.com/stickyscroll/sticky/layout"
	"github.com/stickyscroll/sticky/unit"
)

// Container is a vertically scrolling container with an optional
// sticky header. A drag or fling that reaches the end of the container
// continues in the scrollable descendant under it, and a descendant
// that reaches its start hands the gesture back.
//
// Events and ticks are delivered by the host with Event and Tick.
// Layout must be called after the tree or the geometry changed.
type Container struct {
	// Rect is the frame of the container in the coordinates of
	// its parent. Events delivered to a root container are in
	// root coordinates, with the container's top-left corner at
	// the origin.
	Rect image.Rectangle
	// PaddingTop and PaddingBottom extend the scroll range.
	PaddingTop, PaddingBottom int
	// Content is the scrolled node. Its frame is in content
	// coordinates, where y = 0 is the top of the scroll range.
	Content Node
	// StickyID is the ID of the node to pin. An empty or unknown
	// ID disables sticking.
	StickyID string
	Sticky   layout.Sticky
	// Metric converts gesture thresholds. It is propagated to
	// descendants by Layout.
	Metric unit.Metric
	// Slop is the touch slop. Zero means gesture.TouchSlop.
	Slop unit.Dp
	// Friction of flings. Zero means the platform default.
	Friction float32
	// Logger receives gesture ownership transitions at debug level.
	// Nil discards.
	Logger *slog.Logger

	// OnScroll is called after the scroll offset changed.
	OnScroll func(offset, old, max int)
	// OnContentScroll is called when an observed descendant
	// scrolled.
	OnContentScroll func(s Scrollable, ev ScrollEvent)
	// OnStickyVisibility is called when the sticky header is hidden
	// or shown.
	OnStickyVisibility func(hidden bool)

	ready bool
	// origin of the container in root coordinates.
	origin f32.Point
	offset int
	scroll gesture.Scroll
	state  ownerState

	// buffer holds the events of a gesture started while the
	// container is at its end, until its owner is known.
	buffer pointer.Buffer
	// start is the press of the current gesture.
	start pointer.Event
	// last is the latest event received.
	last pointer.Event
	// target receives the regular dispatch of the current gesture.
	target Handler
	// intercepted is set once the container took the current
	// gesture from target.
	intercepted bool
	now         time.Duration

	header     Node
	headerRect image.Rectangle
	placement  layout.Placement
	restore    bool
	listener   ScrollListener
}

// SavedState is the state of a Container that outlives it.
type SavedState struct {
	ScrolledToBottom bool `yaml:"scrolled_to_bottom"`
}

// Layout propagates the metric to the descendants, finds the sticky
// header and updates its placement. A restored scroll position is
// applied.
func (c *Container) Layout() {
	c.ready = true
	c.scroll.Axis = gesture.Vertical
	c.scroll.Slop = c.Slop
	c.scroll.Friction = c.Friction
	if c.state == nil {
		c.state = &undefinedState{}
	}
	walk(c.Content, func(n Node) bool {
		if n, ok := n.(interface{ setMetric(unit.Metric) }); ok {
			n.setMetric(c.Metric)
		}
		// Descendants must not recognize a drag before the
		// container classified it.
		if n, ok := n.(interface{ setSlop(unit.Dp) }); ok {
			n.setSlop(c.Slop)
		}
		return true
	})
	c.header, c.headerRect = nil, image.Rectangle{}
	if c.StickyID != "" && c.Content != nil {
		if n, r, ok := find(c.Content, c.StickyID); ok {
			c.header, c.headerRect = n, r
		} else {
			c.log().Debug("sticky header not found", "id", c.StickyID)
		}
	}
	target := min(c.offset, c.ScrollMax())
	if c.restore {
		c.restore = false
		target = c.ScrollMax()
	}
	c.scrollBy(target - c.offset)
	c.updateSticky()
}

// Event processes a pointer event and reports whether it was
// consumed by the container or a descendant.
func (c *Container) Event(e pointer.Event) bool {
	c.init()
	e = pointer.ToScreen(e, c.origin)
	c.now = e.Time
	if e.Kind == pointer.Press {
		// A new gesture. Whatever the previous one left behind is
		// dropped.
		c.cancelTarget(e)
		c.intercepted = false
		c.transition(&undefinedState{})
	}
	c.last = e
	handled := false
	if !c.intercepted {
		steal, consumed := c.intercept(e)
		switch {
		case steal:
			c.cancelTarget(e)
			c.intercepted = true
			if consumed {
				handled = true
			} else {
				handled = c.touch(e)
			}
		default:
			handled = c.dispatch(e)
			if !handled && e.Kind == pointer.Press {
				// No descendant wants the gesture.
				c.intercepted = true
				handled = c.touch(e)
			}
		}
	} else {
		handled = c.touch(e)
	}
	if e.Ended() {
		c.target = nil
		c.intercepted = false
		c.toUndefined()
	}
	return handled
}

// intercept decides whether the container takes the gesture from
// the regular dispatch. consumed reports whether e was fully handled.
func (c *Container) intercept(e pointer.Event) (steal, consumed bool) {
	switch c.state.(type) {
	case *flingDescendantState, *flingSelfState:
		c.toUndefined()
	}
	switch c.state.(type) {
	case *stickyTouchState:
		return false, false
	case *redirectToState, *redirectFromState, *translateState:
		return true, false
	}
	switch e.Kind {
	case pointer.Press:
		if c.headerHit(e.Screen) {
			h, _ := c.header.(Handler)
			c.transition(&stickyTouchState{header: h})
			return false, false
		}
		c.start = e
		c.scroll.Update(c.Metric, e)
		c.transition(&undefinedState{watch: c.scrollableAt(e.Screen, 0)})
		if !c.CanScroll(1) {
			c.buffer.Push(e)
		}
	case pointer.Move:
		if !c.CanScroll(1) && c.buffer.Len() > 0 {
			c.buffer.Push(e)
			dy := c.start.Screen.Y - e.Screen.Y
			if slop := float32(c.Metric.Dp(c.slop())); dy > slop || dy < -slop {
				dir := 1
				if dy < 0 {
					dir = -1
				}
				if s := c.scrollableAt(c.start.Screen, dir); s != nil {
					c.scroll.EndDrag()
					c.transition(&translateState{to: s})
					return true, false
				}
			}
		}
		d := c.scroll.Update(c.Metric, e)
		if c.scroll.Dragging() {
			c.buffer.Discard()
			c.scrollBy(d)
			return true, true
		}
	case pointer.Release, pointer.Cancel:
		c.scroll.Update(c.Metric, e)
	}
	return false, false
}

// dispatch delivers e to the descendant handling the gesture,
// choosing it on Press.
func (c *Container) dispatch(e pointer.Event) bool {
	if e.Kind == pointer.Press {
		c.target = nil
		if st, ok := c.state.(*stickyTouchState); ok {
			if st.header != nil && c.deliver(st.header, e) {
				c.target = st.header
				return true
			}
			return false
		}
		hitTest(c.Content, c.contentOrigin(), e.Screen, false, func(n Node, o f32.Point) bool {
			h, ok := n.(Handler)
			if !ok || !deliverAt(h, o, e) {
				return false
			}
			c.target = h
			return true
		})
		return c.target != nil
	}
	if c.target == nil {
		return false
	}
	return c.deliver(c.target, e)
}

// touch handles an event the container intercepted, according to
// the gesture owner.
func (c *Container) touch(e pointer.Event) bool {
	switch st := c.state.(type) {
	case *translateState:
		if !st.replayed {
			// The buffer ends with e.
			st.replayed = true
			c.buffer.Replay(func(be pointer.Event) {
				if c.state == st {
					c.deliver(st.to, be)
				}
			})
			return true
		}
		return c.deliver(st.to, e)
	case *redirectToState:
		if !st.resumed {
			st.resumed = true
			o, ok := c.originOf(st.to)
			if !ok {
				return false
			}
			setOrigin(st.to, o)
			st.to.ResumeDrag(st.drag, pointer.Translate(st.prev, o), pointer.Translate(e, o))
			return true
		}
		return c.deliver(st.to, e)
	case *redirectFromState:
		if !st.resumed {
			st.resumed = true
			c.scrollBy(c.scroll.ResumeDrag(c.Metric, st.drag, st.prev, e))
			return true
		}
	}
	// Also reached by a press on a stuck header that did not take it.
	c.scrollBy(c.scroll.Update(c.Metric, e))
	return true
}

// Tick advances the flings of the container and its descendants and
// the sticky header animation. It reports whether an animation is
// still running.
func (c *Container) Tick(now time.Duration) bool {
	c.init()
	c.now = now
	active := false
	if c.scroll.State() == gesture.StateFlinging {
		d := c.scroll.Tick(now)
		if moved := c.scrollBy(d); moved != d {
			// Hit an edge. A fling continued in a descendant was
			// already stopped.
			c.scroll.Stop()
		}
		active = c.scroll.State() == gesture.StateFlinging
	}
	if c.Sticky.Animating() {
		active = c.Sticky.Tick() || active
		c.updateSticky()
	}
	walk(c.Content, func(n Node) bool {
		if t, ok := n.(Ticker); ok && t.Tick(now) {
			active = true
		}
		// Nested containers tick their own content.
		_, nested := n.(*Container)
		return !nested
	})
	switch st := c.state.(type) {
	case *flingSelfState:
		if c.scroll.State() != gesture.StateFlinging {
			c.toUndefined()
		}
	case *flingDescendantState:
		if st.to.Velocity() == 0 {
			c.toUndefined()
		}
	}
	return active
}

// Owner returns the current gesture owner.
func (c *Container) Owner() Owner {
	if c.state == nil {
		return Undefined
	}
	return c.state.owner()
}

// OwnerRegion returns the descendant owning or observed during the
// current gesture, or nil.
func (c *Container) OwnerRegion() Scrollable {
	if c.state == nil {
		return nil
	}
	return c.state.target()
}

// Buffered returns the number of events awaiting an owner.
func (c *Container) Buffered() int {
	return c.buffer.Len()
}

// transition makes next the gesture owner. The container stops
// observing the previous owner, stops the fling chained through it
// and drops buffered events unless next is about to replay them.
func (c *Container) transition(next ownerState) {
	if t := next.target(); t != nil && t == Scrollable(c) {
		c.log().Warn("rejected gesture handoff to the container itself", "owner", next.owner())
		next = &undefinedState{}
	}
	prev := c.state
	if prev != nil {
		if t := prev.target(); t != nil {
			t.SetScrollListener(nil)
		}
		switch p := prev.(type) {
		case *flingDescendantState:
			p.to.StopFling()
		case *flingSelfState:
			c.scroll.Stop()
		}
	}
	if _, ok := next.(*translateState); !ok {
		c.buffer.Discard()
	}
	if t := next.target(); t != nil {
		t.SetScrollListener(c)
	}
	c.state = next
	if prev == nil || prev.owner() != next.owner() {
		from := Undefined
		if prev != nil {
			from = prev.owner()
		}
		c.log().Debug("gesture owner changed", "from", from, "to", next.owner(), "offset", c.offset)
	}
}

// toUndefined ends any handoff, observing the previous owner.
func (c *Container) toUndefined() {
	var watch Scrollable
	if c.state != nil {
		watch = c.state.target()
	}
	c.transition(&undefinedState{watch: watch})
}

// scrollBy scrolls the container by d, clamped to the scroll range,
// and returns the distance scrolled.
func (c *Container) scrollBy(d int) int {
	if d == 0 {
		return 0
	}
	old := c.offset
	c.offset = min(max(old+d, 0), c.ScrollMax())
	moved := c.offset - old
	if moved != 0 {
		c.scrollChanged(old, d-moved)
	}
	return moved
}

// scrollChanged reacts to a change of the scroll offset from old.
// overshoot is the part of the requested distance that was clamped.
func (c *Container) scrollChanged(old, overshoot int) {
	c.updateSticky()
	if !c.scroll.Dragging() {
		c.continueFling(old, overshoot)
	} else if c.offset > old && !c.CanScroll(1) {
		if s := c.scrollableAt(c.last.Screen, 1); s != nil {
			c.transition(&redirectToState{to: s, drag: c.scroll.EndDrag(), prev: c.last})
		}
	}
	if c.listener != nil {
		ev := ScrollEvent{Top: -c.offset, OldTop: -old}
		if c.scroll.Dragging() {
			c.listener.ContentScrolled(c, ev)
		} else {
			c.listener.ContentFlung(c, ev, c.Velocity())
		}
	}
	if c.OnScroll != nil {
		c.OnScroll(c.offset, old, c.ScrollMax())
	}
}

// continueFling hands a fling that reached the end of the container
// to the descendant in its centre. The descendant flings with the
// velocity that travels the remaining distance.
func (c *Container) continueFling(old, overshoot int) {
	if c.offset <= old || c.CanScroll(1) || c.scroll.State() != gesture.StateFlinging {
		return
	}
	if _, ok := c.state.(*flingDescendantState); ok {
		return
	}
	s := c.scrollableAt(c.center(), 1)
	if s == nil {
		return
	}
	spline := c.scroll.Spline(c.Metric)
	v := spline.Velocity(c.scroll.Remaining() + float32(overshoot))
	c.scroll.Stop()
	c.transition(&flingDescendantState{to: s})
	if c.Owner() == FlingingDescendant {
		setNow(s, c.now)
		s.Fling(v)
	}
}

// ContentScrolled implements ScrollListener. A descendant dragged to
// its start while the container is at its end hands the drag back.
func (c *Container) ContentScrolled(s Scrollable, ev ScrollEvent) {
	if ev.ReachedStart() && !c.CanScroll(1) && !s.CanScroll(-1) {
		if _, ok := c.state.(*redirectFromState); !ok {
			c.transition(&redirectFromState{from: s, drag: s.EndDrag(), prev: c.last})
		}
	}
	if c.OnContentScroll != nil {
		c.OnContentScroll(s, ev)
	}
}

// ContentFlung implements ScrollListener. A descendant flung to its
// start while the container is at its end continues the fling in the
// container.
func (c *Container) ContentFlung(s Scrollable, ev ScrollEvent, velocity float32) {
	if ev.ReachedStart() && !c.CanScroll(1) && !s.CanScroll(-1) {
		if _, ok := c.state.(*flingSelfState); !ok {
			c.transition(&flingSelfState{velocity: velocity})
			c.scroll.Fling(c.Metric, c.now, velocity)
		}
	}
	if c.OnContentScroll != nil {
		c.OnContentScroll(s, ev)
	}
}

// SyncInnerScrollables scrolls the outermost scrollable descendants
// back to their start, unless the container is at its end.
func (c *Container) SyncInnerScrollables() {
	if !c.CanScroll(1) {
		return
	}
	walk(c.Content, func(n Node) bool {
		if s, ok := n.(Scrollable); ok {
			s.ScrollToStart()
			return false
		}
		return true
	})
}

// ShowSticky slides the stuck header into or out of view. It reports
// whether the visibility changed.
func (c *Container) ShowSticky(show bool) bool {
	c.init()
	if c.header == nil || !c.Sticky.Show(c.headerGeometry(), show, c.PaddingTop) {
		return false
	}
	c.updateSticky()
	return true
}

// Placement returns the placement of the sticky header.
func (c *Container) Placement() layout.Placement {
	return c.placement
}

// HeaderBounds returns the bounds of the sticky header as drawn, in
// root coordinates, and whether there is a header.
func (c *Container) HeaderBounds() (f32.Rectangle, bool) {
	if c.header == nil || c.Content == nil {
		return f32.Rectangle{}, false
	}
	r := c.headerRect
	if c.placement.Stuck {
		r = r.Add(image.Pt(c.placement.Left-r.Min.X, c.placement.TranslationY))
	}
	base := c.contentOrigin().Add(f32.FPt(c.Content.Frame().Min))
	return f32.FRect(r).Add(base), true
}

// Save returns the state to restore the container with.
func (c *Container) Save() SavedState {
	return SavedState{ScrolledToBottom: !c.CanScroll(1)}
}

// Restore applies s during the next Layout.
func (c *Container) Restore(s SavedState) {
	c.restore = s.ScrolledToBottom
	c.ready = false
}

// ScrollMax returns the largest scroll offset.
func (c *Container) ScrollMax() int {
	if c.Content == nil {
		return 0
	}
	return max(c.Content.Frame().Max.Y+c.PaddingBottom-c.Rect.Dy(), 0)
}

// ScrollTo scrolls to the offset off.
func (c *Container) ScrollTo(off int) {
	c.scroll.Stop()
	c.scrollBy(off - c.offset)
}

func (c *Container) Frame() image.Rectangle { return c.Rect }

func (c *Container) Children() []Node {
	if c.Content == nil {
		return nil
	}
	return []Node{c.Content}
}

func (c *Container) CanScroll(dir int) bool {
	switch {
	case dir < 0:
		return c.offset > 0
	case dir > 0:
		return c.offset < c.ScrollMax()
	default:
		return c.ScrollMax() > 0
	}
}

func (c *Container) ScrollOffset() int {
	return c.offset
}

func (c *Container) ResumeDrag(d gesture.Drag, prev, e pointer.Event) {
	c.init()
	prev, e = pointer.ToScreen(prev, c.origin), pointer.ToScreen(e, c.origin)
	c.now = e.Time
	c.last = e
	c.intercepted = true
	c.scrollBy(c.scroll.ResumeDrag(c.Metric, d, prev, e))
}

func (c *Container) EndDrag() gesture.Drag {
	return c.scroll.EndDrag()
}

func (c *Container) Fling(velocity float32) {
	c.scroll.Fling(c.Metric, c.now, velocity)
}

func (c *Container) StopFling() {
	c.scroll.Stop()
}

func (c *Container) Velocity() float32 {
	return c.scroll.Velocity(c.now)
}

func (c *Container) SetScrollListener(l ScrollListener) {
	c.listener = l
}

func (c *Container) ScrollToStart() {
	c.ScrollTo(0)
}

func (c *Container) setOrigin(o f32.Point) {
	c.origin = o
}

func (c *Container) setMetric(m unit.Metric) {
	c.Metric = m
	c.ready = false
}

func (c *Container) setSlop(s unit.Dp) {
	c.Slop = s
	c.ready = false
}

func (c *Container) setNow(now time.Duration) {
	c.now = now
}

func (c *Container) init() {
	if !c.ready {
		c.Layout()
	}
}

func (c *Container) updateSticky() {
	wasHidden := c.placement.Hidden
	if c.header == nil {
		c.placement = c.Sticky.Clear()
	} else {
		c.placement = c.Sticky.Update(c.headerGeometry(), c.offset, c.PaddingTop)
	}
	if c.placement.Relayout {
		c.log().Debug("sticky header", "stuck", c.placement.Stuck, "offset", c.offset)
	}
	if wasHidden != c.placement.Hidden && c.OnStickyVisibility != nil {
		c.OnStickyVisibility(c.placement.Hidden)
	}
}

func (c *Container) headerGeometry() layout.Header {
	return layout.Header{
		Top:    c.headerRect.Min.Y,
		Left:   c.headerRect.Min.X,
		Height: c.headerRect.Dy(),
	}
}

// headerHit reports whether p hits the stuck and visible header.
func (c *Container) headerHit(p f32.Point) bool {
	if !c.placement.Stuck || c.placement.Hidden {
		return false
	}
	r, ok := c.HeaderBounds()
	return ok && p.In(r)
}

// scrollableAt returns the innermost, topmost scrollable descendant
// under p that can scroll in the direction dir. A zero dir accepts
// any scrollable.
func (c *Container) scrollableAt(p f32.Point, dir int) Scrollable {
	var found Scrollable
	hitTest(c.Content, c.contentOrigin(), p, true, func(n Node, _ f32.Point) bool {
		s, ok := n.(Scrollable)
		if ok && (dir == 0 || s.CanScroll(dir)) {
			found = s
			return true
		}
		return false
	})
	return found
}

// contentOrigin returns the root coordinates of the origin of the
// scrolled content.
func (c *Container) contentOrigin() f32.Point {
	return c.origin.Sub(f32.Pt(0, float32(c.offset)))
}

func (c *Container) center() f32.Point {
	return c.origin.Add(f32.FPt(c.Rect.Size()).Mul(.5))
}

// originOf returns the root coordinates of the top-left corner of n
// as drawn.
func (c *Container) originOf(n Node) (f32.Point, bool) {
	if st, ok := c.state.(*stickyTouchState); ok && st.header != nil && Node(st.header) == n {
		r, ok := c.HeaderBounds()
		return r.Min, ok
	}
	return locate(c.Content, c.contentOrigin(), n)
}

// deliver sends e to h in the local coordinates of h.
func (c *Container) deliver(h Handler, e pointer.Event) bool {
	o, ok := c.originOf(h)
	if !ok {
		return false
	}
	return deliverAt(h, o, e)
}

// cancelTarget sends a Cancel to the handler of the regular
// dispatch and forgets it.
func (c *Container) cancelTarget(e pointer.Event) {
	t := c.target
	if t == nil {
		return
	}
	c.target = nil
	e.Kind = pointer.Cancel
	c.deliver(t, e)
}

func (c *Container) slop() unit.Dp {
	if c.Slop == 0 {
		return gesture.TouchSlop
	}
	return c.Slop
}

func (c *Container) log() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func deliverAt(h Handler, origin f32.Point, e pointer.Event) bool {
	setOrigin(h, origin)
	return h.Event(pointer.Translate(e, origin))
}

// setNow sets the clock a fling started by Fling is timed with.
func setNow(n Node, now time.Duration) {
	if n, ok := n.(interface{ setNow(time.Duration) }); ok {
		n.setNow(now)
	}
}

func setOrigin(n Node, origin f32.Point) {
	if n, ok := n.(interface{ setOrigin(f32.Point) }); ok {
		n.setOrigin(origin)
	}
}
