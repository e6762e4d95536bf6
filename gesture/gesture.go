// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events and detect higher
level actions such as clicks and scrolling. A Scroll drag can be
ended on one gesture and resumed on another, carrying its
velocity history along, which lets nested scrollable regions
hand a single touch sequence to each other.
*/
package gesture

import (
	"math"
	"time"

	"github.com/stickyscroll/sticky/f32"
	"github.com/stickyscroll/sticky/internal/fling"
	"github.com/stickyscroll/sticky/io/pointer"
	"github.com/stickyscroll/sticky/unit"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
	pid   pointer.ID
}

type ClickState uint8

// ClickEvent represent a click action, either a
// TypePress for the beginning of a click or a
// TypeClick for a completed click.
type ClickEvent struct {
	Type     ClickType
	Position f32.Point
	Source   pointer.Source
}

type ClickType uint8

// Scroll detects drag and fling gestures along an axis and reduces
// them to scroll distances. Distances are in scroll offset units: a
// pointer moving up scrolls forward.
type Scroll struct {
	// Axis is the scrolling axis.
	Axis Axis
	// Slop is the distance a pointer must travel before a drag
	// is recognized. Zero means TouchSlop.
	Slop unit.Dp
	// Friction of flings. Zero means fling.ScrollFriction.
	Friction float32

	dragging  bool
	grab      bool
	pid       pointer.ID
	estimator fling.Extrapolation
	flinger   fling.Animation
	last      int
}

// Drag is the state of a drag gesture detached from its Scroll by
// EndDrag. Its zero value is an invalid drag.
type Drag struct {
	estimator fling.Extrapolation
	pid       pointer.ID
	valid     bool
}

type ScrollState uint8

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// TypePress is reported for the first pointer
	// press.
	TypePress ClickType = iota
	// TypeClick is reporoted when a click action
	// is complete.
	TypeClick
	// TypeCancel is reported when the gesture is
	// cancelled.
	TypeCancel
)

const (
	// StateIdle is the default scroll state.
	StateIdle ScrollState = iota
	// StateDrag is reported during drag gestures.
	StateDragging
	// StateFlinging is reported when a fling is
	// in progress.
	StateFlinging
)

// TouchSlop is the default drag threshold.
const TouchSlop = unit.Dp(8)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Update processes a pointer event. hit reports whether the event
// position is inside the clickable area.
func (c *Click) Update(e pointer.Event, hit bool) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Release:
		wasPressed := c.state == StatePressed && c.pid == e.PointerID
		c.state = StateNormal
		if wasPressed && hit {
			return ClickEvent{Type: TypeClick, Position: e.Position, Source: e.Source}, true
		}
	case pointer.Cancel:
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if wasPressed {
			return ClickEvent{Type: TypeCancel}, true
		}
	case pointer.Press:
		if c.state == StatePressed || !hit {
			break
		}
		if e.Source == pointer.Mouse && !e.Buttons.Contain(pointer.ButtonPrimary) {
			break
		}
		c.state = StatePressed
		c.pid = e.PointerID
		return ClickEvent{Type: TypePress, Position: e.Position, Source: e.Source}, true
	case pointer.Move:
		if c.state == StatePressed && !hit {
			c.state = StateNormal
			return ClickEvent{Type: TypeCancel}, true
		}
	}
	return ClickEvent{}, false
}

// Stop any remaining fling movement.
func (s *Scroll) Stop() {
	s.flinger = fling.Animation{}
}

// Update processes a pointer event and returns the scroll distance
// it implies. Distances are only reported once the pointer has moved
// further than the touch slop.
func (s *Scroll) Update(m unit.Metric, e pointer.Event) int {
	switch e.Kind {
	case pointer.Press:
		if s.dragging {
			break
		}
		s.Stop()
		s.estimator = fling.Extrapolation{}
		v := s.val(e.Screen)
		s.last = int(math.Round(float64(v)))
		s.estimator.Sample(e.Time, v)
		s.dragging = true
		s.grab = false
		s.pid = e.PointerID
	case pointer.Release:
		if !s.dragging || s.pid != e.PointerID {
			break
		}
		s.estimator.Sample(e.Time, s.val(e.Screen))
		if s.grab {
			est := s.estimator.Estimate()
			if slop, d := float32(s.slop(m)), est.Distance; d < -slop || d > slop {
				s.Fling(m, e.Time, -est.Velocity)
			}
		}
		s.dragging = false
		s.grab = false
	case pointer.Cancel:
		s.dragging = false
		s.grab = false
	case pointer.Move:
		if !s.dragging || s.pid != e.PointerID {
			break
		}
		val := s.val(e.Screen)
		s.estimator.Sample(e.Time, val)
		v := int(math.Round(float64(val)))
		dist := s.last - v
		if !s.grab {
			slop := s.slop(m)
			if dist <= slop && -slop <= dist {
				break
			}
			s.grab = true
			// Swallow the slop so content doesn't jump.
			if dist > 0 {
				dist -= slop
			} else {
				dist += slop
			}
		}
		s.last = v
		return dist
	}
	return 0
}

// EndDrag detaches the drag in progress, if any, and returns it so
// it can be resumed by another Scroll.
func (s *Scroll) EndDrag() Drag {
	if !s.dragging {
		return Drag{}
	}
	d := Drag{estimator: s.estimator, pid: s.pid, valid: true}
	s.dragging = false
	s.grab = false
	return d
}

// ResumeDrag takes over the drag d. prev is the last event seen by
// the previous owner of the drag and e the event to process.
// ResumeDrag returns the scroll distance between prev and e.
func (s *Scroll) ResumeDrag(m unit.Metric, d Drag, prev, e pointer.Event) int {
	if !d.valid {
		return 0
	}
	s.Stop()
	s.estimator = d.estimator
	s.pid = d.pid
	s.dragging = true
	s.grab = true
	s.last = int(math.Round(float64(s.val(prev.Screen))))
	return s.Update(m, e)
}

// Valid reports whether d holds a drag.
func (d Drag) Valid() bool {
	return d.valid
}

// Fling starts a fling with velocity v, in scroll units per second.
// It reports whether the velocity was high enough to fling.
func (s *Scroll) Fling(m unit.Metric, now time.Duration, v float32) bool {
	return s.flinger.Start(s.spline(m), now, v)
}

// Tick returns the fling distance since the last call.
func (s *Scroll) Tick(now time.Duration) int {
	return s.flinger.Tick(now)
}

// Velocity returns the current scroll velocity: the fling velocity
// while flinging, the estimated drag velocity while dragging.
func (s *Scroll) Velocity(now time.Duration) float32 {
	switch {
	case s.flinger.Active():
		return s.flinger.Velocity(now)
	case s.dragging:
		return -s.estimator.Estimate().Velocity
	default:
		return 0
	}
}

// Remaining returns the distance the current fling has yet to travel.
func (s *Scroll) Remaining() float32 {
	return s.flinger.Remaining()
}

// Dragging reports whether a drag has moved past the touch slop.
func (s *Scroll) Dragging() bool {
	return s.grab
}

// Spline returns the fling model used by s.
func (s *Scroll) Spline(m unit.Metric) fling.Spline {
	return s.spline(m)
}

func (s *Scroll) spline(m unit.Metric) fling.Spline {
	return fling.NewSpline(m).WithFriction(s.Friction)
}

func (s *Scroll) slop(m unit.Metric) int {
	slop := s.Slop
	if slop == 0 {
		slop = TouchSlop
	}
	return m.Dp(slop)
}

func (s *Scroll) val(p f32.Point) float32 {
	if s.Axis == Horizontal {
		return p.X
	} else {
		return p.Y
	}
}

// State reports the scroll state.
func (s *Scroll) State() ScrollState {
	switch {
	case s.flinger.Active():
		return StateFlinging
	case s.dragging:
		return StateDragging
	default:
		return StateIdle
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	case TypeCancel:
		return "TypeCancel"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}

func (s ScrollState) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDragging:
		return "StateDragging"
	case StateFlinging:
		return "StateFlinging"
	default:
		panic("unreachable")
	}
}
