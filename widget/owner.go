// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/stickyscroll/sticky/gesture"
	"github.com/stickyscroll/sticky/io/pointer"
)

// Owner identifies the region that owns the gesture in progress.
type Owner uint8

const (
	// Undefined means no handoff is in progress: events follow
	// the regular dispatch and the container scrolls itself.
	Undefined Owner = iota
	// PendingStickyHeaderTouch means the gesture started on the
	// stuck header, which receives it unchanged.
	PendingStickyHeaderTouch
	// RedirectingToDescendant means the container's drag was handed
	// to a descendant after the container reached its end.
	RedirectingToDescendant
	// RedirectingFromDescendant means a descendant's drag was handed
	// back to the container after the descendant reached its start.
	RedirectingFromDescendant
	// TranslatingToDescendant means the container at its end routes
	// the gesture to the descendant it was classified for.
	TranslatingToDescendant
	// FlingingDescendant means the container's fling continues in
	// a descendant.
	FlingingDescendant
	// FlingingSelf means a descendant's fling continues in the
	// container.
	FlingingSelf
)

func (o Owner) String() string {
	switch o {
	case Undefined:
		return "Undefined"
	case PendingStickyHeaderTouch:
		return "PendingStickyHeaderTouch"
	case RedirectingToDescendant:
		return "RedirectingToDescendant"
	case RedirectingFromDescendant:
		return "RedirectingFromDescendant"
	case TranslatingToDescendant:
		return "TranslatingToDescendant"
	case FlingingDescendant:
		return "FlingingDescendant"
	case FlingingSelf:
		return "FlingingSelf"
	default:
		panic("invalid Owner")
	}
}

// ownerState is the state of a Container's gesture ownership. Each
// Owner has its own implementation carrying only the data the state
// needs.
type ownerState interface {
	owner() Owner
	// target returns the descendant the container listens to, or
	// nil.
	target() Scrollable
}

type undefinedState struct {
	// watch is the descendant observed for the regular dispatch.
	watch Scrollable
}

type stickyTouchState struct {
	header Handler
}

type redirectToState struct {
	to   Scrollable
	drag gesture.Drag
	// prev is the last event the container processed before
	// handing the drag over.
	prev    pointer.Event
	resumed bool
}

type redirectFromState struct {
	from    Scrollable
	drag    gesture.Drag
	prev    pointer.Event
	resumed bool
}

type translateState struct {
	to Scrollable
	// replayed is set once the buffered events are delivered.
	replayed bool
}

type flingDescendantState struct {
	to Scrollable
}

type flingSelfState struct {
	velocity float32
}

func (*undefinedState) owner() Owner { return Undefined }

func (*stickyTouchState) owner() Owner { return PendingStickyHeaderTouch }

func (*redirectToState) owner() Owner { return RedirectingToDescendant }

func (*redirectFromState) owner() Owner { return RedirectingFromDescendant }

func (*translateState) owner() Owner { return TranslatingToDescendant }

func (*flingDescendantState) owner() Owner { return FlingingDescendant }

func (*flingSelfState) owner() Owner { return FlingingSelf }

func (s *undefinedState) target() Scrollable { return s.watch }

func (*stickyTouchState) target() Scrollable { return nil }

func (s *redirectToState) target() Scrollable { return s.to }

func (s *redirectFromState) target() Scrollable { return s.from }

func (s *translateState) target() Scrollable { return s.to }

func (s *flingDescendantState) target() Scrollable { return s.to }

func (*flingSelfState) target() Scrollable { return nil }
