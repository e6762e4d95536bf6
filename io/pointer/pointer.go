// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events and the coordinate
translation between nested scrollable regions.

# Coordinates

Every Event carries two positions. Screen is the position in the
coordinate space of the root container and never changes while the
event travels through the hierarchy. Position is the position in the
local coordinate space of the receiver. Events produced by a platform
start out with Position equal to Screen; Translate moves them into a
descendant's space exactly once.

# Buffering

A Buffer holds the samples of a gesture whose receiver is not yet
known, for example while a drag has not exceeded the touch slop.
Once a receiver is chosen the samples are replayed in order and the
buffer is emptied.
*/
package pointer

import (
	"fmt"
	"strings"
	"time"

	"github.com/stickyscroll/sticky/f32"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel.
	PointerID ID
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the coordinates of the event in the local coordinate
	// system of the receiver.
	Position f32.Point
	// Screen is the coordinates of the event in the coordinate system
	// of the root container.
	Screen f32.Point
}

type ID uint16

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// At returns an untranslated event of kind k at the root
// coordinates p.
func At(k Kind, t time.Duration, p f32.Point) Event {
	return Event{Kind: k, Source: Touch, Time: t, Position: p, Screen: p}
}

// Ended reports whether e terminates its gesture.
func (e Event) Ended() bool {
	return e.Kind == Release || e.Kind == Cancel
}

func (e Event) String() string {
	return fmt.Sprintf("%v@%v(%v)", e.Kind, e.Position, e.Screen)
}

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	default:
		panic("unknown Type")
	}
}

// ParseKind is the inverse of Kind.String for a single kind.
func ParseKind(s string) (Kind, error) {
	for k := Cancel; k <= Move; k <<= 1 {
		if strings.EqualFold(k.string(), s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("pointer: unknown event kind %q", s)
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}
