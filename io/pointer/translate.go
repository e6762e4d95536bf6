// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import "github.com/stickyscroll/sticky/f32"

// Translate returns e expressed in the local space of a receiver
// whose top-left corner is at origin in root coordinates. Events
// that were already translated are returned unchanged.
func Translate(e Event, origin f32.Point) Event {
	if Translated(e) {
		return e
	}
	e.Position = e.Screen.Sub(origin)
	return e
}

// ToScreen returns e with its Position moved from the local space
// of a receiver at origin back to root coordinates.
func ToScreen(e Event, origin f32.Point) Event {
	e.Position = e.Position.Add(origin)
	return e
}

// Translated reports whether e has left the root coordinate space.
func Translated(e Event) bool {
	return e.Position != e.Screen
}
