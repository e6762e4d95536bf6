// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/stickyscroll/sticky/f32"
	"github.com/stickyscroll/sticky/gesture"
	"github.com/stickyscroll/sticky/io/pointer"
)

// Box is a rectangular node, optionally clickable.
type Box struct {
	ID   string
	Rect image.Rectangle
	Kids []Node
	// Clickable boxes consume presses and record clicks.
	Clickable bool

	click  gesture.Click
	clicks int
}

func (b *Box) Frame() image.Rectangle { return b.Rect }

func (b *Box) Children() []Node { return b.Kids }

func (b *Box) NodeID() string { return b.ID }

// Event implements Handler.
func (b *Box) Event(e pointer.Event) bool {
	if !b.Clickable {
		return false
	}
	hit := e.Position.In(f32.FRect(image.Rectangle{Max: b.Rect.Size()}))
	if ev, ok := b.click.Update(e, hit); ok && ev.Type == gesture.TypeClick {
		b.clicks++
	}
	return true
}

// Pressed reports whether a pointer is pressing the box.
func (b *Box) Pressed() bool {
	return b.click.State() == gesture.StatePressed
}

// Clicked reports whether there are pending clicks. If so, Clicked
// removes the earliest click.
func (b *Box) Clicked() bool {
	if b.clicks == 0 {
		return false
	}
	b.clicks--
	return true
}
