// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "image"

// List is a Scrollable region of items with individual heights, the
// equivalent of an adapter backed list. Items are not nodes: they
// cannot be hit or found by ID.
type List struct {
	ID string

	region
	rect image.Rectangle
}

// NewList returns a list of n items with the heights returned by
// extent, laid out in rect.
func NewList(id string, rect image.Rectangle, n int, extent func(i int) int) *List {
	l := &List{ID: id, rect: rect}
	l.init(l, rect.Dy())
	l.items.Len = n
	l.items.Extent = extent
	return l
}

// NewUniformList returns a list of n items of equal height.
func NewUniformList(id string, rect image.Rectangle, n, height int) *List {
	return NewList(id, rect, n, func(int) int { return height })
}

func (l *List) Frame() image.Rectangle { return l.rect }

// SetFrame moves and resizes the list.
func (l *List) SetFrame(r image.Rectangle) {
	l.rect = r
	l.items.Viewport = r.Dy()
	l.items.ScrollBy(0)
}

func (l *List) Children() []Node { return nil }

func (l *List) NodeID() string { return l.ID }

// Len returns the number of items.
func (l *List) Len() int {
	return l.items.Len
}

// Visible calls fn for every visible item with its index and the
// distance from the top of the list to the item.
func (l *List) Visible(fn func(i, top int)) {
	l.items.Visible(fn)
}

// ItemAt returns the index of the item at y in list coordinates, or
// -1.
func (l *List) ItemAt(y int) int {
	i, _ := l.items.At(y)
	return i
}
