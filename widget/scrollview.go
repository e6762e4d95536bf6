// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "image"

// ScrollView is a Scrollable region of arbitrary child nodes, for
// example a nested scroll container inside a Container's content.
// Children are positioned in content coordinates: y = 0 is the top
// of the scrolled content.
type ScrollView struct {
	ID   string
	Kids []Node

	region
	rect    image.Rectangle
	content int
}

// NewScrollView returns a ScrollView laid out in rect whose content
// is contentHeight tall.
func NewScrollView(id string, rect image.Rectangle, contentHeight int, kids ...Node) *ScrollView {
	v := &ScrollView{ID: id, Kids: kids, rect: rect, content: contentHeight}
	v.init(v, rect.Dy())
	// The content is a single item of the list model.
	v.items.Len = 1
	v.items.Extent = func(int) int { return v.content }
	return v
}

func (v *ScrollView) Frame() image.Rectangle { return v.rect }

// SetFrame moves and resizes the view.
func (v *ScrollView) SetFrame(r image.Rectangle) {
	v.rect = r
	v.items.Viewport = r.Dy()
	v.items.ScrollBy(0)
}

// SetContentHeight changes the height of the scrolled content.
func (v *ScrollView) SetContentHeight(h int) {
	v.content = h
	v.items.ScrollBy(0)
}

// ContentHeight returns the height of the scrolled content.
func (v *ScrollView) ContentHeight() int {
	return v.content
}

func (v *ScrollView) Children() []Node { return v.Kids }

func (v *ScrollView) NodeID() string { return v.ID }
