// SPDX-License-Identifier: Unlicense OR MIT

package layout

// List positions a subsection of a list of items inside a
// viewport. The zero value is an empty list.
type List struct {
	// Len is the number of items.
	Len int
	// Extent returns the size of item i along the scrolling axis.
	Extent func(i int) int
	// Viewport is the size of the visible area along the scrolling
	// axis.
	Viewport int

	// Position is updated by ScrollBy and ScrollTo. To save the list
	// scroll position, just save Position. To scroll the list
	// programatically, update Position or call ScrollTo.
	Position Position
}

// Content returns the total extent of the list items.
func (l *List) Content() int {
	total := 0
	for i := 0; i < l.Len; i++ {
		total += l.extent(i)
	}
	return total
}

// Max returns the largest scroll offset.
func (l *List) Max() int {
	return max(l.Content()-l.Viewport, 0)
}

// Offset returns the scroll offset of Position from the start of the
// list.
func (l *List) Offset() int {
	first := clamp(l.Position.First, 0, l.Len)
	off := 0
	for i := 0; i < first; i++ {
		off += l.extent(i)
	}
	return off + l.Position.Offset
}

// ScrollTo moves the list to the scroll offset off, clamped to the
// scrollable range. It returns the distance scrolled.
func (l *List) ScrollTo(off int) int {
	old := l.Offset()
	off = clamp(off, 0, l.Max())
	l.Position = l.position(off)
	return off - old
}

// ScrollBy scrolls the list by distance d, clamped to the
// scrollable range. It returns the distance scrolled.
func (l *List) ScrollBy(d int) int {
	return l.ScrollTo(l.Offset() + d)
}

// CanScroll reports whether the list can scroll backwards (dir < 0)
// or forwards (dir > 0). A zero dir reports whether the list can
// scroll at all.
func (l *List) CanScroll(dir int) bool {
	off := l.Offset()
	switch {
	case dir < 0:
		return off > 0
	case dir > 0:
		return off < l.Max()
	default:
		return l.Max() > 0
	}
}

// At returns the index of the item at distance y from the top edge
// of the viewport, and the distance from the viewport top to the
// item's top edge. It returns -1 if no item is at y.
func (l *List) At(y int) (index, top int) {
	top = -l.Position.Offset
	for i := clamp(l.Position.First, 0, l.Len); i < l.Len; i++ {
		e := l.extent(i)
		if y >= top && y < top+e {
			return i, top
		}
		top += e
	}
	return -1, 0
}

// Visible calls fn for every item overlapping the viewport with the
// item's index and the distance from the viewport top to its top
// edge.
func (l *List) Visible(fn func(i, top int)) {
	top := -l.Position.Offset
	for i := clamp(l.Position.First, 0, l.Len); i < l.Len && top < l.Viewport; i++ {
		e := l.extent(i)
		if top+e > 0 {
			fn(i, top)
		}
		top += e
	}
}

// position converts an absolute offset to a Position.
func (l *List) position(off int) Position {
	for i := 0; i < l.Len; i++ {
		e := l.extent(i)
		if off < e {
			return Position{First: i, Offset: off}
		}
		off -= e
	}
	return Position{First: l.Len, Offset: off}
}

func (l *List) extent(i int) int {
	if l.Extent == nil {
		return 0
	}
	return max(l.Extent(i), 0)
}
