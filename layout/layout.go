// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the geometry of scrolling content.

List positions a potentially long sequence of items of varying
extent inside a viewport. Sticky computes where a header pinned to
the top of a scrolling container is placed for a scroll offset.

Neither type draws anything; they are driven by the containers in
package widget and may be driven by any other host.
*/
package layout

import "golang.org/x/exp/constraints"

// Position is a List scroll offset represented as an offset from the top edge
// of a child element.
type Position struct {
	// First is the index of the first visible child.
	First int
	// Offset is the distance in pixels from the top edge to the child at index
	// First.
	Offset int
}

// clamp v to the range [lo; hi]. If hi < lo, lo is returned.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
