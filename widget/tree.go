// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/stickyscroll/sticky/f32"
)

// contentOrigin returns the root coordinates of the content origin of
// n, whose top-left corner is at origin.
func contentOrigin(n Node, origin f32.Point) f32.Point {
	if s, ok := n.(Scrollable); ok {
		origin.Y -= float32(s.ScrollOffset())
	}
	return origin
}

// hitTest calls fn for n and its descendants under the root
// coordinates p, innermost first and topmost drawn first, until fn
// returns true. parent is the root coordinates of the content origin
// of n's parent. Descendants outside the frame of their parent are
// never hit. The content of nested containers is only visited if
// nested is set.
func hitTest(n Node, parent, p f32.Point, nested bool, fn func(n Node, origin f32.Point) bool) bool {
	if n == nil {
		return false
	}
	frame := f32.FRect(n.Frame()).Add(parent)
	if !p.In(frame) {
		return false
	}
	if _, ok := n.(*Container); nested || !ok {
		co := contentOrigin(n, frame.Min)
		kids := n.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			if hitTest(kids[i], co, p, nested, fn) {
				return true
			}
		}
	}
	return fn(n, frame.Min)
}

// locate returns the root coordinates of the top-left corner of
// target, a descendant of n or n itself.
func locate(n Node, parent f32.Point, target Node) (f32.Point, bool) {
	if n == nil {
		return f32.Point{}, false
	}
	o := parent.Add(f32.FPt(n.Frame().Min))
	if n == target {
		return o, true
	}
	co := contentOrigin(n, o)
	for _, k := range n.Children() {
		if p, ok := locate(k, co, target); ok {
			return p, true
		}
	}
	return f32.Point{}, false
}

// walk calls fn for n and its descendants in depth first order. The
// children of a node are skipped if fn returns false.
func walk(n Node, fn func(n Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, k := range n.Children() {
		walk(k, fn)
	}
}

// find returns the descendant of n with the given ID and its bounds
// relative to the content of n, ignoring the scroll offsets of
// nested regions.
func find(n Node, id string) (Node, image.Rectangle, bool) {
	for _, k := range n.Children() {
		if kid, ok := k.(nodeID); ok && kid.NodeID() == id {
			return k, k.Frame(), true
		}
		if found, r, ok := find(k, id); ok {
			return found, r.Add(k.Frame().Min), true
		}
	}
	return nil, image.Rectangle{}, false
}
