// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"

	"github.com/stickyscroll/sticky/f32"
)

func TestHitTestOrder(t *testing.T) {
	below := &Box{ID: "below", Rect: image.Rect(0, 0, 100, 100)}
	above := &Box{ID: "above", Rect: image.Rect(50, 50, 150, 150)}
	leaf := &Box{ID: "leaf", Rect: image.Rect(10, 10, 20, 20)}
	above.Kids = []Node{leaf}
	root := &Box{ID: "root", Rect: image.Rect(0, 0, 200, 200), Kids: []Node{below, above}}

	var got []string
	hitTest(root, f32.Point{}, f32.Pt(65, 65), true, func(n Node, o f32.Point) bool {
		got = append(got, n.(*Box).ID)
		if n == leaf && o != f32.Pt(60, 60) {
			t.Errorf("leaf origin: got %v", o)
		}
		return false
	})
	want := []string{"leaf", "above", "below", "root"}
	if len(got) != len(want) {
		t.Fatalf("hit order: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("hit order: got %v want %v", got, want)
		}
	}
}

func TestHitTestClipsToFrame(t *testing.T) {
	// The kid sticks out of its parent.
	kid := &Box{ID: "kid", Rect: image.Rect(0, 0, 300, 10)}
	root := &Box{Rect: image.Rect(0, 0, 100, 100), Kids: []Node{kid}}
	hit := hitTest(root, f32.Point{}, f32.Pt(200, 5), true, func(Node, f32.Point) bool { return true })
	if hit {
		t.Error("hit outside the root frame")
	}
}

func TestHitTestScrolled(t *testing.T) {
	leaf := &Box{ID: "leaf", Rect: image.Rect(0, 200, 100, 250)}
	sv := NewScrollView("sv", image.Rect(0, 100, 100, 300), 500, leaf)
	root := &Box{Rect: image.Rect(0, 0, 100, 400), Kids: []Node{sv}}
	sv.ScrollTo(150)
	// The leaf is drawn at 100 + 200 - 150.
	var found Node
	var origin f32.Point
	hitTest(root, f32.Point{}, f32.Pt(50, 160), true, func(n Node, o f32.Point) bool {
		found, origin = n, o
		return true
	})
	if found != Node(leaf) || origin != f32.Pt(0, 150) {
		t.Errorf("hit %v at %v", found, origin)
	}
	if o, ok := locate(root, f32.Point{}, leaf); !ok || o != f32.Pt(0, 150) {
		t.Errorf("locate: got %v, %v", o, ok)
	}
}

func TestHitTestNestedContainer(t *testing.T) {
	leaf := &Box{ID: "leaf", Rect: image.Rect(0, 0, 100, 100)}
	inner := &Container{Rect: image.Rect(0, 0, 100, 100), Content: &Box{Rect: image.Rect(0, 0, 100, 100), Kids: []Node{leaf}}}
	root := &Box{Rect: image.Rect(0, 0, 100, 100), Kids: []Node{inner}}
	var first Node
	hitTest(root, f32.Point{}, f32.Pt(50, 50), false, func(n Node, _ f32.Point) bool {
		first = n
		return true
	})
	if first != Node(inner) {
		t.Errorf("dispatch hit %v, want the nested container", first)
	}
	hitTest(root, f32.Point{}, f32.Pt(50, 50), true, func(n Node, _ f32.Point) bool {
		first = n
		return true
	})
	if first != Node(leaf) {
		t.Errorf("nested hit %v, want the leaf", first)
	}
}

func TestFind(t *testing.T) {
	target := &Box{ID: "target", Rect: image.Rect(5, 10, 50, 30)}
	sv := NewScrollView("sv", image.Rect(0, 100, 100, 200), 500, target)
	root := &Box{Rect: image.Rect(0, 0, 100, 400), Kids: []Node{&Box{ID: "other"}, sv}}
	sv.ScrollTo(50)
	n, r, ok := find(root, "target")
	if !ok || n != Node(target) {
		t.Fatalf("find: got %v, %v", n, ok)
	}
	if want := image.Rect(5, 110, 50, 130); r != want {
		t.Errorf("bounds: got %v want %v", r, want)
	}
	if _, _, ok := find(root, "missing"); ok {
		t.Error("found a missing node")
	}
}

func TestWalkSkip(t *testing.T) {
	deep := &Box{ID: "deep"}
	mid := &Box{ID: "mid", Kids: []Node{deep}}
	root := &Box{ID: "root", Kids: []Node{mid, &Box{ID: "leaf"}}}
	var got []string
	walk(root, func(n Node) bool {
		b := n.(*Box)
		got = append(got, b.ID)
		return b != mid
	})
	want := []string{"root", "mid", "leaf"}
	if len(got) != len(want) {
		t.Fatalf("walk: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("walk: got %v want %v", got, want)
		}
	}
}
