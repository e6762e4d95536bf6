// SPDX-License-Identifier: Unlicense OR MIT

// Package scene decodes scroll scenes: a tree of nodes laid out in a
// sticky scroll container, and a trace of pointer events and frame
// ticks to feed it.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stickyscroll/sticky/f32"
	"github.com/stickyscroll/sticky/io/pointer"
	"github.com/stickyscroll/sticky/unit"
	"github.com/stickyscroll/sticky/widget"
)

// Scene is the decoded form of a scene file. Distances are in pixels.
type Scene struct {
	Viewport      Size    `yaml:"viewport"`
	Density       float32 `yaml:"density"`
	PaddingTop    int     `yaml:"padding_top"`
	PaddingBottom int     `yaml:"padding_bottom"`
	StickyID      string  `yaml:"sticky_id"`
	StickOffset   int     `yaml:"stick_offset"`
	ClipToPadding bool    `yaml:"clip_to_padding"`
	Nodes         []Node  `yaml:"nodes"`
	Events        []Step  `yaml:"events"`
}

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Node describes a box, list or scroll view.
type Node struct {
	Kind  string `yaml:"kind"`
	ID    string `yaml:"id"`
	Frame Rect   `yaml:"frame"`
	// Clickable boxes record clicks.
	Clickable bool `yaml:"clickable"`
	// Items and ItemHeight size a list.
	Items      int `yaml:"items"`
	ItemHeight int `yaml:"item_height"`
	// ContentHeight sizes the content of a scroll view.
	ContentHeight int    `yaml:"content_height"`
	Children      []Node `yaml:"children"`
}

// Rect is a rectangle written as [x0, y0, x1, y1].
type Rect image.Rectangle

func (r *Rect) UnmarshalYAML(n *yaml.Node) error {
	var v []int
	if err := n.Decode(&v); err != nil {
		return err
	}
	if len(v) != 4 {
		return fmt.Errorf("line %d: frame needs 4 coordinates, got %d", n.Line, len(v))
	}
	*r = Rect(image.Rect(v[0], v[1], v[2], v[3]))
	return nil
}

// Step is a pointer event, a frame tick or a programmatic scroll.
type Step struct {
	// Kind is press, move, release, cancel, tick or scroll_to.
	Kind string  `yaml:"kind"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	// TimeMs is the time of the step in milliseconds.
	TimeMs int `yaml:"t_ms"`
	// Offset is the target of a scroll_to step.
	Offset int `yaml:"offset"`
	// Repeat repeats a tick every EveryMs milliseconds.
	Repeat  int `yaml:"repeat"`
	EveryMs int `yaml:"every_ms"`
}

const (
	KindTick     = "tick"
	KindScrollTo = "scroll_to"
)

// Tree is a scene built into widgets.
type Tree struct {
	Container *widget.Container
	// Nodes maps node IDs to their widgets.
	Nodes map[string]widget.Node
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Decode decodes and validates a scene. Unknown fields are errors.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := &Scene{Density: 1}
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scene")
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) validate() error {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return fmt.Errorf("viewport %dx%d is empty", s.Viewport.Width, s.Viewport.Height)
	}
	if s.Density <= 0 {
		return fmt.Errorf("density %v is not positive", s.Density)
	}
	if len(s.Nodes) == 0 {
		return errors.New("no nodes")
	}
	ids := make(map[string]bool)
	var check func(n Node) error
	check = func(n Node) error {
		if n.ID != "" {
			if ids[n.ID] {
				return fmt.Errorf("duplicate node id %q", n.ID)
			}
			ids[n.ID] = true
		}
		switch n.Kind {
		case "box", "scroll":
		case "list":
			if len(n.Children) > 0 {
				return fmt.Errorf("list %q has children", n.ID)
			}
			if n.Items < 0 || n.ItemHeight < 0 {
				return fmt.Errorf("list %q has a negative size", n.ID)
			}
		default:
			return fmt.Errorf("node %q: unknown kind %q", n.ID, n.Kind)
		}
		for _, k := range n.Children {
			if err := check(k); err != nil {
				return err
			}
		}
		return nil
	}
	for _, n := range s.Nodes {
		if err := check(n); err != nil {
			return err
		}
	}
	for i, st := range s.Events {
		if err := st.validate(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if i > 0 && st.TimeMs < s.Events[i-1].TimeMs {
			return fmt.Errorf("event %d: time %dms goes backwards", i, st.TimeMs)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch strings.ToLower(st.Kind) {
	case KindTick:
		if st.Repeat > 0 && st.EveryMs <= 0 {
			return errors.New("repeated tick without every_ms")
		}
		return nil
	case KindScrollTo:
		return nil
	}
	_, err := pointer.ParseKind(st.Kind)
	return err
}

// Build lays out the scene in a new container.
func (s *Scene) Build() *Tree {
	t := &Tree{Nodes: make(map[string]widget.Node)}
	var kids []widget.Node
	for _, n := range s.Nodes {
		kids = append(kids, t.build(n))
	}
	content := kids[0]
	if len(kids) > 1 {
		var bounds image.Rectangle
		for _, k := range kids {
			bounds = bounds.Union(k.Frame())
		}
		content = &widget.Box{Rect: image.Rectangle{Max: bounds.Max}, Kids: kids}
	}
	c := &widget.Container{
		Rect:          image.Rect(0, 0, s.Viewport.Width, s.Viewport.Height),
		PaddingTop:    s.PaddingTop,
		PaddingBottom: s.PaddingBottom,
		Content:       content,
		StickyID:      s.StickyID,
		Metric:        unit.Density(s.Density),
	}
	c.Sticky.Offset = s.StickOffset
	c.Sticky.ClipToPadding = s.ClipToPadding
	c.Layout()
	t.Container = c
	return t
}

func (t *Tree) build(n Node) widget.Node {
	r := image.Rectangle(n.Frame)
	var w widget.Node
	switch n.Kind {
	case "list":
		w = widget.NewUniformList(n.ID, r, n.Items, n.ItemHeight)
	case "scroll":
		var kids []widget.Node
		for _, k := range n.Children {
			kids = append(kids, t.build(k))
		}
		w = widget.NewScrollView(n.ID, r, n.ContentHeight, kids...)
	default:
		b := &widget.Box{ID: n.ID, Rect: r, Clickable: n.Clickable}
		for _, k := range n.Children {
			b.Kids = append(b.Kids, t.build(k))
		}
		w = b
	}
	if n.ID != "" {
		t.Nodes[n.ID] = w
	}
	return w
}

// Steps returns the events of the scene with repeated ticks
// expanded.
func (s *Scene) Steps() []Step {
	var steps []Step
	for _, st := range s.Events {
		st.Kind = strings.ToLower(st.Kind)
		if st.Kind != KindTick || st.Repeat <= 0 {
			steps = append(steps, st)
			continue
		}
		for i := 0; i <= st.Repeat; i++ {
			tick := st
			tick.Repeat, tick.EveryMs = 0, 0
			tick.TimeMs = st.TimeMs + i*st.EveryMs
			steps = append(steps, tick)
		}
	}
	return steps
}

// Time returns the time of st.
func (st Step) Time() time.Duration {
	return time.Duration(st.TimeMs) * time.Millisecond
}

// Apply performs st on c.
func (st Step) Apply(c *widget.Container) error {
	switch strings.ToLower(st.Kind) {
	case KindTick:
		c.Tick(st.Time())
		return nil
	case KindScrollTo:
		c.ScrollTo(st.Offset)
		return nil
	}
	k, err := pointer.ParseKind(st.Kind)
	if err != nil {
		return err
	}
	c.Event(pointer.At(k, st.Time(), f32.Pt(st.X, st.Y)))
	return nil
}

func (st Step) String() string {
	switch strings.ToLower(st.Kind) {
	case KindTick:
		return fmt.Sprintf("tick %dms", st.TimeMs)
	case KindScrollTo:
		return fmt.Sprintf("scroll_to %d", st.Offset)
	default:
		return fmt.Sprintf("%s (%g,%g) %dms", strings.ToLower(st.Kind), st.X, st.Y, st.TimeMs)
	}
}
