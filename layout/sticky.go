// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Sticky computes the placement of a header that sticks to the top
// of a scrolling container once it has scrolled up to Offset. The
// zero value sticks at the top edge.
type Sticky struct {
	// Offset is the distance from the top edge at which the header
	// sticks. Negative offsets are treated as zero.
	Offset int
	// ClipToPadding reports whether the container clips its content
	// to its padding. If not, the top padding is part of the area
	// the header scrolls in.
	ClipToPadding bool

	stuck bool
	left  int

	hidden bool
	spring harmonica.Spring
	// Offset of the show/hide slide from the stuck position, and
	// its velocity.
	slide, vel, target float64

	last Placement
}

// Header describes the un-stuck geometry of a sticky header relative
// to the top of the scrolled content.
type Header struct {
	Top, Left int
	Height    int
}

// Placement is the result of Sticky.Update.
type Placement struct {
	// Stuck reports whether the header is pinned.
	Stuck bool
	// TranslationY is the vertical displacement to apply to the
	// header from its un-stuck position.
	TranslationY int
	// Left is the horizontal position of the header, captured when
	// it became stuck.
	Left int
	// Hidden reports whether the header is hidden or hiding.
	Hidden bool
	// Relayout is set when the header entered or left the stuck
	// state: hosts should raise it above its siblings and redraw.
	Relayout bool
}

// Update computes the placement of h for the scroll offset and the
// container's top padding.
func (s *Sticky) Update(h Header, scroll, paddingTop int) Placement {
	pad := s.pad(paddingTop)
	off := max(s.Offset, 0)
	viewTop := h.Top - scroll + pad
	var p Placement
	if viewTop <= off {
		if !s.stuck {
			s.stuck = true
			s.left = h.Left
			s.stopSlide()
			p.Relayout = true
		}
	} else if s.stuck {
		s.stuck = false
		s.stopSlide()
		p.Relayout = true
	}
	p.Stuck = s.stuck
	if s.stuck {
		p.Left = s.left
		p.Hidden = s.hidden
		p.TranslationY = off - h.Top + scroll + pad + int(math.Round(s.slide))
	}
	s.last = p
	return p
}

// Clear unsticks the header, for example when it was removed from
// the container.
func (s *Sticky) Clear() Placement {
	p := Placement{Relayout: s.stuck}
	s.stuck = false
	s.stopSlide()
	s.last = p
	return p
}

// Placement returns the result of the last Update.
func (s *Sticky) Placement() Placement {
	return s.last
}

// Stuck reports whether the header is pinned.
func (s *Sticky) Stuck() bool {
	return s.stuck
}

// Show slides a stuck header back into view or out of it above
// its stuck position. It reports whether the visibility changed.
// Show has no effect on a header that is not stuck.
func (s *Sticky) Show(h Header, show bool, paddingTop int) bool {
	if !s.stuck || s.hidden != show {
		return false
	}
	s.hidden = !show
	if show {
		s.target = 0
	} else {
		s.target = -float64(s.pad(paddingTop) + max(s.Offset, 0) + h.Height)
	}
	if s.spring == (harmonica.Spring{}) {
		s.spring = harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0)
	}
	return true
}

// Animating reports whether the show/hide slide is in progress.
func (s *Sticky) Animating() bool {
	return s.slide != s.target
}

// Tick advances the show/hide slide by one frame. It reports
// whether the slide is still in progress.
func (s *Sticky) Tick() bool {
	if !s.Animating() {
		return false
	}
	s.slide, s.vel = s.spring.Update(s.slide, s.vel, s.target)
	if math.Abs(s.slide-s.target) < 0.5 && math.Abs(s.vel) < 1 {
		s.slide, s.vel = s.target, 0
	}
	return s.Animating()
}

func (s *Sticky) stopSlide() {
	s.hidden = false
	s.slide, s.vel, s.target = 0, 0, 0
}

func (s *Sticky) pad(paddingTop int) int {
	if s.ClipToPadding {
		return 0
	}
	return paddingTop
}
