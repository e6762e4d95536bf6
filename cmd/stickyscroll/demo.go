// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stickyscroll/sticky/f32"
	"github.com/stickyscroll/sticky/internal/scene"
	"github.com/stickyscroll/sticky/io/pointer"
	"github.com/stickyscroll/sticky/style"
	"github.com/stickyscroll/sticky/unit"
	"github.com/stickyscroll/sticky/widget"
)

// A terminal row is one pixel. The density scales the gesture
// thresholds down to rows.
const demoDensity = 0.25

const frameInterval = time.Second / 60

func buildDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interactive sticky scroll demo",
		Long: `Demo shows a container with a sticky header above a nested list.
Drag with the mouse to scroll: a drag that reaches the end of the
container continues in the list, and back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statePath, _ := cmd.Flags().GetString("state")
			logPath, _ := cmd.Flags().GetString("log-file")
			level, _ := cmd.Flags().GetString("log-level")

			var logOut io.Writer = io.Discard
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			logger, err := newLogger(logOut, level)
			if err != nil {
				return err
			}
			m := newDemoModel(logger)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			a, err := watchStyle(cmd, m.c, p.Send)
			if err != nil {
				return err
			}
			m.shadow = m.c.Metric.Dp(a.ShadowHeight)
			if statePath != "" {
				s, err := scene.ReadState(statePath)
				if err != nil {
					return err
				}
				m.c.Restore(s)
			}
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			if statePath != "" {
				return scene.WriteState(statePath, final.(*demoModel).c.Save())
			}
			return nil
		},
	}
	cmd.Flags().String("state", "", "file the scroll state is restored from and saved to")
	cmd.Flags().String("log-file", "", "file to write logs to")
	return cmd
}

type frameMsg time.Time

// styleMsg carries the attributes of a changed style file.
type styleMsg struct {
	a   style.Attributes
	err error
}

// watchStyle is like applyStyle, but a style file given with --style
// is also watched: each change is sent to send as a styleMsg.
func watchStyle(cmd *cobra.Command, c *widget.Container, send func(tea.Msg)) (style.Attributes, error) {
	path, _ := cmd.Flags().GetString("style")
	if path == "" {
		return applyStyle(cmd, c)
	}
	a, err := style.Watch(style.Of(c), path, cmd.Flags(), func(a style.Attributes, err error) {
		send(styleMsg{a: a, err: err})
	})
	if err != nil {
		return style.Attributes{}, err
	}
	a.Apply(c)
	return a, nil
}

type demoModel struct {
	c      *widget.Container
	list   *widget.List
	intro  *widget.Box
	keys   keyMap
	help   help.Model
	start  time.Time
	width  int
	height int
	down   bool
	// shadow is the number of shadow rows below a stuck header.
	shadow int
	err    error

	header, item, status, shade lipgloss.Style
}

func newDemoModel(logger *slog.Logger) *demoModel {
	m := &demoModel{
		keys:   defaultKeyMap(),
		help:   help.New(),
		start:  time.Now(),
		header: lipgloss.NewStyle().Reverse(true).Bold(true),
		item:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		shade:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	m.c = &widget.Container{
		StickyID: "header",
		Metric:   unit.Density(demoDensity),
		Logger:   logger,
	}
	m.shadow = m.c.Metric.Dp(style.Default().ShadowHeight)
	m.resize(80, 24)
	return m
}

// resize lays out the scene for a terminal of w by h cells. Two rows
// are kept for the status and help lines.
func (m *demoModel) resize(w, h int) {
	m.width, m.height = w, h
	vh := max(h-2, 1)
	m.intro = &widget.Box{ID: "intro", Rect: image.Rect(0, 0, w, 6)}
	header := &widget.Box{ID: "header", Rect: image.Rect(0, 6, w, 7), Clickable: true}
	body := &widget.Box{ID: "body", Rect: image.Rect(0, 7, w, 7+vh/2)}
	listTop := body.Rect.Max.Y
	if m.list == nil {
		m.list = widget.NewUniformList("list", image.Rect(2, listTop, w-2, listTop+vh-1), 200, 1)
	} else {
		m.list.SetFrame(image.Rect(2, listTop, w-2, listTop+vh-1))
	}
	m.c.Rect = image.Rect(0, 0, w, vh)
	m.c.Content = &widget.Box{
		ID:   "content",
		Rect: image.Rect(0, 0, w, m.list.Frame().Max.Y),
		Kids: []widget.Node{m.intro, header, body, m.list},
	}
	m.c.Layout()
}

func (m *demoModel) Init() tea.Cmd {
	return m.frame()
}

func (m *demoModel) frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *demoModel) now() time.Duration {
	return time.Since(m.start)
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case frameMsg:
		m.c.Tick(m.now())
		return m, m.frame()
	case styleMsg:
		m.err = msg.err
		if msg.err == nil {
			msg.a.Apply(m.c)
			m.shadow = m.c.Metric.Dp(msg.a.ShadowHeight)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Sticky):
			m.c.ShowSticky(m.c.Placement().Hidden)
		case key.Matches(msg, m.keys.Sync):
			m.c.SyncInnerScrollables()
		case key.Matches(msg, m.keys.Up):
			m.c.ScrollTo(m.c.ScrollOffset() - 1)
		case key.Matches(msg, m.keys.Down):
			m.c.ScrollTo(m.c.ScrollOffset() + 1)
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

// mouse converts left button drags to touch events.
func (m *demoModel) mouse(msg tea.MouseMsg) {
	var k pointer.Kind
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		k = pointer.Press
		m.down = true
	case msg.Action == tea.MouseActionMotion && m.down:
		k = pointer.Move
	case msg.Action == tea.MouseActionRelease && m.down:
		k = pointer.Release
		m.down = false
	default:
		return
	}
	m.c.Event(pointer.At(k, m.now(), f32.Pt(float32(msg.X), float32(msg.Y))))
}

func (m *demoModel) View() string {
	vh := m.c.Rect.Dy()
	rows := make([]string, vh)
	off := m.c.ScrollOffset()
	for y := range rows {
		cy := y + off
		switch {
		case cy < m.intro.Rect.Max.Y:
			if cy == 1 {
				rows[y] = "  Drag to scroll. The list takes over at the end."
			}
		case cy == m.intro.Rect.Max.Y:
			rows[y] = m.header.Render(pad(" Header", m.width))
		}
	}
	listTop := m.list.Frame().Min.Y - off
	m.list.Visible(func(i, top int) {
		if y := listTop + top; y >= 0 && y < vh {
			rows[y] = "  " + m.item.Render(fmt.Sprintf("item %d", i))
		}
	})
	if r, ok := m.c.HeaderBounds(); ok && m.c.Placement().Stuck {
		if y := int(r.Min.Y); y >= 0 && y < vh {
			rows[y] = m.header.Render(pad(" Header (stuck)", m.width))
		}
		for i := range m.shadow {
			if y := int(r.Max.Y) + i; y >= 0 && y < vh {
				rows[y] = m.shade.Render(strings.Repeat("░", m.width))
			}
		}
	}
	status := fmt.Sprintf(" owner %v  offset %d/%d  list %d",
		m.c.Owner(), off, m.c.ScrollMax(), m.list.ScrollOffset())
	if m.err != nil {
		status += "  " + m.err.Error()
	}
	rows = append(rows, m.status.Render(status), m.help.View(m.keys))
	return strings.Join(rows, "\n")
}

func pad(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
