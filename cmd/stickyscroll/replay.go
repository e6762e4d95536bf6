// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stickyscroll/sticky/internal/scene"
	"github.com/stickyscroll/sticky/layout"
	"github.com/stickyscroll/sticky/widget"
)

func buildReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay TRACE",
		Short: "Replay a scene trace and print the container state after each step",
		Long: `Replay builds the scene described by TRACE, a YAML file, and feeds
its events and ticks to the container. One line is printed per step with
the gesture owner, the scroll offset and the sticky header placement.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			logger, err := newLogger(cmd.ErrOrStderr(), level)
			if err != nil {
				return err
			}
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			tree := s.Build()
			tree.Container.Logger = logger
			if _, err := applyStyle(cmd, tree.Container); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return replay(out, s, tree, isTerminal(out))
		},
	}
}

// replayStyles colour the replay output.
type replayStyles struct {
	step, owner, offset, sticky lipgloss.Style
}

func newReplayStyles(colour bool) replayStyles {
	if !colour {
		plain := lipgloss.NewStyle()
		return replayStyles{plain, plain, plain, plain}
	}
	return replayStyles{
		step:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		owner:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		offset: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		sticky: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func replay(w io.Writer, s *scene.Scene, tree *scene.Tree, colour bool) error {
	st := newReplayStyles(colour)
	c := tree.Container
	for i, step := range s.Steps() {
		if err := step.Apply(c); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		_, err := fmt.Fprintf(w, "%s %-24s owner=%s region=%-8s offset=%s sticky=%s\n",
			st.step.Render(fmt.Sprintf("%3d", i)),
			step,
			st.owner.Render(fmt.Sprintf("%-25v", c.Owner())),
			ownerRegion(c),
			st.offset.Render(fmt.Sprintf("%-4d", c.ScrollOffset())),
			st.sticky.Render(placementString(c.Placement())),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func placementString(p layout.Placement) string {
	switch {
	case !p.Stuck:
		return "-"
	case p.Hidden:
		return fmt.Sprintf("hidden(ty=%d)", p.TranslationY)
	default:
		return fmt.Sprintf("stuck(ty=%d)", p.TranslationY)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ownerRegion names the region owning the gesture.
func ownerRegion(c *widget.Container) string {
	r := c.OwnerRegion()
	if n, ok := r.(interface{ NodeID() string }); ok && n.NodeID() != "" {
		return n.NodeID()
	}
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%T", r)
}
