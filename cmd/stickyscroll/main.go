// SPDX-License-Identifier: Unlicense OR MIT

// Command stickyscroll replays scroll traces against a sticky scroll
// container and runs an interactive terminal demo of one.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stickyscroll/sticky/style"
	"github.com/stickyscroll/sticky/widget"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stickyscroll:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stickyscroll",
		Short: "Sticky header scrolling with nested gesture handoff",
		Long: `stickyscroll drives a scroll container with a sticky header and
nested scrollable regions. Drags and flings that reach the end of the
container continue in the region under the pointer, and come back when
that region reaches its start.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "log level: error, warn, info or debug")
	flags.String("style", "", "style file (yaml, toml or json)")
	addStyleFlags(flags)

	rootCmd.AddCommand(buildReplayCmd())
	rootCmd.AddCommand(buildDemoCmd())
	return rootCmd
}

// styleFlags are the flags named after a style attribute.
var styleFlags = []string{"sticky-id", "stick-offset", "shadow-height", "touch-slop", "padding-top", "clip-to-padding"}

// addStyleFlags adds a flag for each style attribute. Set flags
// override the style file.
func addStyleFlags(flags *pflag.FlagSet) {
	d := style.Default()
	flags.String("sticky-id", d.StickyID, "ID of the node to pin")
	flags.Float32("stick-offset", float32(d.StickOffset), "distance from the top edge at which the header sticks, in dp")
	flags.Float32("shadow-height", float32(d.ShadowHeight), "height of the shadow below a stuck header, in dp")
	flags.Float32("touch-slop", float32(d.TouchSlop), "drag threshold in dp")
	flags.Float32("padding-top", float32(d.PaddingTop), "top padding in dp")
	flags.Bool("clip-to-padding", d.ClipToPadding, "clip the content to the padding")
}

// applyStyle configures c from the style file and flags, if any was
// given. Attributes that neither sets keep their value in c. It
// returns the attributes c ends up with.
func applyStyle(cmd *cobra.Command, c *widget.Container) (style.Attributes, error) {
	path, _ := cmd.Flags().GetString("style")
	changed := path != ""
	for _, name := range styleFlags {
		changed = changed || cmd.Flags().Changed(name)
	}
	if !changed {
		return style.Of(c), nil
	}
	a, err := style.LoadOver(style.Of(c), path, cmd.Flags())
	if err != nil {
		return style.Attributes{}, err
	}
	a.Apply(c)
	return a, nil
}
