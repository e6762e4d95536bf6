// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stickyscroll/sticky/unit"
	"github.com/stickyscroll/sticky/widget"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	a, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), a)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "sticky.yaml", `
sticky_id: header
stick_offset: 12
clip_to_padding: false
touch_slop: 6
padding_top: 20
`)
	a, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "header", a.StickyID)
	assert.Equal(t, unit.Dp(12), a.StickOffset)
	assert.False(t, a.ClipToPadding)
	assert.Equal(t, unit.Dp(6), a.TouchSlop)
	assert.Equal(t, unit.Dp(20), a.PaddingTop)
	// Unset keys keep their defaults.
	assert.Equal(t, Default().ShadowHeight, a.ShadowHeight)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "sticky.toml", "sticky_id = \"top\"\ntouch_slop = 4\n")
	a, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "top", a.StickyID)
	assert.Equal(t, unit.Dp(4), a.TouchSlop)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadNegative(t *testing.T) {
	path := writeFile(t, "sticky.yaml", "touch_slop: -1\n")
	_, err := Load(path, nil)
	assert.ErrorContains(t, err, "touch_slop")
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, "sticky.yaml", "touch_slop: 6\n")
	t.Setenv("STICKY_TOUCH_SLOP", "12")
	t.Setenv("STICKY_STICKY_ID", "env")
	a, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, unit.Dp(12), a.TouchSlop)
	assert.Equal(t, "env", a.StickyID)
}

func TestLoadFlags(t *testing.T) {
	path := writeFile(t, "sticky.yaml", "touch_slop: 6\nsticky_id: file\n")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float32("touch-slop", 8, "")
	fs.String("sticky-id", "", "")
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Parse([]string{"--touch-slop=3"}))
	a, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, unit.Dp(3), a.TouchSlop)
	// Flags that were not set don't override the file.
	assert.Equal(t, "file", a.StickyID)
}

func TestApply(t *testing.T) {
	c := &widget.Container{
		Rect:    image.Rect(0, 0, 100, 100),
		Content: &widget.Box{Rect: image.Rect(0, 0, 100, 300)},
		Metric:  unit.Density(2),
	}
	a := Attributes{StickyID: "h", StickOffset: 5, TouchSlop: 3, PaddingTop: 10, ClipToPadding: true}
	a.Apply(c)
	assert.Equal(t, "h", c.StickyID)
	assert.Equal(t, 10, c.Sticky.Offset)
	assert.Equal(t, 20, c.PaddingTop)
	assert.Equal(t, unit.Dp(3), c.Slop)
	assert.True(t, c.Sticky.ClipToPadding)
}

func TestLoadOver(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	c := &widget.Container{
		Rect:     image.Rect(0, 0, 100, 100),
		Content:  &widget.Box{Rect: image.Rect(0, 0, 100, 300)},
		Metric:   unit.Density(2),
		StickyID: "header",
		Slop:     5,
	}
	c.Sticky.Offset = 16
	base := Of(c)
	assert.Equal(t, unit.Dp(8), base.StickOffset)
	assert.Equal(t, Default().ShadowHeight, base.ShadowHeight)

	// Only the flag given on the command line changes.
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float32("touch-slop", 8, "")
	fs.String("sticky-id", "", "")
	fs.Float32("stick-offset", 0, "")
	require.NoError(t, fs.Parse([]string{"--touch-slop=8"}))
	a, err := LoadOver(base, "", fs)
	require.NoError(t, err)
	assert.Equal(t, unit.Dp(8), a.TouchSlop)
	a.Apply(c)
	assert.Equal(t, "header", c.StickyID)
	assert.Equal(t, 16, c.Sticky.Offset)
	assert.Equal(t, unit.Dp(8), c.Slop)
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "sticky.yaml", "touch_slop: 6\n")
	changed := make(chan Attributes, 8)
	a, err := Watch(Default(), path, nil, func(a Attributes, err error) {
		if err == nil {
			changed <- a
		}
	})
	require.NoError(t, err)
	assert.Equal(t, unit.Dp(6), a.TouchSlop)

	require.NoError(t, os.WriteFile(path, []byte("touch_slop: 10\n"), 0o644))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case a := <-changed:
			if a.TouchSlop == 10 {
				return
			}
		case <-timeout:
			t.Fatal("no reload after the file changed")
		}
	}
}
