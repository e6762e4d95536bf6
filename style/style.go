// SPDX-License-Identifier: Unlicense OR MIT

// Package style loads the attributes of a sticky scroll container
// from a configuration file, the environment and command line flags.
//
// Files are named sticky.yaml (or .toml, .json) and looked up in
// $XDG_CONFIG_HOME/stickyscroll and the working directory unless a
// path is given. Environment variables use the STICKY_ prefix, for
// example STICKY_TOUCH_SLOP=12.
package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stickyscroll/sticky/unit"
	"github.com/stickyscroll/sticky/widget"
)

// Attributes configure a widget.Container. Distances are in dp.
type Attributes struct {
	// StickyID is the ID of the header node to pin.
	StickyID string `mapstructure:"sticky_id"`
	// StickOffset is the distance from the top edge at which the
	// header sticks.
	StickOffset unit.Dp `mapstructure:"stick_offset"`
	// ShadowHeight is the height of the shadow drawn below a stuck
	// header. It does not affect placement.
	ShadowHeight unit.Dp `mapstructure:"shadow_height"`
	// ClipToPadding reports whether the content is clipped to the
	// padding of the container.
	ClipToPadding bool `mapstructure:"clip_to_padding"`
	// TouchSlop is the distance a pointer travels before a drag
	// starts.
	TouchSlop unit.Dp `mapstructure:"touch_slop"`
	// PaddingTop extends the scroll range above the content.
	PaddingTop unit.Dp `mapstructure:"padding_top"`
}

const envPrefix = "STICKY"

// Default returns the attributes used when nothing is configured.
func Default() Attributes {
	return Attributes{
		ShadowHeight:  4,
		ClipToPadding: true,
		TouchSlop:     8,
	}
}

// Load reads the attributes from the file at path, or the default
// locations if path is empty. Flags named after an attribute, with
// dashes for underscores, override the file and the environment
// when set. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Attributes, error) {
	return LoadOver(Default(), path, flags)
}

// LoadOver is like Load, but attributes set nowhere keep their value
// in base instead of the default.
func LoadOver(base Attributes, path string, flags *pflag.FlagSet) (Attributes, error) {
	v, err := open(base, path, flags)
	if err != nil {
		return Attributes{}, err
	}
	return decode(v)
}

// Watch is like LoadOver, but also calls fn with the attributes each
// time the configuration file changes. fn is called from a separate
// goroutine. Without a configuration file, fn is never called.
func Watch(base Attributes, path string, flags *pflag.FlagSet, fn func(Attributes, error)) (Attributes, error) {
	v, err := open(base, path, flags)
	if err != nil {
		return Attributes{}, err
	}
	a, err := decode(v)
	if err != nil {
		return Attributes{}, err
	}
	if v.ConfigFileUsed() == "" {
		return a, nil
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fn(decode(v))
	})
	v.WatchConfig()
	return a, nil
}

// Of returns the attributes c is configured with. The shadow height
// is not a property of c and is left at its default.
func Of(c *widget.Container) Attributes {
	a := Default()
	a.StickyID = c.StickyID
	a.StickOffset = c.Metric.PxToDp(c.Sticky.Offset)
	a.ClipToPadding = c.Sticky.ClipToPadding
	if c.Slop != 0 {
		a.TouchSlop = c.Slop
	}
	a.PaddingTop = c.Metric.PxToDp(c.PaddingTop)
	return a
}

// Apply configures c with a, converting distances with the metric
// of c.
func (a Attributes) Apply(c *widget.Container) {
	c.StickyID = a.StickyID
	c.Sticky.Offset = c.Metric.Dp(a.StickOffset)
	c.Sticky.ClipToPadding = a.ClipToPadding
	c.Slop = a.TouchSlop
	c.PaddingTop = c.Metric.Dp(a.PaddingTop)
	c.Layout()
}

func (a Attributes) validate() error {
	for _, f := range []struct {
		name string
		v    unit.Dp
	}{
		{"stick_offset", a.StickOffset},
		{"shadow_height", a.ShadowHeight},
		{"touch_slop", a.TouchSlop},
		{"padding_top", a.PaddingTop},
	} {
		if f.v < 0 {
			return fmt.Errorf("style: %s must not be negative, got %v", f.name, f.v)
		}
	}
	return nil
}

func open(base Attributes, path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v, base)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("style: read %s: %w", path, err)
		}
		return v, nil
	}
	v.SetConfigName("sticky")
	v.AddConfigPath(configDirectory())
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// No file is fine, the defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("style: %w", err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (Attributes, error) {
	var a Attributes
	if err := v.Unmarshal(&a); err != nil {
		return Attributes{}, fmt.Errorf("style: decode: %w", err)
	}
	if err := a.validate(); err != nil {
		return Attributes{}, err
	}
	return a, nil
}

func setDefaults(v *viper.Viper, d Attributes) {
	v.SetDefault("sticky_id", d.StickyID)
	v.SetDefault("stick_offset", d.StickOffset)
	v.SetDefault("shadow_height", d.ShadowHeight)
	v.SetDefault("clip_to_padding", d.ClipToPadding)
	v.SetDefault("touch_slop", d.TouchSlop)
	v.SetDefault("padding_top", d.PaddingTop)
}

// bindFlags binds the flags named after a configuration key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err != nil || !v.IsSet(key) {
			return
		}
		if e := v.BindPFlag(key, f); e != nil {
			err = fmt.Errorf("style: bind --%s: %w", f.Name, e)
		}
	})
	return err
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stickyscroll")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stickyscroll")
}
