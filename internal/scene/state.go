// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stickyscroll/sticky/widget"
)

// ReadState reads a saved container state. A missing file is the
// zero state.
func ReadState(path string) (widget.SavedState, error) {
	var s widget.SavedState
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("scene: read state: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("scene: decode state %s: %w", path, err)
	}
	return s, nil
}

// WriteState writes s to path.
func WriteState(path string, s widget.SavedState) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("scene: encode state: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("scene: write state: %w", err)
	}
	return nil
}
