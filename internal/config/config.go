// ABOUTME: Optional YAML defaults file for the CLI: width, height, style, color
// ABOUTME: Missing file means zero defaults; flags always win over file values

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults holds chart settings a user can persist instead of repeating
// flags. Zero fields (nil for Color) mean "not set".
type Defaults struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Style  string `yaml:"style,omitempty"`
	Color  *bool  `yaml:"color,omitempty"`
}

// Path returns the defaults file location under the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "termplot", "config.yaml"), nil
}

// Load reads the defaults file. A missing file is not an error and yields
// zero Defaults; a malformed file is reported.
func Load() (Defaults, error) {
	path, err := Path()
	if err != nil {
		return Defaults{}, nil
	}
	return loadFile(path)
}

func loadFile(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults{}, nil
		}
		return Defaults{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}
