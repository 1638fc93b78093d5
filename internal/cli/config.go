package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/asciitype/pkg/textart"
)

// Config holds user defaults loaded from the config file. Every field is
// optional; flag values always win, config values fill the gaps, and the
// pipeline's own defaults cover the rest.
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig mirrors the render flags a user may want to default.
type RenderConfig struct {
	Font       string `toml:"font"`
	Size       int    `toml:"size"`
	Style      string `toml:"style"`
	Fill       string `toml:"fill"`
	Reference  string `toml:"reference"`
	FixedCells bool   `toml:"fixed_cells"`
}

// loadConfig reads the config file at path. A missing file is not an error;
// it yields the zero config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// apply copies config values onto opts for every field the user did not set
// on the command line. changed reports whether the named flag was provided.
func (rc RenderConfig) apply(opts *textart.Options, changed func(name string) bool) {
	if rc.Font != "" && !changed("font") {
		opts.FontFamily = rc.Font
	}
	if rc.Size != 0 && !changed("size") {
		opts.FontSize = rc.Size
	}
	if rc.Style != "" && !changed("style") {
		opts.FontStyle = rc.Style
	}
	if rc.Fill != "" && !changed("fill") {
		opts.Fill = rc.Fill
	}
	if rc.Reference != "" && !changed("reference") {
		opts.ReferenceChar = rc.Reference
	}
	if rc.FixedCells && !changed("fixed-cells") {
		opts.FixedCells = true
	}
}
