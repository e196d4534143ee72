package gowire3d

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Config holds the settings shared by the command and the viewers. Zero
// values are filled by DefaultConfig before a file or flags are applied.
type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Color      string `toml:"color"`
	Background string `toml:"background"`
	Mesh       string `toml:"mesh"`
	Output     string `toml:"output"`
	Frames     int    `toml:"frames"`
	Workers    int    `toml:"workers"`
	Caption    bool   `toml:"caption"`
}

func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     800,
		Color:      "blue",
		Background: "white",
		Output:     "wireframe.png",
		Frames:     1,
		Workers:    4,
	}
}

// LoadConfig reads a TOML file over the defaults. Unknown keys are an error.
func LoadConfig(fileName string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(fileName)
	if err != nil {
		return cfg, fmt.Errorf("could not open config %s: %w", fileName, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", fileName, strict.String())
		}
		return cfg, fmt.Errorf("config %s: %w", fileName, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Frames < 1 {
		return fmt.Errorf("frames %d must be at least 1", c.Frames)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1", c.Workers)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

func (c Config) LineColor() color.RGBA {
	col, _ := ParseColor(c.Color)
	return col
}

func (c Config) BackgroundColor() color.RGBA {
	col, _ := ParseColor(c.Background)
	return col
}

// ParseColor accepts "#rrggbb", "#rgb" or an SVG colour name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
}
