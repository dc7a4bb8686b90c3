// Package preset loads icon designs from YAML files, the on-disk form used
// by the CLI. Colors are hex strings and are validated on load; a malformed
// value fails the whole preset rather than rendering with a substitute.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iconsmith/iconsmith"
)

// Preset is the YAML document describing a design plus its export sizes.
// Omitted fields keep the library defaults.
type Preset struct {
	Gradient    string `yaml:"gradient"`
	ColorA      string `yaml:"colorA"`
	ColorB      string `yaml:"colorB"`
	Angle       *int   `yaml:"angle"`
	Shape       string `yaml:"shape"`
	Padding     *int   `yaml:"padding"`
	StrokeWidth *int   `yaml:"strokeWidth"`
	StrokeColor string `yaml:"strokeColor"`
	Glow        *bool  `yaml:"glow"`
	Background  string `yaml:"background"`
	BGColor     string `yaml:"bgColor"`

	Sizes []int `yaml:"sizes"`
}

// Load reads a preset file and resolves it against the default parameters.
func Load(path string) (iconsmith.Params, []int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return iconsmith.Params{}, nil, fmt.Errorf("preset: %w", err)
	}
	return Parse(data)
}

// Parse resolves YAML preset bytes against the default parameters.
func Parse(data []byte) (iconsmith.Params, []int, error) {
	var doc Preset
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return iconsmith.Params{}, nil, fmt.Errorf("preset: %w", err)
	}

	params := iconsmith.DefaultParams()

	if doc.Gradient != "" {
		params.Gradient = iconsmith.GradientKind(doc.Gradient)
	}
	if doc.Shape != "" {
		params.Shape = iconsmith.ShapeKind(doc.Shape)
	}
	if doc.Background != "" {
		params.Background = iconsmith.BackgroundKind(doc.Background)
	}
	if doc.Angle != nil {
		params.AngleDeg = *doc.Angle
	}
	if doc.Padding != nil {
		params.Padding = *doc.Padding
	}
	if doc.StrokeWidth != nil {
		params.StrokeWidth = *doc.StrokeWidth
	}
	if doc.Glow != nil {
		params.Glow = *doc.Glow
	}

	if err := setColor(&params.ColorA, doc.ColorA); err != nil {
		return iconsmith.Params{}, nil, fmt.Errorf("preset: colorA: %w", err)
	}
	if err := setColor(&params.ColorB, doc.ColorB); err != nil {
		return iconsmith.Params{}, nil, fmt.Errorf("preset: colorB: %w", err)
	}
	if err := setColor(&params.StrokeColor, doc.StrokeColor); err != nil {
		return iconsmith.Params{}, nil, fmt.Errorf("preset: strokeColor: %w", err)
	}
	if err := setColor(&params.BGColor, doc.BGColor); err != nil {
		return iconsmith.Params{}, nil, fmt.Errorf("preset: bgColor: %w", err)
	}

	if err := params.Validate(); err != nil {
		return iconsmith.Params{}, nil, fmt.Errorf("preset: %w", err)
	}
	return params, doc.Sizes, nil
}

// setColor parses a hex color into dst, leaving dst untouched for the empty
// string.
func setColor(dst *iconsmith.RGBA, hex string) error {
	if hex == "" {
		return nil
	}
	c, err := iconsmith.ParseHex(hex)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}
