// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// setColorProfile sets the lipgloss color profile for the given
// color mode: never, auto or always.
func setColorProfile(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexes(cs []color.RGBA) []string {
	hs := make([]string, len(cs))
	for i, c := range cs {
		hs[i] = hex(c)
	}
	return hs
}

// swatch renders a block of the given color.
func swatch(c color.RGBA) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex(c))).Render("      ")
}

// sample renders sample text in the given ink on the given background.
func sample(ink, bg color.RGBA) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(ink))).
		Background(lipgloss.Color(hex(bg))).
		Padding(0, 1).
		Render("Aa")
}

// encode writes v to w in the given structured format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// ScaleOutput is the exported form of a scale.
type ScaleOutput struct {
	Accent string   `json:"accent" yaml:"accent" toml:"accent"`
	Mode   string   `json:"mode" yaml:"mode" toml:"mode"`
	Steps  []string `json:"steps" yaml:"steps" toml:"steps"`
}

// RoleOutput is the exported form of one role of a theme.
type RoleOutput struct {
	Role  string `json:"role" yaml:"role" toml:"role"`
	Spec  string `json:"spec" yaml:"spec" toml:"spec"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

// ThemeOutput is the exported form of the tokens of a theme.
type ThemeOutput struct {
	Name       string       `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Mode       string       `json:"mode" yaml:"mode" toml:"mode"`
	Ink        string       `json:"ink" yaml:"ink" toml:"ink"`
	Inverse    bool         `json:"inverse" yaml:"inverse" toml:"inverse"`
	Background []string     `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	Roles      []RoleOutput `json:"roles" yaml:"roles" toml:"roles"`
}

// ContrastOutput is the exported form of a contrast estimate.
type ContrastOutput struct {
	Text       string  `json:"text" yaml:"text" toml:"text"`
	Background string  `json:"background" yaml:"background" toml:"background"`
	Lc         float32 `json:"lc" yaml:"lc" toml:"lc"`
}

// CustomOutput is the exported form of a clamped custom color.
type CustomOutput struct {
	H     float32  `json:"h" yaml:"h" toml:"h"`
	S     float32  `json:"s" yaml:"s" toml:"s"`
	V     float32  `json:"v" yaml:"v" toml:"v"`
	Color string   `json:"color" yaml:"color" toml:"color"`
	Steps []string `json:"steps" yaml:"steps" toml:"steps"`
}

// PresetOutput is the exported form of a catalog color.
type PresetOutput struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

// ListOutput is the exported form of the preset and theme listings.
type ListOutput struct {
	Presets []PresetOutput `json:"presets,omitempty" yaml:"presets,omitempty" toml:"presets,omitempty"`
	Themes  []string       `json:"themes,omitempty" yaml:"themes,omitempty" toml:"themes,omitempty"`
}
