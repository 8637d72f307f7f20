// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokens

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Preset is one of the named catalog colors, or [Custom].
type Preset int32

const (
	Gray Preset = iota
	EguiBlue
	Tomato
	Red
	Ruby
	Crimson
	Pink
	Plum
	Purple
	Violet
	Iris
	Indigo
	Blue
	Cyan
	Teal
	Jade
	Green
	Grass
	Brown
	Bronze
	Gold
	Orange

	// Custom is a user supplied sRGB color, carried in [Spec.RGB].
	Custom

	// PresetsN is the number of presets, including [Custom].
	PresetsN
)

var presetNames = [PresetsN]string{
	"Gray", "EguiBlue", "Tomato", "Red", "Ruby", "Crimson", "Pink", "Plum",
	"Purple", "Violet", "Iris", "Indigo", "Blue", "Cyan", "Teal", "Jade",
	"Green", "Grass", "Brown", "Bronze", "Gold", "Orange", "Custom",
}

var presetColors = [Custom]color.RGBA{
	Gray:     {117, 117, 117, 255},
	EguiBlue: {0, 109, 143, 255},
	Tomato:   {229, 77, 46, 255},
	Red:      {229, 72, 77, 255},
	Ruby:     {229, 70, 102, 255},
	Crimson:  {233, 61, 130, 255},
	Pink:     {214, 64, 159, 255},
	Plum:     {171, 74, 186, 255},
	Purple:   {142, 78, 198, 255},
	Violet:   {110, 86, 207, 255},
	Iris:     {91, 91, 214, 255},
	Indigo:   {62, 99, 214, 255},
	Blue:     {0, 144, 255, 255},
	Cyan:     {0, 162, 199, 255},
	Teal:     {18, 165, 148, 255},
	Jade:     {41, 163, 131, 255},
	Green:    {48, 164, 108, 255},
	Grass:    {70, 167, 88, 255},
	Brown:    {173, 127, 88, 255},
	Bronze:   {161, 128, 114, 255},
	Gold:     {151, 131, 101, 255},
	Orange:   {247, 107, 21, 255},
}

// Presets returns all presets in catalog order, ending with [Custom].
// This is the order in which a color selector lists them.
func Presets() []Preset {
	ps := make([]Preset, PresetsN)
	for i := range ps {
		ps[i] = Preset(i)
	}
	return ps
}

func (p Preset) String() string {
	if p < 0 || p >= PresetsN {
		return fmt.Sprintf("Preset(%d)", int32(p))
	}
	return presetNames[p]
}

// Color returns the catalog color of the preset. [Custom] and
// invalid presets have no catalog color and return the zero value.
func (p Preset) Color() color.RGBA {
	if p < 0 || p >= Custom {
		return color.RGBA{}
	}
	return presetColors[p]
}

// Spec returns the [Spec] for the preset.
func (p Preset) Spec() Spec {
	return Spec{Preset: p}
}

// Spec specifies the accent color of one theme slot: either a named
// preset or a custom sRGB color. Specs are comparable, and two slots
// with equal specs always share the same generated scale.
type Spec struct {

	// Preset is the named preset, or [Custom]
	Preset Preset

	// RGB is the custom color when Preset is [Custom], and zero otherwise
	RGB color.RGBA
}

// RGB returns a [Custom] spec for the given sRGB components.
func RGB(r, g, b uint8) Spec {
	return Spec{Preset: Custom, RGB: color.RGBA{r, g, b, 255}}
}

// FromColor returns a [Custom] spec for the given color, which is
// treated as opaque.
func FromColor(c color.Color) Spec {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return RGB(rgba.R, rgba.G, rgba.B)
}

// AsRGBA returns the sRGB accent color of the spec.
func (s Spec) AsRGBA() color.RGBA {
	if s.Preset == Custom {
		c := s.RGB
		c.A = 255
		return c
	}
	return s.Preset.Color()
}

// RGBA implements the color.Color interface.
func (s Spec) RGBA() (r, g, b, a uint32) {
	return s.AsRGBA().RGBA()
}

// String returns the preset name, or the hex code of a custom color.
func (s Spec) String() string {
	if s.Preset == Custom {
		return fmt.Sprintf("#%02x%02x%02x", s.RGB.R, s.RGB.G, s.RGB.B)
	}
	return s.Preset.String()
}

// ParseSpec parses a spec from a preset name (case-insensitive) or
// a hex color code such as "#e8d207" or "e8d207".
func ParseSpec(s string) (Spec, error) {
	str := strings.TrimSpace(s)
	for p := Gray; p < Custom; p++ {
		if strings.EqualFold(str, presetNames[p]) {
			return p.Spec(), nil
		}
	}
	if !strings.HasPrefix(str, "#") {
		str = "#" + str
	}
	c, err := colorful.Hex(str)
	if err != nil {
		return Spec{}, fmt.Errorf("tokens.ParseSpec: %q is neither a preset name nor a hex color%s: %w", s, didYouMean(strings.TrimSpace(s), presetNames[:Custom]), err)
	}
	return RGB(c.RGB255()), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s Spec) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Spec) UnmarshalText(text []byte) error {
	v, err := ParseSpec(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
