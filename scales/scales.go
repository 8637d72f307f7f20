// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales generates a 12 step color scale from a single accent
// color, for light and dark appearance modes. The steps map onto the
// functional roles of a UI: backgrounds (0-4), borders (5-7), solid
// backgrounds (8-9) and text (10-11).
//
// All tonal adjustments are made in the Okhsl color space, and the
// lightness contrast estimates of package apca decide when an accent
// is too light or too dark to carry white text.
package scales

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/colorix/colors/cam/cie"
	"cogentcore.org/colorix/colors/cam/okhsl"
)

// Steps is the number of colors in a [Scale].
const Steps = 12

// Mode is the appearance mode a scale is generated for.
type Mode int32

const (
	// Light generates scales for light backgrounds.
	Light Mode = iota

	// Dark generates scales for dark backgrounds.
	Dark
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// IsDark returns whether the mode is [Dark].
func (m Mode) IsDark() bool {
	return m == Dark
}

// ParseMode returns the mode with the given name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("scales.ParseMode: unknown mode %q (want light or dark)", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Scale is a generated set of 12 opaque sRGB colors.
type Scale [Steps]color.RGBA

// Tones is a generated scale in Okhsl, before conversion to sRGB.
type Tones [Steps]okhsl.Okhsl

// Scale converts the tones to sRGB.
func (t *Tones) Scale() Scale {
	var s Scale
	for i, h := range t {
		s[i] = h.AsRGBA()
	}
	return s
}

// Generate returns the scale for the given accent color in the given mode.
// The accent is treated as opaque.
func Generate(accent color.Color, mode Mode) Scale {
	t := GenerateTones(accent, mode)
	return t.Scale()
}

// GenerateTones returns the Okhsl tones of the scale for the given accent
// color in the given mode.
func GenerateTones(accent color.Color, mode Mode) Tones {
	c := color.RGBAModel.Convert(accent).(color.RGBA)
	c.A = 255
	if mode == Dark {
		return darkTones(c)
	}
	return lightTones(c)
}

// linear is an sRGB color with linear components.
type linear struct {
	r, g, b float32
}

func linearFromRGBA(c color.RGBA) linear {
	r, g, b := cie.SRGBUint8ToLinear(c.R, c.G, c.B)
	return linear{r, g, b}
}

// lighten moves every component toward 1 by the given factor
// of its remaining distance.
func (l linear) lighten(factor float32) linear {
	return linear{
		r: l.r + (1-l.r)*factor,
		g: l.g + (1-l.g)*factor,
		b: l.b + (1-l.b)*factor,
	}
}

// darken scales every component toward 0 by the given factor.
func (l linear) darken(factor float32) linear {
	return linear{
		r: l.r - l.r*factor,
		g: l.g - l.g*factor,
		b: l.b - l.b*factor,
	}
}

func (l linear) okhsl() okhsl.Okhsl {
	return okhsl.FromLinear(l.r, l.g, l.b)
}

// inBand returns whether hue lies in the closed interval [lo, hi].
func inBand(hue, lo, hi float32) bool {
	return hue >= lo && hue <= hi
}
