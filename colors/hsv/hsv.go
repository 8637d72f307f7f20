// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsv provides the hue, saturation, value editing space used by
// color pickers. Like most picker widgets it operates on linear RGB
// components rather than gamma-encoded sRGB.
package hsv

import (
	"fmt"
	"image/color"

	"cogentcore.org/colorix/colors/cam/cie"
	"cogentcore.org/colorix/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a color in the hue, saturation, value space over linear RGB.
// All components are normalized to 0-1.
type HSV struct {

	// H is the hue, 0-1 for a full turn
	H float32

	// S is the saturation, 0-1
	S float32

	// V is the value (brightness), 0-1
	V float32
}

// New returns a new HSV color from the given values.
func New(h, s, v float32) HSV {
	return HSV{H: h, S: s, V: v}
}

// FromLinear returns the HSV representation of the given linear RGB components.
func FromLinear(r, g, b float32) HSV {
	h, s, v := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.Hsv()
	return HSV{H: float32(h / 360), S: float32(s), V: float32(v)}
}

// FromColor returns the HSV representation of the given color.
func FromColor(c color.Color) HSV {
	return FromLinear(cie.ColorToLinear(c))
}

// Linear returns the linear RGB components of the color.
func (h HSV) Linear() (r, g, b float32) {
	hue := math32.NormalizeDegrees(h.H * 360)
	c := colorful.Hsv(float64(hue), float64(h.S), float64(h.V))
	return float32(c.R), float32(c.G), float32(c.B)
}

// AsRGBA returns the color as an opaque 8-bit sRGB [color.RGBA].
func (h HSV) AsRGBA() color.RGBA {
	return cie.LinearToRGBA(h.Linear())
}

// RGBA implements the color.Color interface.
func (h HSV) RGBA() (r, g, b, a uint32) {
	return h.AsRGBA().RGBA()
}

func (h HSV) String() string {
	return fmt.Sprintf("hsv(%g, %g, %g)", h.H, h.S, h.V)
}
