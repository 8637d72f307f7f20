// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package okhsl provides the Okhsl color space, a hue, saturation and
// lightness model built on Oklab whose saturation is relative to the
// sRGB gamut. All tonal adjustments of the scale generators happen here.
package okhsl

import (
	"fmt"
	"image/color"

	"cogentcore.org/colorix/colors/cam/cie"
	"cogentcore.org/colorix/colors/cam/oklab"
	"cogentcore.org/colorix/math32"
)

// achromatic is the Oklab chroma below which a color is treated as
// a pure gray with no meaningful hue.
const achromatic = 1e-4

// mid is the saturation at which the chroma mapping switches from the
// C0-Mid segment to the Mid-Max segment.
const (
	mid    = 0.8
	midInv = 1.25
)

// Okhsl represents a color in the Okhsl color space.
type Okhsl struct {

	// Hue in degrees. It is not normalized and may be outside 0-360
	// after hue adjustments; use [Okhsl.PositiveHue] for comparisons.
	Hue float32

	// Saturation is the chroma relative to the most saturated in-gamut
	// color of the same hue and lightness, normally 0-1
	Saturation float32

	// Lightness is the perceived lightness, 0-1
	Lightness float32
}

// New returns a new Okhsl color from the given values.
func New(hue, saturation, lightness float32) Okhsl {
	return Okhsl{Hue: hue, Saturation: saturation, Lightness: lightness}
}

// FromLinear returns the Okhsl representation of the given linear
// sRGB components.
func FromLinear(r, g, b float32) Okhsl {
	return FromOklab(oklab.FromLinear(r, g, b))
}

// FromColor returns the Okhsl representation of the given color.
func FromColor(c color.Color) Okhsl {
	return FromLinear(cie.ColorToLinear(c))
}

// FromOklab returns the Okhsl representation of the given Oklab color.
func FromOklab(lab oklab.Oklab) Okhsl {
	switch {
	case lab.L <= 0:
		return Okhsl{}
	case lab.L >= 1:
		return Okhsl{Lightness: 1}
	}
	l := toe(lab.L)
	C := lab.Chroma()
	if C < achromatic {
		return Okhsl{Lightness: l}
	}
	a := lab.A / C
	b := lab.B / C

	cs := chromasAt(lab.L, a, b)
	var s float32
	if C < cs.Mid {
		k1 := mid * cs.C0
		k2 := 1 - k1/cs.Mid
		t := C / (k1 + k2*C)
		s = t * mid
	} else {
		k0 := cs.Mid
		k1 := (1 - mid) * cs.Mid * cs.Mid * midInv * midInv / cs.C0
		k2 := 1 - k1/(cs.Max-cs.Mid)
		t := (C - k0) / (k1 + k2*(C-k0))
		s = mid + (1-mid)*t
	}
	return Okhsl{Hue: lab.Hue(), Saturation: s, Lightness: l}
}

// Oklab returns the Oklab representation of the color.
func (h Okhsl) Oklab() oklab.Oklab {
	if h.Lightness >= 1 {
		return oklab.Oklab{L: 1}
	}
	if h.Lightness <= 0 {
		return oklab.Oklab{}
	}
	hr := math32.DegToRad(h.PositiveHue())
	a := math32.Cos(hr)
	b := math32.Sin(hr)
	L := toeInv(h.Lightness)

	cs := chromasAt(L, a, b)
	s := h.Saturation
	var C float32
	if s < mid {
		t := midInv * s
		k1 := mid * cs.C0
		k2 := 1 - k1/cs.Mid
		C = t * k1 / (1 - k2*t)
	} else {
		t := (s - mid) / (1 - mid)
		k0 := cs.Mid
		k1 := (1 - mid) * cs.Mid * cs.Mid * midInv * midInv / cs.C0
		k2 := 1 - k1/(cs.Max-cs.Mid)
		C = k0 + t*k1/(1-k2*t)
	}
	return oklab.Oklab{L: L, A: C * a, B: C * b}
}

// Linear returns the linear sRGB components of the color, unclamped.
func (h Okhsl) Linear() (r, g, b float32) {
	return h.Oklab().Linear()
}

// AsRGBA returns the color as an opaque 8-bit sRGB [color.RGBA],
// clamping components that fall outside of the gamut.
func (h Okhsl) AsRGBA() color.RGBA {
	return cie.LinearToRGBA(h.Linear())
}

// RGBA implements the color.Color interface.
func (h Okhsl) RGBA() (r, g, b, a uint32) {
	return h.AsRGBA().RGBA()
}

// PositiveHue returns the hue of the color in degrees in the range [0, 360).
func (h Okhsl) PositiveHue() float32 {
	return math32.NormalizeDegrees(h.Hue)
}

// Lighten returns the color with its lightness moved toward white
// by the given factor (0-1) of the remaining distance.
func (h Okhsl) Lighten(factor float32) Okhsl {
	h.Lightness += (1 - h.Lightness) * factor
	return h
}

// Darken returns the color with its lightness scaled toward black
// by the given factor (0-1).
func (h Okhsl) Darken(factor float32) Okhsl {
	h.Lightness -= h.Lightness * factor
	return h
}

func (h Okhsl) String() string {
	return fmt.Sprintf("okhsl(%g, %g, %g)", h.Hue, h.Saturation, h.Lightness)
}
