// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the sRGB transfer functions shared by the
// color space packages.
package cie

import (
	"image/color"

	"cogentcore.org/colorix/math32"
)

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value
// Used in converting from XYZ to sRGB.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math32.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of sRGB components from linear values,
// adding gamma correction.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBUint8ToLinear converts 8-bit sRGB components to linear 0-1 values.
func SRGBUint8ToLinear(r, g, b uint8) (rl, gl, bl float32) {
	return SRGBToLinear(float32(r)/255, float32(g)/255, float32(b)/255)
}

// SRGBFloatToUint8 converts the given non-alpha-premultiplied sRGB float32
// component to an 8-bit value, clamping to the 0-1 range and rounding.
// NaN converts to 0.
func SRGBFloatToUint8(c float32) uint8 {
	if math32.IsNaN(c) || c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(math32.Round(c * 255))
}

// LinearToRGBA converts linear 0-1 components to an opaque 8-bit sRGB
// [color.RGBA], clamping out-of-gamut components.
func LinearToRGBA(rl, gl, bl float32) color.RGBA {
	r, g, b := SRGBFromLinear(math32.Clamp(rl, 0, 1), math32.Clamp(gl, 0, 1), math32.Clamp(bl, 0, 1))
	return color.RGBA{SRGBFloatToUint8(r), SRGBFloatToUint8(g), SRGBFloatToUint8(b), 255}
}

// ColorToLinear returns the linear 0-1 components of the given color,
// which is treated as opaque.
func ColorToLinear(c color.Color) (rl, gl, bl float32) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return SRGBUint8ToLinear(rgba.R, rgba.G, rgba.B)
}
