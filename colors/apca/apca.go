// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package apca estimates the perceptual lightness contrast (Lc) between
// a text color and a background color, following the APCA 0.0.98G
// constants. The result is signed: negative values mean light text on a
// dark background (reverse polarity), positive values dark text on a
// light background. The magnitude runs up to roughly 108.
package apca

import (
	"image/color"

	"cogentcore.org/colorix/math32"
)

const (
	// mainTRC is the exponent of the simple display transfer curve
	mainTRC = 2.4

	// normal polarity exponents (dark text on light background)
	normBG  = 0.56
	normTXT = 0.57

	// reverse polarity exponents (light text on dark background)
	revBG  = 0.65
	revTXT = 0.62

	// soft black clamp
	blkThrs  = 0.022
	blkClmp  = 1.414
	scale    = 1.14
	loOffset = 0.027
	loClip   = 0.1

	// sRGB luminance coefficients
	rCo = 0.2126729
	gCo = 0.7151522
	bCo = 0.0721750
)

// Thresholds used by the scale generators and the ink color selection.
const (
	// InkThreshold is the Lc above which white text is too weak on a
	// background, so a dark ink has to be used instead.
	InkThreshold = -46

	// DarkThreshold is the Lc below which a dark mode accent is too dark
	// against white text and gets lightened.
	DarkThreshold = -95.4
)

// White is the reference text color used for polarity checks.
var White = color.RGBA{255, 255, 255, 255}

// Estimate returns the Lc contrast of the text color against the
// background color, in the range of about -108 to 108. Alpha is ignored.
func Estimate(text, bg color.Color) float32 {
	t := color.RGBAModel.Convert(text).(color.RGBA)
	b := color.RGBAModel.Convert(bg).(color.RGBA)
	return EstimateRGB(t.R, t.G, t.B, b.R, b.G, b.B)
}

// EstimateRGB is [Estimate] for 8-bit sRGB components.
func EstimateRGB(tr, tg, tb, br, bg, bb uint8) float32 {
	yText := softClamp(Luminance(tr, tg, tb))
	yBG := softClamp(Luminance(br, bg, bb))
	return clampOutput(polarity(yText, yBG)) * 100
}

// Luminance returns the estimated screen luminance Y of the given
// 8-bit sRGB components using the simple 2.4 exponent curve.
func Luminance(r, g, b uint8) float32 {
	return math32.Pow(float32(r)/255, mainTRC)*rCo +
		math32.Pow(float32(g)/255, mainTRC)*gCo +
		math32.Pow(float32(b)/255, mainTRC)*bCo
}

// softClamp lifts luminance values near black so that the power
// curves below never work on values close to zero. Negative values
// clamp to zero.
func softClamp(y float32) float32 {
	switch {
	case y < 0:
		return 0
	case y < blkThrs:
		return y + math32.Pow(blkThrs-y, blkClmp)
	default:
		return y
	}
}

// polarity returns the scaled lightness difference, picking the
// exponent pair from which of the two colors is lighter.
func polarity(yText, yBG float32) float32 {
	if yBG > yText {
		return (math32.Pow(yBG, normBG) - math32.Pow(yText, normTXT)) * scale
	}
	return (math32.Pow(yBG, revBG) - math32.Pow(yText, revTXT)) * scale
}

// clampOutput zeroes the dead zone around no contrast and removes
// the offset at its edges.
func clampOutput(c float32) float32 {
	switch {
	case math32.Abs(c) < loClip:
		return 0
	case c > 0:
		return c - loOffset
	default:
		return c + loOffset
	}
}
