// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides a linear color gradient image, used to paint
// the background of an application behind its widgets.
package gradient

import (
	"image"
	"image/color"

	"cogentcore.org/colorix/colors/cam/cie"
	"cogentcore.org/colorix/math32"
)

// Stop represents a single stop in a gradient
type Stop struct {

	// the color of the stop
	Color color.RGBA

	// the position of the stop between 0 and 1
	Pos float32
}

// Linear is a vertical linear gradient filling the given bounds from
// top (position 0) to bottom (position 1). Colors are interpolated in
// linear RGB, and the first and last stops pad the rest of the image.
type Linear struct {

	// the stops for the gradient; use AddStop to add stops
	Stops []Stop

	// the bounds of the gradient image
	Box image.Rectangle
}

// NewLinear returns a new vertical gradient from top to bottom,
// filling the given bounds.
func NewLinear(top, bottom color.RGBA, box image.Rectangle) *Linear {
	l := &Linear{Box: box}
	l.AddStop(top, 0)
	l.AddStop(bottom, 1)
	return l
}

// AddStop adds a new stop with the given color and position to the gradient.
// Stops must be added in order of increasing position.
func (l *Linear) AddStop(c color.RGBA, pos float32) {
	l.Stops = append(l.Stops, Stop{c, pos})
}

// ColorModel returns the color model used by the gradient image, which is [color.RGBAModel]
func (l *Linear) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the bounds of the gradient image.
func (l *Linear) Bounds() image.Rectangle {
	return l.Box
}

// At returns the color of the gradient at the given pixel.
func (l *Linear) At(x, y int) color.Color {
	h := l.Box.Dy() - 1
	if h <= 0 {
		return l.GetColor(0)
	}
	return l.GetColor(float32(y-l.Box.Min.Y) / float32(h))
}

// GetColor returns the color at the given normalized position along the
// gradient's stops. A NaN position is treated as the start.
func (l *Linear) GetColor(pos float32) color.RGBA {
	d := len(l.Stops)
	if d == 0 {
		return color.RGBA{}
	}
	if math32.IsNaN(pos) || pos <= l.Stops[0].Pos {
		return l.Stops[0].Color
	}
	if pos >= l.Stops[d-1].Pos {
		return l.Stops[d-1].Color
	}
	place := 0 // advance to place where pos is greater than the indicated stop
	for place != d && pos > l.Stops[place].Pos {
		place++
	}
	return BlendStops(pos, l.Stops[place-1], l.Stops[place])
}

// BlendStops blends the given two gradient stops together based on
// the given position, in linear RGB.
func BlendStops(pos float32, s1, s2 Stop) color.RGBA {
	if s2.Pos == s1.Pos {
		return s2.Color
	}
	tp := (pos - s1.Pos) / (s2.Pos - s1.Pos)
	r1, g1, b1 := cie.SRGBUint8ToLinear(s1.Color.R, s1.Color.G, s1.Color.B)
	r2, g2, b2 := cie.SRGBUint8ToLinear(s2.Color.R, s2.Color.G, s2.Color.B)
	return cie.LinearToRGBA(math32.Lerp(r1, r2, tp), math32.Lerp(g1, g2, tp), math32.Lerp(b1, b2, tp))
}
