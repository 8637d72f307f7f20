// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://bottosson.github.io/posts/oklab/
// Copyright (c) 2021 Björn Ottosson
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// Package oklab provides the Oklab perceptual color space, converted to
// and from linear sRGB.
package oklab

import (
	"cogentcore.org/colorix/math32"
)

// Oklab is a color in the Oklab perceptual color space.
type Oklab struct {

	// L is the perceived lightness, 0-1
	L float32

	// A is the green-red axis
	A float32

	// B is the blue-yellow axis
	B float32
}

// FromLinear returns the Oklab representation of the given
// linear sRGB components.
func FromLinear(r, g, b float32) Oklab {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lr := math32.Cbrt(l)
	mr := math32.Cbrt(m)
	sr := math32.Cbrt(s)

	return Oklab{
		L: 0.2104542553*lr + 0.7936177850*mr - 0.0040720468*sr,
		A: 1.9779984951*lr - 2.4285922050*mr + 0.4505937099*sr,
		B: 0.0259040371*lr + 0.7827717662*mr - 0.8086757660*sr,
	}
}

// Linear returns the linear sRGB components of the color.
// The components are not clamped and can be outside of 0-1
// for colors outside of the sRGB gamut.
func (o Oklab) Linear() (r, g, b float32) {
	lr := o.L + 0.3963377774*o.A + 0.2158037573*o.B
	mr := o.L - 0.1055613458*o.A - 0.0638541728*o.B
	sr := o.L - 0.0894841775*o.A - 1.2914855480*o.B

	l := lr * lr * lr
	m := mr * mr * mr
	s := sr * sr * sr

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}

// Chroma returns the colorfulness of the color, the distance
// from the neutral L axis.
func (o Oklab) Chroma() float32 {
	return math32.Sqrt(o.A*o.A + o.B*o.B)
}

// Hue returns the hue angle of the color in degrees, in the range
// (-180, 180].
func (o Oklab) Hue() float32 {
	return math32.RadToDeg(math32.Atan2(o.B, o.A))
}
