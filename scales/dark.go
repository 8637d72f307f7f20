// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"image/color"

	"cogentcore.org/colorix/colors/apca"
	"cogentcore.org/colorix/colors/cam/okhsl"
	"cogentcore.org/colorix/math32"
)

var (
	// darkDarken is how far each of steps 0-7 moves the accent
	// toward black, in linear RGB.
	darkDarken = [8]float32{0.975, 0.96, 0.93, 0.89, 0.83, 0.75, 0.64, 0.39}

	// darkClampS scales the accent saturation into the saturation
	// ceiling of steps 0-7.
	darkClampS = [8]float32{0.3, 0.5, 0.8, 1, 1, 0.95, 0.7, 0.8}

	// darkClampS2 is the saturation floor of steps 0-7 for vivid accents.
	darkClampS2 = [8]float32{0.14, 0.16, 0.44, 0.62, 0.61, 0.56, 0.52, 0.51}

	// darkClampL is the lightness floor of steps 0-7.
	darkClampL = [8]float32{0.08, 0.10, 0.15, 0.19, 0.23, 0.29, 0.36, 0.47}

	// darkLighten is the Okhsl lightening of steps 9-11.
	darkLighten = [3]float32{0.095, 0.45, 0.75}
)

const (
	// darkVivid is the accent saturation above which steps 0-7 use
	// the [darkClampS2] floors.
	darkVivid = 0.36
)

// darkTones generates the dark mode scale for the given accent.
func darkTones(accent color.RGBA) Tones {
	lin := linearFromRGBA(accent)
	base := lin.okhsl()
	hue := base.PositiveHue()

	var t Tones
	t[8] = base
	for i := range darkDarken {
		t[i] = darkClamp(darkStep(lin, hue, i), base.Saturation, i)
	}

	for i, f := range darkLighten {
		step := float32(i + 1)
		h := base.Lighten(f)
		switch {
		case inBand(hue, 0, 90) || inBand(hue, 300, 350):
			h.Hue = base.Hue + 2*step
		case inBand(hue, 100, 280):
			h.Hue -= 2 * step
		}
		t[9+i] = h
	}
	t[10].Lightness = math32.Clamp(t[10].Lightness, 0.73, 1)
	t[11].Lightness = math32.Clamp(t[11].Lightness, 0.88, 1)
	if inBand(hue, 115, 220) {
		t[11].Saturation = math32.Clamp(t[11].Saturation, 0, base.Saturation*0.75)
		t[10].Saturation = math32.Clamp(t[10].Saturation, 0, base.Saturation*0.9)
	}

	if darkTooDeep(accent) {
		t[8] = okhsl.New(base.Hue, base.Saturation*1.25, base.Lighten(0.3).Lightness)
		t[9] = t[9].Lighten(0.25)
		t[9].Saturation = base.Saturation
	}
	return t
}

// darkStep returns step i (0-7) of the dark scale before the
// saturation and lightness clamps: the accent darkened in linear RGB,
// lifted for violets, and for pinks on step 7 only.
func darkStep(lin linear, hue float32, i int) okhsl.Okhsl {
	h := lin.darken(darkDarken[i]).okhsl()
	if inBand(hue, 259, 323) {
		h = h.Lighten(float32(i+1) * 0.011)
	}
	if inBand(hue, 323, 350) && i == 7 {
		h = h.Lighten(float32(i+1) * 0.01)
	}
	return h
}

// darkClamp applies the saturation boost and the saturation and
// lightness clamps of step i (0-7) for an accent of saturation s.
func darkClamp(h okhsl.Okhsl, s float32, i int) okhsl.Okhsl {
	h.Saturation *= 1 + 2*(1-s)
	if s > darkVivid {
		h.Saturation = math32.Clamp(h.Saturation, darkClampS2[i],
			math32.Clamp(s*darkClampS[i], darkClampS2[i]+0.01, 1))
	} else {
		h.Saturation = math32.Clamp(h.Saturation, 0, s*darkClampS[i])
	}
	h.Lightness = math32.Clamp(h.Lightness, darkClampL[i],
		math32.Clamp(darkClampL[i]*(1.71-s), darkClampL[i]+0.01, 1))
	return h
}

// darkTooDeep returns whether the accent is so dark that white text
// on it would be excessive, in which case the solid backgrounds are
// lifted.
func darkTooDeep(accent color.RGBA) bool {
	return apca.Estimate(apca.White, accent) < apca.DarkThreshold
}
