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
	// lightLighten is how far each of steps 0-7 moves the accent
	// toward white, in linear RGB.
	lightLighten = [8]float32{0.965, 0.9, 0.82, 0.75, 0.63, 0.51, 0.39, 0.27}

	// lightClampL is the lightness ceiling of steps 0-7 for very light
	// accents; the floor is 0.8 below it.
	lightClampL = [8]float32{0.99, 0.98, 0.97, 0.95, 0.93, 0.90, 0.88, 0.85}

	// lightDarken is the Okhsl darkening of steps 9-11.
	lightDarken = [3]float32{0.1, 0.2, 0.55}
)

const (
	// lightSolidL is the lightness the solid background gets when the
	// accent is too light for white text.
	lightSolidL = 0.68

	// lightVeryLight is the accent lightness above which steps 0-7
	// are clamped to [lightClampL].
	lightVeryLight = 0.79
)

// lightTones generates the light mode scale for the given accent.
func lightTones(accent color.RGBA) Tones {
	lin := linearFromRGBA(accent)
	base := lin.okhsl()
	hue := base.PositiveHue()
	boost, ceil := lightSaturationBand(hue)

	var t Tones
	t[8] = base
	for i, f := range lightLighten {
		t[i] = lin.lighten(f).okhsl()
		// compensate for the temperature shift of lightening
		switch {
		case hue > 0 && hue < 90:
			t[i].Hue += 10 - float32(i)
		case hue > 200 && hue < 280:
			t[i].Hue -= 10 + float32(i)
		}
	}
	for i, f := range lightDarken {
		t[9+i] = base.Darken(f)
	}

	sat := math32.Clamp(base.Saturation*base.Lightness+boost, 0.1, 1-ceil)
	for i := range t {
		if i == 8 {
			continue
		}
		t[i].Saturation = sat
		if i < 8 && base.Lightness > lightVeryLight {
			t[i].Lightness = math32.Clamp(t[i].Lightness, lightClampL[i]-0.8, lightClampL[i])
		}
	}
	t[10].Lightness = math32.Clamp(t[10].Lightness, 0.43, 0.50)
	t[11].Lightness *= 0.9

	if lightNeedsDarkInk(base) {
		t[8].Lightness = lightSolidL
		t[9].Lightness = t[8].Lightness * 0.9
		t[9].Saturation = t[8].Saturation * 0.9
	} else {
		t[9].Saturation = t[8].Saturation
	}
	return t
}

// lightNeedsDarkInk returns whether white text is too weak on the
// rendered accent, in which case the solid background is darkened.
func lightNeedsDarkInk(base okhsl.Okhsl) bool {
	return apca.Estimate(apca.White, base.AsRGBA()) > apca.InkThreshold
}

// lightSaturationBand returns the saturation boost and the reduction of
// the saturation ceiling for the given accent hue. Greens get less of a
// boost and a lower ceiling, tapering linearly across the band. The band
// is evaluated on the whole degree, saturating at 255.
func lightSaturationBand(hue float32) (boost, ceil float32) {
	h := min(int(hue), 255)
	switch {
	case h >= 159 && h <= 216:
		boost = float32(h-159) / 58 * 0.25
	case h >= 100 && h <= 158:
		boost = float32(158-h) / 58 * 0.25
	default:
		boost = 0.25
	}
	switch {
	case h >= 100 && h <= 158:
		ceil = float32(h-100) / 58 * 0.12
	case h >= 159 && h <= 217:
		ceil = float32(217-h) / 58 * 0.12
	}
	return
}
