// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"image/color"
	"testing"

	"cogentcore.org/colorix/base/tolassert"
	"cogentcore.org/colorix/colors/apca"
	"cogentcore.org/colorix/colors/cam/okhsl"
	"cogentcore.org/colorix/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accents covers every hue band the generators branch on.
var accents = []color.RGBA{
	{117, 117, 117, 255}, // gray
	{0, 109, 143, 255},   // egui blue
	{229, 77, 46, 255},   // tomato
	{229, 72, 77, 255},   // red
	{233, 61, 130, 255},  // crimson
	{214, 64, 159, 255},  // pink
	{171, 74, 186, 255},  // plum
	{110, 86, 207, 255},  // violet
	{62, 99, 214, 255},   // indigo
	{0, 144, 255, 255},   // blue
	{0, 162, 199, 255},   // cyan
	{18, 165, 148, 255},  // teal
	{48, 164, 108, 255},  // green
	{70, 167, 88, 255},   // grass
	{173, 127, 88, 255},  // brown
	{151, 131, 101, 255}, // gold
	{247, 107, 21, 255},  // orange
	{232, 210, 7, 255},   // yellow
	{254, 180, 0, 255},   // amber
	{95, 78, 163, 255},   // seventies purple
	{10, 20, 60, 255},    // navy
	{250, 250, 245, 255}, // near white
	{3, 3, 3, 255},       // near black
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool {
		if x > y {
			return x-y <= 1
		}
		return y-x <= 1
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

func TestGenerateValid(t *testing.T) {
	for _, mode := range []Mode{Light, Dark} {
		for _, c := range accents {
			tones := GenerateTones(c, mode)
			for i, h := range tones {
				assert.False(t, math32.IsNaN(h.Hue) || math32.IsNaN(h.Saturation) || math32.IsNaN(h.Lightness),
					"%v %v step %d: %v", mode, c, i, h)
			}
			s := Generate(c, mode)
			for i, sc := range s {
				assert.Equal(t, uint8(255), sc.A, "%v %v step %d", mode, c, i)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, mode := range []Mode{Light, Dark} {
		for _, c := range accents {
			assert.Equal(t, Generate(c, mode), Generate(c, mode))
		}
	}
}

func TestGenerateIgnoresAlpha(t *testing.T) {
	c := color.RGBA{0, 109, 143, 255}
	assert.Equal(t, Generate(c, Dark), Generate(color.NRGBA{0, 109, 143, 255}, Dark))
}

func TestLightReference(t *testing.T) {
	// accents dark enough for white text keep their own color on step 8
	for _, c := range []color.RGBA{{0, 109, 143, 255}, {62, 99, 214, 255}, {110, 86, 207, 255}, {95, 78, 163, 255}} {
		require.False(t, lightNeedsDarkInk(okhsl.FromColor(c)), "%v", c)
		s := Generate(c, Light)
		assert.True(t, near(c, s[8]), "expected %v, got %v", c, s[8])
	}
}

func TestLightYellow(t *testing.T) {
	yellow := color.RGBA{232, 210, 7, 255}
	base := okhsl.FromColor(yellow)
	assert.True(t, near(yellow, base.AsRGBA()), "reference tone %v", base.AsRGBA())

	// yellow is too light for white text, so the solid background darkens
	tones := GenerateTones(yellow, Light)
	assert.True(t, lightNeedsDarkInk(base))
	assert.Equal(t, float32(lightSolidL), tones[8].Lightness)
	tolassert.Equal(t, 0.612, tones[9].Lightness)
	assert.Equal(t, base.Hue, tones[8].Hue)
	assert.Equal(t, base.Saturation, tones[8].Saturation)
	tolassert.Equal(t, base.Saturation*0.9, tones[9].Saturation)
}

func TestLightEscapeBoundary(t *testing.T) {
	// the threshold of -46 lies between grays 178 and 179
	require.Less(t, apca.EstimateRGB(255, 255, 255, 178, 178, 178), float32(apca.InkThreshold))
	require.Greater(t, apca.EstimateRGB(255, 255, 255, 179, 179, 179), float32(apca.InkThreshold))

	below := GenerateTones(color.RGBA{178, 178, 178, 255}, Light)
	above := GenerateTones(color.RGBA{179, 179, 179, 255}, Light)
	assert.NotEqual(t, float32(lightSolidL), below[8].Lightness)
	assert.Equal(t, below[8].Saturation, below[9].Saturation)
	assert.Equal(t, float32(lightSolidL), above[8].Lightness)
	tolassert.Equal(t, lightSolidL*0.9, above[9].Lightness)
}

func TestLightClamps(t *testing.T) {
	for _, c := range accents {
		base := okhsl.FromColor(c)
		tones := GenerateTones(c, Light)
		assert.GreaterOrEqual(t, tones[10].Lightness, float32(0.43))
		assert.LessOrEqual(t, tones[10].Lightness, float32(0.50))
		tolassert.Equal(t, base.Darken(0.55).Lightness*0.9, tones[11].Lightness)
		for i, h := range tones {
			if i == 8 || i == 9 {
				continue
			}
			assert.GreaterOrEqual(t, h.Saturation, float32(0.1))
			if i < 8 && base.Lightness > lightVeryLight {
				assert.LessOrEqual(t, h.Lightness, lightClampL[i])
			}
		}
	}
}

func TestLightMonotonic(t *testing.T) {
	tones := GenerateTones(color.RGBA{0, 109, 143, 255}, Light)
	for i := 0; i < 9; i++ {
		assert.Greater(t, tones[i].Lightness, tones[i+1].Lightness, "step %d", i)
	}
}

func TestLightHueShift(t *testing.T) {
	orange := color.RGBA{247, 107, 21, 255}
	hue := okhsl.FromColor(orange).PositiveHue()
	require.True(t, hue > 0 && hue < 90, "hue %v", hue)
	tones := GenerateTones(orange, Light)
	lin := linearFromRGBA(orange)
	for i, f := range lightLighten {
		tolassert.Equal(t, lin.lighten(f).okhsl().Hue+10-float32(i), tones[i].Hue)
	}

	indigo := color.RGBA{62, 99, 214, 255}
	hue = okhsl.FromColor(indigo).PositiveHue()
	require.True(t, hue > 200 && hue < 280, "hue %v", hue)
	tones = GenerateTones(indigo, Light)
	lin = linearFromRGBA(indigo)
	for i, f := range lightLighten {
		tolassert.Equal(t, lin.lighten(f).okhsl().Hue-10-float32(i), tones[i].Hue)
	}
}

func TestLightSaturationBand(t *testing.T) {
	b, c := lightSaturationBand(50)
	assert.Equal(t, float32(0.25), b)
	assert.Equal(t, float32(0), c)

	b, c = lightSaturationBand(130.7)
	tolassert.Equal(t, 28.0/58*0.25, b)
	tolassert.Equal(t, 30.0/58*0.12, c)

	b, c = lightSaturationBand(159)
	assert.Equal(t, float32(0), b)
	tolassert.Equal(t, 0.12, c)

	b, c = lightSaturationBand(217)
	assert.Equal(t, float32(0.25), b)
	assert.Equal(t, float32(0), c)

	// hues past 255 saturate at 255, outside every band
	b, c = lightSaturationBand(300)
	assert.Equal(t, float32(0.25), b)
	assert.Equal(t, float32(0), c)
}

func TestDarkTextClamps(t *testing.T) {
	// egui blue
	tones := GenerateTones(color.RGBA{0, 109, 143, 255}, Dark)
	assert.GreaterOrEqual(t, tones[10].Lightness, float32(0.73))
	assert.LessOrEqual(t, tones[10].Lightness, float32(1))
	assert.GreaterOrEqual(t, tones[11].Lightness, float32(0.88))
	assert.LessOrEqual(t, tones[11].Lightness, float32(1))

	for _, c := range accents {
		tones := GenerateTones(c, Dark)
		assert.GreaterOrEqual(t, tones[10].Lightness, float32(0.73), "%v", c)
		assert.GreaterOrEqual(t, tones[11].Lightness, float32(0.88), "%v", c)
		for i := 0; i < 8; i++ {
			assert.GreaterOrEqual(t, tones[i].Lightness, darkClampL[i], "%v step %d", c, i)
		}
	}
}

func TestDarkGreenCyanSaturation(t *testing.T) {
	teal := color.RGBA{18, 165, 148, 255}
	base := okhsl.FromColor(teal)
	require.True(t, inBand(base.PositiveHue(), 115, 220), "hue %v", base.PositiveHue())
	tones := GenerateTones(teal, Dark)
	assert.LessOrEqual(t, tones[10].Saturation, base.Saturation*0.9)
	assert.LessOrEqual(t, tones[11].Saturation, base.Saturation*0.75)
}

func TestDarkHueShift(t *testing.T) {
	tomato := color.RGBA{229, 77, 46, 255}
	base := okhsl.FromColor(tomato)
	require.True(t, inBand(base.PositiveHue(), 0, 90), "hue %v", base.PositiveHue())
	tones := GenerateTones(tomato, Dark)
	for i := 9; i < 12; i++ {
		tolassert.Equal(t, base.Hue+2*float32(i-8), tones[i].Hue)
	}

	blue := color.RGBA{0, 144, 255, 255}
	base = okhsl.FromColor(blue)
	require.True(t, inBand(base.PositiveHue(), 100, 280), "hue %v", base.PositiveHue())
	tones = GenerateTones(blue, Dark)
	for i := 9; i < 12; i++ {
		tolassert.Equal(t, base.Hue-2*float32(i-8), tones[i].Hue)
	}
}

func TestDarkBandLift(t *testing.T) {
	tests := []struct {
		name   string
		accent color.RGBA
		lo, hi float32
		lift   func(i int) float32
	}{
		{"violet", color.RGBA{110, 86, 207, 255}, 259, 323, func(i int) float32 { return float32(i+1) * 0.011 }},
		{"plum", color.RGBA{171, 74, 186, 255}, 259, 323, func(i int) float32 { return float32(i+1) * 0.011 }},
		{"pink", color.RGBA{214, 64, 159, 255}, 323, 350, func(i int) float32 {
			if i == 7 {
				return 0.08
			}
			return 0
		}},
		{"teal", color.RGBA{18, 165, 148, 255}, 115, 220, func(i int) float32 { return 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lin := linearFromRGBA(tt.accent)
			hue := lin.okhsl().PositiveHue()
			require.True(t, inBand(hue, tt.lo, tt.hi), "hue %v", hue)
			for i, f := range darkDarken {
				plain := lin.darken(f).okhsl()
				got := darkStep(lin, hue, i)
				tolassert.Equal(t, plain.Lighten(tt.lift(i)).Lightness, got.Lightness, "step %d", i)
				if tt.lift(i) > 0 {
					assert.Greater(t, got.Lightness, plain.Lightness, "step %d", i)
				} else {
					assert.Equal(t, plain, got, "step %d", i)
				}
			}
		})
	}
}

func TestDarkClamp(t *testing.T) {
	tests := []struct {
		name     string
		s        float32
		i        int
		in, want okhsl.Okhsl
	}{
		// vivid: floor darkClampS2, ceiling s*darkClampS
		{"vivid ceiling", 0.8, 0, okhsl.New(10, 0.5, 0.09), okhsl.New(10, 0.24, 0.09)},
		{"vivid floor", 0.8, 0, okhsl.New(10, 0.05, 0.09), okhsl.New(10, 0.14, 0.09)},
		{"vivid inside", 0.8, 3, okhsl.New(10, 0.5, 0.19), okhsl.New(10, 0.7, 0.19)},
		{"vivid ceiling floor", 0.4, 0, okhsl.New(10, 0.5, 0.09), okhsl.New(10, 0.15, 0.09)},
		// muted: no floor, ceiling s*darkClampS
		{"muted ceiling", 0.2, 3, okhsl.New(10, 0.1, 0.19), okhsl.New(10, 0.2, 0.19)},
		{"muted inside", 0.2, 3, okhsl.New(10, 0.05, 0.19), okhsl.New(10, 0.13, 0.19)},
		{"muted no floor", 0.36, 0, okhsl.New(10, 0, 0.09), okhsl.New(10, 0, 0.09)},
		// lightness between darkClampL and darkClampL*(1.71-s)
		{"dark floor", 0.8, 7, okhsl.New(10, 0.5, 0.1), okhsl.New(10, 0.64, 0.47)},
		{"dark ceiling", 0.8, 7, okhsl.New(10, 0.5, 0.9), okhsl.New(10, 0.64, 0.48)},
		{"muted light ceiling", 0.2, 7, okhsl.New(10, 0, 0.9), okhsl.New(10, 0, 0.47 * 1.51)},
		{"muted light inside", 0.2, 7, okhsl.New(10, 0, 0.6), okhsl.New(10, 0, 0.6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := darkClamp(tt.in, tt.s, tt.i)
			assert.Equal(t, tt.want.Hue, got.Hue)
			tolassert.Equal(t, tt.want.Saturation, got.Saturation)
			tolassert.Equal(t, tt.want.Lightness, got.Lightness)
		})
	}
}

func TestDarkSaturationRegimes(t *testing.T) {
	vivid := color.RGBA{229, 77, 46, 255}
	base := okhsl.FromColor(vivid)
	require.Greater(t, base.Saturation, float32(darkVivid))
	tones := GenerateTones(vivid, Dark)
	for i := range darkClampS {
		ceil := math32.Clamp(base.Saturation*darkClampS[i], darkClampS2[i]+0.01, 1)
		assert.GreaterOrEqual(t, tones[i].Saturation, darkClampS2[i], "step %d", i)
		assert.LessOrEqual(t, tones[i].Saturation, ceil, "step %d", i)
	}

	muted := color.RGBA{120, 115, 110, 255}
	base = okhsl.FromColor(muted)
	require.LessOrEqual(t, base.Saturation, float32(darkVivid))
	tones = GenerateTones(muted, Dark)
	for i := range darkClampS {
		assert.LessOrEqual(t, tones[i].Saturation, base.Saturation*darkClampS[i], "step %d", i)
	}
}

func TestDarkEscapeBoundary(t *testing.T) {
	// the threshold of -95.4 lies between grays 72 and 73
	require.Less(t, apca.EstimateRGB(255, 255, 255, 72, 72, 72), float32(apca.DarkThreshold))
	require.Greater(t, apca.EstimateRGB(255, 255, 255, 73, 73, 73), float32(apca.DarkThreshold))

	deep := color.RGBA{72, 72, 72, 255}
	base := okhsl.FromColor(deep)
	tones := GenerateTones(deep, Dark)
	tolassert.Equal(t, base.Lighten(0.3).Lightness, tones[8].Lightness)

	ok := color.RGBA{73, 73, 73, 255}
	tones = GenerateTones(ok, Dark)
	assert.Equal(t, okhsl.FromColor(ok), tones[8])
}

func TestDarkEscapeNavy(t *testing.T) {
	navy := color.RGBA{10, 20, 60, 255}
	require.True(t, darkTooDeep(navy))
	base := okhsl.FromColor(navy)
	tones := GenerateTones(navy, Dark)
	tolassert.Equal(t, base.Lighten(0.3).Lightness, tones[8].Lightness)
	tolassert.Equal(t, base.Saturation*1.25, tones[8].Saturation)
	assert.Equal(t, base.Saturation, tones[9].Saturation)
	assert.Greater(t, tones[9].Lightness, base.Lighten(0.095).Lightness)
}

func TestMode(t *testing.T) {
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
	assert.True(t, Dark.IsDark())

	m, err := ParseMode(" Dark ")
	assert.NoError(t, err)
	assert.Equal(t, Dark, m)
	_, err = ParseMode("dim")
	assert.Error(t, err)

	b, err := Dark.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "dark", string(b))
	assert.NoError(t, m.UnmarshalText([]byte("light")))
	assert.Equal(t, Light, m)
}
