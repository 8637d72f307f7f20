// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"image/color"
	"testing"

	"cogentcore.org/colorix/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, float32(0.00015479876), SRGBToLinearComp(0.002))
	tolassert.Equal(t, float32(0.23302202), SRGBToLinearComp(0.52))

	tolassert.Equal(t, float32(0.012920001), SRGBFromLinearComp(0.001))
	tolassert.Equal(t, float32(0.84338915), SRGBFromLinearComp(0.68))

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, float32(0.07323897), rl)
	tolassert.Equal(t, float32(0.033104762), gl)
	tolassert.Equal(t, float32(0.31854683), bl)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	tolassert.Equal(t, float32(0.38109186), r)
	tolassert.Equal(t, float32(0.61803144), g)
	tolassert.Equal(t, float32(0.8962438), b)

	assert.Equal(t, uint8(0x5c), SRGBFloatToUint8(0.36))
	assert.Equal(t, uint8(0), SRGBFloatToUint8(-0.2))
	assert.Equal(t, uint8(255), SRGBFloatToUint8(1.3))
	assert.Equal(t, uint8(0), SRGBFloatToUint8(float32Nan()))
}

func float32Nan() float32 {
	var zero float32
	return zero / zero
}

func TestLinearRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := color.RGBA{uint8(v), uint8(255 - v), uint8(v / 2), 255}
		rl, gl, bl := ColorToLinear(c)
		assert.Equal(t, c, LinearToRGBA(rl, gl, bl))
	}
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, LinearToRGBA(1.5, -0.2, 1))
}
