// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsv

import (
	"image/color"
	"testing"

	"cogentcore.org/colorix/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestFromColor(t *testing.T) {
	h := FromColor(color.RGBA{255, 0, 0, 255})
	tolassert.Equal(t, 0, h.H)
	tolassert.Equal(t, 1, h.S)
	tolassert.Equal(t, 1, h.V)

	h = FromColor(color.RGBA{0, 0, 255, 255})
	tolassert.Equal(t, 2.0/3, h.H)

	// value is measured on linear components
	h = FromColor(color.RGBA{188, 188, 188, 255})
	tolassert.EqualTol(t, 0.5, h.V, 0.01)
	tolassert.Equal(t, 0, h.S)
}

func TestRoundTrip(t *testing.T) {
	cs := []color.RGBA{
		{232, 210, 7, 255},
		{0, 109, 143, 255},
		{95, 78, 163, 255},
		{254, 180, 0, 255},
		{0, 0, 0, 255},
	}
	for _, c := range cs {
		assert.Equal(t, c, FromColor(c).AsRGBA())
	}
}

func TestLinear(t *testing.T) {
	r, g, b := New(0.5, 0.7, 0.01).Linear()
	tolassert.Equal(t, 0.003, r)
	tolassert.Equal(t, 0.01, g)
	tolassert.Equal(t, 0.01, b)
	assert.Equal(t, New(1.25, 1, 1).AsRGBA(), New(0.25, 1, 1).AsRGBA())
}
