// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"cogentcore.org/colorix/colors/hsv"
	"cogentcore.org/colorix/math32"
)

// ClampCustom restricts a color picked by the user to the range of
// saturation and value that still produces a usable scale. Desaturated
// colors need a minimum value and dark colors a minimum saturation; both
// floors are computed from the unclamped input. Value is capped at 0.99
// and hue is left unchanged.
func ClampCustom(c hsv.HSV) hsv.HSV {
	vFloor := customValueFloor(c.S)
	sFloor := customSaturationFloor(c.V)
	c.V = math32.Clamp(c.V, vFloor, 0.99)
	c.S = math32.Clamp(c.S, sFloor, 1)
	return c
}

// customValueFloor is the minimum value for the given saturation:
// 0.13 at zero saturation falling to 0 at 0.3, then rising back
// to 0.13 at full saturation.
func customValueFloor(s float32) float32 {
	switch {
	case s >= 0 && s <= 0.3:
		return (0-0.13)/(0.3-0)*(s-0) + 0.13
	case s > 0.3 && s <= 1:
		return (0.13-0)/(1-0.3)*(s-0.3) + 0
	}
	return 0
}

// customSaturationFloor is the minimum saturation for the given value:
// 0.3 at zero value falling to 0 at 0.13, then rising back to 0.3
// at full value.
func customSaturationFloor(v float32) float32 {
	switch {
	case v >= 0 && v <= 0.13:
		return (0-0.3)/(0.13-0)*(v-0) + 0.3
	case v > 0.13 && v <= 1:
		return (0.3-0)/(1-0.13)*(v-0.13) + 0
	}
	return 0
}
