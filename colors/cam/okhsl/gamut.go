// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://bottosson.github.io/posts/colorpicker/
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

package okhsl

import (
	"cogentcore.org/colorix/colors/cam/oklab"
	"cogentcore.org/colorix/math32"
)

// cusp is the point of maximum chroma of the sRGB gamut
// for a given hue, in Oklab lightness and chroma.
type cusp struct {
	L, C float32
}

// chromas are the three chroma anchors used to map Okhsl
// saturation onto Oklab chroma for a given lightness and hue.
type chromas struct {
	C0, Mid, Max float32
}

// maxSaturation returns the maximum saturation S = C/L possible for
// the given normalized hue direction (a, b) that fits in sRGB.
func maxSaturation(a, b float32) float32 {
	// Select the polynomial fit for the component that clips first.
	var k0, k1, k2, k3, k4, wl, wm, ws float32
	switch {
	case -1.88170328*a-0.80936493*b > 1: // red
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1: // green
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default: // blue
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	s := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	// one step of Halley's method
	lr := 1 + s*kl
	mr := 1 + s*km
	sr := 1 + s*ks

	l := lr * lr * lr
	m := mr * mr * mr
	sc := sr * sr * sr

	ldS := 3 * kl * lr * lr
	mdS := 3 * km * mr * mr
	sdS := 3 * ks * sr * sr

	ldS2 := 6 * kl * kl * lr
	mdS2 := 6 * km * km * mr
	sdS2 := 6 * ks * ks * sr

	f := wl*l + wm*m + ws*sc
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return s - f*f1/(f1*f1-0.5*f*f2)
}

// findCusp returns the cusp of the sRGB gamut triangle for the
// given normalized hue direction (a, b).
func findCusp(a, b float32) cusp {
	sCusp := maxSaturation(a, b)
	r, g, bl := oklab.Oklab{L: 1, A: sCusp * a, B: sCusp * b}.Linear()
	lCusp := math32.Cbrt(1 / math32.Max(math32.Max(r, g), bl))
	return cusp{L: lCusp, C: lCusp * sCusp}
}

// gamutIntersection finds the parameter t along the line from
// (L0, 0) to (L1, C1) where it leaves the sRGB gamut, for the given
// normalized hue direction (a, b).
func gamutIntersection(a, b, l1, c1, l0 float32, cs cusp) float32 {
	if (l1-l0)*cs.C-(cs.L-l0)*c1 <= 0 {
		// lower half
		return cs.C * l0 / (c1*cs.L + cs.C*(l0-l1))
	}

	// upper half: triangle estimate refined with a Halley step
	t := cs.C * (l0 - 1) / (c1*(cs.L-1) + cs.C*(l0-l1))

	dL := l1 - l0
	dC := c1

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	ldt := dL + dC*kl
	mdt := dL + dC*km
	sdt := dL + dC*ks

	L := l0*(1-t) + t*l1
	C := t * c1

	lr := L + C*kl
	mr := L + C*km
	sr := L + C*ks

	l := lr * lr * lr
	m := mr * mr * mr
	s := sr * sr * sr

	ldt1 := 3 * ldt * lr * lr
	mdt1 := 3 * mdt * mr * mr
	sdt1 := 3 * sdt * sr * sr

	ldt2 := 6 * ldt * ldt * lr
	mdt2 := 6 * mdt * mdt * mr
	sdt2 := 6 * sdt * sdt * sr

	halley := func(wl, wm, ws float32) float32 {
		v := wl*l + wm*m + ws*s - 1
		v1 := wl*ldt1 + wm*mdt1 + ws*sdt1
		v2 := wl*ldt2 + wm*mdt2 + ws*sdt2
		u := v1 / (v1*v1 - 0.5*v*v2)
		if u < 0 {
			return math32.MaxFloat32
		}
		return -v * u
	}

	tr := halley(4.0767416621, -3.3077115913, 0.2309699292)
	tg := halley(-1.2684380046, 2.6097574011, -0.3413193965)
	tb := halley(-0.0041960863, -0.7034186147, 1.7076147010)

	return t + math32.Min(tr, math32.Min(tg, tb))
}

// toe is the lightness estimate used by Okhsl, mapping Oklab L
// onto a scale closer to CIELab L*.
func toe(x float32) float32 {
	const k1, k2 = 0.206, 0.03
	const k3 = (1 + k1) / (1 + k2)
	return 0.5 * (k3*x - k1 + math32.Sqrt((k3*x-k1)*(k3*x-k1)+4*k2*k3*x))
}

// toeInv is the inverse of [toe].
func toeInv(x float32) float32 {
	const k1, k2 = 0.206, 0.03
	const k3 = (1 + k1) / (1 + k2)
	return (x*x + k1*x) / (k3 * (x + k2))
}

// stMid returns a smooth approximation of the saturation and
// toe-adjusted inverse saturation of the gamut cusp, used for the
// middle chroma anchor.
func stMid(a, b float32) (s, t float32) {
	s = 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	t = 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))
	return
}

// chromasAt returns the chroma anchors for the given Oklab lightness
// and normalized hue direction (a, b).
func chromasAt(L, a, b float32) chromas {
	cs := findCusp(a, b)

	cMax := gamutIntersection(a, b, L, 1, L, cs)
	stS, stT := cs.C/cs.L, cs.C/(1-cs.L)

	// scale factor to compensate for the curved part of the gamut shape
	k := cMax / math32.Min(L*stS, (1-L)*stT)

	midS, midT := stMid(a, b)
	ca := L * midS
	cb := (1 - L) * midT
	cMid := 0.9 * k * math32.Sqrt(math32.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	ca = L * 0.4
	cb = (1 - L) * 0.8
	c0 := math32.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return chromas{C0: c0, Mid: cMid, Max: cMax}
}
