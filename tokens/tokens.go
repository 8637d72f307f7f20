// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokens maps the generated color scales of a [Theme] onto the
// functional roles of a user interface, and selects the ink color for
// text on solid backgrounds.
//
// Each of the 12 roles is taken from the same step of the scale of its
// own theme slot: role i is step i of the scale generated from the
// accent color of slot i. Slots that share an accent share one scale.
package tokens

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/colorix/colors/apca"
	"cogentcore.org/colorix/colors/hsv"
	"cogentcore.org/colorix/scales"
)

// Role is a functional user interface role that is assigned a color.
type Role int32

const (
	AppBackground Role = iota
	SubtleBackground
	UIElementBackground
	HoveredUIElementBackground
	ActiveUIElementBackground
	SubtleBorder
	UIElementBorder
	HoveredUIElementBorder
	SolidBackground
	HoveredSolidBackground
	LowContrastText
	HighContrastText

	// RolesN is the number of roles.
	RolesN
)

var roleLabels = [RolesN]string{
	"app background",
	"subtle background",
	"ui element background",
	"hovered ui element background",
	"active ui element background",
	"subtle borders and separators",
	"ui element border and focus rings",
	"hovered ui element border",
	"solid backgrounds",
	"hovered solid backgrounds",
	"low contrast text",
	"high contrast text",
}

// String returns the human readable label of the role.
func (r Role) String() string {
	if r < 0 || r >= RolesN {
		return fmt.Sprintf("Role(%d)", int32(r))
	}
	return roleLabels[r]
}

// Tokens are the colors assigned to each [Role], plus the ink color
// used for text on [SolidBackground].
type Tokens struct {
	AppBackground              color.RGBA
	SubtleBackground           color.RGBA
	UIElementBackground        color.RGBA
	HoveredUIElementBackground color.RGBA
	ActiveUIElementBackground  color.RGBA
	SubtleBorder               color.RGBA
	UIElementBorder            color.RGBA
	HoveredUIElementBorder     color.RGBA
	SolidBackground            color.RGBA
	HoveredSolidBackground     color.RGBA
	LowContrastText            color.RGBA
	HighContrastText           color.RGBA

	// Ink is the color of text on solid backgrounds
	Ink color.RGBA

	// Inverse is whether Ink is dark because white text is too weak
	// on the solid background
	Inverse bool
}

// field returns a pointer to the color of the given role, or nil.
func (t *Tokens) field(r Role) *color.RGBA {
	switch r {
	case AppBackground:
		return &t.AppBackground
	case SubtleBackground:
		return &t.SubtleBackground
	case UIElementBackground:
		return &t.UIElementBackground
	case HoveredUIElementBackground:
		return &t.HoveredUIElementBackground
	case ActiveUIElementBackground:
		return &t.ActiveUIElementBackground
	case SubtleBorder:
		return &t.SubtleBorder
	case UIElementBorder:
		return &t.UIElementBorder
	case HoveredUIElementBorder:
		return &t.HoveredUIElementBorder
	case SolidBackground:
		return &t.SolidBackground
	case HoveredSolidBackground:
		return &t.HoveredSolidBackground
	case LowContrastText:
		return &t.LowContrastText
	case HighContrastText:
		return &t.HighContrastText
	}
	return nil
}

// Get returns the color of the given role, or the zero color
// for an invalid role.
func (t Tokens) Get(r Role) color.RGBA {
	if f := t.field(r); f != nil {
		return *f
	}
	return color.RGBA{}
}

// Set sets the color of the given role. It does nothing for an
// invalid role. It does not update the ink color; see [Tokens.SetInk].
func (t *Tokens) Set(r Role, c color.RGBA) {
	if f := t.field(r); f != nil {
		*f = c
	}
}

// All returns the colors of all roles in role order.
func (t Tokens) All() [RolesN]color.RGBA {
	var all [RolesN]color.RGBA
	for r := range RolesN {
		all[r] = t.Get(r)
	}
	return all
}

// SetInk sets [Tokens.Ink] and [Tokens.Inverse] from the contrast of
// white text on [Tokens.SolidBackground]. When white is too weak, the
// ink is a near black tinted with the hue of the solid background.
func (t *Tokens) SetInk() {
	if apca.Estimate(apca.White, t.SolidBackground) > apca.InkThreshold {
		t.Inverse = true
		h := hsv.FromColor(t.SolidBackground)
		h.S = 0.7
		h.V = 0.01
		t.Ink = h.AsRGBA()
		return
	}
	t.Inverse = false
	t.Ink = apca.White
}

// Apply returns the tokens for the given theme in the given mode.
// Each distinct spec of the theme is generated only once.
func Apply(theme Theme, mode scales.Mode) Tokens {
	var t Tokens
	cache := map[Spec]scales.Scale{}
	for i, s := range theme {
		sc, ok := cache[s]
		if !ok {
			sc = scales.Generate(s, mode)
			cache[s] = sc
		}
		t.Set(Role(i), sc[i])
	}
	slog.Debug("tokens.Apply", "theme", theme, "mode", mode, "scales", len(cache))
	t.SetInk()
	return t
}

// ApplySlot regenerates only the color of the given slot of the theme
// and then updates the ink color. It does nothing for an index
// outside of 0-11.
func (t *Tokens) ApplySlot(theme Theme, i int, mode scales.Mode) {
	if i < 0 || i >= int(RolesN) {
		slog.Debug("tokens.ApplySlot: slot index out of range", "index", i)
		return
	}
	sc := scales.Generate(theme[i], mode)
	t.Set(Role(i), sc[i])
	t.SetInk()
}
