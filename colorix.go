// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorix generates perceptually balanced 12 step color scales
// from accent colors and maps them onto the functional roles of a user
// interface. It is built from the following packages:
//
//   - [cogentcore.org/colorix/colors/apca] estimates text contrast
//   - [cogentcore.org/colorix/scales] generates light and dark scales
//   - [cogentcore.org/colorix/tokens] maps themes onto roles
//
// A [Colorix] holds the theme state of an application.
package colorix

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/colorix/colors/gradient"
	"cogentcore.org/colorix/colors/hsv"
	"cogentcore.org/colorix/scales"
	"cogentcore.org/colorix/tokens"
)

// Colorix is the color theme state of an application: the current
// theme and mode, the tokens derived from them, and the custom color
// being edited. It is not safe for concurrent use.
type Colorix struct {
	theme  tokens.Theme
	mode   scales.Mode
	tokens tokens.Tokens
	custom hsv.HSV

	// extra are the themes available in addition to [tokens.Themes]
	extra []tokens.NamedTheme
}

// New returns a new [Colorix] for the given theme and mode, with the
// given extra named themes available to [Colorix.SetThemeByName].
func New(theme tokens.Theme, mode scales.Mode, extra ...tokens.NamedTheme) *Colorix {
	cx := &Colorix{
		theme:  theme,
		mode:   mode,
		custom: scales.ClampCustom(hsv.HSV{}),
		extra:  extra,
	}
	cx.update()
	return cx
}

// update regenerates all of the tokens.
func (cx *Colorix) update() {
	cx.tokens = tokens.Apply(cx.theme, cx.mode)
	slog.Debug("colorix: updated tokens", "theme", cx.theme, "mode", cx.mode, "inverse", cx.tokens.Inverse)
}

// Theme returns the current theme.
func (cx *Colorix) Theme() tokens.Theme {
	return cx.theme
}

// Tokens returns the current tokens.
func (cx *Colorix) Tokens() tokens.Tokens {
	return cx.tokens
}

// Mode returns the current mode.
func (cx *Colorix) Mode() scales.Mode {
	return cx.mode
}

// SetMode sets the mode and regenerates the tokens if it changed.
func (cx *Colorix) SetMode(mode scales.Mode) {
	if mode == cx.mode {
		return
	}
	cx.mode = mode
	cx.update()
}

// ToggleMode switches between light and dark mode.
func (cx *Colorix) ToggleMode() {
	if cx.mode.IsDark() {
		cx.SetMode(scales.Light)
	} else {
		cx.SetMode(scales.Dark)
	}
}

// SetTheme sets the theme and regenerates the tokens.
func (cx *Colorix) SetTheme(theme tokens.Theme) {
	cx.theme = theme
	cx.update()
}

// SetThemeByName sets the theme to the preset or extra theme with
// the given name.
func (cx *Colorix) SetThemeByName(name string) error {
	theme, err := tokens.ThemeByName(name, cx.extra...)
	if err != nil {
		return err
	}
	cx.SetTheme(theme)
	return nil
}

// ThemeIndex returns the index of the current theme in [Colorix.ThemeNames],
// or -1 if the theme has been customized.
func (cx *Colorix) ThemeIndex() int {
	return tokens.ThemeIndex(cx.theme, cx.extra...)
}

// ThemeNames returns the names of the available themes.
func (cx *Colorix) ThemeNames() []string {
	return tokens.ThemeNames(cx.extra...)
}

// SetSlot sets the spec of one slot of the theme and regenerates only
// the token of that slot and the ink color. It does nothing for an
// index outside of 0-11.
func (cx *Colorix) SetSlot(i int, spec tokens.Spec) {
	if i < 0 || i >= len(cx.theme) {
		slog.Debug("colorix.SetSlot: slot index out of range", "index", i)
		return
	}
	cx.theme[i] = spec
	cx.tokens.ApplySlot(cx.theme, i, cx.mode)
}

// Custom returns the custom color being edited.
func (cx *Colorix) Custom() hsv.HSV {
	return cx.custom
}

// SetCustom sets the custom color being edited, clamped with
// [scales.ClampCustom].
func (cx *Colorix) SetCustom(c hsv.HSV) {
	cx.custom = scales.ClampCustom(c)
}

// CustomSpec returns the custom color as a [tokens.Spec] that can be
// assigned to a theme slot with [Colorix.SetSlot].
func (cx *Colorix) CustomSpec() tokens.Spec {
	return tokens.FromColor(cx.custom)
}

// Background returns a vertical gradient filling the given bounds, for
// painting behind the widgets of the application. It runs from the
// app background to the ui element background, or, if accent is true,
// to step 2 of the scale of the solid background slot.
func (cx *Colorix) Background(accent bool, box image.Rectangle) *gradient.Linear {
	var bottom color.RGBA
	if accent {
		bottom = scales.Generate(cx.theme[tokens.SolidBackground], cx.mode)[2]
	} else {
		bottom = cx.tokens.UIElementBackground
	}
	return gradient.NewLinear(cx.tokens.AppBackground, bottom, box)
}
