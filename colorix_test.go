// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorix

import (
	"image"
	"testing"

	"cogentcore.org/colorix/base/tolassert"
	"cogentcore.org/colorix/colors/hsv"
	"cogentcore.org/colorix/scales"
	"cogentcore.org/colorix/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cx := New(tokens.Egui, scales.Light)
	assert.Equal(t, tokens.Egui, cx.Theme())
	assert.Equal(t, scales.Light, cx.Mode())
	assert.Equal(t, tokens.Apply(tokens.Egui, scales.Light), cx.Tokens())
	assert.Equal(t, 0, cx.ThemeIndex())

	all := cx.Tokens().All()
	assert.Equal(t, cx.Tokens().Get(tokens.SolidBackground), all[tokens.SolidBackground])
}

func TestToggleMode(t *testing.T) {
	cx := New(tokens.Cool, scales.Light)
	light := cx.Tokens()
	cx.ToggleMode()
	assert.Equal(t, scales.Dark, cx.Mode())
	assert.Equal(t, tokens.Apply(tokens.Cool, scales.Dark), cx.Tokens())
	assert.NotEqual(t, light, cx.Tokens())
	cx.ToggleMode()
	assert.Equal(t, scales.Light, cx.Mode())
	assert.Equal(t, light, cx.Tokens())

	cx.SetMode(scales.Light)
	assert.Equal(t, light, cx.Tokens())
}

func TestSetThemeByName(t *testing.T) {
	mine := tokens.NamedTheme{Name: "Mine", Theme: tokens.Seventies}
	mine.Theme[0] = tokens.Jade.Spec()
	cx := New(tokens.Egui, scales.Dark, mine)

	require.NoError(t, cx.SetThemeByName("warm"))
	assert.Equal(t, tokens.Warm, cx.Theme())
	assert.Equal(t, 3, cx.ThemeIndex())

	require.NoError(t, cx.SetThemeByName("mine"))
	assert.Equal(t, mine.Theme, cx.Theme())
	assert.Equal(t, len(tokens.Themes), cx.ThemeIndex())
	assert.Equal(t, tokens.Apply(mine.Theme, scales.Dark), cx.Tokens())
	assert.Equal(t, "Mine", cx.ThemeNames()[cx.ThemeIndex()])

	assert.Error(t, cx.SetThemeByName("nope"))
	assert.Equal(t, mine.Theme, cx.Theme())
}

func TestSetSlot(t *testing.T) {
	cx := New(tokens.Egui, scales.Light)
	cx.SetSlot(8, tokens.Orange.Spec())
	assert.Equal(t, tokens.Orange.Spec(), cx.Theme()[8])
	assert.Equal(t, -1, cx.ThemeIndex())

	want := tokens.Apply(cx.Theme(), scales.Light)
	got := cx.Tokens()
	assert.Equal(t, want.SolidBackground, got.SolidBackground)
	assert.Equal(t, want.Ink, got.Ink)

	before := cx.Theme()
	cx.SetSlot(12, tokens.Red.Spec())
	assert.Equal(t, before, cx.Theme())
}

func TestCustom(t *testing.T) {
	cx := New(tokens.Egui, scales.Light)
	tolassert.Equal(t, 0.13, cx.Custom().V)
	tolassert.Equal(t, 0.3, cx.Custom().S)

	cx.SetCustom(hsv.New(0.15, 0.97, 1))
	tolassert.Equal(t, 0.99, cx.Custom().V)
	tolassert.Equal(t, 0.97, cx.Custom().S)

	spec := cx.CustomSpec()
	assert.Equal(t, tokens.Custom, spec.Preset)
	assert.Equal(t, cx.Custom().AsRGBA(), spec.AsRGBA())

	cx.SetSlot(0, spec)
	assert.Equal(t, spec, cx.Theme()[0])
}

func TestBackground(t *testing.T) {
	cx := New(tokens.IndigoJade, scales.Dark)
	box := image.Rect(0, 0, 10, 100)
	tk := cx.Tokens()

	bg := cx.Background(false, box)
	assert.Equal(t, box, bg.Bounds())
	assert.Equal(t, tk.AppBackground, bg.At(0, 0))
	assert.Equal(t, tk.UIElementBackground, bg.At(0, 99))

	bg = cx.Background(true, box)
	assert.Equal(t, tk.AppBackground, bg.At(5, 0))
	assert.Equal(t, scales.Generate(tokens.Jade.Spec(), scales.Dark)[2], bg.At(5, 99))
}
