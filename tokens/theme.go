// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokens

import (
	"fmt"
	"strings"
)

// Theme assigns an accent [Spec] to each of the 12 [Role]s.
type Theme [RolesN]Spec

// String returns the specs of the theme as a bracketed list.
func (t Theme) String() string {
	ss := make([]string, len(t))
	for i, s := range t {
		ss[i] = s.String()
	}
	return "[" + strings.Join(ss, ", ") + "]"
}

// GoString returns the theme as a Go composite literal that can be
// pasted into source code.
func (t Theme) GoString() string {
	var b strings.Builder
	b.WriteString("tokens.Theme{\n")
	for _, s := range t {
		if s.Preset == Custom {
			fmt.Fprintf(&b, "\ttokens.RGB(%d, %d, %d),\n", s.RGB.R, s.RGB.G, s.RGB.B)
		} else {
			fmt.Fprintf(&b, "\ttokens.%s.Spec(),\n", s.Preset)
		}
	}
	b.WriteString("}")
	return b.String()
}

var (
	gray     = Gray.Spec()
	eguiBlue = EguiBlue.Spec()
)

// The preset themes.
var (
	Egui = Theme{gray, gray, gray, gray, gray, gray, gray, gray, eguiBlue, eguiBlue, gray, gray}

	IndigoJade = Theme{gray, gray, Indigo.Spec(), gray, gray, gray, gray,
		Jade.Spec(), Jade.Spec(), Jade.Spec(), gray, gray}

	GrassBronze = Theme{gray, gray, Grass.Spec(), Bronze.Spec(), Bronze.Spec(), gray, gray,
		Green.Spec(), Bronze.Spec(), Bronze.Spec(), gray, gray}

	Warm = Theme{gray, gray, Orange.Spec(), Gold.Spec(), Gold.Spec(), Gold.Spec(),
		Red.Spec(), Red.Spec(), Gold.Spec(), Gold.Spec(), gray, Teal.Spec()}

	Cool = Theme{gray, Indigo.Spec(), Indigo.Spec(), Iris.Spec(), Indigo.Spec(), gray,
		Iris.Spec(), Indigo.Spec(), Blue.Spec(), Indigo.Spec(), Orange.Spec(), gray}

	Seventies = Theme{RGB(95, 78, 163), Pink.Spec(), Pink.Spec(), RGB(95, 78, 163),
		RGB(95, 78, 163), RGB(254, 180, 0), RGB(95, 78, 163), RGB(95, 78, 163),
		RGB(254, 180, 0), RGB(254, 180, 0), gray, gray}

	OfficeGray = Theme{RGB(140, 149, 138), RGB(140, 149, 138), RGB(140, 149, 138),
		RGB(122, 166, 168), gray, RGB(122, 166, 168), RGB(122, 166, 168), RGB(122, 166, 168),
		RGB(59, 71, 97), RGB(59, 71, 97), RGB(185, 178, 168), RGB(185, 178, 168)}
)

// NamedTheme is a theme with a display name.
type NamedTheme struct {
	Name  string
	Theme Theme
}

// Themes are the preset themes, in display order.
var Themes = []NamedTheme{
	{"Egui", Egui},
	{"Indigo/jade", IndigoJade},
	{"Grass/bronze", GrassBronze},
	{"Warm", Warm},
	{"Cool", Cool},
	{"Seventies", Seventies},
	{"Office Gray", OfficeGray},
}

// ThemeByName returns the theme with the given name (case-insensitive)
// from the preset [Themes] followed by any extra themes.
func ThemeByName(name string, extra ...NamedTheme) (Theme, error) {
	if i := indexByName(name, extra); i >= 0 {
		return themeAt(i, extra), nil
	}
	return Theme{}, fmt.Errorf("tokens.ThemeByName: no theme named %q%s", name, didYouMean(name, ThemeNames(extra...)))
}

// ThemeIndex returns the index of the given theme in the preset
// [Themes] followed by any extra themes, or -1 if it is not present.
func ThemeIndex(t Theme, extra ...NamedTheme) int {
	for i := range len(Themes) + len(extra) {
		if themeAt(i, extra) == t {
			return i
		}
	}
	return -1
}

// ThemeNames returns the names of the preset [Themes] followed by
// those of any extra themes.
func ThemeNames(extra ...NamedTheme) []string {
	names := make([]string, 0, len(Themes)+len(extra))
	for _, nt := range Themes {
		names = append(names, nt.Name)
	}
	for _, nt := range extra {
		names = append(names, nt.Name)
	}
	return names
}

func indexByName(name string, extra []NamedTheme) int {
	name = strings.TrimSpace(name)
	for i, nt := range Themes {
		if strings.EqualFold(nt.Name, name) {
			return i
		}
	}
	for i, nt := range extra {
		if strings.EqualFold(nt.Name, name) {
			return len(Themes) + i
		}
	}
	return -1
}

func themeAt(i int, extra []NamedTheme) Theme {
	if i < len(Themes) {
		return Themes[i].Theme
	}
	return extra[i-len(Themes)].Theme
}
