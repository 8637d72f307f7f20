// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"cogentcore.org/colorix"
	"cogentcore.org/colorix/base/iox/imagex"
	"cogentcore.org/colorix/base/logx"
	"cogentcore.org/colorix/colors/apca"
	"cogentcore.org/colorix/colors/hsv"
	"cogentcore.org/colorix/scales"
	"cogentcore.org/colorix/tokens"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App holds the state shared by the colorix commands.
type App struct {
	viper *viper.Viper

	// Config is resolved before any command runs
	Config *Config

	configFile         string
	verbose, vv, quiet bool
}

// NewRootCmd returns the colorix root command with all subcommands.
func NewRootCmd() *cobra.Command {
	a := &App{viper: newViper()}
	root := &cobra.Command{
		Use:           "colorix",
		Short:         "Generate and preview perceptual color scales and themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/colorix/config.toml)")
	pf.Bool(keyDark, false, "generate for dark mode")
	pf.StringP(keyFormat, "f", "text", "output format: text, yaml, toml or json")
	pf.String(keyColor, "auto", "when to use terminal colors: never, auto or always")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVar(&a.vv, "vv", false, "print debug messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only print errors")
	for _, key := range []string{keyDark, keyFormat, keyColor} {
		_ = a.viper.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		a.scaleCmd(),
		a.themeCmd(),
		a.themesCmd(),
		a.presetsCmd(),
		a.contrastCmd(),
		a.customCmd(),
	)
	return root
}

// init sets up logging and resolves the configuration.
func (a *App) init() error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.verbose, a.quiet)
	logx.SetDefaultLogger()
	if err := readConfigFile(a.viper, a.configFile); err != nil {
		return err
	}
	cfg, err := loadConfig(a.viper)
	if err != nil {
		return err
	}
	a.Config = cfg
	setColorProfile(cfg.Color)
	return nil
}

// swatchSize is the size in pixels of each color in saved images.
const swatchSize = 48

// saveImage saves the given rows of colors as a swatch image, if file
// is not empty.
func saveImage(file string, rows ...[]color.RGBA) error {
	if file == "" {
		return nil
	}
	if err := imagex.Save(imagex.Swatches(rows, swatchSize), file); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	slog.Info("colorix: saved image", "file", file)
	return nil
}

func (a *App) scaleCmd() *cobra.Command {
	var imageFile string
	cmd := &cobra.Command{
		Use:   "scale <color>",
		Short: "Print the 12 step scale of a preset name or hex color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := tokens.ParseSpec(args[0])
			if err != nil {
				return err
			}
			sc := scales.Generate(spec, a.Config.Mode)
			if err := saveImage(imageFile, sc[:]); err != nil {
				return err
			}
			return a.printScale(cmd.OutOrStdout(), spec, sc)
		},
	}
	cmd.Flags().StringVar(&imageFile, "image", "", "also save the scale as an image (png, jpg, gif, tiff or bmp)")
	return cmd
}

func (a *App) printScale(w io.Writer, spec tokens.Spec, sc scales.Scale) error {
	if a.Config.Format != "text" {
		return encode(w, a.Config.Format, ScaleOutput{Accent: spec.String(), Mode: a.Config.Mode.String(), Steps: hexes(sc[:])})
	}
	fmt.Fprintf(w, "%s (%s)\n", spec, a.Config.Mode)
	for i, c := range sc {
		fmt.Fprintf(w, "%2d %s %s  %s\n", i, swatch(c), hex(c), tokens.Role(i))
	}
	return nil
}

func (a *App) themeCmd() *cobra.Command {
	var (
		sets       []string
		background string
		goLiteral  bool
		imageFile  string
		watch      bool
	)
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Print the tokens of a preset or configured theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			render := func() error {
				return a.renderTheme(cmd.OutOrStdout(), args, sets, background, goLiteral, imageFile)
			}
			if err := render(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watchConfig(ctx, render)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a slot, as index=color (for example 8=orange)")
	cmd.Flags().StringVar(&background, "background", "", "also print the background gradient: ui or accent")
	cmd.Flags().BoolVar(&goLiteral, "go", false, "print the theme as a Go literal")
	cmd.Flags().StringVar(&imageFile, "image", "", "also save the tokens as an image (png, jpg, gif, tiff or bmp)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print again whenever the config file changes")
	return cmd
}

// renderTheme prints the named theme, or the configured default theme
// if args is empty, with the given slot overrides applied.
func (a *App) renderTheme(w io.Writer, args, sets []string, background string, goLiteral bool, imageFile string) error {
	name := a.Config.Theme
	if len(args) > 0 {
		name = args[0]
	}
	cx := colorix.New(tokens.Egui, a.Config.Mode, a.Config.Themes...)
	if err := cx.SetThemeByName(name); err != nil {
		return err
	}
	for _, s := range sets {
		i, spec, err := parseSet(s)
		if err != nil {
			return err
		}
		cx.SetSlot(i, spec)
	}
	if goLiteral {
		_, err := fmt.Fprintf(w, "%#v\n", cx.Theme())
		return err
	}
	var bg []color.RGBA
	switch background {
	case "":
	case "ui", "accent":
		bg = gradientRows(cx, background == "accent", 6)
	default:
		return fmt.Errorf("unknown background %q (want ui or accent)", background)
	}
	tk := cx.Tokens()
	all := tk.All()
	rows := [][]color.RGBA{all[:]}
	if len(bg) > 0 {
		rows = append(rows, bg)
	}
	if err := saveImage(imageFile, rows...); err != nil {
		return err
	}
	return a.printTheme(w, cx, bg)
}

// parseSet parses a slot override of the form index=color.
func parseSet(s string) (int, tokens.Spec, error) {
	idx, col, ok := strings.Cut(s, "=")
	if !ok {
		return 0, tokens.Spec{}, fmt.Errorf("invalid slot override %q (want index=color)", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil || i < 0 || i >= int(tokens.RolesN) {
		return 0, tokens.Spec{}, fmt.Errorf("invalid slot index in %q (want 0-%d)", s, tokens.RolesN-1)
	}
	spec, err := tokens.ParseSpec(col)
	if err != nil {
		return 0, tokens.Spec{}, err
	}
	return i, spec, nil
}

// gradientRows samples the background gradient of cx at the given
// number of rows.
func gradientRows(cx *colorix.Colorix, accent bool, rows int) []color.RGBA {
	if rows <= 0 {
		return nil
	}
	g := cx.Background(accent, image.Rect(0, 0, 1, rows))
	cs := make([]color.RGBA, rows)
	if rows == 1 {
		cs[0] = g.GetColor(0)
		return cs
	}
	for y := range rows {
		cs[y] = g.GetColor(float32(y) / float32(rows-1))
	}
	return cs
}

func (a *App) printTheme(w io.Writer, cx *colorix.Colorix, bg []color.RGBA) error {
	tk := cx.Tokens()
	theme := cx.Theme()
	name := ""
	if i := cx.ThemeIndex(); i >= 0 {
		name = cx.ThemeNames()[i]
	}
	if a.Config.Format != "text" {
		out := ThemeOutput{Name: name, Mode: cx.Mode().String(), Ink: hex(tk.Ink), Inverse: tk.Inverse, Background: hexes(bg)}
		for i, c := range tk.All() {
			out.Roles = append(out.Roles, RoleOutput{Role: tokens.Role(i).String(), Spec: theme[i].String(), Color: hex(c)})
		}
		return encode(w, a.Config.Format, out)
	}
	if name == "" {
		name = "custom theme"
	}
	fmt.Fprintf(w, "%s (%s)\n", name, cx.Mode())
	for i, c := range tk.All() {
		fmt.Fprintf(w, "%2d %s %s  %-10s %s\n", i, swatch(c), hex(c), theme[i], tokens.Role(i))
	}
	inv := ""
	if tk.Inverse {
		inv = " (inverse)"
	}
	fmt.Fprintf(w, "ink %s %s%s %s\n", swatch(tk.Ink), hex(tk.Ink), inv, sample(tk.Ink, tk.SolidBackground))
	if len(bg) > 0 {
		fmt.Fprintln(w, "background")
		for _, c := range bg {
			fmt.Fprintf(w, "   %s %s\n", swatch(c), hex(c))
		}
	}
	return nil
}

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the preset and configured themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := tokens.ThemeNames(a.Config.Themes...)
			w := cmd.OutOrStdout()
			if a.Config.Format != "text" {
				return encode(w, a.Config.Format, ListOutput{Themes: names})
			}
			for _, name := range names {
				th, err := tokens.ThemeByName(name, a.Config.Themes...)
				if err != nil {
					return err
				}
				tk := tokens.Apply(th, a.Config.Mode)
				fmt.Fprintf(w, "%s %s %s %s  %s\n", swatch(tk.AppBackground), swatch(tk.UIElementBackground),
					swatch(tk.SolidBackground), swatch(tk.HighContrastText), name)
			}
			return nil
		},
	}
}

func (a *App) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the catalog colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out ListOutput
			for _, p := range tokens.Presets()[:tokens.Custom] {
				out.Presets = append(out.Presets, PresetOutput{Name: p.String(), Color: hex(p.Color())})
			}
			w := cmd.OutOrStdout()
			if a.Config.Format != "text" {
				return encode(w, a.Config.Format, out)
			}
			for _, p := range tokens.Presets()[:tokens.Custom] {
				fmt.Fprintf(w, "%s %s  %s\n", swatch(p.Color()), hex(p.Color()), p)
			}
			return nil
		},
	}
}

func (a *App) contrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <text> <background>",
		Short: "Estimate the lightness contrast (Lc) of text on a background",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := tokens.ParseSpec(args[0])
			if err != nil {
				return err
			}
			bg, err := tokens.ParseSpec(args[1])
			if err != nil {
				return err
			}
			lc := apca.Estimate(text, bg)
			w := cmd.OutOrStdout()
			if a.Config.Format != "text" {
				return encode(w, a.Config.Format, ContrastOutput{Text: text.String(), Background: bg.String(), Lc: lc})
			}
			_, err = fmt.Fprintf(w, "%s Lc %.1f\n", sample(text.AsRGBA(), bg.AsRGBA()), lc)
			return err
		},
	}
}

func (a *App) customCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "custom <h> <s> <v>",
		Short: "Clamp a custom HSV color (0-1, over linear RGB) and print its scale",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hv [3]float32
			for i, s := range args {
				f, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return fmt.Errorf("invalid component %q: %w", s, err)
				}
				hv[i] = float32(f)
			}
			cx := colorix.New(tokens.Egui, a.Config.Mode, a.Config.Themes...)
			cx.SetCustom(hsv.New(hv[0], hv[1], hv[2]))
			c := cx.Custom()
			spec := cx.CustomSpec()
			sc := scales.Generate(spec, a.Config.Mode)
			w := cmd.OutOrStdout()
			if a.Config.Format != "text" {
				return encode(w, a.Config.Format, CustomOutput{H: c.H, S: c.S, V: c.V, Color: spec.String(), Steps: hexes(sc[:])})
			}
			fmt.Fprintf(w, "%s -> %s\n", c, spec)
			return a.printScale(w, spec, sc)
		},
	}
}
