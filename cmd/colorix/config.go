// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/colorix/base/errors"
	"cogentcore.org/colorix/scales"
	"cogentcore.org/colorix/tokens"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	envPrefix = "COLORIX"

	keyMode   = "mode"
	keyDark   = "dark"
	keyTheme  = "theme"
	keyFormat = "format"
	keyColor  = "color"
	keyThemes = "themes"
)

var (
	formats    = []string{"text", "yaml", "toml", "json"}
	colorModes = []string{"never", "auto", "always"}
)

// Config is the resolved configuration of a colorix command.
type Config struct {

	// Mode is the appearance mode scales are generated for
	Mode scales.Mode

	// Theme is the name of the default theme
	Theme string

	// Format is the output format: text, yaml, toml or json
	Format string

	// Color is when to use terminal colors: never, auto or always
	Color string

	// Themes are the extra named themes from the config file
	Themes []tokens.NamedTheme
}

// newViper returns a viper instance with the defaults and the
// COLORIX_* environment variables applied.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyMode, scales.Light.String())
	v.SetDefault(keyTheme, tokens.Themes[0].Name)
	v.SetDefault(keyFormat, "text")
	v.SetDefault(keyColor, "auto")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// readConfigFile reads the given config file, or config.toml / config.yaml
// in the user config directory if file is empty. A missing default
// config file is not an error.
func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		f, err := homedir.Expand(file)
		if err != nil {
			return fmt.Errorf("config file %q: %w", file, err)
		}
		file = f
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		if dir := errors.Log1(os.UserConfigDir()); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "colorix"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &nf) {
			return nil
		}
		if file != "" && errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %q does not exist", file)
		}
		return fmt.Errorf("reading config: %w", err)
	}
	slog.Info("colorix: using config file", "file", v.ConfigFileUsed())
	return nil
}

// loadConfig resolves the [Config] from the given viper instance.
func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Theme:  v.GetString(keyTheme),
		Format: strings.ToLower(v.GetString(keyFormat)),
		Color:  strings.ToLower(v.GetString(keyColor)),
	}
	mode, err := scales.ParseMode(v.GetString(keyMode))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", keyMode, err)
	}
	if v.GetBool(keyDark) {
		mode = scales.Dark
	}
	cfg.Mode = mode
	if !slices.Contains(formats, cfg.Format) {
		return nil, fmt.Errorf("config %s: unknown format %q (want one of %s)", keyFormat, cfg.Format, strings.Join(formats, ", "))
	}
	if !slices.Contains(colorModes, cfg.Color) {
		return nil, fmt.Errorf("config %s: unknown color mode %q (want one of %s)", keyColor, cfg.Color, strings.Join(colorModes, ", "))
	}
	cfg.Themes, err = parseThemes(v.GetStringMapStringSlice(keyThemes))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseThemes parses the extra named themes of the config file, each
// of which is a list of 12 specs. Themes are sorted by name. Errors in
// every theme are reported together.
func parseThemes(m map[string][]string) ([]tokens.NamedTheme, error) {
	var nts []tokens.NamedTheme
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(m)) {
		specs := m[name]
		if len(specs) != len(tokens.Theme{}) {
			errs = append(errs, fmt.Errorf("config theme %q: got %d colors, want %d", name, len(specs), len(tokens.Theme{})))
			continue
		}
		nt := tokens.NamedTheme{Name: name}
		for i, s := range specs {
			sp, err := tokens.ParseSpec(s)
			if err != nil {
				errs = append(errs, fmt.Errorf("config theme %q: %w", name, err))
				continue
			}
			nt.Theme[i] = sp
		}
		nts = append(nts, nt)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return nts, nil
}
