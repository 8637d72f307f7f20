// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/colorix/base/errors"
	"github.com/fsnotify/fsnotify"
)

// reload re-reads the config file and resolves the configuration again.
func (a *App) reload() error {
	if err := a.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	cfg, err := loadConfig(a.viper)
	if err != nil {
		return err
	}
	a.Config = cfg
	return nil
}

// watchConfig calls render every time the config file is written, until
// ctx is done. Invalid configs are logged and skipped.
func (a *App) watchConfig(ctx context.Context, render func() error) error {
	file := a.viper.ConfigFileUsed()
	if file == "" {
		return errors.New("watching requires a config file")
	}
	file = filepath.Clean(file)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watching config: %w", err)
	}
	slog.Info("colorix: watching config file", "file", file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := a.reload(); err != nil {
				slog.Error("colorix: reloading config", "err", err)
				continue
			}
			errors.Log(render())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("colorix: config watcher error", "err", err)
		}
	}
}
