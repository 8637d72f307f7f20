// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorix previews and exports color scales and themes in the
// terminal.
package main

import (
	"os"

	"cogentcore.org/colorix/base/errors"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
