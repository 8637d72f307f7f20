// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errUnknown = New("unknown preset")

func lookup(ok bool) (int, error) {
	if !ok {
		return 0, fmt.Errorf("lookup: %w", errUnknown)
	}
	return 8, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := Log(errUnknown)
	assert.ErrorIs(t, err, errUnknown)

	assert.Equal(t, 8, Log1(lookup(true)))
	assert.Equal(t, 0, Log1(lookup(false)))
}

func TestWrap(t *testing.T) {
	_, err := lookup(false)
	assert.True(t, Is(err, errUnknown))
	joined := Join(err, New("other"))
	assert.ErrorIs(t, joined, errUnknown)
	assert.Nil(t, Join())

	var pe interface{ Unwrap() error }
	assert.True(t, As(err, &pe))
}
