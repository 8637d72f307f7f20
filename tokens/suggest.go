// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokens

import (
	"fmt"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSimilarity is the similarity above which a name is suggested
// for a misspelled one.
const minSimilarity = 0.5

// closest returns the candidate most similar to s, ignoring case, and
// whether it is similar enough to be suggested.
func closest(s string, candidates []string) (string, bool) {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, score := "", 0.0
	for _, c := range candidates {
		if sim := strutil.Similarity(s, c, lev); sim > score {
			best, score = c, sim
		}
	}
	return best, score >= minSimilarity
}

// didYouMean returns a hint naming the closest candidate, or "".
func didYouMean(s string, candidates []string) string {
	if c, ok := closest(s, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", c)
	}
	return ""
}
