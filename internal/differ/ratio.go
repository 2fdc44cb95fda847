package differ

import (
	"math"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RatioCalculator computes a character-level similarity ratio between two
// texts. The ratio is deliberately derived from a separate character
// alignment rather than from the line-level opcodes, so that small in-line
// edits still score as mostly similar.
type RatioCalculator struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewRatioCalculator creates a new ratio calculator
func NewRatioCalculator() *RatioCalculator {
	return &RatioCalculator{dmp: diffmatchpatch.New()}
}

// Ratio returns a similarity score in [0,100]: 2*M/T*100 where M is the
// matched character count and T the sum of both text lengths. Two empty
// texts score 100.
func (rc *RatioCalculator) Ratio(original, modernized string) float64 {
	total := utf8.RuneCountInString(original) + utf8.RuneCountInString(modernized)
	if total == 0 {
		return 100.0
	}

	diffs := rc.dmp.DiffMain(original, modernized, false)
	matched := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}

	return roundRatio(2.0 * float64(matched) / float64(total) * 100.0)
}

// roundRatio rounds to two decimal places
func roundRatio(value float64) float64 {
	return math.Round(value*100) / 100
}
