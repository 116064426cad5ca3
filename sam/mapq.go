// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import "math"

const (
	// NoMapQ is the MAPQ value indicating that the mapping
	// quality is not available.
	NoMapQ = 255

	// MaxMapQ is the largest estimate returned by MapQ.
	MaxMapQ = 254
)

// MapQ returns a mapping quality estimate for an alignment with the
// best score, score, and the second best score, score2:
//
//  -4.343 * ln(1 - |score-score2|/score)
//
// The result is truncated toward zero. Estimates that are not a number
// or negative are returned as zero, and estimates above MaxMapQ,
// including the infinite estimate for a unique hit (score2 == 0), are
// returned as MaxMapQ. A non-positive score returns NoMapQ.
func MapQ(score, score2 int32) byte {
	if score <= 0 {
		return NoMapQ
	}
	d := math.Abs(float64(score) - float64(score2))
	q := -4.343 * math.Log(1-d/float64(score))
	switch {
	case math.IsNaN(q), q < 0:
		return 0
	case q > MaxMapQ:
		return MaxMapQ
	}
	return byte(q)
}
