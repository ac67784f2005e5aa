// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pattern

import (
	"math"
)

// Accumulator is the envelope phase accumulator.
//
// Its value is always in [0, Split). The zero value is ready to use.
//
// Accumulator is not safe for concurrent use.
type Accumulator struct {
	phase float64
}

// Phase returns the current phase.
func (a *Accumulator) Phase() float64 { return a.phase }

// Advance adds skip to the phase.
//
// When the phase reaches the end of the period it is hard reset to 0, rather
// than wrapped, so the remainder is discarded. A negative skip that moves the
// phase below 0 wraps it back into the period.
func (a *Accumulator) Advance(skip float64) {
	a.phase += skip

	switch {
	case a.phase >= Split || math.IsNaN(a.phase) || math.IsInf(a.phase, 0):
		a.phase = 0
	case a.phase < 0:
		a.phase = math.Mod(a.phase, Split) + Split
		if a.phase >= Split {
			a.phase = 0
		}
	}
}

// Reset sets the phase back to 0.
func (a *Accumulator) Reset() { a.phase = 0 }
