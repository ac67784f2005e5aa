// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package pattern implements the brightness envelopes that can be overlaid on
// top of a frame's base colors.
//
// An envelope is driven by a phase in [0, Split). The phase is advanced once
// per frame by an Accumulator, and Multiplier maps the current phase to a
// brightness multiplier for the selected Mode.
package pattern

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Split is the length of one envelope period, in phase units.
const Split = 1920.0

// Mode is a named envelope shape.
type Mode int

const (
	// None applies no envelope; the multiplier is always 1.
	None Mode = iota
	// Beat is the "beat" envelope.
	Beat
	// Breath is the "breath" envelope.
	Breath
	// Pulse is a square wave: on for the first half of the period, off for the
	// second.
	Pulse
	// Triangle ramps linearly from 0 to 1 over the first half of the period,
	// then back down to 0 over the second.
	Triangle
)

var modeNames = map[Mode]string{
	None:     "none",
	Beat:     "beat",
	Breath:   "breath",
	Pulse:    "pulse",
	Triangle: "triangle",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "unknown"
}

// ParseMode parses a pattern token.
//
// Tokens must match exactly. Unrecognized tokens are not an error: they
// resolve to None, and ok will be false.
func ParseMode(token string) (m Mode, ok bool) {
	for m, n := range modeNames {
		if n == token {
			return m, true
		}
	}
	return None, false
}

// Style selects how the Beat and Breath envelopes are shaped.
type Style int

const (
	// StyleLegacy multiplies by the integer phase itself, matching deployed
	// controllers. The multiplier is not bounded to [0, 1] and grows with the
	// phase.
	StyleLegacy Style = iota
	// StyleBounded keeps Beat and Breath within [0, 1]. Beat is a sharp attack
	// with a quadratic decay; Breath is a raised cosine.
	StyleBounded
)

var styleNames = map[Style]string{
	StyleLegacy:  "legacy",
	StyleBounded: "bounded",
}

func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseStyle parses a Style name.
func ParseStyle(v string) (Style, error) {
	v = strings.ToLower(v)
	for s, n := range styleNames {
		if n == v {
			return s, nil
		}
	}
	return 0, errors.Errorf("unknown envelope style: %q", v)
}

// Multiplier returns the brightness multiplier for mode m at the given phase.
func Multiplier(m Mode, phase float64, s Style) float64 {
	const half = Split / 2

	switch m {
	case None:
		return 1

	case Beat:
		if s == StyleBounded {
			d := 1 - phase/Split
			return d * d
		}
		return math.Trunc(phase)

	case Breath:
		if s == StyleBounded {
			return (1 - math.Cos(2*math.Pi*phase/Split)) / 2
		}
		return math.Trunc(phase)

	case Pulse:
		if math.Trunc(phase) < half {
			return 1
		}
		return 0

	case Triangle:
		if math.Trunc(phase) < half {
			return phase / half
		}
		return 2 - phase/half

	default:
		return 1
	}
}
