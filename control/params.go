// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package control holds the live animation parameters and the handlers that
// update them in response to control messages.
//
// Parameters are published as immutable Params snapshots. Control handlers
// may run on any goroutine; each handler builds a new snapshot with a single
// field changed and swaps it in atomically. The render loop reads one snapshot
// per frame, so it never observes a partially applied message.
package control

import (
	"github.com/danjacques/oscstrip/pattern"
	"github.com/danjacques/oscstrip/pixel"
)

// ColorMode selects the source of a frame's base colors.
type ColorMode int

const (
	// ColorRainbow fills the strip from a rolling color wheel.
	ColorRainbow ColorMode = iota
	// ColorPoint fills the strip with a single solid color.
	ColorPoint
)

func (m ColorMode) String() string {
	switch m {
	case ColorRainbow:
		return "rainbow"
	case ColorPoint:
		return "point"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a color mode token.
//
// Tokens must match exactly. Unrecognized tokens are not an error: they
// resolve to ColorRainbow, and ok will be false.
func ParseColorMode(token string) (m ColorMode, ok bool) {
	switch token {
	case "point":
		return ColorPoint, true
	case "rainbow":
		return ColorRainbow, true
	default:
		return ColorRainbow, false
	}
}

// Params is a snapshot of the live animation parameters.
//
// A Params that has been published by a State must not be modified.
type Params struct {
	// ColorMode is the base color source.
	ColorMode ColorMode
	// PointColor is the solid color used in ColorPoint mode.
	PointColor pixel.RGB
	// RainbowRollSkip is the per-frame increment of the rainbow phase.
	RainbowRollSkip float64

	// PatternMode is the envelope overlaid on the base colors.
	PatternMode pattern.Mode
	// PatternSkip is the per-frame increment of the envelope phase.
	PatternSkip float64

	// Luminosity scales every output channel.
	Luminosity float64
}

// DefaultParams returns the parameters in effect before any control message
// has been received.
func DefaultParams() Params {
	return Params{
		ColorMode:       ColorRainbow,
		PointColor:      pixel.RGB{R: 255},
		RainbowRollSkip: 1.0,
		PatternMode:     pattern.None,
		PatternSkip:     16.0,
		Luminosity:      1.0,
	}
}
