// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package render turns the live animation parameters into frames, and pushes
// those frames to a strip at a fixed rate.
package render

import (
	"math"

	"github.com/danjacques/oscstrip/control"
	"github.com/danjacques/oscstrip/pattern"
	"github.com/danjacques/oscstrip/pixel"
	"github.com/danjacques/oscstrip/support/logging"
)

// DefaultRollInterval is the default number of wheel positions between
// neighbouring pixels in rainbow mode.
const DefaultRollInterval = 1.0

// Phase is the state of a Generator's phase accumulators.
type Phase struct {
	// Rainbow is the rainbow roll phase, in [0, 255].
	Rainbow float64
	// Pattern is the envelope phase, in [0, pattern.Split).
	Pattern float64
}

// Generator produces one frame per call to Render.
//
// Generator owns the animation's phase accumulators. It is not safe for
// concurrent use; it is expected to be driven by a single render goroutine.
type Generator struct {
	// RollInterval is the spatial spread of the rainbow, in wheel positions per
	// pixel.
	RollInterval float64

	// Style selects the shape of the Beat and Breath envelopes.
	Style pattern.Style

	// Clamp, if true, clamps luminosity to [0, 1] and every output channel to
	// [0, 255]. Otherwise, channel values are passed through to the strip
	// unmodified.
	Clamp bool

	// Logger is the logger instance to use. If nil, no logs will be generated.
	Logger logging.L

	rollPhase float64
	envelope  pattern.Accumulator

	frame []pixel.RGB
}

// NewGenerator returns a Generator for a strip with numPixels pixels.
func NewGenerator(numPixels int) *Generator {
	return &Generator{
		RollInterval: DefaultRollInterval,
		frame:        make([]pixel.RGB, numPixels),
	}
}

// Phase returns the current phase accumulator state.
func (g *Generator) Phase() Phase {
	return Phase{
		Rainbow: g.rollPhase,
		Pattern: g.envelope.Phase(),
	}
}

// Render produces the next frame from p and advances the phase accumulators.
//
// The returned slice is owned by g, and is only valid until the next call to
// Render.
func (g *Generator) Render(p control.Params) []pixel.RGB {
	// Base colors.
	switch p.ColorMode {
	case control.ColorPoint:
		for i := range g.frame {
			g.frame[i] = p.PointColor
		}

	default:
		g.fillRainbow()
		g.advanceRoll(p.RainbowRollSkip)
	}

	// Envelope. The multiplier is uniform across the strip, so it is computed
	// once per frame.
	if p.PatternMode != pattern.None {
		m := pattern.Multiplier(p.PatternMode, g.envelope.Phase(), g.Style)
		g.scale(m)
	}
	g.envelope.Advance(p.PatternSkip)

	// Luminosity.
	lum := p.Luminosity
	if g.Clamp {
		lum = math.Max(0, math.Min(1, lum))
	}
	g.scale(lum)

	if g.Clamp {
		for i := range g.frame {
			g.frame[i] = g.frame[i].Clamp()
		}
	}

	return g.frame
}

func (g *Generator) fillRainbow() {
	for i := range g.frame {
		g.frame[i] = pixel.Wheel(int(float64(i)*g.RollInterval + g.rollPhase))
	}
}

// advanceRoll advances the rainbow phase, hard resetting it to the opposite
// end of the wheel when it leaves [0, 255].
func (g *Generator) advanceRoll(skip float64) {
	g.rollPhase += skip

	switch {
	case math.IsNaN(g.rollPhase) || math.IsInf(g.rollPhase, 0):
		g.rollPhase = 0
	case g.rollPhase > 255:
		g.rollPhase = 0
	case g.rollPhase < 0:
		g.rollPhase = 255
	}
	g.logger().Debugf("Rainbow roll phase: %v", g.rollPhase)
}

func (g *Generator) scale(v float64) {
	if v == 1 {
		return
	}
	for i := range g.frame {
		g.frame[i] = g.frame[i].Scale(v)
	}
}

func (g *Generator) logger() logging.L { return logging.Must(g.Logger) }
