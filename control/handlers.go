// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package control

import (
	"math"

	"github.com/danjacques/oscstrip/pattern"
	"github.com/danjacques/oscstrip/pixel"
	"github.com/danjacques/oscstrip/support/logging"

	"github.com/pkg/errors"
)

// DefaultRollSpeedScale is the default factor applied to rainbow roll speed
// messages.
const DefaultRollSpeedScale = 1.0

// ErrZeroTempo is returned by BPM when the tempo is zero (or otherwise yields
// a non-finite pattern skip). The parameters are left unchanged.
var ErrZeroTempo = errors.New("tempo must be non-zero")

// Handlers translates individual control messages into parameter updates.
//
// Each handler performs exactly one field write. Apart from BPM's zero check,
// values are not range-checked: callers are trusted.
type Handlers struct {
	// State receives the updates. It must not be nil.
	State *State

	// RollSpeedScale multiplies incoming rainbow roll speeds. If zero,
	// DefaultRollSpeedScale is used.
	RollSpeedScale float64

	// Logger is the logger instance to use. If nil, no logs will be generated.
	Logger logging.L
}

// ColorMode sets the base color mode from a mode token.
//
// Unrecognized tokens select the rainbow.
func (h *Handlers) ColorMode(token string) {
	m, ok := ParseColorMode(token)
	if !ok {
		h.logger().Debugf("Unrecognized color mode %q; using %s.", token, m)
	}
	h.State.Update(func(p *Params) { p.ColorMode = m })
}

// RGB sets the point color.
func (h *Handlers) RGB(r, g, b float64) {
	h.State.Update(func(p *Params) { p.PointColor = pixel.RGB{R: r, G: g, B: b} })
}

// RainbowRollSpeed sets the per-frame rainbow phase increment.
func (h *Handlers) RainbowRollSpeed(speed float64) {
	scale := h.RollSpeedScale
	if scale == 0 {
		scale = DefaultRollSpeedScale
	}
	h.State.Update(func(p *Params) { p.RainbowRollSkip = speed * scale })
}

// Pattern sets the envelope from a pattern token.
//
// Unrecognized tokens select no pattern.
func (h *Handlers) Pattern(token string) {
	m, ok := pattern.ParseMode(token)
	if !ok {
		h.logger().Debugf("Unrecognized pattern %q; using %s.", token, m)
	}
	h.State.Update(func(p *Params) { p.PatternMode = m })
}

// BPM sets the envelope phase increment from a tempo value. The increment is
// pattern.Split / bpm, so one envelope period spans bpm frames.
func (h *Handlers) BPM(bpm float64) error {
	skip := pattern.Split / bpm
	if bpm == 0 || math.IsInf(skip, 0) || math.IsNaN(skip) {
		return errors.Wrapf(ErrZeroTempo, "invalid tempo %v", bpm)
	}
	h.State.Update(func(p *Params) { p.PatternSkip = skip })
	return nil
}

// Luminosity sets the global output scalar.
func (h *Handlers) Luminosity(v float64) {
	h.State.Update(func(p *Params) { p.Luminosity = v })
}

func (h *Handlers) logger() logging.L { return logging.Must(h.Logger) }
