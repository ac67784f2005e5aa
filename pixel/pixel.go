// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package pixel defines the color values handled by the animation engine and
// the hardware pixel values they are eventually coerced into.
package pixel

import (
	"fmt"
)

// RGB is a working color value.
//
// Channels are nominally in [0, 255], but nothing enforces this: scaling by an
// envelope or luminosity may leave them fractional, negative, or larger than
// 255. Coercion into a hardware-native range is the job of the output device
// (see P).
type RGB struct {
	R float64
	G float64
	B float64
}

// Scale returns a copy of c with every channel multiplied by v.
func (c RGB) Scale(v float64) RGB {
	return RGB{R: c.R * v, G: c.G * v, B: c.B * v}
}

// Clamp returns a copy of c with every channel clamped to [0, 255].
func (c RGB) Clamp() RGB {
	return RGB{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B)}
}

// P coerces c into a hardware pixel. Each channel is truncated toward zero and
// saturated into [0, 255].
func (c RGB) P() P {
	return P{Red: coerce(c.R), Green: coerce(c.G), Blue: coerce(c.B)}
}

func (c RGB) String() string { return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B) }

// P is the state of a single hardware pixel.
type P struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

func (p P) String() string { return fmt.Sprintf("(%d, %d, %d)", p.Red, p.Green, p.Blue) }

// RGB returns p as a working color.
func (p P) RGB() RGB { return RGB{R: float64(p.Red), G: float64(p.Green), B: float64(p.Blue)} }

func clampChannel(v float64) float64 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}

func coerce(v float64) uint8 { return uint8(clampChannel(v)) }
