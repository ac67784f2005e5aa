// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package device

import (
	"github.com/danjacques/oscstrip/pixel"
)

// WS281xConfig configures a WS281x strip.
type WS281xConfig struct {
	// Count is the number of pixels on the strip.
	Count int
	// Pin is the GPIO pin connected to the strip's data line. Pin 18 uses PWM,
	// pin 10 uses SPI.
	Pin int
	// Frequency is the LED signal frequency, in hertz.
	Frequency int
	// DMA is the DMA channel used to generate the signal.
	DMA int
	// Brightness is the driver's global brightness, 0 (darkest) to 255.
	Brightness int
	// Invert inverts the signal, when using an NPN transistor level shifter.
	Invert bool
	// Channel is the PWM channel. Use 1 for GPIOs 13, 19, 41, 45 or 53.
	Channel int
	// Layout is the channel order the strip expects.
	Layout pixel.BufferLayout
}

// DefaultWS281xConfig returns the configuration of a 100-pixel strip on
// GPIO 12.
func DefaultWS281xConfig() WS281xConfig {
	return WS281xConfig{
		Count:      100,
		Pin:        12,
		Frequency:  800000,
		DMA:        10,
		Brightness: 255,
		Invert:     false,
		Channel:    0,
		Layout:     pixel.BufferGRB,
	}
}

// packWS281x packs p into the driver's 0x00XXYYZZ word, with channels in the
// order given by l.
func packWS281x(l pixel.BufferLayout, p pixel.P) uint32 {
	a, b, c := l.Order(p)
	return uint32(a)<<16 | uint32(b)<<8 | uint32(c)
}
