// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package device defines the output strip that rendered frames are pushed to,
// as well as several implementations of it.
//
// Memory is an in-process strip, suitable for testing and dry runs. WS281x
// drives a strip attached to a Raspberry Pi; it requires the "ws281x" build
// tag. OPC sends frames to an Open Pixel Control server such as a Fadecandy,
// and Datagram sends raw frames over UDP.
//
// Optional Prometheus monitoring can be enabled by registering on startup
// (generally init()) via RegisterMonitoring, and wrapping a Strip with
// Monitor.
package device

import (
	"github.com/danjacques/oscstrip/pixel"
)

// Strip is a single addressable LED strip.
//
// Pixel updates are staged with SetPixelColor and become visible when Show is
// called.
//
// Strip is not safe for concurrent use.
type Strip interface {
	// NumPixels returns the number of pixels on the strip. It does not change
	// over the lifetime of the Strip.
	NumPixels() int

	// SetPixelColor stages the color of the pixel at index i.
	//
	// The color is not range checked by the caller; the Strip is responsible for
	// coercing it into its native range. Out of bounds indices are ignored.
	SetPixelColor(i int, c pixel.RGB)

	// Show flushes all staged pixels to the strip.
	Show() error
}
