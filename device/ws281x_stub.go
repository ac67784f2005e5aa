// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

//go:build !ws281x

package device

import (
	"github.com/danjacques/oscstrip/pixel"

	"github.com/pkg/errors"
)

// ErrWS281xUnsupported is returned by OpenWS281x in builds without the
// "ws281x" build tag.
var ErrWS281xUnsupported = errors.New("built without ws281x support (use -tags ws281x)")

// WS281x is a Strip attached directly to a Raspberry Pi.
//
// This build does not include the driver; see ErrWS281xUnsupported.
type WS281x struct{}

var _ Strip = (*WS281x)(nil)

// OpenWS281x always fails in this build.
func OpenWS281x(cfg WS281xConfig) (*WS281x, error) { return nil, ErrWS281xUnsupported }

// NumPixels implements Strip.
func (*WS281x) NumPixels() int { return 0 }

// SetPixelColor implements Strip.
func (*WS281x) SetPixelColor(int, pixel.RGB) {}

// Show implements Strip.
func (*WS281x) Show() error { return ErrWS281xUnsupported }

// Close implements io.Closer.
func (*WS281x) Close() error { return nil }
