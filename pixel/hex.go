// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ParseHex parses a "#RRGGBB" (or "#RGB") color string.
func ParseHex(v string) (RGB, error) {
	c, err := colorful.Hex(v)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "could not parse color %q", v)
	}
	r, g, b := c.RGB255()
	return RGB{R: float64(r), G: float64(g), B: float64(b)}, nil
}

// Hex renders c as a "#rrggbb" string, after coercing it into hardware range.
func (c RGB) Hex() string {
	p := c.P()
	return colorful.Color{
		R: float64(p.Red) / 255,
		G: float64(p.Green) / 255,
		B: float64(p.Blue) / 255,
	}.Hex()
}
