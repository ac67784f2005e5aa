// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

// WheelSize is the number of distinct positions on the color wheel.
const WheelSize = 256

// Wheel maps a position on the color wheel to a rainbow color.
//
// The wheel is a three-segment linear gradient running red -> green -> blue ->
// red. At any position at most two channels are non-zero, and they sum to 255.
//
// Positions outside of [0, 255] wrap around the wheel.
func Wheel(pos int) RGB {
	pos &= WheelSize - 1

	switch {
	case pos < 85:
		return RGB{R: float64(255 - pos*3), G: float64(pos * 3)}
	case pos < 170:
		pos -= 85
		return RGB{G: float64(255 - pos*3), B: float64(pos * 3)}
	default:
		pos -= 170
		return RGB{R: float64(pos * 3), B: float64(255 - pos*3)}
	}
}
