// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	"strings"

	"github.com/pkg/errors"
)

// BufferLayout is the channel order of a pixel buffer.
type BufferLayout int

const (
	// BufferRGB is a BufferLayout specifying a series of contiguous (R, G, B)
	// pixel value bytes.
	BufferRGB BufferLayout = iota
	// BufferGRB is a BufferLayout specifying a series of contiguous (G, R, B)
	// pixel value bytes. Most WS2812 strips expect this order.
	BufferGRB
	// BufferBRG is a BufferLayout specifying a series of contiguous (B, R, G)
	// pixel value bytes.
	BufferBRG
)

var layoutNames = map[BufferLayout]string{
	BufferRGB: "rgb",
	BufferGRB: "grb",
	BufferBRG: "brg",
}

func (l BufferLayout) String() string {
	if n, ok := layoutNames[l]; ok {
		return n
	}
	return "unknown"
}

// ParseBufferLayout parses a layout name ("rgb", "grb", "brg"),
// case-insensitively.
func ParseBufferLayout(v string) (BufferLayout, error) {
	v = strings.ToLower(v)
	for l, n := range layoutNames {
		if n == v {
			return l, nil
		}
	}
	return 0, errors.Errorf("unknown buffer layout: %q", v)
}

// Order returns the three channels of p in l's order.
func (l BufferLayout) Order(p P) (a, b, c uint8) {
	switch l {
	case BufferRGB:
		return p.Red, p.Green, p.Blue
	case BufferGRB:
		return p.Green, p.Red, p.Blue
	case BufferBRG:
		return p.Blue, p.Red, p.Green
	default:
		panic(errors.Errorf("unknown buffer layout: %v", l))
	}
}

// Buffer is the wire format for a series of consecutive pixels.
type Buffer struct {
	// Layout is the channel order to use.
	//
	// Adjusting this value will invalidate the current buffered data. The user
	// must call Reset afterwards.
	Layout BufferLayout

	buf []byte
}

// Len returns the number of pixels allocated in pb.
func (pb *Buffer) Len() int { return len(pb.buf) / pixelSize }

// Reset clears the buffer and allocates room for size pixels.
//
// If the underlying buffer is already >= this size, it will be reused;
// otherwise, a new buffer will be allocated.
func (pb *Buffer) Reset(size int) {
	bytesNeeded := size * pixelSize
	if cap(pb.buf) < bytesNeeded {
		pb.buf = make([]byte, bytesNeeded)
		return
	}

	pb.buf = pb.buf[:bytesNeeded]
	for i := range pb.buf {
		pb.buf[i] = 0
	}
}

// Bytes returns the raw bytes for this buffer.
func (pb *Buffer) Bytes() []byte { return pb.buf }

// Pixel returns the pixel at index i.
//
// If i is out of bounds, Pixel will return a zero value.
func (pb *Buffer) Pixel(i int) (p P) {
	offset := i * pixelSize
	if offset < 0 || offset >= len(pb.buf) {
		return
	}

	a, b, c := pb.buf[offset], pb.buf[offset+1], pb.buf[offset+2]
	switch pb.Layout {
	case BufferRGB:
		p.Red, p.Green, p.Blue = a, b, c
	case BufferGRB:
		p.Green, p.Red, p.Blue = a, b, c
	case BufferBRG:
		p.Blue, p.Red, p.Green = a, b, c
	}
	return
}

// SetPixel sets the pixel value at index i.
//
// If i is out of bounds, SetPixel will do nothing.
func (pb *Buffer) SetPixel(i int, p P) {
	offset := i * pixelSize
	if offset < 0 || offset >= len(pb.buf) {
		return
	}
	pb.buf[offset], pb.buf[offset+1], pb.buf[offset+2] = pb.Layout.Order(p)
}

const pixelSize = 3
