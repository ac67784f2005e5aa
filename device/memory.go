// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package device

import (
	"sync"

	"github.com/danjacques/oscstrip/pixel"
)

// Memory is a Strip that keeps its pixels in memory.
//
// Memory records the colors it is given without any coercion, so it can be
// used to observe exactly what a renderer produced.
//
// Memory's staging methods follow the Strip contract, but its accessors may be
// called concurrently with them.
type Memory struct {
	// OnShow, if not nil, is called at the end of every Show, after the staged
	// frame has been published. If it returns an error, Show fails with it.
	OnShow func(frame []pixel.RGB) error

	mu     sync.Mutex
	staged []pixel.RGB
	shown  []pixel.RGB
	shows  int
}

var _ Strip = (*Memory)(nil)

// NewMemory returns a Memory strip with n pixels.
func NewMemory(n int) *Memory {
	return &Memory{
		staged: make([]pixel.RGB, n),
		shown:  make([]pixel.RGB, n),
	}
}

// NumPixels implements Strip.
func (m *Memory) NumPixels() int { return len(m.staged) }

// SetPixelColor implements Strip.
func (m *Memory) SetPixelColor(i int, c pixel.RGB) {
	if i < 0 || i >= len(m.staged) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.staged[i] = c
}

// Show implements Strip.
func (m *Memory) Show() error {
	m.mu.Lock()
	copy(m.shown, m.staged)
	m.shows++
	frame := append([]pixel.RGB(nil), m.shown...)
	m.mu.Unlock()

	if m.OnShow != nil {
		return m.OnShow(frame)
	}
	return nil
}

// Frame returns a copy of the most recently shown frame.
func (m *Memory) Frame() []pixel.RGB {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]pixel.RGB(nil), m.shown...)
}

// Shows returns the number of times Show has been called.
func (m *Memory) Shows() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shows
}
