// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package control

import (
	"sync"
	"sync/atomic"
)

// State is the single source of truth for the live animation parameters.
//
// State is safe for concurrent use. The zero value holds DefaultParams.
type State struct {
	// mu serializes writers. Readers never take it.
	mu      sync.Mutex
	current atomic.Pointer[Params]
}

// NewState returns a State initialized to p.
func NewState(p Params) *State {
	var s State
	s.current.Store(&p)
	return &s
}

// Snapshot returns the current parameters.
//
// The returned value reflects every update that completed before the call, and
// no part of any update that started after it.
func (s *State) Snapshot() Params {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return DefaultParams()
}

// Update applies fn to a copy of the current parameters and publishes the
// result.
func (s *State) Update(fn func(p *Params)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.Snapshot()
	fn(&next)
	s.current.Store(&next)
}
