// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package render

import (
	"context"
	"time"

	"github.com/danjacques/oscstrip/control"
	"github.com/danjacques/oscstrip/device"
	"github.com/danjacques/oscstrip/support/logging"

	"github.com/pkg/errors"
)

// DefaultInterval is the default frame interval (32 frames per second).
const DefaultInterval = 31250 * time.Microsecond

// Loop renders frames from a control State and pushes them to a Strip at a
// fixed rate.
//
// A Loop is not safe for concurrent use. Its exported fields must not be
// changed after Run has been called.
type Loop struct {
	// Strip receives every rendered frame. It must not be nil.
	Strip device.Strip
	// State supplies the animation parameters. It must not be nil.
	State *control.State

	// Generator renders frames. If nil, a default Generator sized to Strip is
	// created on the first tick.
	Generator *Generator

	// Interval is the time between frames. If <= 0, DefaultInterval is used.
	Interval time.Duration

	// ShowRetries is the number of times a failed Show is retried within the
	// same tick before the failure is returned.
	ShowRetries int

	// Logger is the logger instance to use. If nil, no logs will be generated.
	Logger logging.L

	frames int64
}

// Frames returns the number of frames that have been successfully shown.
func (l *Loop) Frames() int64 { return l.frames }

// Run ticks until c is cancelled or a frame fails to show.
//
// Ticks are driven by a monotonic ticker, so compute jitter in one frame does
// not shift the timing of later frames. If a tick takes longer than the
// interval, the next tick happens immediately and missed ticks are dropped.
//
// Run returns nil when c is cancelled.
func (l *Loop) Run(c context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.logger().Infof("Rendering %d pixel(s) every %s.", l.Strip.NumPixels(), interval)
	for {
		start := time.Now()
		if err := l.Tick(); err != nil {
			return err
		}

		elapsed := time.Since(start)
		renderFrameDuration.Observe(elapsed.Seconds())
		if elapsed > interval {
			renderOverruns.Inc()
			l.logger().Debugf("Frame took %s, longer than the %s interval.", elapsed, interval)
		}

		select {
		case <-c.Done():
			l.logger().Infof("Render loop stopped after %d frame(s).", l.frames)
			return nil
		case <-ticker.C:
		}
	}
}

// Tick renders a single frame from the current parameters and shows it.
func (l *Loop) Tick() error {
	if l.Generator == nil {
		l.Generator = NewGenerator(l.Strip.NumPixels())
	}

	frame := l.Generator.Render(l.State.Snapshot())
	for i, c := range frame {
		l.Strip.SetPixelColor(i, c)
	}

	var err error
	for attempt := 0; attempt <= l.ShowRetries; attempt++ {
		if err = l.Strip.Show(); err == nil {
			l.frames++
			renderFrames.Inc()
			return nil
		}

		renderShowErrors.Inc()
		l.logger().Warnf("Failed to show frame (attempt %d of %d): %s", attempt+1, l.ShowRetries+1, err)
	}
	return errors.Wrapf(err, "could not show frame %d", l.frames)
}

func (l *Loop) logger() logging.L { return logging.Must(l.Logger) }
