// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package device

import (
	"github.com/danjacques/oscstrip/pixel"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	stripPixelCountGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "oscstrip_strip_pixel_count",
		Help: "Total number of pixels attached to a given strip.",
	},
		[]string{"name"})

	stripShows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "oscstrip_strip_shows",
		Help: "Count of frames flushed to a strip.",
	},
		[]string{"name"})

	stripShowErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "oscstrip_strip_show_errors",
		Help: "Count of errors encountered flushing frames to a strip.",
	},
		[]string{"name"})

	stripClippedChannels = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "oscstrip_strip_clipped_channels",
		Help: "Count of channel values outside of [0, 255] handed to a strip.",
	},
		[]string{"name"})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		stripPixelCountGauge,
		stripShows,
		stripShowErrors,
		stripClippedChannels,
	)
}

// Monitor wraps s in a shim that records monitoring information under name.
func Monitor(name string, s Strip) Strip {
	labels := prometheus.Labels{"name": name}
	stripPixelCountGauge.With(labels).Set(float64(s.NumPixels()))

	return &monitoredStrip{
		Strip:   s,
		shows:   stripShows.With(labels),
		errors:  stripShowErrors.With(labels),
		clipped: stripClippedChannels.With(labels),
	}
}

type monitoredStrip struct {
	Strip

	shows   prometheus.Counter
	errors  prometheus.Counter
	clipped prometheus.Counter
}

func (ms *monitoredStrip) SetPixelColor(i int, c pixel.RGB) {
	if n := clippedChannels(c); n > 0 {
		ms.clipped.Add(float64(n))
	}
	ms.Strip.SetPixelColor(i, c)
}

func (ms *monitoredStrip) Show() error {
	if err := ms.Strip.Show(); err != nil {
		ms.errors.Inc()
		return err
	}
	ms.shows.Inc()
	return nil
}

func clippedChannels(c pixel.RGB) (n int) {
	for _, v := range [...]float64{c.R, c.G, c.B} {
		if v < 0 || v > 255 {
			n++
		}
	}
	return
}
