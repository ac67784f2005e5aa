// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package render

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	renderFrames = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "oscstrip_render_frames",
		Help: "Count of frames rendered and shown.",
	})

	renderShowErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "oscstrip_render_show_errors",
		Help: "Count of errors encountered showing a frame.",
	})

	renderOverruns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "oscstrip_render_overruns",
		Help: "Count of frames that took longer than the frame interval.",
	})

	renderFrameDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "oscstrip_render_frame_duration_seconds",
		Help:    "Time taken to render and show a frame.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 10),
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		renderFrames,
		renderShowErrors,
		renderOverruns,
		renderFrameDuration,
	)
}
