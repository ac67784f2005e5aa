// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package oscserver

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK      = "ok"
	resultInvalid = "invalid"
)

var (
	oscPackets = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "oscstrip_osc_packets",
		Help: "Count of OSC packets received, by parse result.",
	},
		[]string{"result"})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		oscPackets,
	)
}
