// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package control

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var (
	controlMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "oscstrip_control_messages",
		Help: "Count of control messages received, by address and result.",
	},
		[]string{"address", "result"})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		controlMessages,
	)
}
