// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillreg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeRefused = "refused"
)

var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "skillmarket",
	Subsystem: "registry",
	Name:      "operations_total",
	Help:      "Registry mutations by operation kind and outcome.",
}, []string{"operation", "outcome"})

func recordOperation(kind opKind, outcome string) {
	operationsTotal.WithLabelValues(string(kind), outcome).Inc()
}
