// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery isolates panics in externally supplied callbacks.
//
// Session notifications and wallet event handlers run caller code on
// internal goroutines; a panicking subscriber must not take down the
// event loop or leave a mutation's bookkeeping half done. Call wraps
// such code so the panic is logged and contained at the boundary.
package recovery

import (
	"runtime/debug"

	"github.com/skillmesh/skillmarket-core/logger"
)

// Call invokes fn, recovering and logging any panic. name identifies
// the callback site in the log entry.
func Call(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("recovered panic in callback",
				"callback", name,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}

// Go runs fn on a new goroutine with the same panic containment as
// Call.
func Go(name string, fn func()) {
	go Call(name, fn)
}
