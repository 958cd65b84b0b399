// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"math/big"

	"github.com/google/uuid"
)

// State is the connection lifecycle state.
type State int

const (
	// Disconnected is the initial state: no session fields are populated.
	Disconnected State = iota
	// Connecting means a connect attempt is in progress.
	Connecting
	// Connected means an address and signing handle are bound.
	Connected
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// Session is the authoritative connection value. It is immutable once
// published: every transition produces a fresh Session with a fresh Epoch,
// so consumers bound to an old epoch can detect that their binding is stale.
type Session struct {
	// Epoch uniquely identifies this session binding. It changes on every
	// transition, including account switches within a connected session.
	Epoch uuid.UUID

	// State is the lifecycle state this session was published in.
	State State

	// Address is the connected identity, or empty when disconnected.
	Address string

	// Balance is the smallest-unit balance at the last read, or nil.
	Balance *big.Int

	// Signer is the signing capability, or nil when disconnected.
	Signer Signer
}

// Connected reports whether this session can authorize mutating calls.
// It is true exactly when an address and a signing handle are both bound.
func (s Session) Connected() bool {
	return s.State == Connected && s.Address != "" && s.Signer != nil
}

// Reason says why a session notification was emitted.
type Reason string

const (
	// ReasonConnect is a successful connect.
	ReasonConnect Reason = "connect"
	// ReasonDisconnect is an explicit disconnect.
	ReasonDisconnect Reason = "disconnect"
	// ReasonAccountChange is an externally triggered account switch or revocation.
	ReasonAccountChange Reason = "account_change"
	// ReasonChainChange is an externally triggered ledger switch. Consumers
	// must rebuild every call binding before touching the registry again.
	ReasonChainChange Reason = "chain_change"
	// ReasonBalanceRefresh is a successful balance re-read.
	ReasonBalanceRefresh Reason = "balance_refresh"
)

// Notification is delivered to session subscribers on every transition.
type Notification struct {
	Reason  Reason
	Session Session
}
