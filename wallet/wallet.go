// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package wallet owns the user's connection to the ledger environment: the
// wallet capability (accounts, balances, signing), the authoritative Session
// value, and the state machine that keeps it consistent with externally
// triggered account and chain changes.
package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=wallet.go -destination=mocks/mock_provider.go -package=mocks Provider

// Provider is the environment's wallet capability. Implementations wrap a
// concrete wallet (a local keystore, a remote signer); tests substitute a
// fake.
type Provider interface {
	// Accounts requests the wallet's authorized account addresses.
	// It returns a provider-unavailable error when the wallet holds no
	// accounts, and a user-rejected error when authorization is declined.
	Accounts(ctx context.Context) ([]string, error)

	// BalanceOf reads the smallest-unit balance of an address.
	BalanceOf(ctx context.Context, address string) (*big.Int, error)

	// SigningHandle returns the signing capability for one address.
	SigningHandle(address string) (Signer, error)

	// Watch subscribes to account and chain change notifications.
	// The returned stop function releases the subscription; it must be
	// called whenever the session leaves the connected state so that a
	// later reconnect never acts on a stale handle.
	Watch(h ChangeHandler) (stop func(), err error)
}

// Signer is the opaque capability that authorizes mutating registry calls.
type Signer interface {
	// Address returns the identity this signer acts for.
	Address() string

	// SignTx signs a transaction for the given chain.
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// ChangeHandler receives externally triggered wallet events.
// Nil fields are skipped.
type ChangeHandler struct {
	// AccountsChanged is invoked with the wallet's new account list.
	// An empty list means the user revoked access entirely.
	AccountsChanged func(addresses []string)

	// ChainChanged is invoked when the wallet switches ledgers. All cached
	// call bindings are invalid afterwards.
	ChainChanged func(chainID *big.Int)
}
