// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/google/uuid"

	"github.com/skillmesh/skillmarket-core/logger"
	"github.com/skillmesh/skillmarket-core/recovery"
	"github.com/skillmesh/skillmarket-core/skillerr"
)

// Manager maintains exactly one authoritative Session and notifies
// subscribers of every transition.
//
// The event subscription on the Provider is acquired on entering Connected
// and released on leaving it, so account and chain events can never act on
// a handle from an earlier connection.
type Manager struct {
	provider Provider
	flags    FlagStore

	mu      sync.Mutex
	session Session
	unwatch func()

	subMu  sync.Mutex
	subs   map[int]func(Notification)
	nextID int
}

// NewManager creates a session manager bound to a wallet provider.
// The manager starts Disconnected; call Resume to attempt a silent
// reconnect if a prior session set the persisted flag.
func NewManager(provider Provider, flags FlagStore) *Manager {
	return &Manager{
		provider: provider,
		flags:    flags,
		session:  Session{Epoch: uuid.New(), State: Disconnected},
		subs:     make(map[int]func(Notification)),
	}
}

// Current returns the session value as of this call.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Subscribe registers a notification callback and returns a cancel function.
// Callbacks run synchronously on the goroutine that triggered the transition
// and must not call back into the Manager.
func (m *Manager) Subscribe(fn func(Notification)) (cancel func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	return func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		delete(m.subs, id)
	}
}

// Connect establishes a session: it requests account authorization, binds
// the first account's signing handle, reads its balance, persists the
// previously-connected flag, and transitions to Connected.
//
// On any failure the session is left Disconnected and the error carries its
// taxonomy kind; nothing is partially bound.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	if m.session.State == Connecting {
		m.mu.Unlock()
		return skillerr.New("connect already in progress", skillerr.KindDuplicateInFlight)
	}
	wasConnected := m.session.State == Connected
	m.teardownWatchLocked()
	m.session = Session{Epoch: uuid.New(), State: Connecting}
	m.mu.Unlock()

	session, err := m.establish(ctx)
	if err != nil {
		m.mu.Lock()
		m.session = Session{Epoch: uuid.New(), State: Disconnected}
		down := m.session
		m.mu.Unlock()
		// A reconnect attempt destroys the prior session before the
		// network round-trips; if that session was live, observers
		// must learn it is gone even though the connect failed.
		if wasConnected {
			m.notify(Notification{Reason: ReasonDisconnect, Session: down})
		}
		return err
	}

	m.mu.Lock()
	m.session = session
	m.startWatchLocked()
	m.mu.Unlock()

	if err := m.flags.SetConnected(true); err != nil {
		logger.Warnw("persisting connection flag failed", "error", err)
	}

	logger.Infow("wallet connected", "address", session.Address)
	m.notify(Notification{Reason: ReasonConnect, Session: session})
	return nil
}

// establish performs the network half of Connect without holding the lock.
func (m *Manager) establish(ctx context.Context) (Session, error) {
	addrs, err := m.provider.Accounts(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("requesting accounts: %w", err)
	}
	if len(addrs) == 0 {
		return Session{}, skillerr.New("wallet has no accounts", skillerr.KindProviderUnavailable)
	}
	address := addrs[0]

	signer, err := m.provider.SigningHandle(address)
	if err != nil {
		return Session{}, fmt.Errorf("binding signing handle for %s: %w", address, err)
	}

	balance, err := m.provider.BalanceOf(ctx, address)
	if err != nil {
		return Session{}, fmt.Errorf("reading balance of %s: %w", address, err)
	}

	return Session{
		Epoch:   uuid.New(),
		State:   Connected,
		Address: address,
		Balance: balance,
		Signer:  signer,
	}, nil
}

// Disconnect clears the session, the persisted flag, and the event
// subscription. It never fails.
func (m *Manager) Disconnect() {
	m.disconnect(ReasonDisconnect)
}

func (m *Manager) disconnect(reason Reason) {
	m.mu.Lock()
	m.teardownWatchLocked()
	m.session = Session{Epoch: uuid.New(), State: Disconnected}
	session := m.session
	m.mu.Unlock()

	if err := m.flags.SetConnected(false); err != nil {
		logger.Warnw("clearing connection flag failed", "error", err)
	}

	logger.Infow("wallet disconnected", "reason", string(reason))
	m.notify(Notification{Reason: reason, Session: session})
}

// Resume attempts a silent reconnect when a prior session set the persisted
// flag. Failures are logged but never surfaced: the user did not just take
// an action.
func (m *Manager) Resume(ctx context.Context) {
	if !m.flags.WasConnected() {
		return
	}
	if err := m.Connect(ctx); err != nil {
		logger.Debugw("silent reconnect failed", "error", err)
	}
}

// RefreshBalance re-reads the connected address's balance. It is a no-op
// when disconnected. A transient read failure keeps the prior balance and
// is reported as a warning, not an error.
func (m *Manager) RefreshBalance(ctx context.Context) {
	m.mu.Lock()
	session := m.session
	m.mu.Unlock()

	if !session.Connected() {
		return
	}

	balance, err := m.provider.BalanceOf(ctx, session.Address)
	if err != nil {
		logger.Warnw("balance refresh failed, keeping prior value",
			"address", session.Address, "error", err)
		return
	}

	m.mu.Lock()
	if m.session.Epoch != session.Epoch {
		// session changed while we were reading; the value belongs to the
		// old binding and must not be applied
		m.mu.Unlock()
		return
	}
	m.session.Balance = balance
	updated := m.session
	m.mu.Unlock()

	m.notify(Notification{Reason: ReasonBalanceRefresh, Session: updated})
}

// onAccountsChanged handles the environment's account-change event.
func (m *Manager) onAccountsChanged(addresses []string) {
	if len(addresses) == 0 {
		m.disconnect(ReasonAccountChange)
		return
	}

	address := addresses[0]

	m.mu.Lock()
	if m.session.State != Connected {
		m.mu.Unlock()
		return
	}
	if m.session.Address == address {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	signer, err := m.provider.SigningHandle(address)
	if err != nil {
		logger.Warnw("no signing handle for switched account, disconnecting",
			"address", address, "error", err)
		m.disconnect(ReasonAccountChange)
		return
	}

	balance, err := m.provider.BalanceOf(context.Background(), address)
	if err != nil {
		logger.Warnw("balance read for switched account failed",
			"address", address, "error", err)
		balance = nil
	}

	m.mu.Lock()
	if m.session.State != Connected {
		m.mu.Unlock()
		return
	}
	m.session = Session{
		Epoch:   uuid.New(),
		State:   Connected,
		Address: address,
		Balance: balance,
		Signer:  signer,
	}
	session := m.session
	m.mu.Unlock()

	logger.Infow("account switched", "address", address)
	m.notify(Notification{Reason: ReasonAccountChange, Session: session})
}

// onChainChanged handles the environment's chain-change event. Cached call
// bindings are invalid after a ledger switch, so the session is torn down
// and consumers must rebuild from scratch.
func (m *Manager) onChainChanged(chainID *big.Int) {
	logger.Warnw("chain changed, tearing down session", "chain_id", chainID)
	m.disconnect(ReasonChainChange)
}

// startWatchLocked subscribes to provider events. Callers hold m.mu.
func (m *Manager) startWatchLocked() {
	stop, err := m.provider.Watch(ChangeHandler{
		AccountsChanged: m.onAccountsChanged,
		ChainChanged:    m.onChainChanged,
	})
	if err != nil {
		logger.Warnw("subscribing to wallet events failed", "error", err)
		return
	}
	m.unwatch = stop
}

// teardownWatchLocked releases the provider subscription. Callers hold m.mu.
func (m *Manager) teardownWatchLocked() {
	if m.unwatch != nil {
		m.unwatch()
		m.unwatch = nil
	}
}

func (m *Manager) notify(n Notification) {
	m.subMu.Lock()
	fns := make([]func(Notification), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		recovery.Call("session subscriber", func() { fn(n) })
	}
}
