// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillreg

import (
	"sync"

	"github.com/skillmesh/skillmarket-core/skillerr"
	"github.com/skillmesh/skillmarket-core/wallet"
)

// Rebinder keeps exactly one Client bound to the wallet manager's
// current session. On every session transition the old client is
// replaced wholesale, so mutations still in flight stay tagged to the
// signer they were submitted under and their in-flight markers can
// never leak into the new session. Balance refreshes keep the same
// epoch and do not trigger a rebuild.
type Rebinder struct {
	backend Backend

	mu     sync.RWMutex
	client *Client

	cancel func()
}

// NewRebinder binds to the manager's current session and follows its
// transitions until Close is called.
func NewRebinder(backend Backend, manager *wallet.Manager) *Rebinder {
	r := &Rebinder{backend: backend}
	r.apply(manager.Current())
	r.cancel = manager.Subscribe(func(n wallet.Notification) {
		r.apply(n.Session)
	})
	return r
}

// Client returns the client bound to the active session, or a
// not-connected error when no session is established.
func (r *Rebinder) Client() (*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.client == nil {
		return nil, skillerr.New("no wallet session is connected", skillerr.KindNotConnected)
	}
	return r.client, nil
}

// Reader returns a session-less client suitable for read-only calls
// regardless of connection state.
func (r *Rebinder) Reader() *Client {
	return NewClient(r.backend, wallet.Session{})
}

// Close stops following session transitions. The currently bound
// client remains usable.
func (r *Rebinder) Close() {
	r.cancel()
}

func (r *Rebinder) apply(session wallet.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !session.Connected() {
		r.client = nil
		return
	}
	if r.client != nil && r.client.session.Epoch == session.Epoch {
		return
	}
	r.client = NewClient(r.backend, session)
}
