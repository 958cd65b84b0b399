// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmesh/skillmarket-core/skillerr"
)

// fakeSigner is a Signer stub; the manager never signs anything itself.
type fakeSigner struct {
	address string
}

func (s *fakeSigner) Address() string { return s.address }

func (s *fakeSigner) SignTx(tx *types.Transaction, _ *big.Int) (*types.Transaction, error) {
	return tx, nil
}

// fakeProvider drives the manager in tests. The handler captured by Watch
// lets tests inject account and chain change events.
type fakeProvider struct {
	accounts    []string
	balances    map[string]*big.Int
	accountsErr error
	signerErr   error
	balanceErr  error

	handler      ChangeHandler
	watchCount   int
	activeWatch  int
	balanceReads int
}

func (p *fakeProvider) Accounts(context.Context) ([]string, error) {
	if p.accountsErr != nil {
		return nil, p.accountsErr
	}
	return p.accounts, nil
}

func (p *fakeProvider) BalanceOf(_ context.Context, address string) (*big.Int, error) {
	p.balanceReads++
	if p.balanceErr != nil {
		return nil, p.balanceErr
	}
	if b, ok := p.balances[address]; ok {
		return b, nil
	}
	return big.NewInt(0), nil
}

func (p *fakeProvider) SigningHandle(address string) (Signer, error) {
	if p.signerErr != nil {
		return nil, p.signerErr
	}
	return &fakeSigner{address: address}, nil
}

func (p *fakeProvider) Watch(h ChangeHandler) (func(), error) {
	p.handler = h
	p.watchCount++
	p.activeWatch++
	return func() { p.activeWatch-- }, nil
}

func newTestManager(p *fakeProvider) (*Manager, *MemFlagStore) {
	flags := &MemFlagStore{}
	return NewManager(p, flags), flags
}

func TestManager_Connect(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		accounts: []string{"0xAAA"},
		balances: map[string]*big.Int{"0xAAA": big.NewInt(42)},
	}
	m, flags := newTestManager(provider)

	var got []Notification
	cancel := m.Subscribe(func(n Notification) { got = append(got, n) })
	defer cancel()

	require.NoError(t, m.Connect(context.Background()))

	session := m.Current()
	assert.Equal(t, Connected, session.State)
	assert.True(t, session.Connected())
	assert.Equal(t, "0xAAA", session.Address)
	assert.Equal(t, big.NewInt(42), session.Balance)
	assert.True(t, flags.WasConnected(), "persisted flag must be set")
	assert.Equal(t, 1, provider.activeWatch, "event subscription must be live")

	require.Len(t, got, 1)
	assert.Equal(t, ReasonConnect, got[0].Reason)
}

func TestManager_Connect_NoAccounts(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{accounts: nil}
	m, flags := newTestManager(provider)

	err := m.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, skillerr.KindProviderUnavailable, skillerr.KindOf(err))
	assert.Equal(t, Disconnected, m.Current().State)
	assert.False(t, flags.WasConnected())
}

func TestManager_Connect_UserRejected(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		accountsErr: skillerr.New("user declined", skillerr.KindUserRejected),
	}
	m, _ := newTestManager(provider)

	err := m.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, skillerr.KindUserRejected, skillerr.KindOf(err))
	assert.Equal(t, Disconnected, m.Current().State)
}

func TestManager_Disconnect(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{accounts: []string{"0xAAA"}, balances: map[string]*big.Int{}}
	m, flags := newTestManager(provider)
	require.NoError(t, m.Connect(context.Background()))

	m.Disconnect()

	session := m.Current()
	assert.Equal(t, Disconnected, session.State)
	assert.Empty(t, session.Address)
	assert.Nil(t, session.Signer)
	assert.False(t, flags.WasConnected(), "persisted flag must be cleared")
	assert.Equal(t, 0, provider.activeWatch, "event subscription must be released")
}

func TestManager_AccountsChanged_Empty_Disconnects(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{accounts: []string{"0xAAA"}, balances: map[string]*big.Int{}}
	m, _ := newTestManager(provider)
	require.NoError(t, m.Connect(context.Background()))

	provider.handler.AccountsChanged(nil)

	assert.Equal(t, Disconnected, m.Current().State)
	assert.Equal(t, 0, provider.activeWatch)
}

func TestManager_AccountsChanged_SwitchesAccount(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		accounts: []string{"0xAAA"},
		balances: map[string]*big.Int{
			"0xAAA": big.NewInt(1),
			"0xBBB": big.NewInt(2),
		},
	}
	m, _ := newTestManager(provider)
	require.NoError(t, m.Connect(context.Background()))
	before := m.Current()

	var reasons []Reason
	cancel := m.Subscribe(func(n Notification) { reasons = append(reasons, n.Reason) })
	defer cancel()

	provider.handler.AccountsChanged([]string{"0xBBB"})

	session := m.Current()
	assert.Equal(t, Connected, session.State)
	assert.Equal(t, "0xBBB", session.Address)
	assert.Equal(t, big.NewInt(2), session.Balance)
	assert.NotEqual(t, before.Epoch, session.Epoch, "epoch must change so consumers rebuild bindings")
	assert.Equal(t, []Reason{ReasonAccountChange}, reasons)
}

func TestManager_ChainChanged_Disconnects(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{accounts: []string{"0xAAA"}, balances: map[string]*big.Int{}}
	m, _ := newTestManager(provider)
	require.NoError(t, m.Connect(context.Background()))

	var reasons []Reason
	cancel := m.Subscribe(func(n Notification) { reasons = append(reasons, n.Reason) })
	defer cancel()

	provider.handler.ChainChanged(big.NewInt(5))

	assert.Equal(t, Disconnected, m.Current().State)
	assert.Equal(t, []Reason{ReasonChainChange}, reasons)
	assert.Equal(t, 0, provider.activeWatch)
}

func TestManager_Resume(t *testing.T) {
	t.Parallel()

	t.Run("reconnects when flag set", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{accounts: []string{"0xAAA"}, balances: map[string]*big.Int{}}
		m, flags := newTestManager(provider)
		require.NoError(t, flags.SetConnected(true))

		m.Resume(context.Background())
		assert.Equal(t, Connected, m.Current().State)
	})

	t.Run("no-op without flag", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{accounts: []string{"0xAAA"}, balances: map[string]*big.Int{}}
		m, _ := newTestManager(provider)

		m.Resume(context.Background())
		assert.Equal(t, Disconnected, m.Current().State)
	})

	t.Run("failure stays silent and disconnected", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{accountsErr: errors.New("node down")}
		m, flags := newTestManager(provider)
		require.NoError(t, flags.SetConnected(true))

		m.Resume(context.Background())
		assert.Equal(t, Disconnected, m.Current().State)
	})
}

func TestManager_RefreshBalance(t *testing.T) {
	t.Parallel()

	t.Run("updates balance", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{
			accounts: []string{"0xAAA"},
			balances: map[string]*big.Int{"0xAAA": big.NewInt(10)},
		}
		m, _ := newTestManager(provider)
		require.NoError(t, m.Connect(context.Background()))

		provider.balances["0xAAA"] = big.NewInt(99)
		m.RefreshBalance(context.Background())

		assert.Equal(t, big.NewInt(99), m.Current().Balance)
	})

	t.Run("transient failure keeps prior balance", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{
			accounts: []string{"0xAAA"},
			balances: map[string]*big.Int{"0xAAA": big.NewInt(10)},
		}
		m, _ := newTestManager(provider)
		require.NoError(t, m.Connect(context.Background()))

		provider.balanceErr = errors.New("node flake")
		m.RefreshBalance(context.Background())

		assert.Equal(t, big.NewInt(10), m.Current().Balance)
		assert.Equal(t, Connected, m.Current().State)
	})

	t.Run("no-op when disconnected", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{}
		m, _ := newTestManager(provider)

		m.RefreshBalance(context.Background())
		assert.Equal(t, 0, provider.balanceReads)
	})
}

func TestManager_FailedReconnect_NotifiesTeardown(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{accounts: []string{"0xAAA"}, balances: map[string]*big.Int{}}
	m, _ := newTestManager(provider)
	require.NoError(t, m.Connect(context.Background()))

	var reasons []Reason
	cancel := m.Subscribe(func(n Notification) { reasons = append(reasons, n.Reason) })
	defer cancel()

	provider.accountsErr = errors.New("node down")
	err := m.Connect(context.Background())
	require.Error(t, err)

	// The live session was destroyed by the attempt, so observers must
	// be told it is gone even though no connect succeeded.
	assert.Equal(t, Disconnected, m.Current().State)
	assert.Equal(t, []Reason{ReasonDisconnect}, reasons)
	assert.Equal(t, 0, provider.activeWatch)
}

func TestManager_Reconnect_ReplacesWatch(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{accounts: []string{"0xAAA"}, balances: map[string]*big.Int{}}
	m, _ := newTestManager(provider)

	require.NoError(t, m.Connect(context.Background()))
	m.Disconnect()
	require.NoError(t, m.Connect(context.Background()))

	assert.Equal(t, 2, provider.watchCount)
	assert.Equal(t, 1, provider.activeWatch, "exactly one live subscription after reconnect")
}
