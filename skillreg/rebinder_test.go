// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillreg

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmesh/skillmarket-core/skillerr"
	"github.com/skillmesh/skillmarket-core/wallet"
)

// stubProvider is the smallest wallet.Provider that can drive the
// session manager through connect and account-change transitions.
type stubProvider struct {
	accounts    []string
	accountsErr error
	handler     wallet.ChangeHandler
}

func (p *stubProvider) Accounts(context.Context) ([]string, error) {
	if p.accountsErr != nil {
		return nil, p.accountsErr
	}
	return p.accounts, nil
}

func (p *stubProvider) BalanceOf(context.Context, string) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (p *stubProvider) SigningHandle(address string) (wallet.Signer, error) {
	return stubSigner{address: address}, nil
}

func (p *stubProvider) Watch(h wallet.ChangeHandler) (func(), error) {
	p.handler = h
	return func() {}, nil
}

func TestRebinder(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{accounts: []string{"0xAAA"}}
	manager := wallet.NewManager(provider, &wallet.MemFlagStore{})
	backend := newMemBackend()

	rebinder := NewRebinder(backend, manager)
	defer rebinder.Close()

	_, err := rebinder.Client()
	assert.True(t, skillerr.IsKind(err, skillerr.KindNotConnected))

	require.NoError(t, manager.Connect(context.Background()))

	first, err := rebinder.Client()
	require.NoError(t, err)
	assert.Equal(t, "0xAAA", first.Session().Address)

	// A balance refresh keeps the epoch, the bound client survives.
	manager.RefreshBalance(context.Background())
	same, err := rebinder.Client()
	require.NoError(t, err)
	assert.Same(t, first, same)

	// Switching accounts rebuilds the client against the new signer.
	provider.accounts = []string{"0xBBB"}
	provider.handler.AccountsChanged([]string{"0xBBB"})

	second, err := rebinder.Client()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, "0xBBB", second.Session().Address)
	assert.NotEqual(t, first.Session().Epoch, second.Session().Epoch)

	manager.Disconnect()
	_, err = rebinder.Client()
	assert.True(t, skillerr.IsKind(err, skillerr.KindNotConnected))

	// A reconnect attempt that fails tears down the session it
	// replaced; the rebinder must stop serving the old binding.
	require.NoError(t, manager.Connect(context.Background()))
	provider.accountsErr = errors.New("node down")
	require.Error(t, manager.Connect(context.Background()))
	_, err = rebinder.Client()
	assert.True(t, skillerr.IsKind(err, skillerr.KindNotConnected))

	// Reads stay available without a session.
	reader := rebinder.Reader()
	records, err := reader.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
