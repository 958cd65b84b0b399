// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/skillmesh/skillmarket-core/logger"
	"github.com/skillmesh/skillmarket-core/recovery"
	"github.com/skillmesh/skillmarket-core/skillerr"
)

// Compile-time interface checks.
var (
	_ Provider = (*EthProvider)(nil)
	_ Signer   = (*keystoreSigner)(nil)
)

// defaultWatchInterval is how often the provider polls for account and
// chain changes. Local keystores have no push notification channel, so the
// environment events of the session state machine are derived by polling.
const defaultWatchInterval = 5 * time.Second

// PassphraseFunc supplies the passphrase for an account when a signature is
// requested. Returning an error means the user declined the prompt.
type PassphraseFunc func(address string) (string, error)

// EthProvider implements Provider over a local go-ethereum keystore and an
// RPC node connection.
type EthProvider struct {
	ks            *keystore.KeyStore
	client        *ethclient.Client
	passphrase    PassphraseFunc
	watchInterval time.Duration
}

// EthProviderOption configures an EthProvider.
type EthProviderOption func(*EthProvider)

// WithWatchInterval overrides the event polling interval.
func WithWatchInterval(d time.Duration) EthProviderOption {
	return func(p *EthProvider) {
		p.watchInterval = d
	}
}

// NewEthProvider opens the keystore directory and connects to the node.
// A missing or empty keystore directory means no wallet capability is
// present in this environment.
func NewEthProvider(rpcURL, keystoreDir string, passphrase PassphraseFunc, opts ...EthProviderOption) (*EthProvider, error) {
	info, err := os.Stat(keystoreDir)
	if err != nil || !info.IsDir() {
		return nil, skillerr.Newf(skillerr.KindProviderUnavailable,
			"no wallet keystore at %s", keystoreDir)
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, skillerr.WithKind(fmt.Errorf("dialing node %s: %w", rpcURL, err), skillerr.KindNetwork)
	}

	p := &EthProvider{
		ks:            keystore.NewKeyStore(keystoreDir, keystore.StandardScryptN, keystore.StandardScryptP),
		client:        client,
		passphrase:    passphrase,
		watchInterval: defaultWatchInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Client exposes the underlying node connection so callers can bind
// other consumers, such as the registry backend, to the same endpoint.
func (p *EthProvider) Client() *ethclient.Client {
	return p.client
}

// Accounts lists the keystore's account addresses.
func (p *EthProvider) Accounts(_ context.Context) ([]string, error) {
	accs := p.ks.Accounts()
	if len(accs) == 0 {
		return nil, skillerr.New("wallet keystore holds no accounts", skillerr.KindProviderUnavailable)
	}

	addrs := make([]string, 0, len(accs))
	for _, a := range accs {
		addrs = append(addrs, a.Address.Hex())
	}
	return addrs, nil
}

// BalanceOf reads the current balance of an address from the node.
func (p *EthProvider) BalanceOf(ctx context.Context, address string) (*big.Int, error) {
	balance, err := p.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, skillerr.WithKind(fmt.Errorf("reading balance: %w", err), skillerr.KindNetwork)
	}
	return balance, nil
}

// SigningHandle returns a signer bound to one keystore account.
func (p *EthProvider) SigningHandle(address string) (Signer, error) {
	target := common.HexToAddress(address)
	for _, a := range p.ks.Accounts() {
		if a.Address == target {
			return &keystoreSigner{ks: p.ks, account: a, passphrase: p.passphrase}, nil
		}
	}
	return nil, skillerr.Newf(skillerr.KindProviderUnavailable, "no key for %s", address)
}

// Watch polls the keystore and node for account and chain changes.
func (p *EthProvider) Watch(h ChangeHandler) (func(), error) {
	stop := make(chan struct{})

	go func() {
		ticker := time.NewTicker(p.watchInterval)
		defer ticker.Stop()

		lastAccounts := accountSet(p.ks.Accounts())
		var lastChain *big.Int

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}

			if h.AccountsChanged != nil {
				current := accountSet(p.ks.Accounts())
				if !equalAddresses(current, lastAccounts) {
					lastAccounts = current
					recovery.Call("accounts changed handler", func() { h.AccountsChanged(current) })
				}
			}

			if h.ChainChanged != nil {
				ctx, cancel := context.WithTimeout(context.Background(), p.watchInterval)
				chainID, err := p.client.ChainID(ctx)
				cancel()
				if err != nil {
					logger.Debugw("chain id poll failed", "error", err)
					continue
				}
				if lastChain != nil && chainID.Cmp(lastChain) != 0 {
					recovery.Call("chain changed handler", func() { h.ChainChanged(chainID) })
				}
				lastChain = chainID
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(stop) }) }, nil
}

func accountSet(accs []accounts.Account) []string {
	out := make([]string, 0, len(accs))
	for _, a := range accs {
		out = append(out, a.Address.Hex())
	}
	return out
}

func equalAddresses(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// keystoreSigner authorizes transactions with a passphrase-protected key.
type keystoreSigner struct {
	ks         *keystore.KeyStore
	account    accounts.Account
	passphrase PassphraseFunc
}

// Address returns the account address in checksummed hex form.
func (s *keystoreSigner) Address() string {
	return s.account.Address.Hex()
}

// SignTx signs the transaction, prompting for the passphrase. A declined
// prompt or a wrong passphrase surfaces as a user-rejected error.
func (s *keystoreSigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	pass, err := s.passphrase(s.Address())
	if err != nil {
		return nil, skillerr.WithKind(fmt.Errorf("authorization declined: %w", err), skillerr.KindUserRejected)
	}

	signed, err := s.ks.SignTxWithPassphrase(s.account, pass, tx, chainID)
	if err != nil {
		if errors.Is(err, keystore.ErrDecrypt) {
			return nil, skillerr.WithKind(fmt.Errorf("signing declined: %w", err), skillerr.KindUserRejected)
		}
		return nil, fmt.Errorf("signing transaction: %w", err)
	}
	return signed, nil
}
