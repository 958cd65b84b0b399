// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skillmesh/skillmarket-core/config"
	"github.com/skillmesh/skillmarket-core/env"
	"github.com/skillmesh/skillmarket-core/skillreg"
	"github.com/skillmesh/skillmarket-core/wallet"
)

// envPassphrase lets scripts supply the keystore passphrase without a
// prompt.
const envPassphrase = "SKILLMARKET_PASSPHRASE"

// app wires the session manager and registry client for one command
// invocation. Commands are single-shot, so the previously persisted
// connection flag is what carries the session across invocations.
type app struct {
	cfg      *config.Config
	manager  *wallet.Manager
	rebinder *skillreg.Rebinder
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(config.DefaultPath(), &env.OSReader{})
	if err != nil {
		return nil, err
	}

	provider, err := wallet.NewEthProvider(cfg.RPCEndpoint, cfg.KeystoreDir, promptPassphrase)
	if err != nil {
		return nil, err
	}

	manager := wallet.NewManager(provider, wallet.NewFileFlagStore(wallet.DefaultFlagPath()))
	manager.Resume(ctx)

	backend, err := skillreg.NewEthBackend(ctx, provider.Client(), cfg.RegistryAddress)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		manager:  manager,
		rebinder: skillreg.NewRebinder(backend, manager),
	}, nil
}

func (a *app) close() {
	a.rebinder.Close()
}

// client returns the registry client for the active session.
func (a *app) client() (*skillreg.Client, error) {
	return a.rebinder.Client()
}

func promptPassphrase(address string) (string, error) {
	if pass := os.Getenv(envPassphrase); pass != "" {
		return pass, nil
	}
	fmt.Fprintf(os.Stderr, "Passphrase for %s: ", address)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return strings.TrimSpace(line), nil
}
