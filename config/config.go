// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config resolves the marketplace client configuration from an
// optional YAML file and environment overrides. The registry address has no
// default: the client refuses to start without one rather than silently
// binding to nothing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/skillmesh/skillmarket-core/env"
	"github.com/skillmesh/skillmarket-core/skillerr"
)

// Environment variables overriding file values.
const (
	EnvRegistryAddress = "SKILLMARKET_REGISTRY_ADDRESS"
	EnvRPCEndpoint     = "SKILLMARKET_RPC_ENDPOINT"
	EnvKeystoreDir     = "SKILLMARKET_KEYSTORE_DIR"
)

// DefaultRPCEndpoint is used when neither file nor environment names a node.
const DefaultRPCEndpoint = "http://localhost:8545"

// Config holds everything needed to bind the client to a registry deployment.
type Config struct {
	// RegistryAddress is the deployed skill registry contract address. Required.
	RegistryAddress string `yaml:"registry_address"`
	// RPCEndpoint is the ledger node URL.
	RPCEndpoint string `yaml:"rpc_endpoint"`
	// KeystoreDir is the directory holding the wallet's key files.
	KeystoreDir string `yaml:"keystore_dir"`
}

// Path returns the config file location within the given config home.
// This is the injectable, testable form. For the standard XDG location,
// use DefaultPath.
func Path(configHome string) string {
	return filepath.Join(configHome, "skillmarket", "config.yaml")
}

// DefaultPath returns the config file location using XDG base directory conventions.
func DefaultPath() string {
	return Path(xdg.ConfigHome)
}

// DefaultKeystoreDir returns the wallet keystore location using XDG conventions.
func DefaultKeystoreDir() string {
	return filepath.Join(xdg.DataHome, "skillmarket", "keystore")
}

// Load reads the config file at path (if it exists), applies environment
// overrides, fills defaults, and validates the result. A missing file is not
// an error; a missing registry address is.
func Load(path string, envReader env.Reader) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, skillerr.WithKind(fmt.Errorf("parsing %s: %w", path, err), skillerr.KindConfig)
		}
	case errors.Is(err, os.ErrNotExist):
		// config is optional; environment alone may be enough
	default:
		return nil, skillerr.WithKind(fmt.Errorf("reading %s: %w", path, err), skillerr.KindConfig)
	}

	if v := envReader.Getenv(EnvRegistryAddress); v != "" {
		cfg.RegistryAddress = v
	}
	if v := envReader.Getenv(EnvRPCEndpoint); v != "" {
		cfg.RPCEndpoint = v
	}
	if v := envReader.Getenv(EnvKeystoreDir); v != "" {
		cfg.KeystoreDir = v
	}

	if cfg.RPCEndpoint == "" {
		cfg.RPCEndpoint = DefaultRPCEndpoint
	}
	if cfg.KeystoreDir == "" {
		cfg.KeystoreDir = DefaultKeystoreDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can bind a client.
func (c *Config) Validate() error {
	if c.RegistryAddress == "" {
		return skillerr.Newf(skillerr.KindConfig,
			"no registry address configured: set registry_address or %s", EnvRegistryAddress)
	}
	if !common.IsHexAddress(c.RegistryAddress) {
		return skillerr.Newf(skillerr.KindConfig,
			"registry address %q is not a valid hex address", c.RegistryAddress)
	}
	if c.RPCEndpoint == "" {
		return skillerr.New("no RPC endpoint configured", skillerr.KindConfig)
	}
	return nil
}
