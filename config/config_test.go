// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmesh/skillmarket-core/env"
	"github.com/skillmesh/skillmarket-core/skillerr"
)

const testAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
registry_address: "`+testAddress+`"
rpc_endpoint: "http://node.internal:8545"
keystore_dir: "/tmp/keys"
`)

	cfg, err := Load(path, env.MapReader{})
	require.NoError(t, err)
	assert.Equal(t, testAddress, cfg.RegistryAddress)
	assert.Equal(t, "http://node.internal:8545", cfg.RPCEndpoint)
	assert.Equal(t, "/tmp/keys", cfg.KeystoreDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
registry_address: "0x0000000000000000000000000000000000000001"
`)

	cfg, err := Load(path, env.MapReader{
		EnvRegistryAddress: testAddress,
		EnvRPCEndpoint:     "http://override:8545",
	})
	require.NoError(t, err)
	assert.Equal(t, testAddress, cfg.RegistryAddress)
	assert.Equal(t, "http://override:8545", cfg.RPCEndpoint)
}

func TestLoad_MissingFileEnvOnly(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), env.MapReader{
		EnvRegistryAddress: testAddress,
	})
	require.NoError(t, err)
	assert.Equal(t, testAddress, cfg.RegistryAddress)
	assert.Equal(t, DefaultRPCEndpoint, cfg.RPCEndpoint)
	assert.NotEmpty(t, cfg.KeystoreDir)
}

func TestLoad_MissingRegistryAddress(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), env.MapReader{})
	require.Error(t, err)
	assert.Equal(t, skillerr.KindConfig, skillerr.KindOf(err))
}

func TestLoad_MalformedAddress(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), env.MapReader{
		EnvRegistryAddress: "not-an-address",
	})
	require.Error(t, err)
	assert.Equal(t, skillerr.KindConfig, skillerr.KindOf(err))
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "registry_address: [broken")
	_, err := Load(path, env.MapReader{})
	require.Error(t, err)
	assert.Equal(t, skillerr.KindConfig, skillerr.KindOf(err))
}

func TestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/home/u/.config", "skillmarket", "config.yaml"), Path("/home/u/.config"))
}
