// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// FlagStore persists the single "previously connected" boolean used to
// decide whether to attempt a silent reconnect at startup. It holds no
// credentials.
type FlagStore interface {
	// WasConnected reports whether a prior session connected successfully.
	WasConnected() bool

	// SetConnected records or clears the flag.
	SetConnected(connected bool) error
}

// FileFlagStore persists the flag as the presence of a marker file.
type FileFlagStore struct {
	path string
}

// FlagPath returns the marker file location within the given state home.
// This is the injectable, testable form. For the standard XDG location,
// use NewFileFlagStore with DefaultFlagPath.
func FlagPath(stateHome string) string {
	return filepath.Join(stateHome, "skillmarket", "connected")
}

// DefaultFlagPath returns the marker file location using XDG base directory conventions.
func DefaultFlagPath() string {
	return FlagPath(xdg.StateHome)
}

// NewFileFlagStore creates a flag store backed by the marker file at path.
func NewFileFlagStore(path string) *FileFlagStore {
	return &FileFlagStore{path: path}
}

// WasConnected reports whether the marker file exists.
func (s *FileFlagStore) WasConnected() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// SetConnected creates or removes the marker file.
func (s *FileFlagStore) SetConnected(connected bool) error {
	if connected {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
			return err
		}
		return os.WriteFile(s.path, []byte{}, 0o600)
	}

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemFlagStore is an in-memory FlagStore for tests and embedders that do
// not want auto-reconnect to survive restarts.
type MemFlagStore struct {
	connected bool
}

// WasConnected reports the stored value.
func (s *MemFlagStore) WasConnected() bool { return s.connected }

// SetConnected stores the value.
func (s *MemFlagStore) SetConnected(connected bool) error {
	s.connected = connected
	return nil
}
