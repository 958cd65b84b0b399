// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// MapReader implements Reader from a fixed map, for tests and embedding.
// Missing keys read as the empty string, matching os.Getenv.
type MapReader map[string]string

// Getenv returns the mapped value for the key, or "" when absent.
func (m MapReader) Getenv(key string) string {
	return m[key]
}
