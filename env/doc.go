// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("SKILLMARKET_REGISTRY_ADDRESS")

# Testing

The Reader interface allows injecting a substitute in tests to avoid relying
on real environment variables. MapReader covers the common case:

	cfg, err := config.Load(path, env.MapReader{
		"SKILLMARKET_REGISTRY_ADDRESS": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
	})

A generated mock is available in the mocks sub-package for expectation-based
tests:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("MY_VAR").Return("test-value")

# Design

Production code accepts an env.Reader; tests substitute MapReader or the
generated mock. This keeps configuration readable from the call site and
makes every environment dependency explicit.
*/
package env
