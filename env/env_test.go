// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"testing"
)

func TestOSReader_Getenv(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	// Cannot run in parallel because it modifies environment variables
	testKey := "TEST_ENV_VARIABLE_FOR_TESTING"
	testValue := "test_value_123"

	originalValue, wasSet := os.LookupEnv(testKey)
	os.Setenv(testKey, testValue)
	t.Cleanup(func() {
		if wasSet {
			os.Setenv(testKey, originalValue)
		} else {
			os.Unsetenv(testKey)
		}
	})

	reader := &OSReader{}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "existing environment variable",
			key:  testKey,
			want: testValue,
		},
		{
			name: "non-existing environment variable",
			key:  "NONEXISTENT_ENV_VAR_TESTING_12345",
			want: "",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
	}

	for _, tt := range tests { //nolint:paralleltest // Test modifies environment variables
		t.Run(tt.name, func(t *testing.T) {
			got := reader.Getenv(tt.key)
			if got != tt.want {
				t.Errorf("OSReader.Getenv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapReader_Getenv(t *testing.T) {
	t.Parallel()

	reader := MapReader{"KNOWN": "value"}

	if got := reader.Getenv("KNOWN"); got != "value" {
		t.Errorf("MapReader.Getenv(KNOWN) = %v, want value", got)
	}
	if got := reader.Getenv("UNKNOWN"); got != "" {
		t.Errorf("MapReader.Getenv(UNKNOWN) = %v, want empty", got)
	}
}

// TestReader_InterfaceCompliance ensures both readers implement the Reader interface
func TestReader_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = MapReader{}
	// If this compiles, the test passes
}
