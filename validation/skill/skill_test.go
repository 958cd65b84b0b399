// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skill

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "Rust Systems Design", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
		{"control character", "bad\x00name", true},
		{"newline injection", "name\r\nother", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.value)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateDescription("One-on-one mentoring sessions."))
	require.Error(t, ValidateDescription(""))
	require.Error(t, ValidateDescription(strings.Repeat("x", MaxDescriptionLength+1)))
}

func TestValidateCategory(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateCategory("Programming"))
	require.Error(t, ValidateCategory(""))
	require.Error(t, ValidateCategory(strings.Repeat("x", MaxCategoryLength+1)))
}

func TestValidatePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		price   string
		wantErr bool
	}{
		{"positive whole", "1", false},
		{"positive fraction", "0.5", false},
		{"smallest representable", "0.000000000000000001", false},
		{"zero", "0", true},
		{"negative", "-1", true},
		{"empty", "", true},
		{"not a number", "free", true},
		{"too precise", "0.0000000000000000001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePrice(tt.price)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateMetadataURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		uri     string
		wantErr bool
	}{
		{"ipfs digest", "ipfs://e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", false},
		{"https", "https://example.com/meta/5.json", false},
		{"arweave", "ar://abc123", false},
		{"empty", "", true},
		{"no scheme", "example.com/meta", true},
		{"unsupported scheme", "ftp://example.com/meta", true},
		{"whitespace", "ipfs://abc def", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateMetadataURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
