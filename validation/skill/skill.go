// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package skill provides validation functions for user-supplied skill inputs.
// These checks run locally, before any registry call is made.
package skill

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/skillmesh/skillmarket-core/ether"
)

const (
	// MaxNameLength caps skill names well below any on-chain string limit.
	MaxNameLength = 128

	// MaxDescriptionLength caps the metadata description.
	MaxDescriptionLength = 2048

	// MaxCategoryLength caps the category token.
	MaxCategoryLength = 64
)

// ValidateName validates a skill name: non-blank, bounded, and free of
// control characters.
func ValidateName(name string) error {
	return validateText("skill name", name, MaxNameLength)
}

// ValidateDescription validates a skill description.
func ValidateDescription(description string) error {
	return validateText("description", description, MaxDescriptionLength)
}

// ValidateCategory validates a category token.
func ValidateCategory(category string) error {
	return validateText("category", category, MaxCategoryLength)
}

func validateText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}

	// Length limit to keep metadata and on-chain storage bounded
	if len(value) > maxLen {
		return fmt.Errorf("%s exceeds maximum length of %d bytes", field, maxLen)
	}

	// Same control-character screen Go's HTTP/2 implementation uses
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%s contains control characters", field)
	}

	return nil
}

// ValidatePrice validates a decimal listing or purchase price.
// The amount must parse losslessly into smallest units and be positive:
// the registry refuses zero-priced listings.
func ValidatePrice(price string) error {
	wei, err := ether.ParseDecimal(price)
	if err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	if wei.Sign() <= 0 {
		return fmt.Errorf("price must be positive, got %q", price)
	}
	return nil
}

// ValidateMetadataURI validates the shape of a metadata reference.
//
// A valid metadata URI must:
//   - Parse as a URI with a scheme and an opaque part or host
//   - Use one of the accepted schemes (ipfs, https, ar)
//   - Contain no whitespace
func ValidateMetadataURI(uri string) error {
	if uri == "" {
		return fmt.Errorf("metadata URI cannot be empty")
	}
	if strings.ContainsAny(uri, " \t\r\n") {
		return fmt.Errorf("metadata URI contains whitespace")
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid metadata URI: %w", err)
	}

	switch parsed.Scheme {
	case "ipfs", "https", "ar":
	case "":
		return fmt.Errorf("metadata URI missing scheme")
	default:
		return fmt.Errorf("unsupported metadata URI scheme %q", parsed.Scheme)
	}

	if parsed.Host == "" && parsed.Opaque == "" && parsed.Path == "" {
		return fmt.Errorf("metadata URI has no content reference")
	}

	return nil
}
