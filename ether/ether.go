// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package ether converts between the registry's smallest value unit (wei)
// and human-facing decimal amounts. Conversions are exact: a decimal string
// produced by FormatWei always parses back to the original integer.
package ether

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimals is the registry's fixed exponent: one display unit is 10^18 wei.
const Decimals = 18

// weiPerUnit is 10^Decimals.
var weiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// FormatWei renders a non-negative smallest-unit amount as a decimal string.
// Trailing fractional zeros are trimmed; whole amounts carry no decimal point.
// A nil amount renders as "0".
func FormatWei(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0"
	}

	whole, frac := new(big.Int).QuoRem(wei, weiPerUnit, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String()
	}

	fs := frac.String()
	fracDigits := strings.TrimRight(strings.Repeat("0", Decimals-len(fs))+fs, "0")
	return whole.String() + "." + fracDigits
}

// ParseDecimal parses a non-negative decimal amount into smallest units.
// The fractional part may carry at most Decimals digits; anything finer
// cannot be represented on the registry and is rejected rather than rounded.
func ParseDecimal(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("negative amount %q", s)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("malformed amount %q", s)
	}
	if hasFrac && frac == "" {
		return nil, fmt.Errorf("malformed amount %q", s)
	}
	if len(frac) > Decimals {
		return nil, fmt.Errorf("amount %q exceeds %d decimal places", s, Decimals)
	}

	if whole == "" {
		whole = "0"
	}

	wholeInt, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, fmt.Errorf("malformed amount %q", s)
	}

	wei := new(big.Int).Mul(wholeInt, weiPerUnit)

	if frac != "" {
		// Scale the fractional digits up to a full 18-digit integer.
		padded := frac + strings.Repeat("0", Decimals-len(frac))
		fracInt, ok := new(big.Int).SetString(padded, 10)
		if !ok {
			return nil, fmt.Errorf("malformed amount %q", s)
		}
		wei.Add(wei, fracInt)
	}

	return wei, nil
}
