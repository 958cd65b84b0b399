// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package skillreg executes mutating and read-only calls against the
// on-chain skill registry, bound to a wallet session. It serializes
// mutations per token, maps low-level failures into the skillerr
// taxonomy, and converts registry amounts between wei and decimal
// display units.
package skillreg

import (
	"math/big"
	"time"
)

// RawSkill is the registry's own view of a skill, as returned by the
// contract's getSkill call. Amounts are in wei and timestamps are unix
// seconds, exactly as stored on chain.
type RawSkill struct {
	TokenID   uint64
	Name      string
	Creator   string
	PriceWei  *big.Int
	IsForSale bool
	CreatedAt int64
}

// SkillRecord is the assembled domain view of a skill: the raw
// contract record joined with the current owner and metadata URI, with
// the price converted to a decimal string for display.
type SkillRecord struct {
	TokenID     uint64
	SkillName   string
	Creator     string
	Owner       string
	PriceWei    *big.Int
	Price       string
	IsForSale   bool
	CreatedAt   time.Time
	MetadataURI string
}
