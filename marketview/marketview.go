// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package marketview is the pure query layer over skill records: it
// filters, sorts, and aggregates a fetched collection without ever
// touching the registry. All comparisons on price happen on the wei
// representation so display rounding can never change a result.
package marketview

import (
	"math/big"
	"sort"
	"strings"

	"github.com/skillmesh/skillmarket-core/ether"
	"github.com/skillmesh/skillmarket-core/skillerr"
	"github.com/skillmesh/skillmarket-core/skillreg"
)

// RangeAll matches every price.
const RangeAll = "all"

// CategoryAll matches every category.
const CategoryAll = "all"

// Categories are the well-known category choices offered when minting
// and browsing.
var Categories = []string{
	CategoryAll,
	"Programming",
	"Design",
	"Marketing",
	"Writing",
	"Business",
	"Data Science",
	"DevOps",
	"Mobile Development",
	"Web Development",
	"Blockchain",
	"AI/ML",
	"Other",
}

// PriceRanges are the preset price range expressions offered when
// browsing.
var PriceRanges = []string{RangeAll, "0-0.1", "0.1-0.5", "0.5-1", "1+"}

// Query is a pure filter specification. Zero values and "all" match
// everything for their dimension. Expr, when non-empty, is a CEL
// expression evaluated per record with the record bound as `skill`.
type Query struct {
	Search     string
	Category   string
	PriceRange string
	Expr       string
}

// PriceBound is a parsed price range. Min is always set; Max is nil
// for an open-ended range. Both ends are inclusive.
type PriceBound struct {
	Min *big.Int
	Max *big.Int
}

// Contains reports whether the wei amount falls inside the bound.
func (b PriceBound) Contains(wei *big.Int) bool {
	if wei == nil {
		wei = big.NewInt(0)
	}
	if wei.Cmp(b.Min) < 0 {
		return false
	}
	return b.Max == nil || wei.Cmp(b.Max) <= 0
}

// ParsePriceRange parses "all", "min-max", or "min+" with decimal
// endpoints. A nil result means the range matches everything.
func ParsePriceRange(s string) (*PriceBound, error) {
	if s == "" || s == RangeAll {
		return nil, nil
	}
	if min, found := strings.CutSuffix(s, "+"); found {
		minWei, err := ether.ParseDecimal(min)
		if err != nil {
			return nil, skillerr.WithKind(err, skillerr.KindValidation)
		}
		return &PriceBound{Min: minWei}, nil
	}
	min, max, found := strings.Cut(s, "-")
	if !found {
		return nil, skillerr.Newf(skillerr.KindValidation, "malformed price range %q", s)
	}
	minWei, err := ether.ParseDecimal(min)
	if err != nil {
		return nil, skillerr.WithKind(err, skillerr.KindValidation)
	}
	maxWei, err := ether.ParseDecimal(max)
	if err != nil {
		return nil, skillerr.WithKind(err, skillerr.KindValidation)
	}
	if maxWei.Cmp(minWei) < 0 {
		return nil, skillerr.Newf(skillerr.KindValidation, "price range %q has max below min", s)
	}
	return &PriceBound{Min: minWei, Max: maxWei}, nil
}

// Stats are aggregates over a projected record set.
type Stats struct {
	Total            int
	ForSale          int
	DistinctCreators int
}

// ComputeStats aggregates over the given records, usually the output
// of Project.
func ComputeStats(records []skillreg.SkillRecord) Stats {
	creators := make(map[string]struct{}, len(records))
	stats := Stats{Total: len(records)}
	for _, rec := range records {
		if rec.IsForSale {
			stats.ForSale++
		}
		creators[rec.Creator] = struct{}{}
	}
	stats.DistinctCreators = len(creators)
	return stats
}

// MostRecent sorts records in place: newest first, ties broken by
// descending token id so the order is deterministic.
func MostRecent(records []skillreg.SkillRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].TokenID > records[j].TokenID
	})
}
