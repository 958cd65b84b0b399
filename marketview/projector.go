// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package marketview

import (
	"strings"

	"github.com/skillmesh/skillmarket-core/celquery"
	"github.com/skillmesh/skillmarket-core/skillreg"
)

// Projector applies queries to record collections. It carries only a
// CEL engine for the optional expression filter and is safe for
// concurrent use.
type Projector struct {
	engine *celquery.Engine
}

// NewProjector returns a ready Projector.
func NewProjector() *Projector {
	return &Projector{engine: celquery.NewEngine()}
}

// Project filters records by the query, preserving input order. The
// filters apply in sequence: name search, category, price range, and
// finally the CEL expression. An identity query returns the records
// unchanged. The input slice is never modified.
//
// Category matching is a substring match against the skill name. The
// registry record carries no category field of its own, only the
// minted metadata does, so this is a documented approximation.
func (p *Projector) Project(records []skillreg.SkillRecord, q Query) ([]skillreg.SkillRecord, error) {
	bound, err := ParsePriceRange(q.PriceRange)
	if err != nil {
		return nil, err
	}
	var filter *celquery.Filter
	if q.Expr != "" {
		filter, err = p.engine.Compile(q.Expr)
		if err != nil {
			return nil, err
		}
	}

	search := strings.ToLower(q.Search)
	category := strings.ToLower(q.Category)
	if category == CategoryAll {
		category = ""
	}

	visible := make([]skillreg.SkillRecord, 0, len(records))
	for _, rec := range records {
		name := strings.ToLower(rec.SkillName)
		if search != "" && !strings.Contains(name, search) {
			continue
		}
		if category != "" && !strings.Contains(name, category) {
			continue
		}
		if bound != nil && !bound.Contains(rec.PriceWei) {
			continue
		}
		if filter != nil {
			match, err := filter.Match(recordVars(rec))
			if err != nil {
				return nil, err
			}
			if !match {
				continue
			}
		}
		visible = append(visible, rec)
	}
	return visible, nil
}

// recordVars flattens a record into the variable map a CEL filter
// evaluates against.
func recordVars(rec skillreg.SkillRecord) map[string]any {
	return map[string]any{
		"tokenId":     rec.TokenID,
		"name":        rec.SkillName,
		"creator":     rec.Creator,
		"owner":       rec.Owner,
		"price":       rec.Price,
		"isForSale":   rec.IsForSale,
		"createdAt":   rec.CreatedAt.Unix(),
		"metadataURI": rec.MetadataURI,
	}
}
