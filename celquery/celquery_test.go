// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package celquery_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmesh/skillmarket-core/celquery"
)

func testSkill() map[string]any {
	return map[string]any{
		"tokenId":   int64(5),
		"skillName": "Rust Systems Design",
		"creator":   "0xabc",
		"owner":     "0xdef",
		"isForSale": true,
		"price":     "0.5",
		"createdAt": int64(1700000000),
	}
}

func TestEngine_Compile_ValidExpressions(t *testing.T) {
	t.Parallel()

	engine := celquery.NewEngine()

	for _, expr := range []string{
		`skill.isForSale`,
		`skill.skillName.contains("Rust")`,
		`skill.creator != skill.owner`,
		`skill["tokenId"] >= 1`,
	} {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()
			f, err := engine.Compile(expr)
			require.NoError(t, err)
			require.NotNil(t, f)
			assert.Equal(t, expr, f.Source())
		})
	}
}

func TestEngine_Compile_InvalidExpressions(t *testing.T) {
	t.Parallel()

	engine := celquery.NewEngine()

	tests := []struct {
		name string
		expr string
	}{
		{"syntax error", `skill.isForSale &&`},
		{"unknown variable", `record.isForSale`},
		{"over length limit", `skill.isForSale || ` + strings.Repeat("true || ", 600) + "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := engine.Compile(tt.expr)
			require.Error(t, err)
			require.ErrorIs(t, err, celquery.ErrExpressionCheck)
		})
	}
}

func TestFilter_Match(t *testing.T) {
	t.Parallel()

	engine := celquery.NewEngine()

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"for sale", `skill.isForSale`, true},
		{"name contains", `skill.skillName.contains("Systems")`, true},
		{"name does not contain", `skill.skillName.contains("Marketing")`, false},
		{"creator differs from owner", `skill.creator != skill.owner`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := engine.Compile(tt.expr)
			require.NoError(t, err)

			got, err := f.Match(testSkill())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Match_NonBoolean(t *testing.T) {
	t.Parallel()

	f, err := celquery.NewEngine().Compile(`skill.skillName`)
	require.NoError(t, err)

	_, err = f.Match(testSkill())
	require.Error(t, err)
	require.ErrorIs(t, err, celquery.ErrInvalidResult)
}

func TestEngine_Check(t *testing.T) {
	t.Parallel()

	engine := celquery.NewEngine()
	require.NoError(t, engine.Check(`skill.isForSale`))
	require.Error(t, engine.Check(`nonsense(`))
}
