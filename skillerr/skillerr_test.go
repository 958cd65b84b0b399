// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithKind(t *testing.T) {
	t.Parallel()

	t.Run("wraps error with kind", func(t *testing.T) {
		t.Parallel()

		baseErr := errors.New("no accounts")
		err := WithKind(baseErr, KindProviderUnavailable)

		require.NotNil(t, err)

		kinded, ok := err.(*KindedError)
		require.True(t, ok, "expected *KindedError, got %T", err)
		require.Equal(t, KindProviderUnavailable, kinded.Kind())
		require.Equal(t, "no accounts", kinded.Error())
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		t.Parallel()

		err := WithKind(nil, KindNetwork)
		require.Nil(t, err)
	})
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	t.Run("extracts kind from KindedError", func(t *testing.T) {
		t.Parallel()

		err := WithKind(errors.New("empty skill name"), KindValidation)
		require.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("defaults to network for plain errors", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, KindNetwork, KindOf(errors.New("plain error")))
	})

	t.Run("extracts kind from wrapped error", func(t *testing.T) {
		t.Parallel()

		baseErr := New("not the owner", KindReverted)
		wrapped := fmt.Errorf("listing token 5: %w", baseErr)
		require.Equal(t, KindReverted, KindOf(wrapped))
	})

	t.Run("extracts kind from deeply wrapped error", func(t *testing.T) {
		t.Parallel()

		baseErr := New("duplicate", KindDuplicateInFlight)
		wrapped1 := fmt.Errorf("layer 1: %w", baseErr)
		wrapped2 := fmt.Errorf("layer 2: %w", wrapped1)
		require.Equal(t, KindDuplicateInFlight, KindOf(wrapped2))
	})
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	t.Run("matches the carried kind", func(t *testing.T) {
		t.Parallel()

		err := New("session required", KindNotConnected)
		require.True(t, IsKind(err, KindNotConnected))
		require.False(t, IsKind(err, KindValidation))
	})

	t.Run("nil error matches no kind", func(t *testing.T) {
		t.Parallel()

		require.False(t, IsKind(nil, KindNetwork))
	})
}

func TestReverted(t *testing.T) {
	t.Parallel()

	t.Run("preserves reason verbatim", func(t *testing.T) {
		t.Parallel()

		err := Reverted("Skill: not the owner")
		require.Equal(t, KindReverted, KindOf(err))
		require.Equal(t, "Skill: not the owner", ReasonOf(err))
		require.Equal(t, "Skill: not the owner", err.Error())
	})

	t.Run("falls back to generic message without reason", func(t *testing.T) {
		t.Parallel()

		err := Reverted("")
		require.Equal(t, KindReverted, KindOf(err))
		require.Empty(t, ReasonOf(err))
		require.Equal(t, "transaction reverted", err.Error())
	})

	t.Run("reason survives wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("buying token 3: %w", Reverted("already sold"))
		require.Equal(t, "already sold", ReasonOf(err))
	})
}

func TestKindedError_Unwrap(t *testing.T) {
	t.Parallel()

	t.Run("errors.Is works through the wrapper", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("sentinel")
		err := WithKind(sentinel, KindNetwork)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("errors.As extracts the KindedError", func(t *testing.T) {
		t.Parallel()

		err := New("bad address", KindConfig)
		wrapped := fmt.Errorf("loading config: %w", err)

		var kinded *KindedError
		require.ErrorAs(t, wrapped, &kinded)
		require.Equal(t, KindConfig, kinded.Kind())
	})
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(KindValidation, "price %q is not positive", "0")
	require.Equal(t, `price "0" is not positive`, err.Error())
	require.Equal(t, KindValidation, KindOf(err))
}
