// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillreg

import (
	"context"
	"math/big"

	"github.com/skillmesh/skillmarket-core/wallet"
)

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks -source=backend.go Backend

// Backend is the raw call surface of the skill registry contract.
// Mutating calls take the signer that authorizes them and block until
// the registry has durably confirmed the call. Implementations must
// return skillerr-kinded errors so the client can surface them
// without further mapping.
type Backend interface {
	// MintSkill creates a new skill asset and returns its token id.
	MintSkill(ctx context.Context, signer wallet.Signer, skillName, metadataURI string) (uint64, error)

	// ListSkillForSale puts an owned token up for sale at the given
	// wei price.
	ListSkillForSale(ctx context.Context, signer wallet.Signer, tokenID uint64, priceWei *big.Int) error

	// BuySkill purchases a listed token, attaching paymentWei as the
	// transferred value.
	BuySkill(ctx context.Context, signer wallet.Signer, tokenID uint64, paymentWei *big.Int) error

	// RemoveFromSale delists an owned token.
	RemoveFromSale(ctx context.Context, signer wallet.Signer, tokenID uint64) error

	// SkillsForSale returns the token ids currently listed for sale.
	SkillsForSale(ctx context.Context) ([]uint64, error)

	// UserSkills returns the token ids owned by the given identity.
	UserSkills(ctx context.Context, owner string) ([]uint64, error)

	// AllSkills returns every token id ever minted.
	AllSkills(ctx context.Context) ([]uint64, error)

	// Skill returns the registry's record for one token.
	Skill(ctx context.Context, tokenID uint64) (RawSkill, error)

	// OwnerOf returns the current owner of a token.
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)

	// TokenURI returns the metadata reference stored for a token.
	TokenURI(ctx context.Context, tokenID uint64) (string, error)
}
