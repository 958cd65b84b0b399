// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillreg

import (
	"context"
	"time"

	"github.com/skillmesh/skillmarket-core/ether"
	"github.com/skillmesh/skillmarket-core/logger"
	"github.com/skillmesh/skillmarket-core/metadata"
	"github.com/skillmesh/skillmarket-core/skillerr"
	"github.com/skillmesh/skillmarket-core/validation/skill"
	"github.com/skillmesh/skillmarket-core/wallet"
)

// Client executes registry operations bound to one wallet session.
// A Client is immutable: when the session changes it must be replaced,
// not mutated, so that in-flight bookkeeping bound to the old signer
// dies with it. Rebinder does this replacement automatically.
//
// Mutating operations follow a fixed protocol: validate locally,
// require a connected session, refuse duplicate in-flight submissions
// for the same token, submit, and wait for durable confirmation.
// Failed mutations are never retried here; the caller must re-initiate
// them. After a successful mutation callers must re-fetch affected
// records, reads issued concurrently with the mutation carry no
// ordering guarantee.
type Client struct {
	backend  Backend
	session  wallet.Session
	inflight *inflightTable
	now      func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithClock overrides the time source used when stamping minted
// metadata. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient builds a client bound to the given session. A zero
// session yields a read-only client: reads work, mutations fail with
// a not-connected error.
func NewClient(backend Backend, session wallet.Session, opts ...Option) *Client {
	c := &Client{
		backend:  backend,
		session:  session,
		inflight: newInflightTable(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session this client is bound to.
func (c *Client) Session() wallet.Session {
	return c.session
}

// MintRequest carries the user-supplied fields of a new skill. The
// metadata document is assembled, hashed, and referenced by URI here;
// the registry itself only stores the name and the URI.
type MintRequest struct {
	Name        string
	Description string
	Category    string
}

// MintSkill creates a new skill asset and returns its token id.
func (c *Client) MintSkill(ctx context.Context, req MintRequest) (uint64, error) {
	if err := skill.ValidateName(req.Name); err != nil {
		return 0, err
	}
	if err := skill.ValidateDescription(req.Description); err != nil {
		return 0, err
	}
	if err := skill.ValidateCategory(req.Category); err != nil {
		return 0, err
	}

	var tokenID uint64
	err := c.mutate(opKey{kind: opMint}, func() error {
		doc := metadata.New(req.Name, req.Description, req.Category, c.session.Address, c.now())
		uri, _, err := doc.URI()
		if err != nil {
			return err
		}
		tokenID, err = c.backend.MintSkill(ctx, c.session.Signer, req.Name, uri)
		return err
	})
	return tokenID, err
}

// ListForSale lists an owned token at the given decimal price.
func (c *Client) ListForSale(ctx context.Context, tokenID uint64, price string) error {
	if err := skill.ValidatePrice(price); err != nil {
		return err
	}
	priceWei, err := ether.ParseDecimal(price)
	if err != nil {
		return skillerr.WithKind(err, skillerr.KindValidation)
	}

	return c.mutate(opKey{kind: opList, tokenID: tokenID}, func() error {
		return c.backend.ListSkillForSale(ctx, c.session.Signer, tokenID, priceWei)
	})
}

// Buy purchases a listed token. The listed price is read from the
// registry immediately before submission and attached as payment.
func (c *Client) Buy(ctx context.Context, tokenID uint64) error {
	return c.mutate(opKey{kind: opBuy, tokenID: tokenID}, func() error {
		raw, err := c.backend.Skill(ctx, tokenID)
		if err != nil {
			return err
		}
		if !raw.IsForSale {
			return skillerr.Newf(skillerr.KindValidation, "skill %d is not listed for sale", tokenID)
		}
		return c.backend.BuySkill(ctx, c.session.Signer, tokenID, raw.PriceWei)
	})
}

// RemoveFromSale delists an owned token.
func (c *Client) RemoveFromSale(ctx context.Context, tokenID uint64) error {
	return c.mutate(opKey{kind: opDelist, tokenID: tokenID}, func() error {
		return c.backend.RemoveFromSale(ctx, c.session.Signer, tokenID)
	})
}

// mutate runs fn under the shared mutation protocol for key.
func (c *Client) mutate(key opKey, fn func() error) error {
	if !c.session.Connected() {
		return skillerr.New("no wallet session is connected", skillerr.KindNotConnected)
	}
	if !c.inflight.acquire(key) {
		recordOperation(key.kind, outcomeRefused)
		return skillerr.Newf(skillerr.KindDuplicateInFlight,
			"a %s operation for token %d is already in flight", key.kind, key.tokenID)
	}
	defer c.inflight.release(key)

	if err := fn(); err != nil {
		recordOperation(key.kind, outcomeFailure)
		return err
	}
	recordOperation(key.kind, outcomeSuccess)
	return nil
}

// FetchAll returns every skill in the registry.
func (c *Client) FetchAll(ctx context.Context) ([]SkillRecord, error) {
	ids, err := c.backend.AllSkills(ctx)
	if err != nil {
		return nil, err
	}
	return c.assemble(ctx, ids, ""), nil
}

// FetchForSale returns the skills currently listed for sale.
func (c *Client) FetchForSale(ctx context.Context) ([]SkillRecord, error) {
	ids, err := c.backend.SkillsForSale(ctx)
	if err != nil {
		return nil, err
	}
	return c.assemble(ctx, ids, ""), nil
}

// FetchByOwner returns the skills owned by the given identity. An
// empty owner means the session's own address and requires a
// connected session.
func (c *Client) FetchByOwner(ctx context.Context, owner string) ([]SkillRecord, error) {
	if owner == "" {
		if !c.session.Connected() {
			return nil, skillerr.New("no wallet session is connected", skillerr.KindNotConnected)
		}
		owner = c.session.Address
	}
	ids, err := c.backend.UserSkills(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.assemble(ctx, ids, owner), nil
}

// FetchSkill returns one skill by token id.
func (c *Client) FetchSkill(ctx context.Context, tokenID uint64) (SkillRecord, error) {
	return c.fetchRecord(ctx, tokenID, "")
}

// assemble resolves per-token detail for each id. A failed detail
// fetch skips that token rather than aborting the batch, so the
// result may be incomplete. knownOwner, when non-empty, saves an
// ownerOf round-trip per token.
func (c *Client) assemble(ctx context.Context, ids []uint64, knownOwner string) []SkillRecord {
	records := make([]SkillRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := c.fetchRecord(ctx, id, knownOwner)
		if err != nil {
			logger.Warnw("skipping skill after failed detail fetch", "token_id", id, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (c *Client) fetchRecord(ctx context.Context, tokenID uint64, knownOwner string) (SkillRecord, error) {
	raw, err := c.backend.Skill(ctx, tokenID)
	if err != nil {
		return SkillRecord{}, err
	}
	owner := knownOwner
	if owner == "" {
		owner, err = c.backend.OwnerOf(ctx, tokenID)
		if err != nil {
			return SkillRecord{}, err
		}
	}
	uri, err := c.backend.TokenURI(ctx, tokenID)
	if err != nil {
		return SkillRecord{}, err
	}
	return SkillRecord{
		TokenID:     raw.TokenID,
		SkillName:   raw.Name,
		Creator:     raw.Creator,
		Owner:       owner,
		PriceWei:    raw.PriceWei,
		Price:       ether.FormatWei(raw.PriceWei),
		IsForSale:   raw.IsForSale,
		CreatedAt:   time.Unix(raw.CreatedAt, 0).UTC(),
		MetadataURI: uri,
	}, nil
}
