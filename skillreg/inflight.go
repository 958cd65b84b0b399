// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillreg

import "sync"

// opKind names a mutating registry operation for in-flight tracking
// and metrics labels.
type opKind string

const (
	opMint   opKind = "mint"
	opList   opKind = "list"
	opBuy    opKind = "buy"
	opDelist opKind = "delist"
)

// opKey identifies one outstanding mutation. Mints have no token id
// yet, so all mints share the zero-token key for their kind.
type opKey struct {
	kind    opKind
	tokenID uint64
}

// inflightTable refuses duplicate concurrent mutations on the same
// resource. Entries exist only between submission and completion; a
// client replaced on session change drops its table with it, since
// calls bound to the old signer can never confirm under the new one.
type inflightTable struct {
	mu      sync.Mutex
	pending map[opKey]struct{}
}

func newInflightTable() *inflightTable {
	return &inflightTable{pending: make(map[opKey]struct{})}
}

// acquire marks the key as outstanding. It reports false when the key
// is already held, in which case the caller must refuse the operation.
func (t *inflightTable) acquire(key opKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.pending[key]; exists {
		return false
	}
	t.pending[key] = struct{}{}
	return true
}

// release clears the key. It is safe to call for a key that was never
// acquired.
func (t *inflightTable) release(key opKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, key)
}
