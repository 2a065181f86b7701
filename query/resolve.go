package query

import (
	"github.com/lumenchain/node/pending"
	"github.com/lumenchain/node/rpcerr"
	"github.com/lumenchain/node/store"
	"github.com/lumenchain/node/types"
)

// lookup is the persisted-store key a non-pending reference resolves to.
// Latest is resolved to a concrete height inside the read transaction, not
// here, so resolution and read cannot race.
type lookup struct {
	latest bool
	height uint64
	byNum  bool
	hash   types.Hash
}

// plan is the outcome of classifying a block reference: either a pending
// block to assemble directly, or a persisted lookup to run on the pool.
// Exactly one of the two is set.
type plan struct {
	pending *pending.Block
	lookup  lookup
}

// resolveRef classifies ref. It performs no I/O: the snapshot is an in-memory
// value and the persisted branch only yields a key. Taxonomy errors come from
// the calling method's constructor surface.
func resolveRef(ref types.BlockReference, snap *pending.Snapshot, errs blockErrs) (plan, *rpcerr.Error) {
	if ref.IsPending() {
		if snap == nil {
			return plan{}, errs.PendingNotSupported()
		}
		if snap.Block == nil {
			return plan{}, errs.BlockNotFound()
		}
		return plan{pending: snap.Block}, nil
	}

	// Non-pending references always convert to a persisted lookup key.
	if height, ok := ref.Number(); ok {
		return plan{lookup: lookup{height: height, byNum: true}}, nil
	}
	if hash, ok := ref.Hash(); ok {
		return plan{lookup: lookup{hash: hash}}, nil
	}
	return plan{lookup: lookup{latest: true}}, nil
}

// headerFor loads the header the lookup points at within tx. A nil header
// with nil error means the block does not exist.
func headerFor(tx *store.ReadTx, l lookup) (*types.Header, error) {
	switch {
	case l.latest:
		return tx.LatestHeader()
	case l.byNum:
		return tx.HeaderByHeight(l.height)
	default:
		return tx.HeaderByHash(l.hash)
	}
}
