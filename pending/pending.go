// Package pending holds the not-yet-finalized block overlay. A single
// producer replaces the snapshot; queries read the current handle without
// locking and see either the whole old or the whole new snapshot.
package pending

import (
	"math/big"
	"sync/atomic"

	"github.com/lumenchain/node/types"
)

// Block is the pending head candidate. It has no content hash and no height
// on the wire; those exist only once the block is sealed.
type Block struct {
	ParentHash types.Hash
	Root       types.Hash
	Time       uint64
	Sequencer  types.Address
	GasPrice   *big.Int
	Txs        types.Txs
}

// Snapshot is one point-in-time view of the pending data. Published
// snapshots are immutable; Block is nil when no pending block exists yet.
type Snapshot struct {
	Block *Block
}

// Cache is the atomically swappable handle to the current snapshot. The
// query layer only ever reads it.
type Cache struct {
	snap atomic.Pointer[Snapshot]
}

func NewCache() *Cache {
	c := &Cache{}
	c.snap.Store(&Snapshot{})
	return c
}

// Current returns the snapshot at this instant. Never nil.
func (c *Cache) Current() *Snapshot {
	return c.snap.Load()
}

// Set publishes a new snapshot, replacing the previous one atomically.
func (c *Cache) Set(s *Snapshot) {
	if s == nil {
		s = &Snapshot{}
	}
	c.snap.Store(s)
}
