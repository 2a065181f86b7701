package events

import (
	"github.com/lumenchain/node/types"
)

var (
	NewChainHead = &FeedOf[*types.Block]{} // Chain switched to a new head block.
	NewL1Head    = &FeedOf[uint64]{}       // Highest L1-accepted height advanced.
)
