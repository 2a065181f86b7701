// Package query implements the lumen JSON-RPC read methods: block lookup by
// reference, transaction status and head subscriptions.
package query

import (
	"github.com/cometbft/cometbft/libs/log"

	"github.com/lumenchain/node/core"
	"github.com/lumenchain/node/pending"
	"github.com/lumenchain/node/rpc"
	"github.com/lumenchain/node/worker"
)

// API serves the lumen namespace. pending is nil when the node configuration
// has no pending overlay; pending queries then fail with
// PendingNotSupported.
type API struct {
	logger  log.Logger
	chain   *core.BlockChain
	pool    *worker.Pool
	pending *pending.Cache
}

func NewAPI(logger log.Logger, chain *core.BlockChain, pool *worker.Pool, pendingCache *pending.Cache) *API {
	return &API{
		logger:  logger.With("module", "query"),
		chain:   chain,
		pool:    pool,
		pending: pendingCache,
	}
}

func RegisterAPI(api *API) {
	rpc.RegisterName("lumen", api)
	rpc.RegisterName("lumen", &SubAPI{chain: api.chain})
}
