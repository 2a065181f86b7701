package node

import (
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
	"github.com/spf13/viper"

	"github.com/lumenchain/node/core"
	"github.com/lumenchain/node/flags"
	"github.com/lumenchain/node/pending"
	"github.com/lumenchain/node/query"
	"github.com/lumenchain/node/rpc"
	"github.com/lumenchain/node/worker"
)

//------------------------------------------------------------------------------

// Node is the highest level interface to a full node.
// It includes all configuration information and running services.
type Node struct {
	service.BaseService
	rpc *rpc.RPC

	chain   *core.BlockChain
	pool    *worker.Pool
	pending *pending.Watcher
}

// Option sets a parameter for the node.
type Option func(*Node)

// NewNode returns a new, ready to go, Lumen node.
func NewNode(logger log.Logger, options ...Option) (*Node, error) {
	chain, err := core.NewBlockChain(logger)
	if err != nil {
		return nil, err
	}

	node := &Node{
		rpc:   rpc.NewRPC(logger),
		chain: chain,
		pool:  worker.NewPool(logger, viper.GetInt(flags.Worker_Threads)),
	}
	node.BaseService = *service.NewBaseService(logger.With("module", "node"), "Node", node)

	var pendingCache *pending.Cache
	if viper.GetBool(flags.Pending_Enabled) {
		node.pending = pending.NewWatcher(logger, chain.LatestBlock())
		pendingCache = node.pending.Cache()
	}

	for _, option := range options {
		option(node)
	}

	RegisterAPI(node)
	query.RegisterAPI(query.NewAPI(logger, chain, node.pool, pendingCache))

	return node, nil
}

// OnStart starts the Node. It implements service.Service.
func (n *Node) OnStart() error {
	if err := n.pool.Start(); err != nil {
		return err
	}
	if n.pending != nil {
		if err := n.pending.Start(); err != nil {
			return err
		}
	}
	return n.rpc.Start()
}

// OnStop stops the Node. It implements service.Service.
func (n *Node) OnStop() {
	n.rpc.Stop()
	if n.pending != nil {
		n.pending.Stop()
	}
	n.pool.Stop()

	n.chain.Close()
}

func (n *Node) Chain() *core.BlockChain {
	return n.chain
}
