package pending

import (
	"math/big"
	"time"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"

	"github.com/lumenchain/node/events"
	"github.com/lumenchain/node/types"
)

// Watcher produces the pending snapshot: whenever the chain head moves it
// publishes a fresh pending block on top of it. Transaction selection is the
// sequencer's job; the watcher only keeps the overlay coherent with the head.
type Watcher struct {
	service.BaseService
	cache *Cache
	head  *types.Block
}

func NewWatcher(logger log.Logger, head *types.Block) *Watcher {
	w := &Watcher{cache: NewCache(), head: head}
	w.BaseService = *service.NewBaseService(logger.With("module", "pending"), "PendingWatcher", w)
	return w
}

// Cache returns the handle the query layer reads snapshots from.
func (w *Watcher) Cache() *Cache {
	return w.cache
}

func (w *Watcher) OnStart() error {
	w.reset(w.head)
	events.NewChainHead.Subscribe("pending.watcher", func(block *types.Block) {
		w.reset(block)
	})
	return nil
}

func (w *Watcher) OnStop() {
	events.NewChainHead.Unsubscribe("pending.watcher")
}

func (w *Watcher) reset(head *types.Block) {
	if head == nil {
		w.cache.Set(&Snapshot{})
		return
	}
	gasPrice := new(big.Int)
	if head.Header.GasPrice != nil {
		gasPrice.Set(head.Header.GasPrice)
	}
	w.cache.Set(&Snapshot{Block: &Block{
		ParentHash: head.Hash(),
		Root:       head.Header.Root,
		Time:       uint64(time.Now().Unix()),
		Sequencer:  head.Header.Sequencer,
		GasPrice:   gasPrice,
		Txs:        types.Txs{},
	}})
	w.Logger.Debug("pending block reset", "parent", head.Hash())
}
