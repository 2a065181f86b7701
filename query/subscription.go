package query

import (
	"context"

	ethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/lumenchain/node/core"
	"github.com/lumenchain/node/events"
	"github.com/lumenchain/node/types"
)

type SubAPI struct {
	chain *core.BlockChain
}

// NewHeads sends a notification each time a new block becomes the chain head.
func (api *SubAPI) NewHeads(ctx context.Context) (*ethrpc.Subscription, error) {
	notifier, supported := ethrpc.NotifierFromContext(ctx)
	if !supported {
		return &ethrpc.Subscription{}, ethrpc.ErrNotificationsUnsupported
	}

	rpcSub := notifier.CreateSubscription()

	go func() {
		events.NewChainHead.Subscribe(string(rpcSub.ID), func(data *types.Block) {
			notifier.Notify(rpcSub.ID, data)
		})

	Wait:
		for {
			select {
			case <-rpcSub.Err():
				break Wait
			case <-notifier.Closed():
				break Wait
			}
		}
		events.NewChainHead.Unsubscribe(string(rpcSub.ID))
	}()

	return rpcSub, nil
}

// L1Heads sends a notification each time the highest L1-accepted height
// advances.
func (api *SubAPI) L1Heads(ctx context.Context) (*ethrpc.Subscription, error) {
	notifier, supported := ethrpc.NotifierFromContext(ctx)
	if !supported {
		return &ethrpc.Subscription{}, ethrpc.ErrNotificationsUnsupported
	}

	rpcSub := notifier.CreateSubscription()

	go func() {
		events.NewL1Head.Subscribe(string(rpcSub.ID), func(height uint64) {
			notifier.Notify(rpcSub.ID, height)
		})

	Wait:
		for {
			select {
			case <-rpcSub.Err():
				break Wait
			case <-notifier.Closed():
				break Wait
			}
		}
		events.NewL1Head.Unsubscribe(string(rpcSub.ID))
	}()

	return rpcSub, nil
}
