package core

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lumenchain/node/events"
	"github.com/lumenchain/node/store"
	"github.com/lumenchain/node/types"
)

// BlockChain owns the persisted block store and the head cache. Execution and
// state computation happen upstream; blocks arrive here already validated
// except for chain linkage.
type BlockChain struct {
	logger      log.Logger
	blockStore  *store.BlockStore
	latestBlock *types.Block
	l1Accepted  uint64
	hasL1       bool
	mu          sync.Mutex
}

func NewBlockChain(logger log.Logger) (*BlockChain, error) {
	blockStore, err := store.NewBlockStore(logger)
	if err != nil {
		return nil, err
	}

	bc := &BlockChain{
		blockStore: blockStore,
		logger:     logger.With("module", "blockchain"),
	}

	block, err := blockStore.ReadHeadBlock()
	if err != nil {
		blockStore.Close()
		return nil, err
	}
	if block != nil {
		bc.logger.Info("found head block", "height", block.Header.Height, "hash", block.Hash())
	} else {
		block = genesisBlock()
		bc.logger.Info("writing genesis block", "hash", block.Hash())
		blockStore.WriteBlock(block)
		blockStore.WriteHeadBlockHash(block.Hash())
	}
	bc.latestBlock = block

	tx := blockStore.NewReadTx()
	bc.l1Accepted, bc.hasL1, err = tx.L1AcceptedHeight()
	tx.Close()
	if err != nil {
		blockStore.Close()
		return nil, err
	}
	return bc, nil
}

func (bc *BlockChain) Close() {
	if err := bc.blockStore.Close(); err != nil {
		bc.logger.Error("error closing block store", "err", err)
	}
}

func (bc *BlockChain) BlockStore() *store.BlockStore {
	return bc.blockStore
}

// LatestBlock retrieves the latest head block of the canonical chain. The
// block is retrieved from the blockchain's internal cache.
func (bc *BlockChain) LatestBlock() *types.Block {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return bc.latestBlock
}

func (bc *BlockChain) setHead(block *types.Block) {
	bc.logger.Info("head block", "head", block.Header)
	bc.blockStore.WriteBlock(block)
	bc.blockStore.WriteHeadBlockHash(block.Hash())
	bc.latestBlock = block
	events.NewChainHead.Send(block)
}

// ApplyBlock appends a block on top of the current head.
func (bc *BlockChain) ApplyBlock(block *types.Block) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.latestBlock
	if new(big.Int).Add(latest.Header.Height, common.Big1).Cmp(block.Header.Height) != 0 {
		return fmt.Errorf("%w: latest height %v, new block height %v",
			types.ErrNotContiguous, latest.Header.Height, block.Header.Height)
	}
	if !bytes.Equal(block.Header.ParentHash, latest.Hash()) {
		return fmt.Errorf("%w: latest hash %v, new block's parent %v",
			types.ErrNotContiguous, latest.Hash(), block.Header.ParentHash)
	}

	bc.setHead(block)
	return nil
}

// SetL1AcceptedHeight advances the highest height observed as settled on the
// anchor layer. The mark only moves forward and never past the head.
func (bc *BlockChain) SetL1AcceptedHeight(height uint64) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if bc.hasL1 && height < bc.l1Accepted {
		return fmt.Errorf("%w: have %d, got %d", types.ErrL1Regression, bc.l1Accepted, height)
	}
	if height > bc.latestBlock.Header.Height.Uint64() {
		return fmt.Errorf("%w: L1 accepted height %d beyond head %v",
			types.ErrInvalidBlock, height, bc.latestBlock.Header.Height)
	}
	bc.blockStore.WriteL1AcceptedHeight(height)
	bc.l1Accepted, bc.hasL1 = height, true
	events.NewL1Head.Send(height)
	return nil
}
