package core_test

import (
	"math/big"
	"os"
	"testing"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/lumenchain/node/core"
	"github.com/lumenchain/node/flags"
	"github.com/lumenchain/node/types"
)

func newChain(t *testing.T) *core.BlockChain {
	viper.Set(flags.Home, t.TempDir())
	viper.Set(flags.DB_Engine, "memdb")
	chain, err := core.NewBlockChain(log.NewTMLogger(log.NewSyncWriter(os.Stdout)))
	require.NoError(t, err)
	t.Cleanup(chain.Close)
	return chain
}

func nextBlock(parent *types.Block, txs types.Txs) *types.Block {
	return &types.Block{
		Header: &types.Header{
			ParentHash: parent.Hash(),
			Root:       parent.Header.Root,
			Height:     new(big.Int).Add(parent.Header.Height, big.NewInt(1)),
			Time:       parent.Header.Time + 1,
			GasPrice:   big.NewInt(1),
		},
		Txs: txs,
	}
}

func TestGenesisBootstrap(t *testing.T) {
	chain := newChain(t)

	head := chain.LatestBlock()
	require.NotNil(t, head)
	require.EqualValues(t, 0, head.Header.Height.Uint64())

	tx := chain.BlockStore().NewReadTx()
	defer tx.Close()
	header, err := tx.HeaderByHeight(0)
	require.NoError(t, err)
	require.NotNil(t, header)
	require.Equal(t, head.Hash(), header.Hash())
}

func TestApplyBlock(t *testing.T) {
	chain := newChain(t)

	block := nextBlock(chain.LatestBlock(), types.Txs{{Nonce: 1, Amount: big.NewInt(5)}})
	require.NoError(t, chain.ApplyBlock(block))
	require.Equal(t, block.Hash(), chain.LatestBlock().Hash())
}

func TestApplyBlockRejectsGaps(t *testing.T) {
	chain := newChain(t)

	gap := nextBlock(chain.LatestBlock(), nil)
	gap.Header.Height = big.NewInt(5)
	require.ErrorIs(t, chain.ApplyBlock(gap), types.ErrNotContiguous)

	wrongParent := nextBlock(chain.LatestBlock(), nil)
	wrongParent.Header.ParentHash = types.Hash{0xde, 0xad}
	require.ErrorIs(t, chain.ApplyBlock(wrongParent), types.ErrNotContiguous)
}

func TestL1AcceptedHeight(t *testing.T) {
	chain := newChain(t)
	require.NoError(t, chain.ApplyBlock(nextBlock(chain.LatestBlock(), nil)))

	require.NoError(t, chain.SetL1AcceptedHeight(1))

	// The mark only moves forward and never past the head.
	require.ErrorIs(t, chain.SetL1AcceptedHeight(0), types.ErrL1Regression)
	require.Error(t, chain.SetL1AcceptedHeight(9))
}
