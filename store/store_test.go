package store_test

import (
	"math/big"
	"os"
	"testing"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/lumenchain/node/flags"
	"github.com/lumenchain/node/store"
	"github.com/lumenchain/node/types"
)

func newBlockStore(t *testing.T) *store.BlockStore {
	viper.Set(flags.Home, t.TempDir())
	viper.Set(flags.DB_Engine, "memdb")
	bs, err := store.NewBlockStore(log.NewTMLogger(log.NewSyncWriter(os.Stdout)))
	require.NoError(t, err)
	t.Cleanup(func() { bs.Close() })
	return bs
}

func testBlock(height uint64, parent types.Hash, txs types.Txs) *types.Block {
	return &types.Block{
		Header: &types.Header{
			ParentHash: parent,
			Root:       make(types.Hash, 32),
			Height:     new(big.Int).SetUint64(height),
			Time:       height,
			GasPrice:   big.NewInt(1),
		},
		Txs: txs,
	}
}

func TestReadWriteBlock(t *testing.T) {
	bs := newBlockStore(t)

	txs := types.Txs{
		{Nonce: 1, Amount: big.NewInt(10)},
		{Nonce: 2, Amount: big.NewInt(20)},
	}
	genesis := testBlock(0, make(types.Hash, 32), nil)
	block := testBlock(1, genesis.Hash(), txs)

	bs.WriteBlock(genesis)
	bs.WriteBlock(block)
	bs.WriteHeadBlockHash(block.Hash())

	tx := bs.NewReadTx()
	defer tx.Close()

	header, err := tx.HeaderByHeight(1)
	require.NoError(t, err)
	require.NotNil(t, header)
	require.Equal(t, block.Hash(), header.Hash())

	byHash, err := tx.HeaderByHash(block.Hash())
	require.NoError(t, err)
	require.NotNil(t, byHash)
	require.Equal(t, header, byHash)

	latest, err := tx.LatestHeader()
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.EqualValues(t, 1, latest.Height.Uint64())

	missing, err := tx.HeaderByHeight(9999)
	require.NoError(t, err)
	require.Nil(t, missing)

	missing, err = tx.HeaderByHash(types.Hash{0xde, 0xad})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestTransactionOrdering(t *testing.T) {
	bs := newBlockStore(t)

	txs := types.Txs{
		{Nonce: 3, Amount: big.NewInt(3)},
		{Nonce: 1, Amount: big.NewInt(1)},
		{Nonce: 2, Amount: big.NewInt(2)},
	}
	block := testBlock(0, make(types.Hash, 32), txs)
	bs.WriteBlock(block)

	tx := bs.NewReadTx()
	defer tx.Close()

	got, ok, err := tx.TransactionsByHash(block.Hash())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, txs.Hashes(), got.Hashes())

	_, ok, err = tx.TransactionsByHash(types.Hash{0xde, 0xad})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestL1AcceptedHeight(t *testing.T) {
	bs := newBlockStore(t)

	tx := bs.NewReadTx()
	_, ok, err := tx.L1AcceptedHeight()
	tx.Close()
	require.NoError(t, err)
	require.False(t, ok)

	bs.WriteL1AcceptedHeight(7)

	tx = bs.NewReadTx()
	defer tx.Close()
	height, ok, err := tx.L1AcceptedHeight()
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 7, height)
}

func TestLookupTransaction(t *testing.T) {
	bs := newBlockStore(t)

	txs := types.Txs{
		{Nonce: 1, Amount: big.NewInt(1)},
		{Nonce: 2, Amount: big.NewInt(2)},
	}
	block := testBlock(5, make(types.Hash, 32), txs)
	bs.WriteBlock(block)

	tx := bs.NewReadTx()
	defer tx.Close()

	loc, found, err := tx.LookupTransaction(txs[1].Hash())
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, store.TxLocation{Height: 5, Index: 1}, loc)

	_, found, err = tx.LookupTransaction(types.Hash{0xde, 0xad})
	require.NoError(t, err)
	require.False(t, found)
}
