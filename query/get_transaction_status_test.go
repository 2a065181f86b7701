package query_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenchain/node/pending"
	"github.com/lumenchain/node/rpcerr"
	"github.com/lumenchain/node/types"
)

func TestGetTransactionStatus(t *testing.T) {
	f := newFixture(t, false)

	status, err := f.api.GetTransactionStatus(context.Background(), f.txs[1].Hash())
	require.NoError(t, err)
	require.Equal(t, types.AcceptedOnL2, status.Finality)
	require.EqualValues(t, 1, status.Height.Uint64())
	require.EqualValues(t, 1, *status.Index)

	// Once the block settles on L1 the same transaction follows.
	require.NoError(t, f.chain.SetL1AcceptedHeight(1))
	status, err = f.api.GetTransactionStatus(context.Background(), f.txs[1].Hash())
	require.NoError(t, err)
	require.Equal(t, types.AcceptedOnL1, status.Finality)
}

func TestGetTransactionStatusNotFound(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.api.GetTransactionStatus(context.Background(), types.Hash{0xde, 0xad})
	requireKind(t, err, rpcerr.TxnNotFound, 29)
}

func TestGetTransactionStatusPending(t *testing.T) {
	f := newFixture(t, true)

	tx := &types.Transaction{Nonce: 9, Amount: big.NewInt(9)}
	f.pending.Set(&pending.Snapshot{Block: &pending.Block{
		ParentHash: f.block1.Hash(),
		GasPrice:   big.NewInt(1),
		Txs:        types.Txs{tx},
	}})

	status, err := f.api.GetTransactionStatus(context.Background(), tx.Hash())
	require.NoError(t, err)
	require.Equal(t, types.Pending, status.Finality)
	require.Nil(t, status.Height)
	require.Nil(t, status.Index)
}
