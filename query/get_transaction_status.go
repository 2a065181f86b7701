package query

import (
	"bytes"
	"context"
	"errors"
	"math/big"

	"github.com/lumenchain/node/rpcerr"
	"github.com/lumenchain/node/types"
	"github.com/lumenchain/node/worker"
)

// TransactionStatus is the reply of lumen_getTransactionStatus. Pending
// transactions carry no height or index.
type TransactionStatus struct {
	Finality types.FinalityStatus `json:"finality"`
	Height   *big.Int             `json:"blockHeight,omitempty"`
	Index    *uint32              `json:"transactionIndex,omitempty"`
}

// GetTransactionStatus returns where a transaction stands: pending, accepted
// on L2 or settled on L1.
func (api *API) GetTransactionStatus(ctx context.Context, hash types.Hash) (*TransactionStatus, error) {
	errs := getTransactionStatusErrs

	// The pending overlay is checked first: a transaction in the snapshot has
	// not reached the store yet.
	if api.pending != nil {
		if snap := api.pending.Current(); snap.Block != nil {
			for _, tx := range snap.Block.Txs {
				if bytes.Equal(tx.Hash(), hash) {
					return &TransactionStatus{Finality: types.Pending}, nil
				}
			}
		}
	}

	status, err := worker.Run(ctx, api.pool, func() (*TransactionStatus, error) {
		tx := api.chain.BlockStore().NewReadTx()
		defer tx.Close()

		loc, found, err := tx.LookupTransaction(hash)
		if err != nil {
			return nil, errs.Internal("looking up transaction", err)
		}
		if !found {
			return nil, errs.TxnNotFound()
		}

		l1Accepted, hasL1, err := tx.L1AcceptedHeight()
		if err != nil {
			return nil, errs.Internal("reading L1 accepted height", err)
		}

		index := loc.Index
		return &TransactionStatus{
			Finality: statusFor(loc.Height, l1Accepted, hasL1),
			Height:   new(big.Int).SetUint64(loc.Height),
			Index:    &index,
		}, nil
	})
	if err != nil {
		var taxErr *rpcerr.Error
		if errors.As(err, &taxErr) {
			return nil, taxErr
		}
		api.logger.Error("transaction status query failed", "err", err, "hash", hash)
		return nil, errs.Internal("running storage task", err)
	}
	return status, nil
}
