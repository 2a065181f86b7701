package query

import (
	"context"
	"errors"

	"github.com/lumenchain/node/pending"
	"github.com/lumenchain/node/rpcerr"
	"github.com/lumenchain/node/types"
	"github.com/lumenchain/node/worker"
)

// GetBlockWithTxHashes returns block information with transaction hashes for
// the given block reference.
func (api *API) GetBlockWithTxHashes(ctx context.Context, ref types.BlockReference) (*BlockWithTxHashes, error) {
	parts, rerr := api.loadBlockParts(ctx, ref, getBlockWithTxHashesErrs)
	if rerr != nil {
		return nil, rerr
	}
	return newBlockWithTxHashes(parts), nil
}

// GetBlockWithTxs returns block information with full transactions for the
// given block reference.
func (api *API) GetBlockWithTxs(ctx context.Context, ref types.BlockReference) (*BlockWithTxs, error) {
	parts, rerr := api.loadBlockParts(ctx, ref, getBlockWithTxsErrs)
	if rerr != nil {
		return nil, rerr
	}
	return newBlockWithTxs(parts), nil
}

var errMissingBody = errors.New("block body missing for stored header")

// loadBlockParts drives a block query: classify the reference, serve pending
// straight from the snapshot, otherwise run the persisted lookup on the
// worker pool inside one read transaction.
func (api *API) loadBlockParts(ctx context.Context, ref types.BlockReference, errs blockErrs) (blockParts, *rpcerr.Error) {
	var snap *pending.Snapshot
	if api.pending != nil {
		snap = api.pending.Current()
	}
	p, rerr := resolveRef(ref, snap, errs)
	if rerr != nil {
		return blockParts{}, rerr
	}
	if p.pending != nil {
		return partsFromPending(p.pending), nil
	}

	logger := api.logger.With("method", errs.Method(), "ref", ref.String())
	parts, err := worker.Run(ctx, api.pool, func() (blockParts, error) {
		tx := api.chain.BlockStore().NewReadTx()
		defer tx.Close()

		header, err := headerFor(tx, p.lookup)
		if err != nil {
			return blockParts{}, errs.Internal("reading block header", err)
		}
		if header == nil {
			return blockParts{}, errs.BlockNotFound()
		}

		l1Accepted, hasL1, err := tx.L1AcceptedHeight()
		if err != nil {
			return blockParts{}, errs.Internal("reading L1 accepted height", err)
		}

		txs, ok, err := tx.TransactionsByHash(header.Hash())
		if err != nil {
			return blockParts{}, errs.Internal("reading block transactions", err)
		}
		if !ok {
			return blockParts{}, errs.Internal("reading block transactions", errMissingBody)
		}

		status := statusFor(header.Height.Uint64(), l1Accepted, hasL1)
		return partsFromHeader(header, status, txs), nil
	})
	if err != nil {
		var taxErr *rpcerr.Error
		if errors.As(err, &taxErr) {
			return blockParts{}, taxErr
		}
		logger.Error("block query failed", "err", err)
		return blockParts{}, errs.Internal("running storage task", err)
	}
	return parts, nil
}
