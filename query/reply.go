package query

import (
	"math/big"

	"github.com/lumenchain/node/pending"
	"github.com/lumenchain/node/types"
)

// blockParts is the convergence point of the two data sources: persisted
// header rows and the pending snapshot both normalize into it, so nothing
// after this point branches on where a block came from.
type blockParts struct {
	hash       types.Hash
	parentHash types.Hash
	root       types.Hash
	txRoot     types.Hash
	height     *big.Int
	time       uint64
	sequencer  types.Address
	gasPrice   *big.Int
	status     types.FinalityStatus
	txs        types.Txs
}

func partsFromHeader(header *types.Header, status types.FinalityStatus, txs types.Txs) blockParts {
	return blockParts{
		hash:       header.Hash(),
		parentHash: header.ParentHash,
		root:       header.Root,
		txRoot:     header.TxHash,
		height:     header.Height,
		time:       header.Time,
		sequencer:  header.Sequencer,
		gasPrice:   header.GasPrice,
		status:     status,
		txs:        txs,
	}
}

// partsFromPending carries no hash, height or sealed transactions root; a
// pending block is by definition not finalized, so the status is fixed.
func partsFromPending(b *pending.Block) blockParts {
	return blockParts{
		parentHash: b.ParentHash,
		root:       b.Root,
		time:       b.Time,
		sequencer:  b.Sequencer,
		gasPrice:   b.GasPrice,
		status:     types.Pending,
		txs:        b.Txs,
	}
}

// statusFor derives finality for a persisted height from the highest
// L1-accepted height. The boundary is inclusive: the accepted height itself
// is on L1.
func statusFor(height uint64, l1Accepted uint64, hasL1 bool) types.FinalityStatus {
	if hasL1 && height <= l1Accepted {
		return types.AcceptedOnL1
	}
	return types.AcceptedOnL2
}

// BlockWithTxHashes is the versioned wire reply of
// lumen_getBlockWithTxHashes: flattened header fields, finality status and
// the transaction hashes in block order. Pending replies omit hash, height
// and transactionsRoot.
type BlockWithTxHashes struct {
	Hash         types.Hash           `json:"hash,omitempty"`
	ParentHash   types.Hash           `json:"parentHash"`
	StateRoot    types.Hash           `json:"stateRoot"`
	TxRoot       types.Hash           `json:"transactionsRoot,omitempty"`
	Height       *big.Int             `json:"height,omitempty"`
	Timestamp    uint64               `json:"timestamp"`
	Sequencer    types.Address        `json:"sequencer,omitempty"`
	GasPrice     *big.Int             `json:"gasPrice"`
	Status       types.FinalityStatus `json:"status"`
	Transactions []types.Hash         `json:"transactions"`
}

func newBlockWithTxHashes(p blockParts) *BlockWithTxHashes {
	return &BlockWithTxHashes{
		Hash:         p.hash,
		ParentHash:   p.parentHash,
		StateRoot:    p.root,
		TxRoot:       p.txRoot,
		Height:       p.height,
		Timestamp:    p.time,
		Sequencer:    p.sequencer,
		GasPrice:     p.gasPrice,
		Status:       p.status,
		Transactions: p.txs.Hashes(),
	}
}

// BlockWithTxs is the reply of lumen_getBlockWithTxs: the same shape with
// full transactions instead of hashes.
type BlockWithTxs struct {
	Hash         types.Hash           `json:"hash,omitempty"`
	ParentHash   types.Hash           `json:"parentHash"`
	StateRoot    types.Hash           `json:"stateRoot"`
	TxRoot       types.Hash           `json:"transactionsRoot,omitempty"`
	Height       *big.Int             `json:"height,omitempty"`
	Timestamp    uint64               `json:"timestamp"`
	Sequencer    types.Address        `json:"sequencer,omitempty"`
	GasPrice     *big.Int             `json:"gasPrice"`
	Status       types.FinalityStatus `json:"status"`
	Transactions types.Txs            `json:"transactions"`
}

func newBlockWithTxs(p blockParts) *BlockWithTxs {
	return &BlockWithTxs{
		Hash:         p.hash,
		ParentHash:   p.parentHash,
		StateRoot:    p.root,
		TxRoot:       p.txRoot,
		Height:       p.height,
		Timestamp:    p.time,
		Sequencer:    p.sequencer,
		GasPrice:     p.gasPrice,
		Status:       p.status,
		Transactions: p.txs,
	}
}
