package types

import (
	"math/big"

	"github.com/cometbft/cometbft/crypto/merkle"
)

type Transaction struct {
	Nonce     uint64   `json:"nonce"`
	From      Address  `json:"from"`
	To        Address  `json:"to"`
	Amount    *big.Int `json:"amount"`
	Payload   HexBytes `json:"payload"`
	Signature HexBytes `json:"signature"`
}

func (tx *Transaction) Hash() Hash {
	return rlpHash(tx)
}

type Txs []*Transaction

// Hash returns the merkle root over the transaction hashes, committed to by
// the header's transactionsRoot.
func (txs Txs) Hash() []byte {
	return merkle.HashFromByteSlices(txs.hashList())
}

func (txs Txs) hashList() [][]byte {
	hl := make([][]byte, len(txs))
	for i := 0; i < len(txs); i++ {
		hl[i] = txs[i].Hash()
	}
	return hl
}

// Hashes returns the transaction hashes in block order.
func (txs Txs) Hashes() []Hash {
	hashes := make([]Hash, len(txs))
	for i, tx := range txs {
		hashes[i] = tx.Hash()
	}
	return hashes
}
