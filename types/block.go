package types

import (
	"math/big"
)

type Block struct {
	Header *Header `json:"header"`
	Txs    Txs     `json:"txs"`
}

func NewBlockWithHeader(header *Header) *Block {
	return &Block{Header: CopyHeader(header)}
}

func CopyHeader(h *Header) *Header {
	cpy := *h
	if cpy.Height = new(big.Int); h.Height != nil {
		cpy.Height.Set(h.Height)
	}
	if cpy.GasPrice = new(big.Int); h.GasPrice != nil {
		cpy.GasPrice.Set(h.GasPrice)
	}
	return &cpy
}

// fillHeader fills in any remaining header fields that are a function of the
// block data.
func (b *Block) fillHeader() {
	if b.Header.TxHash == nil {
		b.Header.TxHash = b.Txs.Hash()
	}
}

// Hash computes and returns the block hash.
// If the block is incomplete, block hash is nil for safety.
func (b *Block) Hash() Hash {
	if b == nil {
		return nil
	}

	b.fillHeader()
	return b.Header.Hash()
}

type Header struct {
	ParentHash Hash     `json:"parentHash"       gencodec:"required"`
	Root       Hash     `json:"stateRoot"        gencodec:"required"`
	TxHash     Hash     `json:"transactionsRoot" gencodec:"required"`
	Height     *big.Int `json:"height"           gencodec:"required"`
	Time       uint64   `json:"timestamp"        gencodec:"required"`
	Sequencer  Address  `json:"sequencer"`
	GasPrice   *big.Int `json:"gasPrice"`
}

func (h *Header) Hash() Hash {
	return rlpHash(h)
}

func (h *Header) IsValid(parent *Header) error {
	if h.Height.Uint64() != parent.Height.Uint64()+1 {
		return ErrNotContiguous
	}
	if h.Time < parent.Time {
		return ErrInvalidBlock
	}
	return nil
}
