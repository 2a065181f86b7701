package store

import (
	"encoding/binary"

	"github.com/lumenchain/node/types"
)

var (
	headerPrefix       = []byte("h") // headerPrefix + num (uint64 big endian) + hash -> header
	headerHashPrefix   = []byte("n") // headerHashPrefix + num (uint64 big endian) -> hash
	headerHeightPrefix = []byte("H") // headerHeightPrefix + hash -> num (uint64 big endian)
	txsPrefix          = []byte("T") // txsPrefix + hash -> txs

	// headBlockKey tracks the latest known full block's hash.
	headBlockKey = []byte("LastBlock")
	// l1AcceptedKey tracks the highest height observed as settled on L1.
	l1AcceptedKey = []byte("L1Accepted")
)

// encodeBlockHeight encodes a block height as big endian uint64
func encodeBlockHeight(height uint64) []byte {
	enc := make([]byte, 8)
	binary.BigEndian.PutUint64(enc, height)
	return enc
}

// headerKey = headerPrefix + num (uint64 big endian) + hash
func headerKey(height uint64, hash types.Hash) []byte {
	return append(append(headerPrefix, encodeBlockHeight(height)...), hash.Bytes()...)
}

// headerHashKey = headerHashPrefix + num (uint64 big endian)
func headerHashKey(height uint64) []byte {
	return append(headerHashPrefix, encodeBlockHeight(height)...)
}

// headerHeightKey = headerHeightPrefix + hash
func headerHeightKey(hash types.Hash) []byte {
	return append(headerHeightPrefix, hash.Bytes()...)
}

// txsKey = txsPrefix + hash
func txsKey(hash types.Hash) []byte {
	return append(txsPrefix, hash.Bytes()...)
}
