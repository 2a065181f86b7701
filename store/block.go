package store

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	cmtdb "github.com/cometbft/cometbft-db"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/spf13/viper"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/lumenchain/node/flags"
	"github.com/lumenchain/node/types"
)

// BlockStore persists headers, canonical hash mappings, transaction lists and
// the L1 acceptance mark. Writes go through atomic batches guarded by a write
// lock; ReadTx holds the read lock so a query observes a single consistent
// snapshot of all of them.
type BlockStore struct {
	log.Logger
	db      cmtdb.DB
	txIndex *TxIndex
	mtx     sync.RWMutex
}

func NewBlockStore(logger log.Logger) (*BlockStore, error) {
	homeDir := viper.GetString(flags.Home)
	dataDir := filepath.Join(homeDir, "data")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, err
	}
	db, err := cmtdb.NewDB("chaindata", cmtdb.BackendType(viper.GetString(flags.DB_Engine)), dataDir)
	if err != nil {
		return nil, err
	}
	txIndex, err := NewTxIndex(logger, filepath.Join(dataDir, "txindex.db"))
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BlockStore{
		Logger:  logger.With("module", "blockStore"),
		db:      db,
		txIndex: txIndex,
	}, nil
}

// WriteBlock writes the header, the height<->hash mappings and the
// transaction list of a block in one batch.
func (bs *BlockStore) WriteBlock(block *types.Block) {
	bs.mtx.Lock()
	defer bs.mtx.Unlock()

	var (
		hash   = block.Hash()
		height = block.Header.Height.Uint64()
	)

	headerData, err := rlp.EncodeToBytes(block.Header)
	if err != nil {
		bs.Logger.Error("failed to RLP encode header", "err", err)
		panic(err)
	}
	txsData, err := rlp.EncodeToBytes(block.Txs)
	if err != nil {
		bs.Logger.Error("failed to RLP encode transactions", "err", err)
		panic(err)
	}

	b := bs.db.NewBatch()
	defer b.Close()
	b.Set(headerKey(height, hash), headerData)
	b.Set(headerHeightKey(hash), encodeBlockHeight(height))
	b.Set(headerHashKey(height), hash)
	b.Set(txsKey(hash), txsData)
	if err := b.WriteSync(); err != nil {
		bs.Logger.Error("failed to store block", "err", err, "height", height, "hash", hash)
		panic(err)
	}

	if err := bs.txIndex.Add(height, block.Txs); err != nil {
		bs.Logger.Error("failed to index block transactions", "err", err, "height", height)
		panic(err)
	}
}

func (bs *BlockStore) WriteHeadBlockHash(hash types.Hash) {
	bs.mtx.Lock()
	defer bs.mtx.Unlock()
	if err := bs.db.SetSync(headBlockKey, hash.Bytes()); err != nil {
		bs.Logger.Error("failed to store last block's hash", "err", err, "hash", hash)
		panic(err)
	}
}

// WriteL1AcceptedHeight records the highest height observed as settled on the
// anchor layer. The caller guarantees monotonicity.
func (bs *BlockStore) WriteL1AcceptedHeight(height uint64) {
	bs.mtx.Lock()
	defer bs.mtx.Unlock()
	if err := bs.db.SetSync(l1AcceptedKey, encodeBlockHeight(height)); err != nil {
		bs.Logger.Error("failed to store L1 accepted height", "err", err, "height", height)
		panic(err)
	}
}

// ReadHeadBlock loads the latest full block, or nil if the store is empty.
// Used at startup to warm the chain's head cache.
func (bs *BlockStore) ReadHeadBlock() (*types.Block, error) {
	tx := bs.NewReadTx()
	defer tx.Close()

	header, err := tx.LatestHeader()
	if err != nil || header == nil {
		return nil, err
	}
	txs, ok, err := tx.TransactionsByHash(header.Hash())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	block := types.NewBlockWithHeader(header)
	block.Txs = txs
	return block, nil
}

func (bs *BlockStore) Close() error {
	bs.Logger.Debug("closing block store")
	if err := bs.txIndex.Close(); err != nil {
		bs.Logger.Error("error closing transaction index", "err", err)
	}
	return bs.db.Close()
}

// ReadTx is a consistent read view over the block store: it excludes write
// batches for its whole lifetime, so the header, the L1 acceptance mark and
// the transaction list it returns all belong to one snapshot. Every exit path
// must Close it.
type ReadTx struct {
	bs *BlockStore
}

func (bs *BlockStore) NewReadTx() *ReadTx {
	bs.mtx.RLock()
	return &ReadTx{bs: bs}
}

func (tx *ReadTx) Close() {
	tx.bs.mtx.RUnlock()
}

// HeaderByHeight retrieves the canonical header at the given height, or nil
// if the height is unknown.
func (tx *ReadTx) HeaderByHeight(height uint64) (*types.Header, error) {
	hash, err := tx.bs.db.Get(headerHashKey(height))
	if err != nil {
		return nil, err
	}
	if len(hash) == 0 {
		return nil, nil
	}
	return tx.readHeader(height, hash)
}

// HeaderByHash retrieves the header with the given content hash, or nil if
// the hash is unknown.
func (tx *ReadTx) HeaderByHash(hash types.Hash) (*types.Header, error) {
	bz, err := tx.bs.db.Get(headerHeightKey(hash))
	if err != nil {
		return nil, err
	}
	if len(bz) != 8 {
		return nil, nil
	}
	return tx.readHeader(binary.BigEndian.Uint64(bz), hash)
}

// LatestHeader retrieves the header of the highest known block, or nil if the
// store is empty.
func (tx *ReadTx) LatestHeader() (*types.Header, error) {
	hash, err := tx.bs.db.Get(headBlockKey)
	if err != nil {
		return nil, err
	}
	if len(hash) == 0 {
		return nil, nil
	}
	return tx.HeaderByHash(hash)
}

func (tx *ReadTx) readHeader(height uint64, hash types.Hash) (*types.Header, error) {
	bz, err := tx.bs.db.Get(headerKey(height, hash))
	if err != nil {
		return nil, err
	}
	if len(bz) == 0 {
		return nil, nil
	}
	header := new(types.Header)
	if err := rlp.Decode(bytes.NewReader(bz), header); err != nil {
		return nil, err
	}
	return header, nil
}

// L1AcceptedHeight returns the highest L1-accepted height. ok is false when
// no height has been accepted on L1 yet.
func (tx *ReadTx) L1AcceptedHeight() (height uint64, ok bool, err error) {
	bz, err := tx.bs.db.Get(l1AcceptedKey)
	if err != nil {
		return 0, false, err
	}
	if len(bz) != 8 {
		return 0, false, nil
	}
	return binary.BigEndian.Uint64(bz), true, nil
}

// TransactionsByHash returns the ordered transaction list of the block with
// the given hash. ok is false when the block has no stored body.
func (tx *ReadTx) TransactionsByHash(hash types.Hash) (txs types.Txs, ok bool, err error) {
	bz, err := tx.bs.db.Get(txsKey(hash))
	if err != nil {
		return nil, false, err
	}
	if bz == nil {
		return nil, false, nil
	}
	txs = types.Txs{}
	if err := rlp.Decode(bytes.NewReader(bz), &txs); err != nil {
		return nil, false, err
	}
	return txs, true, nil
}

// LookupTransaction locates a transaction by hash in the index.
func (tx *ReadTx) LookupTransaction(hash types.Hash) (TxLocation, bool, error) {
	return tx.bs.txIndex.Lookup(hash)
}
