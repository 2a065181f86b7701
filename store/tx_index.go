package store

import (
	"database/sql"
	"encoding/hex"

	"github.com/cometbft/cometbft/libs/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lumenchain/node/types"
)

// TxLocation is where a transaction sits in the chain.
type TxLocation struct {
	Height uint64
	Index  uint32
}

// TxIndex maps transaction hashes to their block height and in-block index,
// backed by sqlite.
type TxIndex struct {
	log.Logger
	db *sql.DB
}

func NewTxIndex(logger log.Logger, path string) (*TxIndex, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	ddl := "CREATE TABLE IF NOT EXISTS tx_lookup (tx_hash TEXT PRIMARY KEY, block_height INTEGER, tx_index INTEGER)"
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, err
	}
	return &TxIndex{
		Logger: logger.With("module", "txIndex"),
		db:     db,
	}, nil
}

// Add indexes all transactions of the block at height, in block order.
func (ti *TxIndex) Add(height uint64, txs types.Txs) error {
	dbtx, err := ti.db.Begin()
	if err != nil {
		return err
	}
	for i, tx := range txs {
		_, err := dbtx.Exec(
			"INSERT OR REPLACE INTO tx_lookup (tx_hash, block_height, tx_index) VALUES (?,?,?)",
			hex.EncodeToString(tx.Hash()), height, i,
		)
		if err != nil {
			dbtx.Rollback()
			return err
		}
	}
	return dbtx.Commit()
}

// Lookup returns the location of the transaction with the given hash.
func (ti *TxIndex) Lookup(hash types.Hash) (TxLocation, bool, error) {
	row := ti.db.QueryRow(
		"SELECT block_height, tx_index FROM tx_lookup WHERE tx_hash = ?",
		hex.EncodeToString(hash),
	)
	var loc TxLocation
	if err := row.Scan(&loc.Height, &loc.Index); err != nil {
		if err == sql.ErrNoRows {
			return TxLocation{}, false, nil
		}
		return TxLocation{}, false, err
	}
	return loc, true, nil
}

func (ti *TxIndex) Close() error {
	return ti.db.Close()
}
