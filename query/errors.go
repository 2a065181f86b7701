package query

import "github.com/lumenchain/node/rpcerr"

// Each method declares the exact error subset it may surface and gets a
// typed constructor surface exposing only those kinds, so a handler cannot
// build a kind outside its declaration. The underlying sets resolve both
// the declarations and the constructors at package init; everything else is
// folded into the Internal catch-all.

// blockErrs is the constructor surface shared by the block query methods.
type blockErrs struct {
	set                 *rpcerr.Set
	blockNotFound       func() *rpcerr.Error
	pendingNotSupported func() *rpcerr.Error
}

func newBlockErrs(method string) blockErrs {
	set := rpcerr.NewSet(method, rpcerr.BlockNotFound, rpcerr.PendingNotSupported)
	return blockErrs{
		set:                 set,
		blockNotFound:       set.Constructor(rpcerr.BlockNotFound),
		pendingNotSupported: set.Constructor(rpcerr.PendingNotSupported),
	}
}

func (e blockErrs) Method() string { return e.set.Method() }

func (e blockErrs) BlockNotFound() *rpcerr.Error       { return e.blockNotFound() }
func (e blockErrs) PendingNotSupported() *rpcerr.Error { return e.pendingNotSupported() }

func (e blockErrs) Internal(step string, cause error) *rpcerr.Error {
	return e.set.Internal(step, cause)
}

// txStatusErrs is the constructor surface of the transaction status method.
type txStatusErrs struct {
	set         *rpcerr.Set
	txnNotFound func() *rpcerr.Error
}

func newTxStatusErrs(method string) txStatusErrs {
	set := rpcerr.NewSet(method, rpcerr.TxnNotFound)
	return txStatusErrs{
		set:         set,
		txnNotFound: set.Constructor(rpcerr.TxnNotFound),
	}
}

func (e txStatusErrs) Method() string { return e.set.Method() }

func (e txStatusErrs) TxnNotFound() *rpcerr.Error { return e.txnNotFound() }

func (e txStatusErrs) Internal(step string, cause error) *rpcerr.Error {
	return e.set.Internal(step, cause)
}

var (
	getBlockWithTxHashesErrs = newBlockErrs("lumen_getBlockWithTxHashes")
	getBlockWithTxsErrs      = newBlockErrs("lumen_getBlockWithTxs")
	getTransactionStatusErrs = newTxStatusErrs("lumen_getTransactionStatus")
)
