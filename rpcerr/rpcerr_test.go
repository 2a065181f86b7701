package rpcerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenchain/node/rpcerr"
)

// Wire codes are permanent; this test pins them down.
func TestWireCodesAreStable(t *testing.T) {
	set := rpcerr.NewSet("test_method",
		rpcerr.BlockNotFound, rpcerr.TxnNotFound, rpcerr.PendingNotSupported)

	require.Equal(t, 24, set.Constructor(rpcerr.BlockNotFound)().ErrorCode())
	require.Equal(t, 29, set.Constructor(rpcerr.TxnNotFound)().ErrorCode())
	require.Equal(t, 38, set.Constructor(rpcerr.PendingNotSupported)().ErrorCode())
	require.Equal(t, -32603, set.Internal("step", errors.New("x")).ErrorCode())
}

func TestSetDeclaration(t *testing.T) {
	require.Panics(t, func() { rpcerr.NewSet("") })
	require.Panics(t, func() { rpcerr.NewSet("m") })
	require.Panics(t, func() { rpcerr.NewSet("m", rpcerr.BlockNotFound, rpcerr.BlockNotFound) })
	require.Panics(t, func() { rpcerr.NewSet("m", rpcerr.Kind(9999)) })

	set := rpcerr.NewSet("m", rpcerr.BlockNotFound)
	require.True(t, set.Has(rpcerr.BlockNotFound))
	require.True(t, set.Has(rpcerr.Internal))
	require.False(t, set.Has(rpcerr.TxnNotFound))
}

// An undeclared kind fails when the constructor is requested, which happens
// while the method's surface is built at package init, not when a live
// request first hits the error path.
func TestUndeclaredKindFailsAtConstruction(t *testing.T) {
	set := rpcerr.NewSet("m", rpcerr.BlockNotFound)

	require.Panics(t, func() { set.Constructor(rpcerr.TxnNotFound) })
	require.Panics(t, func() { set.Constructor(rpcerr.PendingNotSupported) })

	// Declared constructors are handed out without building any error value.
	notFound := set.Constructor(rpcerr.BlockNotFound)
	require.NotNil(t, notFound)
	require.Equal(t, rpcerr.BlockNotFound, notFound().Kind())
}

func TestInternalKeepsCausalChain(t *testing.T) {
	set := rpcerr.NewSet("m", rpcerr.BlockNotFound)

	cause := errors.New("disk gone")
	err := set.Internal("reading block header", fmt.Errorf("query: %w", cause))

	require.Equal(t, rpcerr.Internal, err.Kind())
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "reading block header")
	// The code never carries internal detail, the message does.
	require.Equal(t, -32603, err.ErrorCode())
}

func TestKindMessages(t *testing.T) {
	set := rpcerr.NewSet("m", rpcerr.BlockNotFound, rpcerr.PendingNotSupported)
	require.Equal(t, "Block not found", set.Constructor(rpcerr.BlockNotFound)().Error())
	require.Equal(t, "Pending data not supported in this configuration",
		set.Constructor(rpcerr.PendingNotSupported)().Error())
}
