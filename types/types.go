package types

import (
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	cmttypes "github.com/cometbft/cometbft/types"
)

type Address = cmttypes.Address
type Hash = cmtbytes.HexBytes
type HexBytes = cmtbytes.HexBytes

// HashLength is the size in bytes of a block or transaction digest.
const HashLength = 32

// FinalityStatus reflects how far a block's acceptance has propagated. It is
// derived per query from the highest L1-accepted height, never stored.
type FinalityStatus string

const (
	AcceptedOnL1 FinalityStatus = "ACCEPTED_ON_L1"
	AcceptedOnL2 FinalityStatus = "ACCEPTED_ON_L2"
	Pending      FinalityStatus = "PENDING"
)
