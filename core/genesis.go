package core

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lumenchain/node/types"
)

// genesisBlock builds the height-0 block written on first boot. The parent
// hash is the zero sentinel; the state root is the empty tree root.
func genesisBlock() *types.Block {
	return types.NewBlockWithHeader(&types.Header{
		ParentHash: make(types.Hash, 32),
		Root:       hexutil.MustDecode("0xE3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"),
		Height:     big.NewInt(0),
		GasPrice:   big.NewInt(1),
	})
}
