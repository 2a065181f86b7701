package main

import (
	"os"
	"path/filepath"

	"github.com/lumenchain/node/cmd/lumennode/commands"

	"github.com/cometbft/cometbft/libs/cli"
)

func main() {
	cmd := cli.PrepareBaseCmd(commands.RootCmd, "LUMEN", os.ExpandEnv(filepath.Join("$HOME", ".lumennode")))

	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
