package config

import (
	"runtime"

	"github.com/lumenchain/node/flags"
	"github.com/spf13/viper"
)

// Init installs defaults for options not set through flags or config files.
func Init() {
	viper.SetDefault(flags.DB_Engine, "goleveldb")
	viper.SetDefault(flags.Pending_Enabled, true)
	viper.SetDefault(flags.RPC_Addr, "127.0.0.1:8551")
	viper.SetDefault(flags.Worker_Threads, runtime.NumCPU())
}
