package commands

import (
	"os"

	"github.com/cometbft/cometbft/libs/cli"
	cmtflags "github.com/cometbft/cometbft/libs/cli/flags"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lumenchain/node/config"
	"github.com/lumenchain/node/flags"
)

var (
	logger  = log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	verbose bool
)

// RootCmd is the root command for lumennode. It is called once in the main
// function.
var RootCmd = &cobra.Command{
	Use:   "lumennode",
	Short: "Lumen Network Node",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		viper.AddConfigPath(".")
		config.Init()
		if viper.GetBool(flags.Trace) {
			logger = log.NewTracingLogger(logger)
		}

		logger, err = cmtflags.ParseLogLevel(viper.GetString(flags.Log_Level), logger.With("module", "main"), cmd.Flag(flags.Log_Level).DefValue)
		return err
	},
}

func init() {
	RootCmd.PersistentFlags().String(flags.Log_Level, "info", "level of logging, can be debug, info, error, none or comma-separated list of module:level pairs with an optional *:level pair (* means all other modules). e.g. 'query:debug,*:error'")
	RootCmd.AddCommand(
		StartCmd,
		VersionCmd,
		cli.NewCompletionCmd(RootCmd, true),
	)
}
