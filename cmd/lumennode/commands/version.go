package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lumenchain/node/version"
)

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show library versions")
}

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Version:", version.VersionWithMeta)
		if version.Commit != "" {
			fmt.Println("Git Commit:", version.Commit)
		}
		if version.Date != "" {
			fmt.Println("Git Commit Date:", version.Date)
		}
		if verbose {
			fmt.Println("Architecture:", runtime.GOARCH)
			fmt.Println("Go Version:", runtime.Version())
			fmt.Println("Operating System:", runtime.GOOS)
		}
	},
}
