package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/abscrub/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version, build and pattern information",
	Run: func(cmd *cobra.Command, args []string) {
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(version.String())
			return
		}
		fmt.Println(version.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("short", false, "print only the version")
}
