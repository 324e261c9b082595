package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/share"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: lang.T("Print version information"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s: %s\n", lang.T("codepack version"), share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
