package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/config"
	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/project"
	"github.com/sjzsdu/codepack/project/pack"
	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/project/selection"
)

var tokensAll bool

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: lang.T("Estimate pack token count"),
	Long:  lang.T("Estimate the token count of the saved selection without packing"),
	Run:   runTokens,
}

func init() {
	tokensCmd.Flags().BoolVarP(&tokensAll, "all", "a", false, lang.T("Estimate over all scanned files"))
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) {
	root, err := targetPath()
	if err != nil {
		color.Red("%v", err)
		return
	}

	scanner := &project.Scanner{
		Plugins:      plugin.Load(),
		UserExcludes: excludePatterns,
		Extensions:   extensions,
	}
	result, err := scanner.Scan(root)
	if err != nil {
		color.Red("%s: %v", lang.T("scan failed"), err)
		return
	}

	selection.SetAll(result.Tree, true)
	if !tokensAll {
		if saved, ok := config.LoadProject(root); ok && len(saved.CheckedPaths) > 0 {
			selection.Restore(result.Tree, absSet(root, saved.CheckedPaths))
		}
	}
	checked := selection.CollectChecked(result.Tree)

	est := pack.EstimateTokens(checked)
	fmt.Printf("%s: %d\n", lang.T("Files"), len(checked))
	fmt.Printf("%s: %d\n", lang.T("Bytes"), est.TotalBytes)
	fmt.Printf("%s: %s\n", lang.T("Estimated tokens"), pack.FormatTokens(est.Tokens))
}
