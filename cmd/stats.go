package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/project"
	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/project/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: lang.T("Show language statistics"),
	Long:  lang.T("Count files, bytes and lines per language across the scanned tree"),
	Run:   runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) {
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

	computed := stats.Compute(result.Tree.FilePaths())
	color.Cyan("%s: %s (%s)", lang.T("Project"), result.Metadata.Name, result.ProjectType)
	fmt.Printf("%-16s %8s %12s %10s\n", lang.T("Language"), lang.T("Files"), lang.T("Bytes"), lang.T("Lines"))
	for _, ls := range computed.Languages {
		fmt.Printf("%-16s %8d %12d %10d\n", ls.Language, ls.FileCount, ls.ByteCount, ls.LineCount)
	}
	fmt.Printf("%-16s %8d %12d %10d\n", lang.T("Total"), computed.TotalFiles, computed.TotalBytes, computed.TotalLines)
}
