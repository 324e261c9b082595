package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/project"
	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/project/security"
)

var secretsMask bool

var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: lang.T("Scan for hardcoded secrets"),
	Long:  lang.T("Scan scanned source files for likely credentials and report their locations"),
	Run:   runSecrets,
}

func init() {
	secretsCmd.Flags().BoolVar(&secretsMask, "mask", false, lang.T("Print masked samples instead of raw matches"))
	rootCmd.AddCommand(secretsCmd)
}

func runSecrets(cmd *cobra.Command, args []string) {
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

	total := 0
	for _, path := range result.Tree.FilePaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		matches := security.ScanContent(string(data))
		if len(matches) == 0 {
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		color.Yellow("%s", filepath.ToSlash(rel))
		for _, m := range matches {
			sample := m.MatchContent
			if secretsMask {
				sample = security.Mask(sample, []security.Match{m})
			}
			fmt.Printf("  %s:%d  %s  %s\n", lang.T("line"), m.LineNumber, m.RuleName, sample)
		}
		total += len(matches)
	}

	if total == 0 {
		color.Green(lang.T("No secrets found"))
		return
	}
	color.Red("%s: %d", lang.T("Findings"), total)
}
