package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/project"
	"github.com/sjzsdu/codepack/project/git"
	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/project/tree"
)

var scanShowGit bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: lang.T("Scan project tree"),
	Long:  lang.T("Scan the project directory, detect its type and print the source file tree"),
	Run:   runScan,
}

func init() {
	scanCmd.Flags().BoolVarP(&scanShowGit, "git", "g", false, lang.T("Show git branch and changed files"))
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) {
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

	meta := result.Metadata
	color.Cyan("%s: %s", lang.T("Project"), meta.Name)
	fmt.Printf("%s: %s\n", lang.T("Type"), result.ProjectType)
	if meta.Version != "" {
		fmt.Printf("%s: %s\n", lang.T("Version"), meta.Version)
	}
	if len(meta.Runtime) > 0 {
		fmt.Printf("%s: %s\n", lang.T("Runtime"), strings.Join(meta.Runtime, ", "))
	}
	fmt.Printf("%s: %d\n", lang.T("Files"), result.TotalFiles)
	fmt.Println()
	fmt.Print(tree.Render(result.Tree))

	if scanShowGit {
		printGitStatus(root)
	}
}

func printGitStatus(root string) {
	status := git.GetStatus(root)
	fmt.Println()
	if !status.IsRepo {
		fmt.Println(lang.T("Not a git repository"))
		return
	}
	color.Cyan("%s: %s", lang.T("Branch"), status.Branch)
	if len(status.ChangedFiles) == 0 {
		fmt.Println(lang.T("Working tree clean"))
		return
	}
	for _, cf := range status.ChangedFiles {
		switch cf.Status {
		case "added":
			color.Green("  + %s", cf.Path)
		case "deleted":
			color.Red("  - %s", cf.Path)
		default:
			color.Yellow("  ~ %s (%s)", cf.Path, cf.Status)
		}
	}
}
