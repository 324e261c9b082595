package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/share"
)

var (
	workDir         string
	excludePatterns []string
	extensions      []string
	debugMode       bool
)

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: lang.T("Package project source into AI-ready text"),
	Long:  lang.T("Scan a project tree, select source files and pack them into a single document for AI review"),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		fmt.Fprintln(os.Stderr, lang.T("Invalid arguments")+": ", args)
		os.Exit(1)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workDir, "directory", "d", "", lang.T("Project directory path"))
	rootCmd.PersistentFlags().StringSliceVarP(&excludePatterns, "exclude", "x", []string{}, lang.T("Extra exclude rules (names or *.ext)"))
	rootCmd.PersistentFlags().StringSliceVarP(&extensions, "extensions", "e", []string{"*"}, lang.T("File extensions to include"))
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "v", false, lang.T("Debug mode"))
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		share.SetDebug(debugMode)
	}
}

// targetPath 解析 -d 参数，缺省使用当前目录
func targetPath() (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	info, err := os.Stat(workDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%s: %s", lang.T("directory does not exist"), workDir)
	}
	return workDir, nil
}
