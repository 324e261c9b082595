package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/project"
	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/project/selection"
	"github.com/sjzsdu/codepack/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: lang.T("Watch the project for structure changes"),
	Long:  lang.T("Rescan on file creation, deletion or rename and report selection drift"),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
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

	w, err := watcher.New(root, excludePatterns...)
	if err != nil {
		color.Red("%s: %v", lang.T("watch failed"), err)
		return
	}
	defer w.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	color.Cyan("%s: %s", lang.T("Watching"), root)

	for {
		select {
		case <-sig:
			fmt.Println()
			return
		case err := <-w.Errors():
			color.Red("%s: %v", lang.T("watch error"), err)
		case ev := <-w.Events():
			fresh, err := scanner.Scan(root)
			if err != nil {
				color.Red("%s: %v", lang.T("rescan failed"), err)
				continue
			}
			diff := selection.ReconcileOnRescan(result.Tree, fresh.Tree)
			result = fresh
			fmt.Printf("%s: %d %s, +%d -%d (%d %s)\n",
				lang.T("Changed"), len(ev.Paths), lang.T("paths"),
				diff.Added, diff.Removed, result.TotalFiles, lang.T("files"))
		}
	}
}
