package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/project/plugin"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: lang.T("Manage project type plugins"),
	Long:  lang.T("List, install and delete custom project type definitions"),
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: lang.T("List installed plugins"),
	Run: func(cmd *cobra.Command, args []string) {
		defs := plugin.Load()
		if len(defs) == 0 {
			fmt.Println(lang.T("No plugins installed"))
			return
		}
		for _, def := range defs {
			fmt.Printf("%s %s\n", def.Name, def.Version)
			if len(def.DetectFiles) > 0 {
				fmt.Printf("  %s: %s\n", lang.T("detect files"), strings.Join(def.DetectFiles, ", "))
			}
			if len(def.DetectDirs) > 0 {
				fmt.Printf("  %s: %s\n", lang.T("detect dirs"), strings.Join(def.DetectDirs, ", "))
			}
		}
	},
}

var pluginSaveCmd = &cobra.Command{
	Use:   "save <file.json>",
	Short: lang.T("Install a plugin from a JSON definition"),
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			color.Red("%s: %v", lang.T("read failed"), err)
			return
		}
		var def plugin.Def
		if err := json.Unmarshal(data, &def); err != nil {
			color.Red("%s: %v", lang.T("invalid plugin definition"), err)
			return
		}
		if err := plugin.Save(def); err != nil {
			color.Red("%s: %v", lang.T("save failed"), err)
			return
		}
		color.Green("%s: %s", lang.T("Plugin installed"), def.Name)
	},
}

var pluginDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: lang.T("Delete a plugin"),
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := plugin.Delete(args[0]); err != nil {
			color.Red("%s: %v", lang.T("delete failed"), err)
			return
		}
		color.Green("%s: %s", lang.T("Plugin deleted"), args[0])
	},
}

func init() {
	pluginCmd.AddCommand(pluginListCmd, pluginSaveCmd, pluginDeleteCmd)
	rootCmd.AddCommand(pluginCmd)
}
