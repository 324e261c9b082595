package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/config"
	"github.com/sjzsdu/codepack/lang"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: lang.T("Manage selection presets"),
	Long:  lang.T("Save, list and delete named selection presets for the project"),
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: lang.T("List presets"),
	Run: func(cmd *cobra.Command, args []string) {
		root, err := targetPath()
		if err != nil {
			color.Red("%v", err)
			return
		}
		names := config.ListPresets(root)
		if len(names) == 0 {
			fmt.Println(lang.T("No presets"))
			return
		}
		for _, name := range names {
			paths, _ := config.GetPreset(root, name)
			fmt.Printf("%s (%d %s)\n", name, len(paths), lang.T("files"))
		}
	},
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: lang.T("Save the current selection as a preset"),
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root, err := targetPath()
		if err != nil {
			color.Red("%v", err)
			return
		}
		saved, ok := config.LoadProject(root)
		if !ok || len(saved.CheckedPaths) == 0 {
			fmt.Println(lang.T("No saved selection, run select first"))
			return
		}
		if err := config.SavePreset(root, args[0], saved.CheckedPaths); err != nil {
			color.Red("%s: %v", lang.T("save failed"), err)
			return
		}
		color.Green("%s: %s", lang.T("Preset saved"), args[0])
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: lang.T("Delete a preset"),
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root, err := targetPath()
		if err != nil {
			color.Red("%v", err)
			return
		}
		if err := config.DeletePreset(root, args[0]); err != nil {
			color.Red("%s: %v", lang.T("delete failed"), err)
			return
		}
		color.Green("%s: %s", lang.T("Preset deleted"), args[0])
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd, presetSaveCmd, presetDeleteCmd)
	rootCmd.AddCommand(presetCmd)
}
