package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/config"
	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/project"
	"github.com/sjzsdu/codepack/project/git"
	"github.com/sjzsdu/codepack/project/pack"
	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/project/selection"
	"github.com/sjzsdu/codepack/share"
)

var (
	packFormat      string
	packOutput      string
	packMaxBytes    int64
	packDiff        bool
	packInstruction string
	packRedact      bool
	packPreview     bool
	packFilter      string
	packPreset      string
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: lang.T("Pack selected files"),
	Long:  lang.T("Pack the selected source files into a single document"),
	Run:   runPack,
}

func init() {
	packCmd.Flags().StringVarP(&packFormat, "format", "f", "", lang.T("Output format: plain, markdown or xml"))
	packCmd.Flags().StringVarP(&packOutput, "out", "o", "", lang.T("Output file path, .pdf enables PDF export"))
	packCmd.Flags().Int64VarP(&packMaxBytes, "max-bytes", "m", 0, lang.T("Per-file size limit in bytes"))
	packCmd.Flags().BoolVar(&packDiff, "diff", false, lang.T("Append git working changes as unified diffs"))
	packCmd.Flags().StringVarP(&packInstruction, "instruction", "i", "", lang.T("Review instruction placed before file sections"))
	packCmd.Flags().BoolVar(&packRedact, "redact", false, lang.T("Mask detected secrets in packed content"))
	packCmd.Flags().BoolVarP(&packPreview, "preview", "p", false, lang.T("Render a markdown preview in the terminal"))
	packCmd.Flags().StringVar(&packFilter, "filter", "", lang.T("Selection filter: all, source, config, changed or ext:<name>"))
	packCmd.Flags().StringVar(&packPreset, "preset", "", lang.T("Load a named selection preset"))
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) {
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

	if err := applySelection(root, result); err != nil {
		color.Red("%v", err)
		return
	}
	checked := selection.CollectChecked(result.Tree)
	if len(checked) == 0 {
		fmt.Println(lang.T("No files selected"))
		return
	}

	format := packFormat
	if format == "" {
		format = config.GetConfigWithDefault("format", string(pack.FormatPlain))
	}
	opts := pack.Options{
		ProjectPath:  root,
		Paths:        checked,
		Metadata:     result.Metadata,
		Format:       pack.Format(format),
		MaxFileBytes: packMaxBytes,
		Instruction:  packInstruction,
		Redact:       packRedact,
	}
	if packDiff {
		opts.Diffs = git.Diffs(root)
	}

	packed, err := pack.Pack(opts)
	if err != nil {
		color.Red("%s: %v", lang.T("pack failed"), err)
		return
	}
	for _, skip := range packed.SkippedFiles {
		if share.GetDebug() {
			fmt.Printf("%s: %s (%s)\n", lang.T("skipped"), skip.Path, skip.Reason)
		}
	}

	if packPreview {
		if err := renderPreview(packed.Content); err != nil {
			color.Red("%s: %v", lang.T("preview failed"), err)
		}
		return
	}

	if packOutput == "" {
		fmt.Print(packed.Content)
		return
	}
	out, err := exportPacked(packed, opts, packOutput)
	if err != nil {
		color.Red("%s: %v", lang.T("export failed"), err)
		return
	}
	color.Green("%s: %s (%d %s, %s tokens)",
		lang.T("Packed"), out, packed.FileCount, lang.T("files"), pack.FormatTokens(packed.EstimatedTokens))
}

// applySelection 恢复保存的选中集，再按 --preset / --filter 覆盖
func applySelection(root string, result *project.ScanResult) error {
	// 默认全选；有保存状态时按保存的叶子集合恢复
	selection.SetAll(result.Tree, true)
	if saved, ok := config.LoadProject(root); ok && len(saved.CheckedPaths) > 0 {
		selection.Restore(result.Tree, absSet(root, saved.CheckedPaths))
	}

	if packPreset != "" {
		paths, ok := config.GetPreset(root, packPreset)
		if !ok {
			return fmt.Errorf("%s: %s", lang.T("preset not found"), packPreset)
		}
		selection.Restore(result.Tree, absSet(root, paths))
	}

	switch {
	case packFilter == "" || packFilter == "all":
	case packFilter == "source":
		selection.SelectByFilter(result.Tree, selection.SourceFiles)
	case packFilter == "config":
		selection.SelectByFilter(result.Tree, selection.ConfigFiles)
	case packFilter == "changed":
		status := git.GetStatus(root)
		if !status.IsRepo {
			return fmt.Errorf(lang.T("not a git repository"))
		}
		selection.SelectByFilter(result.Tree, selection.GitChanged(status.ChangedPaths()))
	case strings.HasPrefix(packFilter, "ext:"):
		selection.SelectByFilter(result.Tree, selection.ByExtension(strings.TrimPrefix(packFilter, "ext:")))
	default:
		return fmt.Errorf("%s: %s", lang.T("unknown filter"), packFilter)
	}
	return nil
}

// exportPacked 按扩展名导出，.pdf 走 PDF 渲染，其余按格式写文本
func exportPacked(packed *pack.Result, opts pack.Options, output string) (string, error) {
	if strings.HasSuffix(strings.ToLower(output), ".pdf") {
		return output, pack.ExportToPDF(packed, output)
	}
	return pack.ExportToFile(packed, opts, output)
}

func renderPreview(content string) error {
	rendered, err := glamour.Render(content, "dark")
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}
