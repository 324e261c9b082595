package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/config"
	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/project"
	"github.com/sjzsdu/codepack/project/git"
	"github.com/sjzsdu/codepack/project/pack"
	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/project/selection"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: lang.T("Interactively select files"),
	Long:  lang.T("Walk the scanned tree and toggle files for packing, then save the selection"),
	Run:   runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
}

// selectSession 一次交互式选择会话的状态
type selectSession struct {
	root   string
	result *project.ScanResult
}

func runSelect(cmd *cobra.Command, args []string) {
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
	if saved, ok := config.LoadProject(root); ok && len(saved.CheckedPaths) > 0 {
		selection.Restore(result.Tree, absSet(root, saved.CheckedPaths))
	}

	session := &selectSession{root: root, result: result}
	session.printTree()
	fmt.Println(lang.T("Commands: check/uncheck <path>, all, none, source, config, changed, ext <name>, show, tokens, save, quit"))

	for {
		in := strings.TrimSpace(prompt.Input("> ", session.complete,
			prompt.OptionTitle("codepack"),
			prompt.OptionPrefixTextColor(prompt.Blue),
		))
		if in == "" {
			continue
		}
		if session.handle(in) {
			return
		}
	}
}

// handle 执行一条命令，返回 true 表示会话结束
func (s *selectSession) handle(in string) bool {
	fields := strings.Fields(in)
	verb := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch verb {
	case "quit", "exit":
		return true
	case "save":
		checked := relPaths(s.root, selection.CollectChecked(s.result.Tree))
		if err := config.SaveProject(s.root, checked, excludePatterns); err != nil {
			color.Red("%s: %v", lang.T("save failed"), err)
			return false
		}
		color.Green("%s (%d %s)", lang.T("Selection saved"), len(checked), lang.T("files"))
		return true
	case "all":
		selection.SetAll(s.result.Tree, true)
	case "none":
		selection.SetAll(s.result.Tree, false)
	case "source":
		selection.SelectByFilter(s.result.Tree, selection.SourceFiles)
	case "config":
		selection.SelectByFilter(s.result.Tree, selection.ConfigFiles)
	case "changed":
		status := git.GetStatus(s.root)
		if !status.IsRepo {
			fmt.Println(lang.T("Not a git repository"))
			return false
		}
		selection.SelectByFilter(s.result.Tree, selection.GitChanged(status.ChangedPaths()))
	case "ext":
		if arg == "" {
			fmt.Println(lang.T("Usage") + ": ext <name>")
			return false
		}
		selection.SelectByFilter(s.result.Tree, selection.ByExtension(arg))
	case "check", "uncheck":
		if arg == "" {
			fmt.Printf("%s: %s <path>\n", lang.T("Usage"), verb)
			return false
		}
		node := s.result.Tree.FindNode(filepath.Join(s.root, filepath.FromSlash(arg)))
		if node == nil {
			color.Red("%s: %s", lang.T("path not found"), arg)
			return false
		}
		selection.SetAll(node, verb == "check")
		selection.Recalculate(s.result.Tree)
	case "show":
		s.printTree()
		return false
	case "tokens":
		est := pack.EstimateTokens(selection.CollectChecked(s.result.Tree))
		fmt.Printf("%s: %s (%d bytes)\n", lang.T("Estimated tokens"), pack.FormatTokens(est.Tokens), est.TotalBytes)
		return false
	default:
		color.Red("%s: %s", lang.T("unknown command"), verb)
		return false
	}

	checked := selection.CollectChecked(s.result.Tree)
	fmt.Printf("%s: %d\n", lang.T("Selected files"), len(checked))
	return false
}

// complete 提示命令动词和树中的相对路径
func (s *selectSession) complete(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	if !strings.Contains(text, " ") {
		verbs := []prompt.Suggest{
			{Text: "check", Description: lang.T("Select a file or directory")},
			{Text: "uncheck", Description: lang.T("Deselect a file or directory")},
			{Text: "all", Description: lang.T("Select everything")},
			{Text: "none", Description: lang.T("Deselect everything")},
			{Text: "source", Description: lang.T("Select source files only")},
			{Text: "config", Description: lang.T("Select config files only")},
			{Text: "changed", Description: lang.T("Select git changed files")},
			{Text: "ext", Description: lang.T("Select by extension")},
			{Text: "show", Description: lang.T("Print the tree")},
			{Text: "tokens", Description: lang.T("Estimate tokens for the selection")},
			{Text: "save", Description: lang.T("Save selection and exit")},
			{Text: "quit", Description: lang.T("Exit without saving")},
		}
		return prompt.FilterHasPrefix(verbs, d.GetWordBeforeCursor(), true)
	}

	var paths []prompt.Suggest
	s.result.Tree.Walk(func(node *project.FileNode) {
		rel, err := filepath.Rel(s.root, node.Path)
		if err != nil || rel == "." {
			return
		}
		paths = append(paths, prompt.Suggest{Text: filepath.ToSlash(rel)})
	})
	return prompt.FilterContains(paths, d.GetWordBeforeCursor(), true)
}

// printTree 打印带勾选标记的树
func (s *selectSession) printTree() {
	printNode(s.result.Tree, "")
}

func printNode(node *project.FileNode, indent string) {
	mark := "[ ]"
	switch {
	case node.Checked:
		mark = "[x]"
	case node.Indeterminate:
		mark = "[-]"
	}
	name := node.Name
	if node.IsDir {
		name += "/"
	}
	fmt.Printf("%s%s %s\n", indent, mark, name)
	for _, child := range node.Children {
		printNode(child, indent+"  ")
	}
}
