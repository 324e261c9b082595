package git

import (
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pmezard/go-difflib/difflib"
)

// Diffs 为每个变更文件生成统一 diff 文本，键为仓库相对路径。
// 旧内容取自 HEAD，新内容取自工作区；二进制文件跳过。
func Diffs(projectPath string) map[string]string {
	repo, err := gogit.PlainOpenWithOptions(projectPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil
	}
	status, err := worktree.Status()
	if err != nil {
		return nil
	}

	var headCommit *object.Commit
	if head, err := repo.Head(); err == nil {
		headCommit, _ = repo.CommitObject(head.Hash())
	}

	root := worktree.Filesystem.Root()
	diffs := make(map[string]string)

	rels := make([]string, 0, len(status))
	for rel := range status {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	for _, rel := range rels {
		if statusLabel(status[rel]) == "" {
			continue
		}

		oldContent := ""
		if headCommit != nil {
			if file, err := headCommit.File(rel); err == nil {
				if text, err := file.Contents(); err == nil {
					oldContent = text
				}
			}
		}

		newContent := ""
		if data, err := os.ReadFile(filepath.Join(root, rel)); err == nil {
			if !utf8.Valid(data) {
				continue
			}
			newContent = string(data)
		}

		if oldContent == newContent {
			continue
		}

		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(oldContent),
			B:        difflib.SplitLines(newContent),
			FromFile: "a/" + rel,
			ToFile:   "b/" + rel,
			Context:  3,
		})
		if err != nil || text == "" {
			continue
		}
		diffs[rel] = text
	}
	return diffs
}
