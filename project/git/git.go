// Package git 产出项目的 Git 状态快照和变更 diff 文本。
// 核心管线只消费这里的快照，不直接接触仓库对象。
package git

import (
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// ChangedFile 工作区内的一个变更文件
type ChangedFile struct {
	Path   string `json:"path"` // 绝对路径
	Status string `json:"status"`
}

// Status 一次性的仓库状态快照
type Status struct {
	IsRepo       bool          `json:"is_repo"`
	Branch       string        `json:"branch"`
	ChangedFiles []ChangedFile `json:"changed_files"`
}

// GetStatus 获取项目的 Git 状态。非仓库目录返回 IsRepo=false，不报错。
func GetStatus(projectPath string) *Status {
	repo, err := gogit.PlainOpenWithOptions(projectPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return &Status{IsRepo: false}
	}

	branch := "HEAD"
	if head, err := repo.Head(); err == nil {
		branch = head.Name().Short()
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return &Status{IsRepo: true, Branch: branch}
	}
	status, err := worktree.Status()
	if err != nil {
		return &Status{IsRepo: true, Branch: branch}
	}

	root := worktree.Filesystem.Root()
	var changed []ChangedFile
	for rel, fileStatus := range status {
		label := statusLabel(fileStatus)
		if label == "" {
			continue
		}
		changed = append(changed, ChangedFile{
			Path:   filepath.Join(root, rel),
			Status: label,
		})
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].Path < changed[j].Path })

	return &Status{
		IsRepo:       true,
		Branch:       branch,
		ChangedFiles: changed,
	}
}

func statusLabel(fs *gogit.FileStatus) string {
	code := fs.Worktree
	if code == gogit.Unmodified {
		code = fs.Staging
	}
	switch code {
	case gogit.Untracked, gogit.Added:
		return "added"
	case gogit.Modified:
		return "modified"
	case gogit.Deleted:
		return "deleted"
	case gogit.Renamed:
		return "renamed"
	case gogit.Copied:
		return "copied"
	case gogit.UpdatedButUnmerged:
		return "unmerged"
	default:
		return ""
	}
}

// ChangedPaths 返回未被删除的变更文件绝对路径
func (s *Status) ChangedPaths() []string {
	var paths []string
	for _, file := range s.ChangedFiles {
		if file.Status == "deleted" {
			continue
		}
		paths = append(paths, file.Path)
	}
	return paths
}
