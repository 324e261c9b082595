// Package selection 维护文件树上的三态勾选模型。
// checked/indeterminate 是派生状态：目录全选即 checked，
// 部分选中即 indeterminate，叶子永远不带 indeterminate。
// 所有操作只改内存中的树，不做任何 I/O。
package selection

import (
	"strings"

	"github.com/sjzsdu/codepack/helper"
	"github.com/sjzsdu/codepack/project"
)

// SetAll 将节点及其所有后代统一置为 checked，并清掉 indeterminate
func SetAll(node *project.FileNode, checked bool) {
	node.Checked = checked
	node.Indeterminate = false
	for _, child := range node.Children {
		SetAll(child, checked)
	}
}

// UpdateParent 只根据直接子节点重算目录的 checked/indeterminate。
// 叶子修改后自底向上逐层调用即可维持全树不变式。
func UpdateParent(node *project.FileNode) {
	if !node.IsDir {
		return
	}
	if len(node.Children) == 0 {
		node.Checked = false
		node.Indeterminate = false
		return
	}

	all, any := true, false
	for _, child := range node.Children {
		if child.Checked {
			any = true
		} else {
			all = false
		}
		if child.Indeterminate {
			any = true
			all = false
		}
	}
	node.Checked = all
	node.Indeterminate = any && !all
}

// Recalculate 自底向上重算全树目录的 checked/indeterminate。
// 局部修改子树后调用一次即可恢复全树不变式。
func Recalculate(node *project.FileNode) {
	if !node.IsDir {
		return
	}
	for _, child := range node.Children {
		Recalculate(child)
	}
	UpdateParent(node)
}

// Restore 按给定路径集合恢复选中状态：
// 叶子 checked = 路径在集合中，目录递归后由 UpdateParent 推出。
// 集合里已不存在于树中的路径被静默丢弃。
func Restore(tree *project.FileNode, checkedPaths map[string]bool) {
	restore(tree, checkedPaths)
}

func restore(node *project.FileNode, checkedPaths map[string]bool) {
	if !node.IsDir {
		node.Checked = checkedPaths[node.Path]
		node.Indeterminate = false
		return
	}
	for _, child := range node.Children {
		restore(child, checkedPaths)
	}
	UpdateParent(node)
}

// CollectChecked 按遍历顺序收集所有选中的文件路径
func CollectChecked(tree *project.FileNode) []string {
	var paths []string
	tree.Walk(func(node *project.FileNode) {
		if !node.IsDir && node.Checked {
			paths = append(paths, node.Path)
		}
	})
	return paths
}

// ReconcileResult 重扫描对账结果
type ReconcileResult struct {
	Added   int // 新树独有的文件，默认不选中
	Removed int // 旧选择中已消失的文件
}

// ReconcileOnRescan 把旧树的选择搬到新树上。
// 新发现的文件默认不选中，避免导出范围被悄悄扩大。
func ReconcileOnRescan(oldTree, newTree *project.FileNode) ReconcileResult {
	oldChecked := make(map[string]bool)
	for _, path := range CollectChecked(oldTree) {
		oldChecked[path] = true
	}
	oldFiles := make(map[string]bool)
	oldTree.Walk(func(node *project.FileNode) {
		if !node.IsDir {
			oldFiles[node.Path] = true
		}
	})

	var result ReconcileResult
	newFiles := make(map[string]bool)
	newTree.Walk(func(node *project.FileNode) {
		if node.IsDir {
			return
		}
		newFiles[node.Path] = true
		if !oldFiles[node.Path] {
			result.Added++
		}
	})
	for path := range oldChecked {
		if !newFiles[path] {
			result.Removed++
		}
	}

	Restore(newTree, oldChecked)
	return result
}

// SelectByFilter 从根重新应用谓词：命中的叶子选中，其余全部取消。
// 批量操作不叠加在现有选择之上。
func SelectByFilter(tree *project.FileNode, predicate func(node *project.FileNode) bool) {
	apply(tree, predicate)
}

func apply(node *project.FileNode, predicate func(node *project.FileNode) bool) {
	if !node.IsDir {
		node.Checked = predicate(node)
		node.Indeterminate = false
		return
	}
	for _, child := range node.Children {
		apply(child, predicate)
	}
	UpdateParent(node)
}

// 源码文件批量筛选用的固定扩展名表
var sourceFilterExts = map[string]bool{
	"go": true, "rs": true, "py": true, "js": true, "jsx": true,
	"ts": true, "tsx": true, "vue": true, "svelte": true, "java": true,
	"kt": true, "kts": true, "dart": true, "rb": true, "php": true,
	"swift": true, "c": true, "cpp": true, "h": true, "hpp": true,
	"cs": true, "m": true, "mm": true, "scala": true, "lua": true,
	"sql": true, "sh": true,
}

// 配置文件批量筛选用的固定扩展名表
var configFilterExts = map[string]bool{
	"json": true, "yaml": true, "yml": true, "toml": true, "xml": true,
	"ini": true, "cfg": true, "conf": true, "env": true, "properties": true,
	"lock": true, "mod": true, "sum": true, "gradle": true,
}

// ByExtension 按扩展名（带不带点皆可，不区分大小写）筛选
func ByExtension(ext string) func(node *project.FileNode) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return func(node *project.FileNode) bool {
		return helper.GetFileExt(node.Name) == ext
	}
}

// SourceFiles 命中源码扩展名表
func SourceFiles(node *project.FileNode) bool {
	return sourceFilterExts[helper.GetFileExt(node.Name)]
}

// ConfigFiles 命中配置扩展名表
func ConfigFiles(node *project.FileNode) bool {
	return configFilterExts[helper.GetFileExt(node.Name)]
}

// GitChanged 按外部 Git 状态给出的变更路径集合筛选
func GitChanged(changedPaths []string) func(node *project.FileNode) bool {
	set := make(map[string]bool, len(changedPaths))
	for _, path := range changedPaths {
		set[path] = true
	}
	return func(node *project.FileNode) bool {
		return set[node.Path]
	}
}
