package project

import (
	"sort"
	"strings"
)

// FileNode 表示扫描结果中的一个文件或目录节点。
// 每次扫描产生一棵全新的树，节点在扫描之间不共享。
type FileNode struct {
	Name          string      `json:"name"`
	Path          string      `json:"path"`
	IsDir         bool        `json:"is_dir"`
	Children      []*FileNode `json:"children"`
	Checked       bool        `json:"checked"`
	Indeterminate bool        `json:"indeterminate"`
}

// SortChildren 对直接子节点排序：目录优先，其后按名称不区分大小写排序
func (n *FileNode) SortChildren() {
	sort.Slice(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// Walk 以深度优先、子节点有序的方式访问整棵树
func (n *FileNode) Walk(fn func(node *FileNode)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// CountFiles 统计树中的文件节点数
func (n *FileNode) CountFiles() int {
	count := 0
	n.Walk(func(node *FileNode) {
		if !node.IsDir {
			count++
		}
	})
	return count
}

// FilePaths 按遍历顺序收集所有文件节点的绝对路径
func (n *FileNode) FilePaths() []string {
	var paths []string
	n.Walk(func(node *FileNode) {
		if !node.IsDir {
			paths = append(paths, node.Path)
		}
	})
	return paths
}

// FindNode 按绝对路径查找节点，未找到返回 nil
func (n *FileNode) FindNode(path string) *FileNode {
	var found *FileNode
	n.Walk(func(node *FileNode) {
		if found == nil && node.Path == path {
			found = node
		}
	})
	return found
}
