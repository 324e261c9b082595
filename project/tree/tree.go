// Package tree 生成类似 Unix tree 命令的树状文本。
package tree

import (
	"sort"
	"strings"

	"github.com/sjzsdu/codepack/project"
)

// Render 渲染整棵扫描树
func Render(node *project.FileNode) string {
	if node == nil {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(node.Name + "/\n")
	renderChildren(node, &builder, "")
	return builder.String()
}

func renderChildren(node *project.FileNode, builder *strings.Builder, prefix string) {
	for i, child := range node.Children {
		isLast := i == len(node.Children)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		builder.WriteString(prefix + connector + child.Name)
		if child.IsDir {
			builder.WriteString("/")
		}
		builder.WriteString("\n")
		if child.IsDir {
			renderChildren(child, builder, childPrefix)
		}
	}
}

// pathNode 相对路径列表还原出的嵌套结构
type pathNode struct {
	children map[string]*pathNode
}

// FromPaths 把相对路径列表渲染成树状概览行。
// 顶层条目不带连接符，子层用 ├──/└── 连接，目录带斜杠后缀。
func FromPaths(relativePaths []string) []string {
	if len(relativePaths) == 0 {
		return nil
	}

	root := &pathNode{children: make(map[string]*pathNode)}
	for _, path := range relativePaths {
		current := root
		for _, part := range strings.Split(path, "/") {
			if part == "" {
				continue
			}
			child := current.children[part]
			if child == nil {
				child = &pathNode{children: make(map[string]*pathNode)}
				current.children[part] = child
			}
			current = child
		}
	}

	var lines []string
	renderPathNode(root, "", true, &lines)
	return lines
}

func renderPathNode(node *pathNode, prefix string, isRoot bool, lines *[]string) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		child := node.children[name]
		isLast := i == len(names)-1
		hasChildren := len(child.children) > 0

		if isRoot {
			if hasChildren {
				*lines = append(*lines, name+"/")
				renderPathNode(child, "  ", false, lines)
			} else {
				*lines = append(*lines, name)
			}
			continue
		}

		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		if hasChildren {
			*lines = append(*lines, prefix+connector+name+"/")
			renderPathNode(child, childPrefix, false, lines)
		} else {
			*lines = append(*lines, prefix+connector+name)
		}
	}
}
