package cmd

import (
	"path/filepath"
)

// absSet 把保存的相对路径集合还原为树节点使用的绝对路径集合
func absSet(root string, rels []string) map[string]bool {
	set := make(map[string]bool, len(rels))
	for _, rel := range rels {
		set[filepath.Join(root, filepath.FromSlash(rel))] = true
	}
	return set
}

// relPaths 把绝对路径转成以项目根为基准的相对路径
func relPaths(root string, paths []string) []string {
	rels := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}
