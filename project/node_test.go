package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() *FileNode {
	return &FileNode{
		Name: "root", Path: "/p", IsDir: true,
		Children: []*FileNode{
			{Name: "src", Path: "/p/src", IsDir: true, Children: []*FileNode{
				{Name: "main.go", Path: "/p/src/main.go"},
				{Name: "util.go", Path: "/p/src/util.go"},
			}},
			{Name: "README.md", Path: "/p/README.md"},
		},
	}
}

func TestSortChildren(t *testing.T) {
	n := &FileNode{IsDir: true, Children: []*FileNode{
		{Name: "zeta.go"},
		{Name: "lib", IsDir: true},
		{Name: "Alpha.go"},
		{Name: "app", IsDir: true},
	}}
	n.SortChildren()

	names := make([]string, len(n.Children))
	for i, c := range n.Children {
		names[i] = c.Name
	}
	// 目录优先，名称不区分大小写
	assert.Equal(t, []string{"app", "lib", "Alpha.go", "zeta.go"}, names)
}

func TestCountFilesAndFilePaths(t *testing.T) {
	tree := sampleTree()
	assert.Equal(t, 3, tree.CountFiles())
	assert.Equal(t, []string{"/p/src/main.go", "/p/src/util.go", "/p/README.md"}, tree.FilePaths())
}

func TestFindNode(t *testing.T) {
	tree := sampleTree()
	assert.NotNil(t, tree.FindNode("/p/src/util.go"))
	assert.Equal(t, "src", tree.FindNode("/p/src").Name)
	assert.Nil(t, tree.FindNode("/p/missing.go"))
}

func TestWalkOrder(t *testing.T) {
	var visited []string
	sampleTree().Walk(func(n *FileNode) {
		visited = append(visited, n.Name)
	})
	assert.Equal(t, []string{"root", "src", "main.go", "util.go", "README.md"}, visited)
}
