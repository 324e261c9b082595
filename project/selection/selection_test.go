package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sjzsdu/codepack/project"
)

// buildTree 构造固定形状的测试树：
//
//	/p
//	├── src/{main.go, util.go}
//	├── docs/guide.md
//	└── config.yaml
func buildTree() *project.FileNode {
	return &project.FileNode{
		Name: "p", Path: "/p", IsDir: true,
		Children: []*project.FileNode{
			{Name: "docs", Path: "/p/docs", IsDir: true, Children: []*project.FileNode{
				{Name: "guide.md", Path: "/p/docs/guide.md"},
			}},
			{Name: "src", Path: "/p/src", IsDir: true, Children: []*project.FileNode{
				{Name: "main.go", Path: "/p/src/main.go"},
				{Name: "util.go", Path: "/p/src/util.go"},
			}},
			{Name: "config.yaml", Path: "/p/config.yaml"},
		},
	}
}

// assertInvariants 校验三态不变式：目录状态由子节点推导，叶子无半选
func assertInvariants(t *testing.T, node *project.FileNode) {
	t.Helper()
	if !node.IsDir {
		assert.False(t, node.Indeterminate, "叶子不允许半选: %s", node.Path)
		return
	}
	for _, child := range node.Children {
		assertInvariants(t, child)
	}
	if len(node.Children) == 0 {
		return
	}
	all, any := true, false
	for _, child := range node.Children {
		if child.Checked || child.Indeterminate {
			any = true
		}
		if !child.Checked {
			all = false
		}
	}
	assert.Equal(t, all, node.Checked, "目录 checked 必须等于全选: %s", node.Path)
	assert.Equal(t, any && !all, node.Indeterminate, "目录半选必须等于部分选中: %s", node.Path)
}

func TestSetAll(t *testing.T) {
	tree := buildTree()
	SetAll(tree, true)
	tree.Walk(func(n *project.FileNode) {
		assert.True(t, n.Checked)
		assert.False(t, n.Indeterminate)
	})
	assertInvariants(t, tree)

	SetAll(tree, false)
	assert.Empty(t, CollectChecked(tree))
}

func TestUpdateParentTriState(t *testing.T) {
	tree := buildTree()
	src := tree.FindNode("/p/src")

	// 部分选中 → 半选
	src.Children[0].Checked = true
	Recalculate(tree)
	assert.False(t, src.Checked)
	assert.True(t, src.Indeterminate)
	assert.True(t, tree.Indeterminate)
	assertInvariants(t, tree)

	// 全部选中 → checked
	src.Children[1].Checked = true
	Recalculate(tree)
	assert.True(t, src.Checked)
	assert.False(t, src.Indeterminate)
	assertInvariants(t, tree)
}

func TestUpdateParentEmptyDir(t *testing.T) {
	empty := &project.FileNode{Name: "e", Path: "/e", IsDir: true}
	UpdateParent(empty)
	assert.False(t, empty.Checked)
	assert.False(t, empty.Indeterminate)
}

func TestRestore(t *testing.T) {
	tree := buildTree()
	Restore(tree, map[string]bool{
		"/p/src/main.go": true,
		"/p/ghost.go":    true, // 树里不存在的路径静默丢弃
	})

	assert.Equal(t, []string{"/p/src/main.go"}, CollectChecked(tree))
	assertInvariants(t, tree)
}

func TestReconcileOnRescan(t *testing.T) {
	oldTree := buildTree()
	Restore(oldTree, map[string]bool{
		"/p/src/main.go":   true,
		"/p/docs/guide.md": true,
	})

	// 新树：guide.md 消失，新增 new.go
	newTree := &project.FileNode{
		Name: "p", Path: "/p", IsDir: true,
		Children: []*project.FileNode{
			{Name: "src", Path: "/p/src", IsDir: true, Children: []*project.FileNode{
				{Name: "main.go", Path: "/p/src/main.go"},
				{Name: "new.go", Path: "/p/src/new.go"},
				{Name: "util.go", Path: "/p/src/util.go"},
			}},
			{Name: "config.yaml", Path: "/p/config.yaml"},
		},
	}
	result := ReconcileOnRescan(oldTree, newTree)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Removed)
	// 新文件默认不选中
	assert.Equal(t, []string{"/p/src/main.go"}, CollectChecked(newTree))
	assertInvariants(t, newTree)
}

func TestSelectByFilterReplaces(t *testing.T) {
	tree := buildTree()
	SetAll(tree, true)

	SelectByFilter(tree, SourceFiles)
	assert.Equal(t, []string{"/p/src/main.go", "/p/src/util.go"}, CollectChecked(tree))
	assertInvariants(t, tree)

	// 批量操作替换而非叠加
	SelectByFilter(tree, ConfigFiles)
	assert.Equal(t, []string{"/p/config.yaml"}, CollectChecked(tree))
}

func TestByExtension(t *testing.T) {
	tree := buildTree()
	SelectByFilter(tree, ByExtension(".GO"))
	assert.Len(t, CollectChecked(tree), 2)

	SelectByFilter(tree, ByExtension("md"))
	assert.Equal(t, []string{"/p/docs/guide.md"}, CollectChecked(tree))
}

func TestGitChanged(t *testing.T) {
	tree := buildTree()
	SelectByFilter(tree, GitChanged([]string{"/p/src/util.go", "/p/other.go"}))
	assert.Equal(t, []string{"/p/src/util.go"}, CollectChecked(tree))
}
