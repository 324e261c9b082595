package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sjzsdu/codepack/project"
)

func TestRender(t *testing.T) {
	node := &project.FileNode{
		Name: "demo", IsDir: true,
		Children: []*project.FileNode{
			{Name: "src", IsDir: true, Children: []*project.FileNode{
				{Name: "main.go"},
				{Name: "util.go"},
			}},
			{Name: "README.md"},
		},
	}

	expected := `demo/
├── src/
│   ├── main.go
│   └── util.go
└── README.md
`
	assert.Equal(t, expected, Render(node))
}

func TestRenderNil(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}

func TestFromPaths(t *testing.T) {
	lines := FromPaths([]string{
		"src/main.go",
		"src/lib/util.go",
		"README.md",
	})

	expected := []string{
		"README.md",
		"src/",
		"  ├── lib/",
		"  │   └── util.go",
		"  └── main.go",
	}
	assert.Equal(t, expected, lines)
}

func TestFromPathsEmpty(t *testing.T) {
	assert.Nil(t, FromPaths(nil))
}

func TestFromPathsDeterministic(t *testing.T) {
	a := FromPaths([]string{"b.go", "a.go", "dir/c.go"})
	b := FromPaths([]string{"dir/c.go", "a.go", "b.go"})
	assert.Equal(t, a, b)
}
