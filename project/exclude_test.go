package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionMatcherBuiltin(t *testing.T) {
	m := NewExclusionMatcher()

	assert.True(t, m.Excluded("node_modules"))
	assert.True(t, m.Excluded("NODE_MODULES"), "名称匹配不区分大小写")
	assert.True(t, m.Excluded(".git"))
	assert.True(t, m.Excluded("__pycache__"))
	assert.False(t, m.Excluded("src"))
	assert.False(t, m.Excluded("node_modules_backup"), "只做整名匹配")
}

func TestExclusionMatcherGlobs(t *testing.T) {
	m := NewExclusionMatcher("*.log", "generated")

	assert.True(t, m.Excluded("debug.log"))
	assert.True(t, m.Excluded("DEBUG.LOG"))
	assert.True(t, m.Excluded("generated"))
	assert.False(t, m.Excluded("log"))
	assert.False(t, m.Excluded("debug.log.txt"))
}

func TestExclusionMatcherAdd(t *testing.T) {
	m := NewExclusionMatcher()
	assert.False(t, m.Excluded("tmp"))

	m.Add("tmp", "*.bak")
	assert.True(t, m.Excluded("tmp"))
	assert.True(t, m.Excluded("old.bak"))
	// 追加不影响内置表
	assert.True(t, m.Excluded("vendor"))
}
