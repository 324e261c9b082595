package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFallsBackToID(t *testing.T) {
	// 没有翻译文件时原样返回
	assert.Equal(t, "Pack selected files", T("Pack selected files"))
	assert.Equal(t, "", T(""))
}
