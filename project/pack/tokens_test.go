package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.txt")
	large := filepath.Join(dir, "large.txt")
	require.NoError(t, os.WriteFile(small, []byte("abc"), 0o644))
	require.NoError(t, os.WriteFile(large, make([]byte, 4096), 0o644))

	// 空输入估算为零
	assert.Equal(t, int64(0), EstimateTokens(nil).Tokens)

	// 非空文件估算值不为零，不足一个比率单位也向上取整
	est := EstimateTokens([]string{small})
	assert.Equal(t, int64(3), est.TotalBytes)
	assert.Equal(t, int64(1), est.Tokens)

	// 估算值随字节数单调递增
	more := EstimateTokens([]string{small, large})
	assert.Greater(t, more.Tokens, est.Tokens)
	assert.Equal(t, int64(4099), more.TotalBytes)

	// 不存在的文件忽略不报错
	est = EstimateTokens([]string{filepath.Join(dir, "missing.txt"), small})
	assert.Equal(t, int64(3), est.TotalBytes)
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "0", FormatTokens(0))
	assert.Equal(t, "999", FormatTokens(999))
	assert.Equal(t, "1.0K", FormatTokens(1000))
	assert.Equal(t, "1.5K", FormatTokens(1500))
	assert.Equal(t, "2.0M", FormatTokens(2_000_000))
}
