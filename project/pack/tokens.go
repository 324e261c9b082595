package pack

import (
	"fmt"
	"os"

	"github.com/sjzsdu/codepack/share"
)

// TokenEstimate token 估算结果
type TokenEstimate struct {
	Tokens     int64 `json:"tokens"`
	TotalBytes int64 `json:"total_bytes"`
}

// EstimateTokens 按文件大小估算 token 数。
// 固定字节比率的启发式：随总字节数单调递增，输入相同结果必然相同。
func EstimateTokens(paths []string) TokenEstimate {
	var totalBytes int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		totalBytes += info.Size()
	}
	return TokenEstimate{
		Tokens:     estimateBytes(totalBytes),
		TotalBytes: totalBytes,
	}
}

// estimateBytes 向上取整，保证非空输入估算值不为零
func estimateBytes(totalBytes int64) int64 {
	if totalBytes <= 0 {
		return 0
	}
	return (totalBytes + share.BYTES_PER_TOKEN - 1) / share.BYTES_PER_TOKEN
}

// FormatTokens 人类可读的 token 数（1.5K / 2.0M）
func FormatTokens(tokens int64) string {
	switch {
	case tokens >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(tokens)/1_000_000)
	case tokens >= 1000:
		return fmt.Sprintf("%.1fK", float64(tokens)/1000)
	default:
		return fmt.Sprintf("%d", tokens)
	}
}
