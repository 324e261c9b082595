// Package security 对文件内容做秘密信息扫描与打码。
// 规则集固定且有序，匹配按行进行；打码按内容等值全局替换，
// 因此对拼接重排后的导出文本同样安全。
package security

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sjzsdu/codepack/share"
)

// MaskToken 打码时保留前 3 个字符，其余替换为该标记
const MaskToken = "******"

// Match 一处命中的秘密
type Match struct {
	RuleName     string `json:"rule_name"`
	LineNumber   int    `json:"line_number"` // 1-based
	MatchContent string `json:"match_content"`
}

type rule struct {
	name    string
	pattern *regexp.Regexp
}

var rules = []rule{
	{"AWS Access Key ID", regexp.MustCompile(`(A3T[A-Z0-9]|AKIA|AGPA|AIDA|AROA|AIPA|ANPA|ANVA|ASIA)[A-Z0-9]{16}`)},
	{"Private Key Header", regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`)},
	{"OpenAI API Key", regexp.MustCompile(`sk-[a-zA-Z0-9]{32,}`)},
	{"GitHub PAT", regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`)},
	{"Google API Key", regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`)},
	{"Potential Hardcoded Secret", regexp.MustCompile(`(?i)(password|passwd|pwd|secret|api_key|apikey|access_token)\s*[:=]\s*["']([^"']{6,})["']`)},
}

// ScanContent 扫描全文，按行返回所有命中。
// 同一行命中多条规则时全部上报；超长行跳过，防止压缩产物触发回溯。
func ScanContent(content string) []Match {
	var matches []Match
	for idx, line := range strings.Split(content, "\n") {
		if len(line) > share.MAX_SCAN_LINE_LEN {
			continue
		}
		for _, r := range rules {
			if loc := r.pattern.FindString(line); loc != "" {
				matches = append(matches, Match{
					RuleName:     r.name,
					LineNumber:   idx + 1,
					MatchContent: loc,
				})
			}
		}
	}
	return matches
}

// Mask 把每个命中的内容在全文中全局打码：保留前 3 字符 + 固定掩码。
// 先替换长串再替换短串，避免部分替换；对已打码文本重复调用是空操作。
func Mask(content string, matches []Match) string {
	if len(matches) == 0 {
		return content
	}

	seen := make(map[string]bool, len(matches))
	unique := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.MatchContent == "" || seen[m.MatchContent] {
			continue
		}
		seen[m.MatchContent] = true
		unique = append(unique, m.MatchContent)
	}
	sort.Slice(unique, func(i, j int) bool {
		if len(unique[i]) != len(unique[j]) {
			return len(unique[i]) > len(unique[j])
		}
		return unique[i] < unique[j]
	})

	result := content
	for _, secret := range unique {
		prefix := secret
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		result = strings.ReplaceAll(result, secret, prefix+MaskToken)
	}
	return result
}
