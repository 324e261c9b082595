package lang

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/sjzsdu/codepack/share"
)

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	loadMessageFiles()

	localizer = i18n.NewLocalizer(bundle, detectLocale(), "en")
}

// loadMessageFiles 从用户目录加载翻译文件，缺失时静默跳过
func loadMessageFiles() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, share.PATH, "lang")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		// 翻译文件损坏不应影响启动
		_, _ = bundle.LoadMessageFile(filepath.Join(dir, entry.Name()))
	}
}

func detectLocale() string {
	for _, key := range []string{share.PREFIX + "LANG", "LC_ALL", "LANG"} {
		if v := os.Getenv(key); v != "" {
			// "zh_CN.UTF-8" -> "zh-CN"
			v = strings.SplitN(v, ".", 2)[0]
			return strings.ReplaceAll(v, "_", "-")
		}
	}
	return "en"
}

// T 翻译给定文案，未命中时原样返回
func T(id string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: id,
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: id,
		},
	})
	if err != nil {
		return id
	}
	return msg
}
