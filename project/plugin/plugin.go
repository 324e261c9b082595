package plugin

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/codepack/helper"
	"github.com/sjzsdu/codepack/share"
)

// Def 是一条数据驱动的项目识别规则，从插件目录的 JSON 文件加载。
// 插件只是数据，不包含任何可执行内容。
type Def struct {
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	DetectFiles      []string `json:"detect_files"`
	DetectDirs       []string `json:"detect_dirs"`
	ExcludeDirs      []string `json:"exclude_dirs"`
	SourceExtensions []string `json:"source_extensions"`
}

// Validate 校验插件定义：必须至少有一条 detect 规则
func (d *Def) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("plugin name is required")
	}
	if len(d.DetectFiles) == 0 && len(d.DetectDirs) == 0 {
		return errors.New("plugin must declare at least one detect_files or detect_dirs entry")
	}
	return nil
}

// Matches 判断项目根目录是否命中该插件：
// 所有 detect_files 均存在，且所有 detect_dirs 均为目录
func (d *Def) Matches(root string) bool {
	if len(d.DetectFiles) == 0 && len(d.DetectDirs) == 0 {
		return false
	}
	for _, f := range d.DetectFiles {
		if _, err := os.Stat(filepath.Join(root, f)); err != nil {
			return false
		}
	}
	for _, dir := range d.DetectDirs {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

// fileName 插件文件名：小写、空格转连字符
func (d *Def) fileName() string {
	return strings.ReplaceAll(strings.ToLower(d.Name), " ", "-") + ".json"
}

// Dir 返回插件目录路径
func Dir() string {
	return helper.GetPath(share.PLUGINS_DIR)
}

// Load 读取插件目录下的所有定义。
// 目录缺失返回空列表；单个文件损坏时跳过该插件，不影响其余插件。
func Load() []Def {
	return LoadDir(Dir())
}

// LoadDir 从指定目录读取插件定义
func LoadDir(dir string) []Def {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var defs []Def
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		var def Def
		if err := json.Unmarshal(data, &def); err != nil {
			continue
		}
		if def.Validate() != nil {
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

// Save 将插件定义写入插件目录，文件名由插件名派生
func Save(def Def) error {
	if err := def.Validate(); err != nil {
		return err
	}
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create plugins dir: %w", err)
	}
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, def.fileName()), data, 0644)
}

// Delete 按插件名删除定义文件，文件不存在不视为错误
func Delete(name string) error {
	def := Def{Name: name}
	path := filepath.Join(Dir(), def.fileName())
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}

// ExcludedDirs 汇总所有插件贡献的排除目录
func ExcludedDirs(defs []Def) []string {
	var dirs []string
	for _, def := range defs {
		dirs = append(dirs, def.ExcludeDirs...)
	}
	return dirs
}

// SourceExtensions 汇总所有插件贡献的源码扩展名
func SourceExtensions(defs []Def) []string {
	var exts []string
	for _, def := range defs {
		exts = append(exts, def.SourceExtensions...)
	}
	return exts
}
