package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/sjzsdu/codepack/helper"
	"github.com/sjzsdu/codepack/share"
)

// ProjectConfig 单个项目的持久化状态，按项目绝对路径索引
type ProjectConfig struct {
	ProjectPath   string   `json:"project_path"`
	CheckedPaths  []string `json:"checked_paths"`
	ExcludedPaths []string `json:"excluded_paths,omitempty"`
	// LastOpened unix 秒的字符串表示
	LastOpened string              `json:"last_opened,omitempty"`
	Presets    map[string][]string `json:"presets,omitempty"`
	Pinned     bool                `json:"pinned,omitempty"`
}

// AppConfig 所有项目的状态集合，整体读写 config.json
type AppConfig struct {
	Projects map[string]ProjectConfig `json:"projects"`
}

func projectsFile() string {
	return helper.GetPath(share.CONFIG_FILE)
}

// LoadProjects 读取项目配置。文件缺失或损坏时返回空配置，不报错。
func LoadProjects() *AppConfig {
	cfg := &AppConfig{Projects: make(map[string]ProjectConfig)}
	data, err := os.ReadFile(projectsFile())
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return &AppConfig{Projects: make(map[string]ProjectConfig)}
	}
	if cfg.Projects == nil {
		cfg.Projects = make(map[string]ProjectConfig)
	}
	return cfg
}

// SaveProjects 原子写回整个配置文件
func SaveProjects(cfg *AppConfig) error {
	dir := helper.GetPath("")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".config-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, projectsFile())
}

// SaveProject 保存项目的选中集与排除规则，保留已有的预设和置顶状态
func SaveProject(projectPath string, checkedPaths, excludedPaths []string) error {
	key := helper.StandardizePath(projectPath)
	cfg := LoadProjects()
	entry := cfg.Projects[key]
	entry.ProjectPath = key
	entry.CheckedPaths = sortedCopy(checkedPaths)
	entry.ExcludedPaths = sortedCopy(excludedPaths)
	entry.LastOpened = strconv.FormatInt(time.Now().Unix(), 10)
	cfg.Projects[key] = entry
	return SaveProjects(cfg)
}

// LoadProject 读取项目状态，不存在时 ok 为 false
func LoadProject(projectPath string) (ProjectConfig, bool) {
	key := helper.StandardizePath(projectPath)
	cfg := LoadProjects()
	entry, ok := cfg.Projects[key]
	return entry, ok
}

// SavePreset 将一组选中路径存为命名预设，项目条目不存在时创建
func SavePreset(projectPath, name string, paths []string) error {
	if name == "" {
		return fmt.Errorf("预设名称不能为空")
	}
	key := helper.StandardizePath(projectPath)
	cfg := LoadProjects()
	entry, ok := cfg.Projects[key]
	if !ok {
		entry = ProjectConfig{ProjectPath: key}
	}
	if entry.Presets == nil {
		entry.Presets = make(map[string][]string)
	}
	entry.Presets[name] = sortedCopy(paths)
	cfg.Projects[key] = entry
	return SaveProjects(cfg)
}

// DeletePreset 删除命名预设，预设不存在不视为错误
func DeletePreset(projectPath, name string) error {
	key := helper.StandardizePath(projectPath)
	cfg := LoadProjects()
	entry, ok := cfg.Projects[key]
	if !ok || entry.Presets == nil {
		return nil
	}
	delete(entry.Presets, name)
	cfg.Projects[key] = entry
	return SaveProjects(cfg)
}

// ListPresets 返回排序后的预设名列表
func ListPresets(projectPath string) []string {
	entry, ok := LoadProject(projectPath)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(entry.Presets))
	for name := range entry.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPreset 按名称取出预设路径集
func GetPreset(projectPath, name string) ([]string, bool) {
	entry, ok := LoadProject(projectPath)
	if !ok {
		return nil, false
	}
	paths, ok := entry.Presets[name]
	return paths, ok
}

// SetPinned 置顶或取消置顶项目
func SetPinned(projectPath string, pinned bool) error {
	key := helper.StandardizePath(projectPath)
	cfg := LoadProjects()
	entry, ok := cfg.Projects[key]
	if !ok {
		entry = ProjectConfig{ProjectPath: key}
	}
	entry.Pinned = pinned
	cfg.Projects[key] = entry
	return SaveProjects(cfg)
}

// RecentProjects 按置顶优先、最近打开倒序返回项目路径
func RecentProjects() []string {
	cfg := LoadProjects()
	type item struct {
		path   string
		pinned bool
		opened int64
	}
	items := make([]item, 0, len(cfg.Projects))
	for key, entry := range cfg.Projects {
		opened, _ := strconv.ParseInt(entry.LastOpened, 10, 64)
		items = append(items, item{path: key, pinned: entry.Pinned, opened: opened})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].pinned != items[j].pinned {
			return items[i].pinned
		}
		if items[i].opened != items[j].opened {
			return items[i].opened > items[j].opened
		}
		return items[i].path < items[j].path
	})
	paths := make([]string, len(items))
	for i, it := range items {
		paths[i] = it.path
	}
	return paths
}

func sortedCopy(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.ToSlash(p)
	}
	sort.Strings(out)
	return out
}
