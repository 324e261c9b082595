package metadata

import (
	"os"
	"path/filepath"

	"github.com/sjzsdu/codepack/share"
)

// Metadata 项目清单文件中提取出的概要信息。
// 解析失败只会得到部分或空字段，绝不让扫描失败。
type Metadata struct {
	Name            string   `json:"name"`
	ProjectType     string   `json:"project_type"`
	Version         string   `json:"version,omitempty"`
	Description     string   `json:"description,omitempty"`
	Dependencies    []string `json:"dependencies"`
	DevDependencies []string `json:"dev_dependencies"`
	EntryPoint      string   `json:"entry_point,omitempty"`
	Runtime         []string `json:"runtime"`
	Requirements    []string `json:"requirements"`
}

// Extract 按项目类型解析对应的清单文件
func Extract(root, projectType string) *Metadata {
	meta := &Metadata{
		Name:        filepath.Base(root),
		ProjectType: projectType,
	}

	switch projectType {
	case "Node.js", "Next.js", "Nuxt.js", "Vite":
		extractPackageJSON(root, meta)
	case "Python":
		extractPythonMeta(root, meta)
	case "Rust":
		extractCargoToml(root, meta)
	case "Go":
		extractGoMod(root, meta)
	case "Flutter / Dart":
		extractPubspecYaml(root, meta)
	case "Java / Maven":
		extractPomXML(root, meta)
	case "Android / Gradle", "Gradle":
		extractGradleMeta(root, meta)
	}

	meta.Dependencies = dedup(meta.Dependencies)
	meta.DevDependencies = dedup(meta.DevDependencies)
	if len(meta.Requirements) > share.MAX_REQUIREMENTS {
		meta.Requirements = meta.Requirements[:share.MAX_REQUIREMENTS]
	}
	return meta
}

// dedup 去重但保留首次出现的声明顺序
func dedup(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]bool, len(items))
	result := items[:0]
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		result = append(result, item)
	}
	return result
}

func readFile(root, name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func fileExists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, name))
	return err == nil
}
