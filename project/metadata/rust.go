package metadata

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

type cargoToml struct {
	Package struct {
		Name        string `toml:"name"`
		Version     string `toml:"version"`
		Description string `toml:"description"`
		Edition     string `toml:"edition"`
		RustVersion string `toml:"rust-version"`
	} `toml:"package"`
	Dependencies    map[string]interface{} `toml:"dependencies"`
	DevDependencies map[string]interface{} `toml:"dev-dependencies"`
}

func extractCargoToml(root string, meta *Metadata) {
	content, ok := readFile(root, "Cargo.toml")
	if !ok {
		return
	}
	var doc cargoToml
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return
	}

	if doc.Package.Name != "" {
		meta.Name = doc.Package.Name
	}
	meta.Version = doc.Package.Version
	meta.Description = doc.Package.Description
	if doc.Package.Edition != "" {
		meta.Runtime = append(meta.Runtime, "rust edition "+doc.Package.Edition)
	}
	if doc.Package.RustVersion != "" {
		meta.Runtime = append(meta.Runtime, "rust >="+doc.Package.RustVersion)
	}

	for _, name := range sortedDepKeys(doc.Dependencies) {
		meta.Dependencies = append(meta.Dependencies, name)
		meta.Requirements = append(meta.Requirements,
			fmt.Sprintf("%s@%s", name, cargoDepVersion(doc.Dependencies[name])))
	}
	meta.DevDependencies = append(meta.DevDependencies, sortedDepKeys(doc.DevDependencies)...)
}

// cargoDepVersion 依赖版本既可能是字符串又可能是带 version 键的表
func cargoDepVersion(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]interface{}:
		if ver, ok := v["version"].(string); ok {
			return ver
		}
	}
	return "*"
}

func sortedDepKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
