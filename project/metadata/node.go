package metadata

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Engines         map[string]string `json:"engines"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func extractPackageJSON(root string, meta *Metadata) {
	content, ok := readFile(root, "package.json")
	if !ok {
		return
	}
	var pkg packageJSON
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return
	}

	if pkg.Name != "" {
		meta.Name = pkg.Name
	}
	meta.Version = pkg.Version
	meta.Description = pkg.Description
	meta.EntryPoint = pkg.Main

	for _, key := range sortedKeys(pkg.Engines) {
		meta.Runtime = append(meta.Runtime, fmt.Sprintf("%s %s", key, pkg.Engines[key]))
	}
	for _, key := range sortedKeys(pkg.Dependencies) {
		meta.Dependencies = append(meta.Dependencies, key)
		meta.Requirements = append(meta.Requirements, fmt.Sprintf("%s@%s", key, pkg.Dependencies[key]))
	}
	meta.DevDependencies = append(meta.DevDependencies, sortedKeys(pkg.DevDependencies)...)

	if len(meta.Runtime) == 0 {
		for _, rc := range []string{".nvmrc", ".node-version"} {
			if ver, ok := readFile(root, rc); ok {
				if v := strings.TrimSpace(ver); v != "" {
					meta.Runtime = append(meta.Runtime, "node "+v)
					break
				}
			}
		}
	}

	if ts, ok := readFile(root, "tsconfig.json"); ok {
		var cfg struct {
			CompilerOptions struct {
				Target string `json:"target"`
			} `json:"compilerOptions"`
		}
		if json.Unmarshal([]byte(ts), &cfg) == nil && cfg.CompilerOptions.Target != "" {
			meta.Runtime = append(meta.Runtime, "ts target: "+cfg.CompilerOptions.Target)
		}
	}
}

// sortedKeys JSON 对象键序不稳定，排序保证输出确定
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
