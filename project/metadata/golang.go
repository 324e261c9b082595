package metadata

import "strings"

func extractGoMod(root string, meta *Metadata) {
	content, ok := readFile(root, "go.mod")
	if !ok {
		return
	}

	inRequire := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "module "):
			meta.Name = strings.TrimSpace(strings.TrimPrefix(trimmed, "module "))
		case strings.HasPrefix(trimmed, "go ") && !inRequire:
			ver := strings.TrimSpace(strings.TrimPrefix(trimmed, "go "))
			meta.Version = ver
			meta.Runtime = append(meta.Runtime, "go "+ver)
		case trimmed == "require (":
			inRequire = true
		case trimmed == ")":
			inRequire = false
		case inRequire && trimmed != "" && !strings.HasPrefix(trimmed, "//"):
			parts := strings.Fields(trimmed)
			meta.Dependencies = append(meta.Dependencies, parts[0])
			if len(parts) >= 2 {
				meta.Requirements = append(meta.Requirements, parts[0]+"@"+parts[1])
			}
		}
	}

	if fileExists(root, "main.go") {
		meta.EntryPoint = "main.go"
	}
}
