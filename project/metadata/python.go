package metadata

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type pyprojectToml struct {
	Project struct {
		Name           string   `toml:"name"`
		Version        string   `toml:"version"`
		Description    string   `toml:"description"`
		RequiresPython string   `toml:"requires-python"`
		Dependencies   []string `toml:"dependencies"`
	} `toml:"project"`
}

func extractPythonMeta(root string, meta *Metadata) {
	if content, ok := readFile(root, "pyproject.toml"); ok {
		var doc pyprojectToml
		if toml.Unmarshal([]byte(content), &doc) == nil {
			if doc.Project.Name != "" {
				meta.Name = doc.Project.Name
			}
			meta.Version = doc.Project.Version
			meta.Description = doc.Project.Description
			if doc.Project.RequiresPython != "" {
				meta.Runtime = append(meta.Runtime, "python "+doc.Project.RequiresPython)
			}
			for _, dep := range doc.Project.Dependencies {
				dep = strings.TrimSpace(dep)
				if dep == "" {
					continue
				}
				meta.Dependencies = append(meta.Dependencies, requirementName(dep))
				meta.Requirements = append(meta.Requirements, dep)
			}
		}
	}

	if len(meta.Dependencies) == 0 {
		if content, ok := readFile(root, "requirements.txt"); ok {
			for _, line := range strings.Split(content, "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
					continue
				}
				meta.Dependencies = append(meta.Dependencies, requirementName(line))
				meta.Requirements = append(meta.Requirements, line)
			}
		}
	}

	if len(meta.Runtime) == 0 {
		if ver, ok := readFile(root, ".python-version"); ok {
			if v := strings.TrimSpace(ver); v != "" {
				meta.Runtime = append(meta.Runtime, "python "+v)
			}
		}
	}

	for _, entry := range []string{"main.py", "app.py", "manage.py", "run.py"} {
		if fileExists(root, entry) {
			meta.EntryPoint = entry
			break
		}
	}
}

// requirementName 去掉版本约束，只留包名
func requirementName(spec string) string {
	name := spec
	if idx := strings.IndexAny(name, "><=~!;["); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}
