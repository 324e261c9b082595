package metadata

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

type pubspecYaml struct {
	Name            string               `yaml:"name"`
	Version         string               `yaml:"version"`
	Description     string               `yaml:"description"`
	Environment     map[string]string    `yaml:"environment"`
	Dependencies    map[string]yaml.Node `yaml:"dependencies"`
	DevDependencies map[string]yaml.Node `yaml:"dev_dependencies"`
}

func extractPubspecYaml(root string, meta *Metadata) {
	content, ok := readFile(root, "pubspec.yaml")
	if !ok {
		return
	}
	var doc pubspecYaml
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return
	}

	if doc.Name != "" {
		meta.Name = doc.Name
	}
	meta.Version = doc.Version
	meta.Description = doc.Description

	for _, key := range sortedKeys(doc.Environment) {
		meta.Runtime = append(meta.Runtime, fmt.Sprintf("%s %s", key, doc.Environment[key]))
	}
	for _, name := range sortedNodeKeys(doc.Dependencies) {
		if name == "sdk" {
			continue
		}
		meta.Dependencies = append(meta.Dependencies, name)
		node := doc.Dependencies[name]
		if node.Kind == yaml.ScalarNode && node.Value != "" {
			meta.Requirements = append(meta.Requirements, fmt.Sprintf("%s@%s", name, node.Value))
		}
	}
	for _, name := range sortedNodeKeys(doc.DevDependencies) {
		if name == "sdk" {
			continue
		}
		meta.DevDependencies = append(meta.DevDependencies, name)
	}

	if fileExists(root, "lib/main.dart") {
		meta.EntryPoint = "lib/main.dart"
	}
}

func sortedNodeKeys(m map[string]yaml.Node) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
