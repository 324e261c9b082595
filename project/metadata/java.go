package metadata

import "strings"

// pom.xml 采用行导向解析，依赖块结构固定且无需完整 XML 文档模型
func extractPomXML(root string, meta *Metadata) {
	content, ok := readFile(root, "pom.xml")
	if !ok {
		return
	}

	if aid := xmlTag(content, "artifactId"); aid != "" {
		meta.Name = aid
	}
	meta.Version = xmlTag(content, "version")
	meta.Description = xmlTag(content, "description")
	if jv := xmlTag(content, "java.version"); jv != "" {
		meta.Runtime = append(meta.Runtime, "java "+jv)
	} else if jv := xmlTag(content, "maven.compiler.source"); jv != "" {
		meta.Runtime = append(meta.Runtime, "java "+jv)
	}

	inDeps := false
	var group, artifact, version string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, "<dependencies>") {
			inDeps = true
		}
		if strings.Contains(trimmed, "</dependencies>") {
			inDeps = false
		}
		if !inDeps {
			continue
		}
		if v := xmlTag(trimmed, "groupId"); v != "" {
			group = v
		}
		if v := xmlTag(trimmed, "artifactId"); v != "" {
			artifact = v
		}
		if v := xmlTag(trimmed, "version"); v != "" {
			version = v
		}
		if strings.Contains(trimmed, "</dependency>") {
			if artifact != "" {
				meta.Dependencies = append(meta.Dependencies, artifact)
				req := group + ":" + artifact
				if version != "" {
					req += ":" + version
				}
				meta.Requirements = append(meta.Requirements, req)
			}
			group, artifact, version = "", "", ""
		}
	}
}

func extractGradleMeta(root string, meta *Metadata) {
	for _, settings := range []string{"settings.gradle.kts", "settings.gradle"} {
		content, ok := readFile(root, settings)
		if !ok {
			continue
		}
		for _, line := range strings.Split(content, "\n") {
			trimmed := strings.TrimSpace(line)
			if !strings.HasPrefix(trimmed, "rootProject.name") {
				continue
			}
			parts := strings.SplitN(trimmed, "=", 2)
			if len(parts) != 2 {
				continue
			}
			name := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
			if name != "" {
				meta.Name = name
			}
		}
		break
	}
}

// xmlTag 提取首个 <tag>…</tag> 的文本内容
func xmlTag(text, tag string) string {
	open, closing := "<"+tag+">", "</"+tag+">"
	start := strings.Index(text, open)
	if start < 0 {
		return ""
	}
	after := start + len(open)
	end := strings.Index(text[after:], closing)
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(text[after : after+end])
}
