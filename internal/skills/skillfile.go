package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SkillFile is a parsed SKILL.md: the definition from its YAML frontmatter
// plus the markdown instruction body.
type SkillFile struct {
	Definition Definition
	Body       string
	Path       string
}

// ParseSkillFile reads and parses a SKILL.md file.
func ParseSkillFile(path string) (*SkillFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill file: %w", err)
	}

	sf, err := ParseSkillData(data)
	if err != nil {
		return nil, fmt.Errorf("skill file %s: %w", path, err)
	}
	sf.Path = path
	return sf, nil
}

// ParseSkillData parses SKILL.md content: YAML frontmatter between ---
// fences, then the markdown body.
func ParseSkillData(data []byte) (*SkillFile, error) {
	front, body, err := splitFrontmatter(string(data))
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := yaml.Unmarshal([]byte(front), &def); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return &SkillFile{Definition: def, Body: body}, nil
}

// splitFrontmatter separates the YAML frontmatter from the markdown body.
// The file must start with --- on its own line and contain a closing ---.
func splitFrontmatter(content string) (front, body string, err error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != "---" {
		return "", "", fmt.Errorf("SKILL.md must start with --- on its own line")
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			front = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return front, body, nil
		}
	}

	return "", "", fmt.Errorf("frontmatter must end with --- on its own line")
}

// DiscoverBundles finds skill bundle directories under root. A bundle is a
// directory containing SKILL.md. If root is itself a bundle it is the only
// result; otherwise each direct subdirectory is checked. Results are sorted
// by directory name.
func DiscoverBundles(root string) ([]string, error) {
	if _, err := os.Stat(filepath.Join(root, "SKILL.md")); err == nil {
		return []string{root}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills directory: %w", err)
	}

	var bundles []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "SKILL.md")); err == nil {
			bundles = append(bundles, dir)
		}
	}

	return bundles, nil
}
