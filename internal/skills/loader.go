package skills

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// extensionTermPattern matches a valid extension trigger term: an optional
// leading dot followed by 1-10 alphanumerics.
var extensionTermPattern = regexp.MustCompile(`^\.?[a-zA-Z0-9]{1,10}$`)

// LoadManifest reads and parses the skills manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills manifest: %w", err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return manifest, nil
}

// ParseManifest parses manifest YAML and validates it. The returned manifest
// has trigger weights defaulted, so a nil error means it is ready for scoring.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse skills manifest: %w", err)
	}

	applyTriggerDefaults(&manifest)

	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	return &manifest, nil
}

// applyTriggerDefaults sets the default weight on triggers that omit it.
func applyTriggerDefaults(m *Manifest) {
	for i := range m.Skills {
		for j := range m.Skills[i].Triggers {
			if m.Skills[i].Triggers[j].Weight == 0 {
				m.Skills[i].Triggers[j].Weight = 1
			}
		}
	}
}

// Validate checks the manifest for structural problems. Errors name the
// offending skill so manifest authors can find them.
func (m *Manifest) Validate() error {
	if m.Version != 0 && m.Version != 1 {
		return fmt.Errorf("unsupported manifest version %d", m.Version)
	}

	seen := make(map[string]bool, len(m.Skills))
	for i, skill := range m.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			return fmt.Errorf("skill %d: name is required", i)
		}
		if seen[skill.Name] {
			return fmt.Errorf("skill %q: duplicate name", skill.Name)
		}
		seen[skill.Name] = true

		if len(skill.Triggers) == 0 {
			return fmt.Errorf("skill %q: at least one trigger is required", skill.Name)
		}

		for j, trigger := range skill.Triggers {
			if err := validateTrigger(trigger); err != nil {
				return fmt.Errorf("skill %q: trigger %d: %w", skill.Name, j, err)
			}
		}
	}

	return nil
}

func validateTrigger(t Trigger) error {
	if !IsValidMatchKind(string(t.Kind)) {
		return fmt.Errorf("invalid match kind %q (must be keyword, extension, or phrase)", t.Kind)
	}

	if len(t.Terms) == 0 {
		return fmt.Errorf("at least one term is required")
	}

	for k, term := range t.Terms {
		if strings.TrimSpace(term) == "" {
			return fmt.Errorf("term %d is empty", k)
		}
		switch t.Kind {
		case MatchKeyword:
			if strings.ContainsAny(term, " \t\n") {
				return fmt.Errorf("keyword term %q contains whitespace (use a phrase trigger)", term)
			}
		case MatchExtension:
			if !extensionTermPattern.MatchString(term) {
				return fmt.Errorf("invalid extension term %q (expected 1-10 alphanumerics)", term)
			}
		}
	}

	if t.Weight < 0 {
		return fmt.Errorf("weight cannot be negative (got %d)", t.Weight)
	}

	return nil
}
