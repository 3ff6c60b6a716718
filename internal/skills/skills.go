// Package skills defines the skill manifest model: which skills exist, how
// they are described, and the lexical triggers that activate them. Loading
// and validation live here; matching lives in the activation package.
package skills

// MatchKind identifies how a trigger's terms are matched against a prompt.
type MatchKind string

const (
	// MatchKeyword matches a term against individual prompt tokens.
	MatchKeyword MatchKind = "keyword"
	// MatchExtension matches a term against file extensions seen in the prompt.
	MatchExtension MatchKind = "extension"
	// MatchPhrase matches a term as a substring of the normalized prompt.
	MatchPhrase MatchKind = "phrase"
)

// ValidMatchKinds returns all valid trigger match kinds.
func ValidMatchKinds() []MatchKind {
	return []MatchKind{MatchKeyword, MatchExtension, MatchPhrase}
}

// IsValidMatchKind checks if the given string is a valid match kind.
func IsValidMatchKind(s string) bool {
	for _, k := range ValidMatchKinds() {
		if string(k) == s {
			return true
		}
	}
	return false
}

// Trigger is a single activation rule. Any one of its terms matching counts
// the trigger as matched; a matched trigger contributes Weight to the skill's
// score exactly once.
type Trigger struct {
	Kind   MatchKind `yaml:"kind" json:"kind"`
	Terms  []string  `yaml:"terms" json:"terms"`
	Weight int       `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Definition describes one skill as listed in the manifest.
type Definition struct {
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description" json:"description"`
	Source      string    `yaml:"source,omitempty" json:"source,omitempty"`
	Triggers    []Trigger `yaml:"triggers" json:"triggers"`
}

// Manifest is the complete set of skill definitions known to the hook.
// Declaration order is significant: it breaks ranking ties.
type Manifest struct {
	Version int          `yaml:"version,omitempty" json:"version,omitempty"`
	Skills  []Definition `yaml:"skills" json:"skills"`
}
