package skills

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `version: 1
skills:
  - name: python-style
    description: Python conventions
    source: .claude/skills/python-style/SKILL.md
    triggers:
      - kind: extension
        terms: [py]
        weight: 2
  - name: git-helper
    description: Git workflow helpers
    triggers:
      - kind: keyword
        terms: [commit, branch]
`

func TestParseManifest_Valid(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))

	require.NoError(t, err)
	require.Len(t, m.Skills, 2)
	assert.Equal(t, 1, m.Version)
	assert.Equal(t, "python-style", m.Skills[0].Name)
	assert.Equal(t, MatchExtension, m.Skills[0].Triggers[0].Kind)
	assert.Equal(t, 2, m.Skills[0].Triggers[0].Weight)
	assert.Equal(t, ".claude/skills/python-style/SKILL.md", m.Skills[0].Source)
}

func TestParseManifest_DefaultsOmittedWeight(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))

	require.NoError(t, err)
	assert.Equal(t, 1, m.Skills[1].Triggers[0].Weight)
}

func TestParseManifest_EmptyInput(t *testing.T) {
	m, err := ParseManifest(nil)

	require.NoError(t, err)
	assert.Empty(t, m.Skills)
}

func TestParseManifest_InvalidYAML(t *testing.T) {
	_, err := ParseManifest([]byte("skills: ["))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse skills manifest")
}

func TestParseManifest_UnsupportedVersion(t *testing.T) {
	_, err := ParseManifest([]byte("version: 2\nskills: []\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest version 2")
}

func TestParseManifest_MissingName(t *testing.T) {
	data := `skills:
  - description: no name here
    triggers:
      - kind: keyword
        terms: [x]
`
	_, err := ParseManifest([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestParseManifest_DuplicateName(t *testing.T) {
	data := `skills:
  - name: twin
    triggers:
      - kind: keyword
        terms: [a]
  - name: twin
    triggers:
      - kind: keyword
        terms: [b]
`
	_, err := ParseManifest([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate name")
}

func TestParseManifest_TriggersRequired(t *testing.T) {
	_, err := ParseManifest([]byte("skills:\n  - name: bare\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one trigger is required")
}

func TestParseManifest_InvalidMatchKind(t *testing.T) {
	data := `skills:
  - name: broken
    triggers:
      - kind: regex
        terms: [x]
`
	_, err := ParseManifest([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid match kind "regex"`)
}

func TestParseManifest_TermsRequired(t *testing.T) {
	data := `skills:
  - name: broken
    triggers:
      - kind: keyword
        terms: []
`
	_, err := ParseManifest([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one term is required")
}

func TestParseManifest_EmptyTerm(t *testing.T) {
	data := `skills:
  - name: broken
    triggers:
      - kind: keyword
        terms: ["fix", "  "]
`
	_, err := ParseManifest([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "term 1 is empty")
}

func TestParseManifest_KeywordTermWithWhitespace(t *testing.T) {
	data := `skills:
  - name: broken
    triggers:
      - kind: keyword
        terms: ["pull request"]
`
	_, err := ParseManifest([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "use a phrase trigger")
}

func TestParseManifest_InvalidExtensionTerm(t *testing.T) {
	data := `skills:
  - name: broken
    triggers:
      - kind: extension
        terms: ["tar.gz"]
`
	_, err := ParseManifest([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid extension term "tar.gz"`)
}

func TestParseManifest_ExtensionTermLeadingDotAllowed(t *testing.T) {
	data := `skills:
  - name: fine
    triggers:
      - kind: extension
        terms: [".py"]
`
	_, err := ParseManifest([]byte(data))

	assert.NoError(t, err)
}

func TestParseManifest_NegativeWeight(t *testing.T) {
	data := `skills:
  - name: broken
    triggers:
      - kind: keyword
        terms: [x]
        weight: -1
`
	_, err := ParseManifest([]byte(data))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight cannot be negative")
}

func TestLoadManifest_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	m, err := LoadManifest(path)

	require.NoError(t, err)
	assert.Len(t, m.Skills, 2)
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadManifest_NamesPathOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skills: ["), 0644))

	_, err := LoadManifest(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
