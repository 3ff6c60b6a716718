package skills

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Bundle limits. SKILL.md bodies are injected into model context, so they
// are capped hard at 500 lines; bundles are capped at 8MB total.
const (
	maxNameLen        = 64
	maxDescriptionLen = 1024
	maxBodyLines      = 500
	warnBodyLines     = 400
	maxBundleBytes    = 8 << 20
	warnBundleBytes   = 6 << 20
)

var (
	namePattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
	markdownLinkRe  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	reservedWords   = []string{"anthropic", "claude"}
	descActionHints = []string{
		"calculate", "analyze", "apply", "create", "generate", "validate",
		"format", "process", "convert", "provide", "use when", "helps with",
	}
)

// ValidationError represents a bundle validation failure with details.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains the result of validating a skill bundle.
// Errors make the bundle unusable; warnings are advisory.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []string
}

func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

func (r *ValidationResult) addWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

func (r *ValidationResult) merge(other ValidationResult) {
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// ValidateBundle validates a skill bundle directory: its SKILL.md content,
// the directory naming convention, and size limits.
func ValidateBundle(dir string) ValidationResult {
	result := ValidationResult{Valid: true}

	sf, err := ParseSkillFile(filepath.Join(dir, "SKILL.md"))
	if err != nil {
		result.addError("SKILL.md", err.Error())
		return result
	}

	result.merge(ValidateSkillFile(sf))

	if name := sf.Definition.Name; name != "" && filepath.Base(dir) != name {
		result.addError("directory", fmt.Sprintf(
			"directory name %q does not match skill name %q", filepath.Base(dir), name))
	}

	if size, err := bundleSize(dir); err == nil {
		switch {
		case size > maxBundleBytes:
			result.addError("bundle", fmt.Sprintf(
				"bundle exceeds 8MB limit (%d bytes)", size))
		case size > warnBundleBytes:
			result.addWarning(fmt.Sprintf("bundle is approaching the 8MB limit (%d bytes)", size))
		}
	}

	checkReferenceFiles(dir, &result)
	checkRelativeLinks(dir, sf.Body, &result)

	return result
}

// ValidateSkillFile validates the content-level rules of a parsed SKILL.md:
// name format, description quality, triggers, and body length.
func ValidateSkillFile(sf *SkillFile) ValidationResult {
	result := ValidationResult{Valid: true}

	validateName(sf.Definition.Name, &result)
	validateDescription(sf.Definition.Description, &result)

	if len(sf.Definition.Triggers) == 0 {
		result.addError("triggers", "at least one trigger is required")
	}
	for i, trigger := range sf.Definition.Triggers {
		if err := validateTrigger(trigger); err != nil {
			result.addError("triggers", fmt.Sprintf("trigger %d: %v", i, err))
		}
	}

	bodyLines := len(strings.Split(sf.Body, "\n"))
	switch {
	case bodyLines > maxBodyLines:
		result.addError("body", fmt.Sprintf(
			"SKILL.md body exceeds %d line limit (%d lines); move detail to reference/ files",
			maxBodyLines, bodyLines))
	case bodyLines > warnBodyLines:
		result.addWarning(fmt.Sprintf(
			"SKILL.md body is approaching the %d line limit (%d lines)", maxBodyLines, bodyLines))
	}

	return result
}

func validateName(name string, result *ValidationResult) {
	if name == "" {
		result.addError("name", "name is required and cannot be empty")
		return
	}
	if len(name) > maxNameLen {
		result.addError("name", fmt.Sprintf("name must be at most %d characters (got %d)", maxNameLen, len(name)))
	}
	if !namePattern.MatchString(name) {
		result.addError("name", "name can only contain lowercase letters, numbers, and hyphens")
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		result.addError("name", "name cannot start or end with a hyphen")
	}
	for _, reserved := range reservedWords {
		if strings.Contains(name, reserved) {
			result.addError("name", fmt.Sprintf("name cannot contain reserved word %q", reserved))
		}
	}
}

func validateDescription(desc string, result *ValidationResult) {
	if desc == "" {
		result.addError("description", "description is required and cannot be empty")
		return
	}
	if len(desc) > maxDescriptionLen {
		result.addError("description", fmt.Sprintf(
			"description must be at most %d characters (got %d)", maxDescriptionLen, len(desc)))
	}
	if strings.ContainsAny(desc, "<>") {
		result.addError("description", "description cannot contain XML tags")
	}
	if len(desc) < 20 {
		result.addWarning("description is very short; say what the skill does and when to use it")
	}
	lower := strings.ToLower(desc)
	hasAction := false
	for _, hint := range descActionHints {
		if strings.Contains(lower, hint) {
			hasAction = true
			break
		}
	}
	if !hasAction {
		result.addWarning("description should include an action verb or 'use when' for discoverability")
	}
}

func bundleSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}

// checkReferenceFiles warns about reference documents that are long enough
// to need a table of contents.
func checkReferenceFiles(dir string, result *ValidationResult) {
	refDir := filepath.Join(dir, "reference")
	entries, err := os.ReadDir(refDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(refDir, entry.Name()))
		if err != nil {
			continue
		}
		lines := len(strings.Split(string(data), "\n"))
		if lines > 100 && !hasTableOfContents(string(data)) {
			result.addWarning(fmt.Sprintf(
				"reference/%s has %d lines but no table of contents", entry.Name(), lines))
		}
	}
}

func hasTableOfContents(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "## table of contents") ||
		strings.Contains(lower, "## contents") ||
		strings.Contains(lower, "## toc")
}

// checkRelativeLinks verifies that markdown links from SKILL.md into the
// bundle's reference/, examples/, and templates/ directories resolve.
func checkRelativeLinks(dir, body string, result *ValidationResult) {
	for _, match := range markdownLinkRe.FindAllStringSubmatch(body, -1) {
		target := match[2]
		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			continue
		}
		if !strings.HasPrefix(target, "reference/") &&
			!strings.HasPrefix(target, "examples/") &&
			!strings.HasPrefix(target, "templates/") {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, target)); err != nil {
			result.addError("links", fmt.Sprintf("broken link %q: %s does not exist", match[1], target))
		}
	}
}
