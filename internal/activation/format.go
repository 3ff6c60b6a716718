package activation

import "strings"

// FormatOptions controls the rendered context block.
type FormatOptions struct {
	// ShowMatches appends each skill's matched-signal evidence.
	ShowMatches bool
}

const formatHeader = "The following skills apply to this request. Follow their instructions."

// Format renders an activation result as the context block injected into the
// assistant's session. Sections appear in rank order joined by blank lines
// with no trailing whitespace, so output is byte-stable for a given result.
// An empty result renders as an empty string and callers inject nothing.
func Format(res Result, opts FormatOptions) string {
	if res.Empty() {
		return ""
	}

	parts := make([]string, 0, len(res.Candidates)+1)
	parts = append(parts, formatHeader)

	for _, c := range res.Candidates {
		var b strings.Builder
		b.WriteString("## ")
		b.WriteString(c.Skill.Name)
		if c.Skill.Description != "" {
			b.WriteString("\n")
			b.WriteString(c.Skill.Description)
		}
		if c.Skill.Source != "" {
			b.WriteString("\nInstructions: ")
			b.WriteString(c.Skill.Source)
		}
		if opts.ShowMatches && len(c.Matched) > 0 {
			b.WriteString("\nMatched: ")
			b.WriteString(strings.Join(c.Matched, ", "))
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
