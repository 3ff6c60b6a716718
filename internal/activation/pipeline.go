package activation

import "github.com/andywolf/grimoire/internal/skills"

// Options bundles the tunable pipeline parameters.
type Options struct {
	// Threshold is the minimum score required to activate; candidates
	// strictly below it are dropped.
	Threshold int
	// MaxResults caps how many skills activate per prompt.
	MaxResults int
	// ShowMatches includes matched-signal evidence in the rendered block.
	ShowMatches bool
}

// Activate runs the full pipeline on a raw prompt: normalize, extract
// signals, score against the manifest, rank, and format. It returns the
// ranked result and the rendered context block, which is empty when nothing
// activated.
func Activate(prompt string, manifest *skills.Manifest, opts Options) (Result, string) {
	sig := ExtractSignals(Normalize(prompt))
	candidates := NewScorer(manifest).Score(sig)
	result := Rank(candidates, opts.Threshold, opts.MaxResults)
	return result, Format(result, FormatOptions{ShowMatches: opts.ShowMatches})
}
