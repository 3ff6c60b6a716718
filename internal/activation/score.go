package activation

import (
	"strings"

	"github.com/andywolf/grimoire/internal/skills"
)

// Candidate is one skill's scoring outcome for a prompt. Matched holds the
// evidence as "kind:term" strings in trigger declaration order.
type Candidate struct {
	Skill   *skills.Definition `json:"skill"`
	Score   int                `json:"score"`
	Matched []string           `json:"matched,omitempty"`

	// position is the skill's manifest declaration index, used to break
	// ranking ties.
	position int
}

// Scorer scores prompts against a fixed set of skill definitions. Trigger
// terms are canonicalized once at construction with the same normalization
// applied to prompts, so matching is form-consistent regardless of how the
// manifest author cased or punctuated them.
type Scorer struct {
	defs []skills.Definition
}

// NewScorer builds a Scorer from a manifest. The manifest is copied; later
// changes to it do not affect the scorer.
func NewScorer(manifest *skills.Manifest) *Scorer {
	defs := make([]skills.Definition, len(manifest.Skills))
	copy(defs, manifest.Skills)

	for i := range defs {
		triggers := make([]skills.Trigger, len(defs[i].Triggers))
		copy(triggers, defs[i].Triggers)
		for j := range triggers {
			if triggers[j].Weight == 0 {
				triggers[j].Weight = 1
			}
			terms := make([]string, len(triggers[j].Terms))
			for k, term := range triggers[j].Terms {
				terms[k] = canonicalTerm(triggers[j].Kind, term)
			}
			triggers[j].Terms = terms
		}
		defs[i].Triggers = triggers
	}

	return &Scorer{defs: defs}
}

// canonicalTerm normalizes a trigger term the same way prompts are
// normalized. Extension terms may be written with a leading dot; it is
// dropped so they compare against extracted extensions.
func canonicalTerm(kind skills.MatchKind, term string) string {
	if kind == skills.MatchExtension {
		term = strings.TrimPrefix(term, ".")
	}
	return Normalize(term)
}

// Score evaluates every skill against the extracted signals. A trigger whose
// terms match contributes its weight exactly once no matter how many of its
// terms matched; each matched term is still recorded as evidence. All skills
// are returned, including zero scores: filtering belongs to the ranker.
func (s *Scorer) Score(sig SignalSet) []Candidate {
	candidates := make([]Candidate, 0, len(s.defs))

	for i := range s.defs {
		def := &s.defs[i]
		cand := Candidate{Skill: def, position: i}

		for _, trigger := range def.Triggers {
			matched := matchTrigger(sig, trigger)
			if len(matched) == 0 {
				continue
			}
			cand.Score += trigger.Weight
			cand.Matched = append(cand.Matched, matched...)
		}

		candidates = append(candidates, cand)
	}

	return candidates
}

func matchTrigger(sig SignalSet, trigger skills.Trigger) []string {
	var matched []string
	for _, term := range trigger.Terms {
		hit := false
		switch trigger.Kind {
		case skills.MatchKeyword:
			hit = sig.HasKeyword(term)
		case skills.MatchExtension:
			hit = sig.HasExtension(term)
		case skills.MatchPhrase:
			hit = sig.ContainsPhrase(term)
		}
		if hit {
			matched = append(matched, string(trigger.Kind)+":"+term)
		}
	}
	return matched
}
