package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andywolf/grimoire/internal/skills"
)

func manifestWith(defs ...skills.Definition) *skills.Manifest {
	return &skills.Manifest{Version: 1, Skills: defs}
}

func scoreOf(t *testing.T, candidates []Candidate, name string) Candidate {
	t.Helper()
	for _, c := range candidates {
		if c.Skill.Name == name {
			return c
		}
	}
	t.Fatalf("no candidate named %q", name)
	return Candidate{}
}

func TestScorer_Score_KeywordMatch(t *testing.T) {
	m := manifestWith(skills.Definition{
		Name: "git-helper",
		Triggers: []skills.Trigger{
			{Kind: skills.MatchKeyword, Terms: []string{"commit", "branch"}, Weight: 1},
		},
	})

	candidates := NewScorer(m).Score(ExtractSignals(Normalize("please commit this")))

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Score)
	assert.Equal(t, []string{"keyword:commit"}, candidates[0].Matched)
}

func TestScorer_Score_WeightCountedOncePerTrigger(t *testing.T) {
	m := manifestWith(skills.Definition{
		Name: "bugfix",
		Triggers: []skills.Trigger{
			{Kind: skills.MatchKeyword, Terms: []string{"fix", "bug"}, Weight: 2},
		},
	})

	candidates := NewScorer(m).Score(ExtractSignals(Normalize("fix the bug")))

	require.Len(t, candidates, 1)
	assert.Equal(t, 2, candidates[0].Score, "both terms matched but the trigger counts once")
	assert.Equal(t, []string{"keyword:fix", "keyword:bug"}, candidates[0].Matched)
}

func TestScorer_Score_MultipleTriggersSum(t *testing.T) {
	m := manifestWith(skills.Definition{
		Name: "python-style",
		Triggers: []skills.Trigger{
			{Kind: skills.MatchExtension, Terms: []string{"py"}, Weight: 2},
			{Kind: skills.MatchKeyword, Terms: []string{"python"}, Weight: 1},
		},
	})

	candidates := NewScorer(m).Score(ExtractSignals(Normalize("run the python script in src/main.py")))

	require.Len(t, candidates, 1)
	assert.Equal(t, 3, candidates[0].Score)
	assert.Equal(t, []string{"extension:py", "keyword:python"}, candidates[0].Matched)
}

func TestScorer_Score_PhraseMatchesAcrossTokens(t *testing.T) {
	m := manifestWith(skills.Definition{
		Name: "git-helper",
		Triggers: []skills.Trigger{
			{Kind: skills.MatchPhrase, Terms: []string{"pull request"}, Weight: 1},
		},
	})

	candidates := NewScorer(m).Score(ExtractSignals(Normalize("Open a Pull Request for me")))

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Score)
	assert.Equal(t, []string{"phrase:pull request"}, candidates[0].Matched)
}

func TestScorer_Score_NonMatchingSkillEmittedWithZero(t *testing.T) {
	m := manifestWith(
		skills.Definition{
			Name:     "python-style",
			Triggers: []skills.Trigger{{Kind: skills.MatchExtension, Terms: []string{"py"}, Weight: 2}},
		},
		skills.Definition{
			Name:     "git-helper",
			Triggers: []skills.Trigger{{Kind: skills.MatchKeyword, Terms: []string{"commit"}, Weight: 1}},
		},
	)

	candidates := NewScorer(m).Score(ExtractSignals(Normalize("fix the bug in src/main.py")))

	require.Len(t, candidates, 2)
	assert.Equal(t, 2, scoreOf(t, candidates, "python-style").Score)
	git := scoreOf(t, candidates, "git-helper")
	assert.Equal(t, 0, git.Score)
	assert.Empty(t, git.Matched)
}

func TestNewScorer_DefaultsZeroWeightToOne(t *testing.T) {
	m := manifestWith(skills.Definition{
		Name:     "bugfix",
		Triggers: []skills.Trigger{{Kind: skills.MatchKeyword, Terms: []string{"fix"}}},
	})

	candidates := NewScorer(m).Score(ExtractSignals(Normalize("fix it")))

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Score)
}

func TestNewScorer_CanonicalizesKeywordCase(t *testing.T) {
	m := manifestWith(skills.Definition{
		Name:     "python-style",
		Triggers: []skills.Trigger{{Kind: skills.MatchKeyword, Terms: []string{"Python"}, Weight: 1}},
	})

	candidates := NewScorer(m).Score(ExtractSignals(Normalize("i love PYTHON")))

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Score)
}

func TestNewScorer_StripsExtensionLeadingDot(t *testing.T) {
	m := manifestWith(skills.Definition{
		Name:     "python-style",
		Triggers: []skills.Trigger{{Kind: skills.MatchExtension, Terms: []string{".PY"}, Weight: 1}},
	})

	candidates := NewScorer(m).Score(ExtractSignals(Normalize("edit src/main.py")))

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Score)
	assert.Equal(t, []string{"extension:py"}, candidates[0].Matched)
}

func TestNewScorer_CopiesManifest(t *testing.T) {
	m := manifestWith(skills.Definition{
		Name:     "bugfix",
		Triggers: []skills.Trigger{{Kind: skills.MatchKeyword, Terms: []string{"fix"}, Weight: 1}},
	})
	scorer := NewScorer(m)

	m.Skills[0].Triggers[0].Terms[0] = "unrelated"
	m.Skills[0].Triggers[0].Weight = 99

	candidates := scorer.Score(ExtractSignals(Normalize("fix it")))

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Score)
}

func TestScorer_Score_EmptyManifest(t *testing.T) {
	candidates := NewScorer(&skills.Manifest{}).Score(ExtractSignals(Normalize("anything")))

	assert.Empty(t, candidates)
}
