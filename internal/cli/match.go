package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andywolf/grimoire/internal/activation"
	"github.com/andywolf/grimoire/internal/config"
	"github.com/andywolf/grimoire/internal/skills"
)

var matchCmd = &cobra.Command{
	Use:   "match <prompt>...",
	Short: "Score a prompt against the skills manifest",
	Long: `Run the activation pipeline on the given prompt text and report every
skill's score and matched signals. Useful for debugging why a skill does or
does not activate.

Example:
  grimoire match "fix the bug in src/main.py"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().String("manifest", "", "skills manifest path")
	matchCmd.Flags().Int("threshold", 1, "minimum activation score")
	matchCmd.Flags().Int("max-results", 3, "maximum skills to activate")
	matchCmd.Flags().Bool("json", false, "emit the report as JSON")
}

// matchReport is the JSON shape of the match command's output.
type matchReport struct {
	Prompt     string                 `json:"prompt"`
	Normalized string                 `json:"normalized"`
	Candidates []activation.Candidate `json:"candidates"`
	Activated  []string               `json:"activated"`
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		cfg.Manifest = path
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold, _ = cmd.Flags().GetInt("threshold")
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	manifest, err := skills.LoadManifest(cfg.Manifest)
	if err != nil {
		return err
	}

	prompt := strings.Join(args, " ")
	normalized := activation.Normalize(prompt)
	sig := activation.ExtractSignals(normalized)
	candidates := activation.NewScorer(manifest).Score(sig)
	result := activation.Rank(candidates, cfg.Threshold, cfg.MaxResults)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		report := matchReport{
			Prompt:     prompt,
			Normalized: normalized,
			Candidates: candidates,
			Activated:  result.Names(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("prompt:     %s\n", prompt)
	fmt.Printf("normalized: %s\n", normalized)
	fmt.Printf("signals:    %d keywords, %d paths, %d extensions\n\n",
		len(sig.Keywords), len(sig.Paths), len(sig.Extensions))

	fmt.Printf("%5s  %-24s %s\n", "score", "skill", "matched")
	for _, c := range candidates {
		fmt.Printf("%5d  %-24s %s\n", c.Score, c.Skill.Name, strings.Join(c.Matched, ", "))
	}

	if result.Empty() {
		fmt.Printf("\nactivated: none (threshold %d)\n", cfg.Threshold)
		return nil
	}
	fmt.Printf("\nactivated: %s\n", strings.Join(result.Names(), ", "))
	return nil
}
