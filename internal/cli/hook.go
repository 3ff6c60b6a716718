package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andywolf/grimoire/internal/activation"
	"github.com/andywolf/grimoire/internal/config"
	"github.com/andywolf/grimoire/internal/hook"
	"github.com/andywolf/grimoire/internal/skills"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Handle an assistant hook event from stdin",
	Long: `Read a hook event from standard input, activate matching skills, and write
the hook response envelope to standard output.

Register this command in the assistant's settings for the UserPromptSubmit
and PreToolUse events ('grimoire init' does this). Diagnostics go to stderr
only; stdout carries nothing but the response envelope.`,
	Args: cobra.NoArgs,
	RunE: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)

	hookCmd.Flags().String("manifest", "", "skills manifest path")
	hookCmd.Flags().Int("threshold", 1, "minimum activation score")
	hookCmd.Flags().Int("max-results", 3, "maximum skills to activate per prompt")
	hookCmd.Flags().Bool("show-matches", false, "include matched signals in the injected context")
	_ = viper.BindPFlag("manifest", hookCmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("threshold", hookCmd.Flags().Lookup("threshold"))
	_ = viper.BindPFlag("max_results", hookCmd.Flags().Lookup("max-results"))
	_ = viper.BindPFlag("show_matches", hookCmd.Flags().Lookup("show-matches"))
}

func runHook(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	invocationID := fmt.Sprintf("grim-%s", uuid.New().String()[:8])
	log := logger.WithField("invocation", invocationID)

	evt, err := hook.Decode(os.Stdin)
	if err != nil {
		return err
	}

	manifest, err := loadManifestLenient(cfg.Manifest, log)
	if err != nil {
		return err
	}

	result, context := activation.Activate(evt.PromptText(), manifest, activation.Options{
		Threshold:   cfg.Threshold,
		MaxResults:  cfg.MaxResults,
		ShowMatches: cfg.ShowMatches,
	})

	log.WithFields(logrus.Fields{
		"event":    string(evt.Name()),
		"skills":   result.Names(),
		"duration": time.Since(start).String(),
	}).Debug("activation complete")

	switch evt.Name() {
	case hook.UserPromptSubmit:
		// No activation means no output: the assistant injects nothing.
		if context == "" {
			return nil
		}
		return hook.NewUserPromptOutput(context).Write(os.Stdout)
	case hook.PreToolUse:
		return hook.NewPreToolUseOutput(context).Write(os.Stdout)
	}
	return nil
}

// loadManifestLenient treats a missing manifest file as an empty manifest so
// a registered hook does not fail every prompt before skills are installed.
func loadManifestLenient(path string, log *logrus.Entry) (*skills.Manifest, error) {
	manifest, err := skills.LoadManifest(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("manifest", path).Warn("skills manifest not found, no skills will activate")
			return &skills.Manifest{}, nil
		}
		return nil, err
	}
	return manifest, nil
}
