package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/andywolf/grimoire/internal/config"
	"github.com/andywolf/grimoire/internal/skills"
)

var (
	validOK   = color.New(color.FgGreen).Sprint("✓")
	validFail = color.New(color.FgRed).Sprint("✗")
	validWarn = color.New(color.FgYellow).Sprint("⚠")
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate skill bundles",
	Long: `Validate skill bundles under a directory.

Each bundle is a directory containing a SKILL.md file. Without an argument,
the configured skills directory is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root := cfg.SkillsDir
	if len(args) == 1 {
		root = args[0]
	}

	bundles, err := skills.DiscoverBundles(root)
	if err != nil {
		return err
	}
	if len(bundles) == 0 {
		return fmt.Errorf("no skill bundles found in %s", root)
	}

	failed := 0
	for _, bundle := range bundles {
		result := skills.ValidateBundle(bundle)
		switch {
		case result.Valid && len(result.Warnings) == 0:
			fmt.Printf("%s %s\n", validOK, bundle)
		case result.Valid:
			fmt.Printf("%s %s\n", validWarn, bundle)
		default:
			fmt.Printf("%s %s\n", validFail, bundle)
			failed++
		}
		for _, e := range result.Errors {
			fmt.Printf("    %s %s\n", validFail, e.Error())
		}
		for _, w := range result.Warnings {
			fmt.Printf("    %s %s\n", validWarn, w)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d bundles failed validation", failed, len(bundles))
	}
	return nil
}
