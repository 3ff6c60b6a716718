package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andywolf/grimoire/internal/cli/wizard"
	"github.com/andywolf/grimoire/internal/config"
	"github.com/andywolf/grimoire/internal/installer"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize project configuration",
	Long: `Initialize grimoire configuration for the current project.

This creates a .grimoire.yaml file, optionally installs the starter skills,
and registers the activation hooks in .claude/settings.json. Without --yes,
an interactive wizard collects the settings first.

Example:
  grimoire init
  grimoire init --yes --threshold 2`,
	Args: cobra.NoArgs,
	RunE: initProject,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("skills-dir", ".claude/skills", "Directory for skill bundles")
	initCmd.Flags().Int("threshold", 1, "Minimum score a skill needs to activate")
	initCmd.Flags().Int("max-results", 3, "Maximum number of skills to activate")
	initCmd.Flags().Bool("builtin", true, "Install the starter skills")
	initCmd.Flags().Bool("hooks", true, "Register hooks in .claude/settings.json")
	initCmd.Flags().Bool("yes", false, "Skip the wizard and accept flag values")
	initCmd.Flags().Bool("force", false, "Overwrite existing config")
}

type projectConfig struct {
	SkillsDir  string `yaml:"skills_dir"`
	Threshold  int    `yaml:"threshold"`
	MaxResults int    `yaml:"max_results"`
	LogLevel   string `yaml:"log_level"`
}

func initProject(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", ".grimoire.yaml")

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	opts := wizard.SetupOptions{}
	opts.SkillsDir, _ = cmd.Flags().GetString("skills-dir")
	opts.Threshold, _ = cmd.Flags().GetInt("threshold")
	opts.MaxResults, _ = cmd.Flags().GetInt("max-results")
	opts.InstallBuiltin, _ = cmd.Flags().GetBool("builtin")
	opts.RegisterHooks, _ = cmd.Flags().GetBool("hooks")

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		answered, err := wizard.RunSetup(opts)
		if err != nil {
			return err
		}
		opts = *answered
	}

	cfg := projectConfig{
		SkillsDir:  opts.SkillsDir,
		Threshold:  opts.Threshold,
		MaxResults: opts.MaxResults,
		LogLevel:   "warn",
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := `# Grimoire Configuration
# See https://github.com/andywolf/grimoire for documentation

`

	if err := os.WriteFile(configPath, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("Created %s\n", configPath)

	if err := os.MkdirAll(opts.SkillsDir, 0755); err != nil {
		return fmt.Errorf("failed to create skills directory: %w", err)
	}

	if opts.InstallBuiltin {
		inst := installer.New(opts.SkillsDir, force, newLogger(&config.Config{LogLevel: cfg.LogLevel}))
		result, err := inst.InstallBuiltin()
		if err != nil {
			return err
		}
		installer.PrintResult(os.Stdout, result)
	}

	if opts.RegisterHooks {
		settingsPath := filepath.Join(".claude", "settings.json")
		changed, err := installer.RegisterHooks(settingsPath)
		if err != nil {
			return fmt.Errorf("failed to register hooks: %w", err)
		}
		if changed {
			fmt.Printf("Registered hooks in %s\n", settingsPath)
		} else {
			fmt.Printf("Hooks already registered in %s\n", settingsPath)
		}
	}

	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Add skill bundles to %s (or run 'grimoire install <dir>')\n", opts.SkillsDir)
	fmt.Println("  2. Run 'grimoire validate' to check the bundles")
	fmt.Println("  3. Run 'grimoire match \"your prompt\"' to preview activation")

	return nil
}
