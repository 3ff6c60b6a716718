package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andywolf/grimoire/internal/config"
	"github.com/andywolf/grimoire/internal/installer"
)

var installCmd = &cobra.Command{
	Use:   "install [source-dir]",
	Short: "Install skill bundles and regenerate the manifest",
	Long: `Install skill bundles into the skills directory and regenerate the
manifest from everything installed.

With a source directory, every bundle in it (a subdirectory containing
SKILL.md) is validated and installed; invalid bundles are skipped with a
reason. With --builtin, the embedded starter skills are installed instead.

Example:
  grimoire install --builtin
  grimoire install ./my-skills`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().Bool("builtin", false, "install the embedded starter skills")
	installCmd.Flags().Bool("force", false, "overwrite skills that are already installed")
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	builtin, _ := cmd.Flags().GetBool("builtin")
	force, _ := cmd.Flags().GetBool("force")

	if builtin && len(args) > 0 {
		return fmt.Errorf("cannot combine --builtin with a source directory")
	}
	if !builtin && len(args) == 0 {
		return fmt.Errorf("provide a source directory or use --builtin")
	}

	inst := installer.New(cfg.SkillsDir, force, newLogger(cfg))

	var result *installer.Result
	if builtin {
		result, err = inst.InstallBuiltin()
	} else {
		result, err = inst.InstallDir(args[0])
	}
	if err != nil {
		return err
	}

	installer.PrintResult(os.Stdout, result)
	return nil
}
