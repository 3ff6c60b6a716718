package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andywolf/grimoire/internal/config"
	"github.com/andywolf/grimoire/internal/skills"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in the manifest",
	Long:  `List every skill in the manifest. With --verbose, triggers are shown too.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	manifest, err := skills.LoadManifest(cfg.Manifest)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no manifest at %s (run 'grimoire install' first)", cfg.Manifest)
		}
		return err
	}

	if len(manifest.Skills) == 0 {
		fmt.Println("manifest is empty")
		return nil
	}

	verbose := viper.GetBool("verbose")
	for _, def := range manifest.Skills {
		fmt.Printf("%-24s %s\n", def.Name, def.Description)
		if !verbose {
			continue
		}
		for _, t := range def.Triggers {
			fmt.Printf("    %-10s weight %d: %s\n", t.Kind, t.Weight, strings.Join(t.Terms, ", "))
		}
	}
	return nil
}
