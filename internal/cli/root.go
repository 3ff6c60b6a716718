package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andywolf/grimoire/internal/config"
	"github.com/andywolf/grimoire/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "Grimoire - Automatic skill activation for coding assistant sessions",
	Long: `Grimoire decides which project skills are relevant to each prompt and
injects their instructions into the coding assistant's context.

It runs as an assistant hook: on every submitted prompt (and before each
tool use) it scores the prompt against the skill manifest's lexical triggers
and emits the matching skills. Matching is deterministic: the same prompt
and manifest always activate the same skills.

Example:
  grimoire install --builtin
  grimoire match "fix the bug in src/main.py"`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Set version for --version flag
	rootCmd.Version = version.Short()
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .grimoire.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting working directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".grimoire")
	}

	viper.SetEnvPrefix("GRIMOIRE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newLogger builds the stderr diagnostic logger. Stdout belongs to the hook
// protocol and must stay clean.
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.LoggerLevel())
	if viper.GetBool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
