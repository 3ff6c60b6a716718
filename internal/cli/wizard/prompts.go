// Package wizard provides interactive prompts for CLI commands.
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// SetupOptions holds the choices collected by the init wizard.
type SetupOptions struct {
	SkillsDir      string
	Threshold      int
	MaxResults     int
	InstallBuiltin bool
	RegisterHooks  bool
}

// RunSetup walks the user through project setup, seeded with the given
// defaults. Returned values have passed the per-field validators.
func RunSetup(defaults SetupOptions) (*SetupOptions, error) {
	opts := defaults

	thresholdStr := strconv.Itoa(opts.Threshold)
	maxResultsStr := strconv.Itoa(opts.MaxResults)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Grimoire Setup").
				Description("Configure where skills live and how eagerly they activate."),

			huh.NewInput().
				Title("Skills Directory").
				Value(&opts.SkillsDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("skills directory is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Activation Threshold (minimum score)").
				Value(&thresholdStr).
				Validate(ValidateThreshold),

			huh.NewInput().
				Title("Max Activated Skills").
				Value(&maxResultsStr).
				Validate(ValidateMaxResults),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Install the starter skills?").
				Value(&opts.InstallBuiltin),

			huh.NewConfirm().
				Title("Register hooks in .claude/settings.json?").
				Value(&opts.RegisterHooks),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}

	opts.Threshold, _ = parseInt(thresholdStr)
	opts.MaxResults, _ = parseInt(maxResultsStr)

	return &opts, nil
}

// ValidateThreshold accepts any whole number zero or greater.
func ValidateThreshold(s string) error {
	n, err := parseInt(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return fmt.Errorf("threshold cannot be negative")
	}
	return nil
}

// ValidateMaxResults accepts any whole number of at least 1.
func ValidateMaxResults(s string) error {
	n, err := parseInt(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
