package installer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("⚠")
)

// PrintResult writes a human-readable install summary to w.
func PrintResult(w io.Writer, res *Result) {
	for _, s := range res.Installed {
		fmt.Fprintf(w, "%s %-24s %d triggers\n", okMark, s.Name, s.TriggerCount)
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(w, "%s %-24s %s\n", warnMark, s.Dir, s.Reason)
	}

	fmt.Fprintf(w, "\nManifest updated: %s (%d skills)\n", res.ManifestPath, res.ManifestSkills)
}
