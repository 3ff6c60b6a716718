package installer

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/andywolf/grimoire/internal/skills"
)

//go:embed builtin
var builtinFS embed.FS

// InstallBuiltin installs the embedded starter skills into SkillsDir and
// regenerates the manifest. Skills that are already installed are skipped
// unless Force is set.
func (i *Installer) InstallBuiltin() (*Result, error) {
	fsys, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded skills: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded skills: %w", err)
	}

	result := &Result{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		installed, err := i.writeEmbeddedBundle(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to install skill %s: %w", name, err)
		}
		if !installed {
			result.Skipped = append(result.Skipped, SkippedBundle{
				Dir:    name,
				Reason: "already installed (use --force to overwrite)",
			})
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(name, "SKILL.md"))
		if err != nil {
			return nil, err
		}
		sf, err := skills.ParseSkillData(data)
		if err != nil {
			return nil, fmt.Errorf("embedded skill %s: %w", name, err)
		}
		result.Installed = append(result.Installed, InstalledSkill{
			Name:         name,
			TriggerCount: len(sf.Definition.Triggers),
		})
		i.logger.WithField("skill", name).Debug("installed builtin skill")
	}

	if err := i.finishManifest(result); err != nil {
		return nil, err
	}
	return result, nil
}

// writeEmbeddedBundle writes one embedded bundle under SkillsDir. It reports
// false when the skill is already installed and Force is not set.
func (i *Installer) writeEmbeddedBundle(fsys fs.FS, name string) (bool, error) {
	destDir := filepath.Join(i.SkillsDir, name)

	if _, err := os.Stat(filepath.Join(destDir, "SKILL.md")); err == nil && !i.Force {
		return false, nil
	}

	err := fs.WalkDir(fsys, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(i.SkillsDir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read embedded file %s: %w", p, err)
		}
		return os.WriteFile(dest, content, 0644)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
