// Package installer copies skill bundles into the skills directory and keeps
// the manifest in sync with what is installed.
package installer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/andywolf/grimoire/internal/skills"
)

const manifestHeader = "# Managed by grimoire. Regenerated on every install; edit bundles instead.\n"

// InstalledSkill records one successfully installed bundle.
type InstalledSkill struct {
	Name         string
	TriggerCount int
}

// SkippedBundle records a bundle that was not installed and why.
type SkippedBundle struct {
	Dir    string
	Reason string
}

// Result summarizes an install run.
type Result struct {
	Installed      []InstalledSkill
	Skipped        []SkippedBundle
	ManifestPath   string
	ManifestSkills int
}

// Installer installs skill bundles into SkillsDir.
type Installer struct {
	SkillsDir string
	Force     bool

	logger *logrus.Logger
}

// New creates an Installer writing into skillsDir.
func New(skillsDir string, force bool, logger *logrus.Logger) *Installer {
	return &Installer{SkillsDir: skillsDir, Force: force, logger: logger}
}

// InstallDir validates and installs every bundle found under srcDir, then
// regenerates the manifest. Bundles that fail validation are skipped with a
// reason rather than aborting the run.
func (i *Installer) InstallDir(srcDir string) (*Result, error) {
	bundles, err := skills.DiscoverBundles(srcDir)
	if err != nil {
		return nil, err
	}
	if len(bundles) == 0 {
		return nil, fmt.Errorf("no skill bundles found in %s", srcDir)
	}

	result := &Result{}
	for _, bundle := range bundles {
		name := filepath.Base(bundle)

		validation := skills.ValidateBundle(bundle)
		if !validation.Valid {
			result.Skipped = append(result.Skipped, SkippedBundle{
				Dir:    bundle,
				Reason: validation.Errors[0].Error(),
			})
			continue
		}

		installed, err := i.copyBundle(bundle, name)
		if err != nil {
			return nil, fmt.Errorf("failed to install skill %s: %w", name, err)
		}
		if !installed {
			result.Skipped = append(result.Skipped, SkippedBundle{
				Dir:    bundle,
				Reason: "already installed (use --force to overwrite)",
			})
			continue
		}

		sf, err := skills.ParseSkillFile(filepath.Join(bundle, "SKILL.md"))
		if err != nil {
			return nil, err
		}
		result.Installed = append(result.Installed, InstalledSkill{
			Name:         name,
			TriggerCount: len(sf.Definition.Triggers),
		})
		i.logger.WithFields(logrus.Fields{"skill": name, "source": bundle}).Debug("installed skill")
	}

	if err := i.finishManifest(result); err != nil {
		return nil, err
	}
	return result, nil
}

// copyBundle copies a bundle directory into SkillsDir. It reports false when
// the skill is already installed and Force is not set.
func (i *Installer) copyBundle(srcDir, name string) (bool, error) {
	destDir := filepath.Join(i.SkillsDir, name)

	if _, err := os.Stat(filepath.Join(destDir, "SKILL.md")); err == nil {
		if !i.Force {
			return false, nil
		}
		if err := os.RemoveAll(destDir); err != nil {
			return false, fmt.Errorf("failed to remove existing bundle: %w", err)
		}
	}

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		return os.WriteFile(dest, content, 0644)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// RegenerateManifest rebuilds the manifest from every installed bundle's
// frontmatter. Bundles whose SKILL.md fails to parse or validate are left
// out so the manifest always loads. Skills are ordered by name, making
// repeated installs byte-stable.
func (i *Installer) RegenerateManifest() (string, int, error) {
	bundles, err := skills.DiscoverBundles(i.SkillsDir)
	if err != nil {
		return "", 0, err
	}

	var defs []skills.Definition
	for _, bundle := range bundles {
		skillPath := filepath.Join(bundle, "SKILL.md")
		sf, err := skills.ParseSkillFile(skillPath)
		if err != nil {
			i.logger.WithField("bundle", bundle).WithError(err).Warn("skipping unparsable bundle")
			continue
		}
		if validation := skills.ValidateSkillFile(sf); !validation.Valid {
			i.logger.WithFields(logrus.Fields{
				"bundle": bundle,
				"error":  validation.Errors[0].Error(),
			}).Warn("skipping invalid bundle")
			continue
		}

		def := sf.Definition
		def.Source = skillPath
		defs = append(defs, def)
	}

	sort.Slice(defs, func(a, b int) bool { return defs[a].Name < defs[b].Name })

	manifest := skills.Manifest{Version: 1, Skills: defs}
	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	manifestPath := filepath.Join(i.SkillsDir, "manifest.yaml")
	if err := os.MkdirAll(i.SkillsDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create skills directory: %w", err)
	}
	if err := os.WriteFile(manifestPath, append([]byte(manifestHeader), data...), 0644); err != nil {
		return "", 0, fmt.Errorf("failed to write manifest: %w", err)
	}

	return manifestPath, len(defs), nil
}

func (i *Installer) finishManifest(result *Result) error {
	path, count, err := i.RegenerateManifest()
	if err != nil {
		return err
	}
	result.ManifestPath = path
	result.ManifestSkills = count
	return nil
}
