package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/errors"
	"github.com/sddkit/sddkit/pkg/logging"
	"github.com/sddkit/sddkit/pkg/paths"
	"github.com/sddkit/sddkit/pkg/types"
)

// DetermineProjectDir resolves the target project directory. An explicit
// value wins; otherwise the project root is discovered by walking up
// from the working directory, falling back to the working directory.
func DetermineProjectDir(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigValid, "invalid project dir %q", explicit)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return "", errors.Newf(errors.ErrConfigValid, "project dir %q is not a directory", explicit).
				WithDetail("dir", explicit)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigValid, "cannot determine working directory")
	}
	root, found := paths.FindProjectRoot(cwd)
	if !found {
		logger := logging.GetLogger("config")
		logger.Debug().Str("dir", cwd).Msg("No project marker found, using working directory")
	}
	return root, nil
}

// Resolve validates the merged configuration into the immutable input
// of one run. projectDir must be absolute.
func (c *Config) Resolve(projectDir string) (types.ResolvedConfig, error) {
	var resolved types.ResolvedConfig

	if c.Agent == "" {
		return resolved, errors.New(errors.ErrConfigValid, "agent is required (try --agent claudecode)")
	}
	def, err := agent.Parse(c.Agent)
	if err != nil {
		return resolved, err
	}

	lang, err := agent.ParseLang(c.Lang)
	if err != nil {
		return resolved, err
	}

	osName, err := agent.ParseOS(c.OS)
	if err != nil {
		return resolved, err
	}

	policy, ok := types.ParseOverwritePolicy(c.Overwrite)
	if !ok {
		return resolved, errors.Newf(errors.ErrConfigValid, "unknown overwrite policy %q (valid: auto, prompt, skip, force)", c.Overwrite).
			WithDetail("overwrite", c.Overwrite)
	}

	kiroDir, err := paths.ValidateKiroDir(c.KiroDir)
	if err != nil {
		return resolved, err
	}

	templatesDir := c.TemplatesDir
	if templatesDir == "" {
		templatesDir = paths.DefaultTemplatesDir()
	}
	templatesDir, err = filepath.Abs(templatesDir)
	if err != nil {
		return resolved, errors.Wrapf(err, errors.ErrConfigValid, "invalid templates dir %q", c.TemplatesDir)
	}

	// A relative manifest override is taken relative to the templates
	// root, where manifests live.
	manifestPath := c.Manifest
	if manifestPath == "" {
		manifestPath = paths.ResolveManifest(templatesDir, string(def.Name))
	} else if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(templatesDir, manifestPath)
	}

	backupDir := c.BackupDir
	if backupDir == "" {
		backupDir = paths.BackupDir(projectDir, time.Now())
	} else if !filepath.IsAbs(backupDir) {
		backupDir = filepath.Join(projectDir, backupDir)
	}

	return types.ResolvedConfig{
		Agent:        string(def.Name),
		Lang:         lang,
		OS:           osName,
		ProjectDir:   projectDir,
		TemplatesDir: templatesDir,
		ManifestPath: manifestPath,
		KiroDir:      kiroDir,
		Policy:       policy,
		DryRun:       c.DryRun,
		Backup:       c.Backup,
		BackupDir:    backupDir,
		Strict:       c.Strict,
		Layout: types.LayoutOverride{
			AgentDir:    c.Layout.AgentDir,
			CommandsDir: c.Layout.CommandsDir,
			Doc:         c.Layout.Doc,
		},
	}, nil
}
