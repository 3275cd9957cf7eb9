// Package paths provides centralized path handling for sddkit.
// It implements XDG Base Directory compliance for the templates root
// and resolves the per-project locations an installer run touches.
package paths

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/sddkit/sddkit/pkg/errors"
)

// Default directories and files
const (
	// AppDirName is the directory name for sddkit-owned files
	AppDirName = "sddkit"

	// TemplatesDirName is the subdirectory for the template catalog
	TemplatesDirName = "templates"

	// DefaultKiroDir is the default workflow directory inside a project
	DefaultKiroDir = ".kiro"

	// BackupDirName is the per-project backup root
	BackupDirName = ".sddkit-backup"

	// ProjectConfigFile is the per-project configuration file
	ProjectConfigFile = ".sddkit.toml"

	// ManifestName is the default manifest file name
	ManifestName = "manifest.json"
)

// ProjectConfigCandidates are the accepted project config names, in
// preference order.
var ProjectConfigCandidates = []string{ProjectConfigFile, "sddkit.toml"}

// FindProjectConfig returns the project's config file, or "" when the
// project has none.
func FindProjectConfig(projectDir string) string {
	for _, name := range ProjectConfigCandidates {
		p := filepath.Join(projectDir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// BackupStampFormat names one run's backup directory
const BackupStampFormat = "20060102-150405"

// DefaultTemplatesDir returns the XDG location of the template catalog,
// $XDG_DATA_HOME/sddkit/templates.
func DefaultTemplatesDir() string {
	return filepath.Join(xdg.DataHome, AppDirName, TemplatesDirName)
}

// ResolveManifest picks the manifest for an agent inside a templates
// root. Agent-specific manifests win over the shared one, and JSON wins
// over YAML. When nothing exists the default path is returned so the
// load error names the expected location.
func ResolveManifest(templatesDir, agentName string) string {
	candidates := []string{
		fmt.Sprintf("manifest-%s.json", agentName),
		fmt.Sprintf("manifest-%s.yaml", agentName),
		"manifest.json",
		"manifest.yaml",
	}
	for _, name := range candidates {
		p := filepath.Join(templatesDir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(templatesDir, ManifestName)
}

// ValidateKiroDir cleans and validates a workflow directory override.
// The directory must stay inside the project root, so absolute paths
// and upward traversal are rejected. Empty input means the default.
func ValidateKiroDir(dir string) (string, error) {
	if dir == "" {
		return DefaultKiroDir, nil
	}
	if filepath.IsAbs(dir) {
		return "", errors.Newf(errors.ErrKiroDirInvalid, "kiro directory must be relative, got %q", dir).
			WithDetail("dir", dir)
	}
	cleaned := path.Clean(filepath.ToSlash(dir))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.Newf(errors.ErrKiroDirInvalid, "kiro directory %q escapes the project root", dir).
			WithDetail("dir", dir)
	}
	return cleaned, nil
}

// BackupDir names the backup directory for a run starting at now
func BackupDir(projectDir string, now time.Time) string {
	return filepath.Join(projectDir, BackupDirName, now.Format(BackupStampFormat))
}
