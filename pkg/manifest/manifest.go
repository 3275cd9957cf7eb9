// Package manifest loads the declarative artifact list that drives an
// install run. Manifests are JSON or YAML, selected by file extension.
package manifest

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/errors"
	"github.com/sddkit/sddkit/pkg/logging"
	"github.com/sddkit/sddkit/pkg/types"
)

// SupportedVersion is the only manifest schema version understood
const SupportedVersion = 1

// Manifest is the ordered list of artifacts to install
type Manifest struct {
	Version   int              `json:"version" yaml:"version"`
	Artifacts []types.Artifact `json:"artifacts" yaml:"artifacts"`
}

// Load reads, parses and validates a manifest file. Any failure here is
// fatal: a run never starts from a partially valid manifest.
func Load(manifestPath string) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "cannot read manifest %s", manifestPath)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(manifestPath)) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid JSON in %s", manifestPath)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid YAML in %s", manifestPath)
		}
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "unsupported manifest format %q (use .json, .yaml or .yml)", filepath.Ext(manifestPath))
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", manifestPath).
		Int("artifacts", len(m.Artifacts)).
		Msg("Manifest loaded")
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Version != SupportedVersion {
		return errors.Newf(errors.ErrManifestInvalid, "unsupported manifest version %d (want %d)", m.Version, SupportedVersion)
	}
	if len(m.Artifacts) == 0 {
		return errors.New(errors.ErrManifestInvalid, "manifest has no artifacts")
	}

	seen := make(map[string]bool, len(m.Artifacts))
	for i := range m.Artifacts {
		a := &m.Artifacts[i]

		if a.ID == "" {
			return errors.Newf(errors.ErrManifestInvalid, "artifact %d is missing an id", i)
		}
		if seen[a.ID] {
			return errors.Newf(errors.ErrManifestInvalid, "duplicate artifact id %q", a.ID)
		}
		seen[a.ID] = true

		switch a.Kind {
		case types.KindStaticDir, types.KindTemplateDir:
			if a.DestFile != "" {
				return errors.Newf(errors.ErrManifestInvalid, "artifact %q: dest_file is only valid for template_file", a.ID)
			}
		case types.KindTemplateFile:
			if a.DestFile == "" {
				return errors.Newf(errors.ErrManifestInvalid, "artifact %q: template_file requires dest_file", a.ID)
			}
		default:
			return errors.Newf(errors.ErrManifestInvalid, "artifact %q: unknown type %q", a.ID, a.Kind)
		}

		if !isCleanRel(a.Source) {
			return errors.Newf(errors.ErrManifestInvalid, "artifact %q: source %q must be a relative path inside the templates root", a.ID, a.Source)
		}
		if a.DestDir == "" || (a.DestDir != "." && !isCleanRel(a.DestDir)) {
			return errors.Newf(errors.ErrManifestInvalid, "artifact %q: dest_dir %q must be a relative path inside the project", a.ID, a.DestDir)
		}

		for j, osName := range a.OS {
			canonical, err := agent.ParseOS(osName)
			if err != nil {
				return errors.Newf(errors.ErrManifestInvalid, "artifact %q: unknown os %q", a.ID, osName)
			}
			a.OS[j] = canonical
		}
	}
	return nil
}

// isCleanRel accepts non-empty slash paths that stay below their root.
// Placeholder tokens are fine here; expanded paths are checked again at
// planning time.
func isCleanRel(p string) bool {
	if p == "" || strings.HasPrefix(p, "/") || filepath.IsAbs(p) {
		return false
	}
	cleaned := path.Clean(p)
	return cleaned != ".." && !strings.HasPrefix(cleaned, "../")
}
