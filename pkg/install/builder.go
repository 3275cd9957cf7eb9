package install

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/errors"
	"github.com/sddkit/sddkit/pkg/logging"
	"github.com/sddkit/sddkit/pkg/template"
	"github.com/sddkit/sddkit/pkg/types"
)

// BuildOperations expands manifest artifacts into the full per-file
// operation list. Nothing is written and no template content is read;
// the plan only stats sources. Any error here is fatal for the run.
//
// The returned list is sorted by RelPath so reports and applies are
// deterministic regardless of directory listing order.
func BuildOperations(cfg types.ResolvedConfig, layout agent.Layout, ctx *template.Context, artifacts []types.Artifact) ([]types.FileOperation, error) {
	logger := logging.GetLogger("install.builder")

	var ops []types.FileOperation
	claimed := make(map[string]string) // RelPath -> artifact id

	for _, a := range artifacts {
		if !osIncluded(a.OS, cfg.OS) {
			logger.Debug().Str("artifact", a.ID).Str("os", cfg.OS).Msg("Artifact excluded by OS filter")
			continue
		}

		source := ctx.Substitute(a.Source)
		destDir := ctx.Substitute(a.DestDir)

		var built []types.FileOperation
		var err error
		switch a.Kind {
		case types.KindStaticDir:
			built, err = buildDirOps(cfg, layout, a, source, destDir, false)
		case types.KindTemplateDir:
			built, err = buildDirOps(cfg, layout, a, source, destDir, true)
		case types.KindTemplateFile:
			built, err = buildFileOp(cfg, layout, ctx, a, source, destDir)
		default:
			err = errors.Newf(errors.ErrManifestInvalid, "artifact %q has unknown type %q", a.ID, a.Kind)
		}
		if err != nil {
			return nil, err
		}

		for _, op := range built {
			if prev, dup := claimed[op.RelPath]; dup {
				if prev == a.ID {
					return nil, errors.Newf(errors.ErrDestConflict, "artifact %q writes %s twice", a.ID, op.RelPath).
						WithDetail("path", op.RelPath)
				}
				return nil, errors.Newf(errors.ErrDestConflict, "artifacts %q and %q both write %s", prev, a.ID, op.RelPath).
					WithDetail("path", op.RelPath)
			}
			claimed[op.RelPath] = a.ID
			ops = append(ops, op)
		}
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].RelPath < ops[j].RelPath })

	logger.Debug().Int("artifacts", len(artifacts)).Int("operations", len(ops)).Msg("Plan built")
	return ops, nil
}

func osIncluded(filter []string, osName string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == osName {
			return true
		}
	}
	return false
}

// buildFileOp plans a single template_file artifact. The destination
// name is the artifact's own, decoupled from the source name, and its
// extension picks the render mode.
func buildFileOp(cfg types.ResolvedConfig, layout agent.Layout, ctx *template.Context, a types.Artifact, source, destDir string) ([]types.FileOperation, error) {
	srcPath := filepath.Join(cfg.TemplatesDir, filepath.FromSlash(source))
	info, err := os.Stat(srcPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceMissing, "artifact %q source %s", a.ID, source)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceMissing, "artifact %q source %s is a directory, want a file", a.ID, source)
	}

	destFile := ctx.Substitute(a.DestFile)
	rel, err := destRelPath(a.ID, destDir, destFile)
	if err != nil {
		return nil, err
	}

	return []types.FileOperation{{
		ArtifactID: a.ID,
		SourcePath: srcPath,
		DestPath:   filepath.Join(cfg.ProjectDir, filepath.FromSlash(rel)),
		RelPath:    rel,
		Mode:       template.ClassifyDest(destFile),
		Category:   Categorize(rel, cfg, layout),
	}}, nil
}

// buildDirOps plans a directory artifact: every regular file under the
// source root lands at the mirrored relative path under destDir. For
// template_dir the filename suffix marker picks the published name and
// render mode; static_dir copies names and bytes as they are.
func buildDirOps(cfg types.ResolvedConfig, layout agent.Layout, a types.Artifact, source, destDir string, templated bool) ([]types.FileOperation, error) {
	srcRoot := filepath.Join(cfg.TemplatesDir, filepath.FromSlash(source))
	info, err := os.Stat(srcRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceMissing, "artifact %q source %s", a.ID, source)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceMissing, "artifact %q source %s is a file, want a directory", a.ID, source)
	}

	var ops []types.FileOperation
	walkErr := filepath.WalkDir(srcRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		srcRel, err := filepath.Rel(srcRoot, p)
		if err != nil {
			return err
		}
		srcRel = filepath.ToSlash(srcRel)

		name := path.Base(srcRel)
		mode := types.RenderStatic
		if templated {
			name, mode = template.Classify(name)
		}

		rel, err := destRelPath(a.ID, destDir, path.Join(path.Dir(srcRel), name))
		if err != nil {
			return err
		}

		ops = append(ops, types.FileOperation{
			ArtifactID: a.ID,
			SourcePath: p,
			DestPath:   filepath.Join(cfg.ProjectDir, filepath.FromSlash(rel)),
			RelPath:    rel,
			Mode:       mode,
			Category:   Categorize(rel, cfg, layout),
		})
		return nil
	})
	if walkErr != nil {
		if errors.IsErrorCode(walkErr, errors.ErrDestInvalid) {
			return nil, walkErr
		}
		return nil, errors.Wrapf(walkErr, errors.ErrSourceMissing, "artifact %q source %s", a.ID, source)
	}
	return ops, nil
}

// destRelPath joins a destination directory and file name into the
// project-relative slash path, rejecting anything that would land
// outside the project root. Checked after token expansion so overrides
// cannot smuggle a path out.
func destRelPath(artifactID, destDir, name string) (string, error) {
	rel := path.Join(destDir, name)
	if rel == "" || rel == "." || rel == ".." || path.IsAbs(rel) || strings.HasPrefix(rel, "../") {
		return "", errors.Newf(errors.ErrDestInvalid, "artifact %q destination %s is outside the project", artifactID, rel).
			WithDetail("dest_dir", destDir)
	}
	return rel, nil
}
