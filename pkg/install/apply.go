package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/sddkit/sddkit/pkg/errors"
	"github.com/sddkit/sddkit/pkg/logging"
	"github.com/sddkit/sddkit/pkg/template"
	"github.com/sddkit/sddkit/pkg/types"
)

// Prompter decides overwrite conflicts under the prompt policy. The
// CLI injects an interactive implementation when stdin is a terminal;
// a nil Prompter means there is no way to ask and conflicts are kept.
type Prompter interface {
	ConfirmOverwrite(op types.FileOperation) (bool, error)
}

// Applier executes a planned operation list against the filesystem.
type Applier struct {
	cfg      types.ResolvedConfig
	tmpl     *template.Context
	prompter Prompter
}

// NewApplier creates an applier for one run.
func NewApplier(cfg types.ResolvedConfig, tmpl *template.Context, prompter Prompter) *Applier {
	return &Applier{cfg: cfg, tmpl: tmpl, prompter: prompter}
}

// Apply runs the operations in order and records one result each.
// A single file's failure never stops the batch; cancellation between
// operations does, leaving completed writes in place.
func (a *Applier) Apply(ctx context.Context, ops []types.FileOperation) *types.RunReport {
	logger := logging.GetLogger("install.apply").With().
		Bool("dry_run", a.cfg.DryRun).
		Int("operation_count", len(ops)).
		Logger()
	logger.Debug().Msg("Applying plan")

	report := types.NewRunReport(a.cfg)
	if a.cfg.Backup && !a.cfg.DryRun {
		report.BackupDir = a.cfg.BackupDir
	}

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			logger.Warn().Int("completed", len(report.Results)).Msg("Run interrupted, stopping")
			break
		}
		res := a.applyOne(op)
		report.Add(res)
		if res.Action == types.ActionFailed {
			logger.Warn().Str("path", op.RelPath).Str("error", res.Error).Msg("Operation failed")
		}
	}
	return report
}

func (a *Applier) applyOne(op types.FileOperation) types.OperationResult {
	res := types.OperationResult{
		ArtifactID: op.ArtifactID,
		RelPath:    op.RelPath,
		Category:   op.Category,
	}

	exists, err := destExists(op.DestPath)
	if err != nil {
		res.Action = types.ActionFailed
		res.Error = errors.Wrapf(err, errors.ErrWriteFile, "stat %s", op.RelPath).Error()
		return res
	}

	if a.cfg.DryRun {
		res.Action = dryRunAction(exists, EffectivePolicy(op.Category, a.cfg))
		return res
	}

	if exists {
		switch EffectivePolicy(op.Category, a.cfg) {
		case types.PolicySkip:
			res.Action = types.ActionSkippedExisting
			return res
		case types.PolicyPrompt:
			if a.prompter == nil {
				res.Action = types.ActionSkippedExisting
				return res
			}
			ok, err := a.prompter.ConfirmOverwrite(op)
			if err != nil {
				res.Action = types.ActionFailed
				res.Error = err.Error()
				return res
			}
			if !ok {
				res.Action = types.ActionSkippedDeclined
				return res
			}
		}

		// Overwriting from here on. A failed backup keeps the original.
		if a.cfg.Backup {
			backupPath, err := a.backup(op)
			if err != nil {
				res.Action = types.ActionFailed
				res.Error = errors.Wrapf(err, errors.ErrBackup, "backup %s", op.RelPath).Error()
				return res
			}
			res.BackupPath = backupPath
		}
	}

	data, warning, err := a.render(op)
	if err != nil {
		res.Action = types.ActionFailed
		res.Error = err.Error()
		return res
	}
	res.Warning = warning

	if err := writeFileAtomic(op.DestPath, data); err != nil {
		res.Action = types.ActionFailed
		res.Error = errors.Wrapf(err, errors.ErrWriteFile, "write %s", op.RelPath).Error()
		return res
	}

	if exists {
		res.Action = types.ActionOverwritten
	} else {
		res.Action = types.ActionWritten
	}
	return res
}

func destExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func dryRunAction(exists bool, policy types.OverwritePolicy) types.OpAction {
	if !exists {
		return types.ActionWouldWrite
	}
	switch policy {
	case types.PolicySkip:
		return types.ActionWouldSkip
	case types.PolicyForce:
		return types.ActionWouldOverwrite
	default:
		return types.ActionWouldPrompt
	}
}

// render reads the source and produces destination bytes. Text output
// destined for a .toml file gets a parse check; a failure there is a
// warning only since text rendering is fail-open.
func (a *Applier) render(op types.FileOperation) (data []byte, warning string, err error) {
	src, err := os.ReadFile(op.SourcePath)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrRenderRead, "read %s", op.SourcePath)
	}
	data, err = a.tmpl.Render(op.Mode, src)
	if err != nil {
		return nil, "", err
	}
	if op.Mode == types.RenderText && strings.HasSuffix(op.RelPath, ".toml") {
		var v any
		if terr := toml.Unmarshal(data, &v); terr != nil {
			warning = fmt.Sprintf("rendered TOML does not parse: %v", terr)
		}
	}
	return data, warning, nil
}

// backup copies the current destination into the run's backup dir,
// preserving the project-relative path. The original stays in place.
func (a *Applier) backup(op types.FileOperation) (string, error) {
	backupPath := filepath.Join(a.cfg.BackupDir, filepath.FromSlash(op.RelPath))
	if err := os.MkdirAll(filepath.Dir(backupPath), 0o755); err != nil {
		return "", err
	}
	data, err := os.ReadFile(op.DestPath)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", err
	}
	return backupPath, nil
}

// writeFileAtomic writes content atomically, creating parent
// directories. The destination is fully replaced or untouched.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
