// Package install carries the top-level install command logic: load
// the manifest, plan the file operations, apply them. The CLI layer
// stays thin and calls Run.
package install

import (
	"context"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/errors"
	"github.com/sddkit/sddkit/pkg/install"
	"github.com/sddkit/sddkit/pkg/logging"
	"github.com/sddkit/sddkit/pkg/manifest"
	"github.com/sddkit/sddkit/pkg/template"
	"github.com/sddkit/sddkit/pkg/types"
)

// Options defines one install run.
type Options struct {
	// Config is the fully resolved run configuration.
	Config types.ResolvedConfig
	// Prompter answers overwrite questions under the prompt policy.
	// Nil means conflicts needing a prompt are kept as they are.
	Prompter install.Prompter
}

// Result bundles what the run planned and what happened.
type Result struct {
	Operations []types.FileOperation
	Report     *types.RunReport
}

// Run loads the manifest, builds the operation plan and applies it.
// Planning problems return an error and leave the project untouched;
// per-file apply problems are inside the report. A cancelled context
// returns the partial result alongside a coded interruption error.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	log := logging.GetLogger("commands.install")
	log.Debug().
		Str("agent", cfg.Agent).
		Str("project", cfg.ProjectDir).
		Bool("dry_run", cfg.DryRun).
		Msg("Executing install")
	defer logging.LogOperationStart(log, "install")()

	def, err := agent.Parse(cfg.Agent)
	if err != nil {
		return nil, err
	}
	layout := def.EffectiveLayout(cfg.Layout)
	tmpl := template.NewContext(cfg, layout)

	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}

	ops, err := install.BuildOperations(cfg, layout, tmpl, m.Artifacts)
	if err != nil {
		return nil, err
	}

	report := install.NewApplier(cfg, tmpl, opts.Prompter).Apply(ctx, ops)

	if err := ctx.Err(); err != nil {
		return &Result{Operations: ops, Report: report},
			errors.Wrap(err, errors.ErrInterrupted, "install interrupted")
	}

	counts := report.Counts()
	log.Info().
		Int("written", counts.Written).
		Int("overwritten", counts.Overwritten).
		Int("skipped", counts.Skipped).
		Int("failed", counts.Failed).
		Msg("Install finished")

	return &Result{Operations: ops, Report: report}, nil
}
