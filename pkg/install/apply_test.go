package install_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/install"
	"github.com/sddkit/sddkit/pkg/template"
	"github.com/sddkit/sddkit/pkg/testutil"
	"github.com/sddkit/sddkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	answer bool
	asked  []string
}

func (p *fakePrompter) ConfirmOverwrite(op types.FileOperation) (bool, error) {
	p.asked = append(p.asked, op.RelPath)
	return p.answer, nil
}

type applyEnv struct {
	cfg  types.ResolvedConfig
	tmpl *template.Context
}

func newApplyEnv(t *testing.T, mutate func(*types.ResolvedConfig)) applyEnv {
	t.Helper()
	def, err := agent.Parse("claudecode")
	require.NoError(t, err)
	cfg := types.ResolvedConfig{
		Agent:        "claudecode",
		Lang:         "en",
		OS:           "linux",
		ProjectDir:   t.TempDir(),
		TemplatesDir: t.TempDir(),
		KiroDir:      ".kiro",
	}
	cfg.BackupDir = filepath.Join(cfg.ProjectDir, ".sddkit-backup", "20260101-120000")
	if mutate != nil {
		mutate(&cfg)
	}
	return applyEnv{cfg: cfg, tmpl: template.NewContext(cfg, def.EffectiveLayout(cfg.Layout))}
}

// op writes a source file and returns a planned operation for it.
func (e applyEnv) op(t *testing.T, srcRel, destRel, content string, mode types.RenderMode, cat types.InstallCategory) types.FileOperation {
	t.Helper()
	src := testutil.WriteFile(t, e.cfg.TemplatesDir, srcRel, content)
	return types.FileOperation{
		ArtifactID: "test",
		SourcePath: src,
		DestPath:   filepath.Join(e.cfg.ProjectDir, filepath.FromSlash(destRel)),
		RelPath:    destRel,
		Mode:       mode,
		Category:   cat,
	}
}

func (e applyEnv) apply(p install.Prompter, ops ...types.FileOperation) *types.RunReport {
	return install.NewApplier(e.cfg, e.tmpl, p).Apply(context.Background(), ops)
}

func TestApplyWritesNewFiles(t *testing.T) {
	env := newApplyEnv(t, nil)
	ops := []types.FileOperation{
		env.op(t, "doc.tpl.md", "CLAUDE.md", "specs in {{KIRO_DIR}}\n", types.RenderText, types.CategoryAgentDoc),
		env.op(t, "raw.md", "docs/raw.md", "raw {{KIRO_DIR}}\n", types.RenderStatic, types.CategoryOther),
	}

	report := env.apply(nil, ops...)

	require.Len(t, report.Results, 2)
	for _, res := range report.Results {
		assert.Equal(t, types.ActionWritten, res.Action)
	}
	assert.Equal(t, "specs in .kiro\n", testutil.ReadFile(t, env.cfg.ProjectDir, "CLAUDE.md"))
	assert.Equal(t, "raw {{KIRO_DIR}}\n", testutil.ReadFile(t, env.cfg.ProjectDir, "docs/raw.md"))

	counts := report.Counts()
	assert.Equal(t, 2, counts.Written)
	assert.False(t, report.HasFailures())
}

func TestApplyConflictMatrix(t *testing.T) {
	const oldContent = "user edits\n"
	const newContent = "fresh install\n"

	tests := []struct {
		name        string
		policy      types.OverwritePolicy
		backup      bool
		prompter    *fakePrompter
		wantAction  types.OpAction
		wantContent string
		wantBackup  bool
	}{
		{
			name:        "skip leaves file untouched",
			policy:      types.PolicySkip,
			wantAction:  types.ActionSkippedExisting,
			wantContent: oldContent,
		},
		{
			name:        "prompt without prompter keeps file",
			policy:      types.PolicyPrompt,
			wantAction:  types.ActionSkippedExisting,
			wantContent: oldContent,
		},
		{
			name:        "prompt declined keeps file",
			policy:      types.PolicyPrompt,
			prompter:    &fakePrompter{answer: false},
			wantAction:  types.ActionSkippedDeclined,
			wantContent: oldContent,
		},
		{
			name:        "prompt accepted overwrites with backup",
			policy:      types.PolicyPrompt,
			backup:      true,
			prompter:    &fakePrompter{answer: true},
			wantAction:  types.ActionOverwritten,
			wantContent: newContent,
			wantBackup:  true,
		},
		{
			name:        "force overwrites without backup",
			policy:      types.PolicyForce,
			wantAction:  types.ActionOverwritten,
			wantContent: newContent,
		},
		{
			name:        "force overwrites with backup",
			policy:      types.PolicyForce,
			backup:      true,
			wantAction:  types.ActionOverwritten,
			wantContent: newContent,
			wantBackup:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newApplyEnv(t, func(cfg *types.ResolvedConfig) {
				cfg.Policy = tt.policy
				cfg.Backup = tt.backup
			})
			testutil.WriteFile(t, env.cfg.ProjectDir, "AGENTS.md", oldContent)
			op := env.op(t, "doc.md", "AGENTS.md", newContent, types.RenderStatic, types.CategoryOther)

			var prompter install.Prompter
			if tt.prompter != nil {
				prompter = tt.prompter
			}
			report := env.apply(prompter, op)

			require.Len(t, report.Results, 1)
			res := report.Results[0]
			assert.Equal(t, tt.wantAction, res.Action)
			assert.Equal(t, tt.wantContent, testutil.ReadFile(t, env.cfg.ProjectDir, "AGENTS.md"))

			if tt.wantBackup {
				require.NotEmpty(t, res.BackupPath)
				backed := testutil.ReadFile(t, filepath.Dir(res.BackupPath), filepath.Base(res.BackupPath))
				assert.Equal(t, oldContent, backed)
			} else {
				assert.Empty(t, res.BackupPath)
				assert.False(t, testutil.Exists(env.cfg.BackupDir, "AGENTS.md"))
			}
		})
	}
}

func TestApplyCategoryDefaultsDecideConflicts(t *testing.T) {
	env := newApplyEnv(t, nil)
	testutil.WriteFile(t, env.cfg.ProjectDir, ".kiro/steering/product.md", "old steering\n")
	testutil.WriteFile(t, env.cfg.ProjectDir, "CLAUDE.md", "old doc\n")

	ops := []types.FileOperation{
		env.op(t, "steering.md", ".kiro/steering/product.md", "new steering\n", types.RenderStatic, types.CategoryToolSetting),
		env.op(t, "doc.md", "CLAUDE.md", "new doc\n", types.RenderStatic, types.CategoryAgentDoc),
	}

	report := env.apply(nil, ops...)

	require.Len(t, report.Results, 2)
	assert.Equal(t, types.ActionOverwritten, report.Results[0].Action)
	assert.Equal(t, types.ActionSkippedExisting, report.Results[1].Action)
	assert.Equal(t, "new steering\n", testutil.ReadFile(t, env.cfg.ProjectDir, ".kiro/steering/product.md"))
	assert.Equal(t, "old doc\n", testutil.ReadFile(t, env.cfg.ProjectDir, "CLAUDE.md"))
}

func TestApplyBackupFailureKeepsOriginal(t *testing.T) {
	env := newApplyEnv(t, func(cfg *types.ResolvedConfig) {
		cfg.Policy = types.PolicyForce
		cfg.Backup = true
	})
	// A file where the backup dir should go makes every backup fail.
	testutil.WriteFile(t, env.cfg.ProjectDir, ".sddkit-backup/20260101-120000", "in the way")
	testutil.WriteFile(t, env.cfg.ProjectDir, "AGENTS.md", "original\n")
	op := env.op(t, "doc.md", "AGENTS.md", "replacement\n", types.RenderStatic, types.CategoryOther)

	report := env.apply(nil, op)

	require.Len(t, report.Results, 1)
	res := report.Results[0]
	assert.Equal(t, types.ActionFailed, res.Action)
	assert.Contains(t, res.Error, "BACKUP_FAILED")
	assert.Equal(t, "original\n", testutil.ReadFile(t, env.cfg.ProjectDir, "AGENTS.md"))
}

func TestApplyDryRunTouchesNothing(t *testing.T) {
	env := newApplyEnv(t, func(cfg *types.ResolvedConfig) {
		cfg.DryRun = true
		cfg.Backup = true
	})
	testutil.WriteFile(t, env.cfg.ProjectDir, ".kiro/steering/product.md", "existing\n")
	testutil.WriteFile(t, env.cfg.ProjectDir, "CLAUDE.md", "existing doc\n")

	ops := []types.FileOperation{
		env.op(t, "new.md", "docs/new.md", "n", types.RenderStatic, types.CategoryOther),
		env.op(t, "steer.md", ".kiro/steering/product.md", "s", types.RenderStatic, types.CategoryToolSetting),
		env.op(t, "doc.md", "CLAUDE.md", "d", types.RenderStatic, types.CategoryAgentDoc),
	}

	report := env.apply(nil, ops...)

	require.Len(t, report.Results, 3)
	assert.Equal(t, types.ActionWouldWrite, report.Results[0].Action)
	assert.Equal(t, types.ActionWouldOverwrite, report.Results[1].Action)
	assert.Equal(t, types.ActionWouldPrompt, report.Results[2].Action)

	assert.False(t, testutil.Exists(env.cfg.ProjectDir, "docs/new.md"))
	assert.Equal(t, "existing\n", testutil.ReadFile(t, env.cfg.ProjectDir, ".kiro/steering/product.md"))
	assert.Equal(t, "existing doc\n", testutil.ReadFile(t, env.cfg.ProjectDir, "CLAUDE.md"))
	assert.False(t, testutil.Exists(env.cfg.ProjectDir, ".sddkit-backup"))
	assert.Equal(t, 3, report.Counts().Planned)
	assert.Empty(t, report.BackupDir)
}

func TestApplyDryRunSkipPolicy(t *testing.T) {
	env := newApplyEnv(t, func(cfg *types.ResolvedConfig) {
		cfg.DryRun = true
		cfg.Policy = types.PolicySkip
	})
	testutil.WriteFile(t, env.cfg.ProjectDir, "CLAUDE.md", "existing\n")
	op := env.op(t, "doc.md", "CLAUDE.md", "d", types.RenderStatic, types.CategoryAgentDoc)

	report := env.apply(nil, op)

	require.Len(t, report.Results, 1)
	assert.Equal(t, types.ActionWouldSkip, report.Results[0].Action)
}

func TestApplyPerFileFailureContinues(t *testing.T) {
	env := newApplyEnv(t, nil)
	ops := []types.FileOperation{
		env.op(t, "bad.tpl.json", "bad.json", "not json at all", types.RenderJSON, types.CategoryOther),
		env.op(t, "good.md", "zgood.md", "fine\n", types.RenderStatic, types.CategoryOther),
	}

	report := env.apply(nil, ops...)

	require.Len(t, report.Results, 2)
	assert.Equal(t, types.ActionFailed, report.Results[0].Action)
	assert.Contains(t, report.Results[0].Error, "RENDER_JSON")
	assert.False(t, testutil.Exists(env.cfg.ProjectDir, "bad.json"))

	assert.Equal(t, types.ActionWritten, report.Results[1].Action)
	assert.Equal(t, "fine\n", testutil.ReadFile(t, env.cfg.ProjectDir, "zgood.md"))

	assert.True(t, report.HasFailures())
	assert.Equal(t, 1, report.Counts().Failed)
}

func TestApplyUnreadableSourceFailsThatFileOnly(t *testing.T) {
	env := newApplyEnv(t, nil)
	missing := types.FileOperation{
		ArtifactID: "test",
		SourcePath: filepath.Join(env.cfg.TemplatesDir, "gone.md"),
		DestPath:   filepath.Join(env.cfg.ProjectDir, "gone.md"),
		RelPath:    "gone.md",
		Mode:       types.RenderStatic,
		Category:   types.CategoryOther,
	}
	good := env.op(t, "ok.md", "ok.md", "ok\n", types.RenderStatic, types.CategoryOther)

	report := env.apply(nil, missing, good)

	require.Len(t, report.Results, 2)
	assert.Equal(t, types.ActionFailed, report.Results[0].Action)
	assert.Contains(t, report.Results[0].Error, "RENDER_READ")
	assert.Equal(t, types.ActionWritten, report.Results[1].Action)
}

func TestApplyTOMLWarning(t *testing.T) {
	env := newApplyEnv(t, nil)
	op := env.op(t, "bad.tpl.toml", "config.toml", "= broken\n", types.RenderText, types.CategoryOther)

	report := env.apply(nil, op)

	require.Len(t, report.Results, 1)
	res := report.Results[0]
	assert.Equal(t, types.ActionWritten, res.Action)
	assert.NotEmpty(t, res.Warning)
	assert.Equal(t, "= broken\n", testutil.ReadFile(t, env.cfg.ProjectDir, "config.toml"))
}

func TestApplyCancelledContext(t *testing.T) {
	env := newApplyEnv(t, nil)
	op := env.op(t, "doc.md", "doc.md", "d", types.RenderStatic, types.CategoryOther)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := install.NewApplier(env.cfg, env.tmpl, nil).Apply(ctx, []types.FileOperation{op})

	assert.Empty(t, report.Results)
	assert.False(t, testutil.Exists(env.cfg.ProjectDir, "doc.md"))
}

func TestApplyForceRunsAreIdempotent(t *testing.T) {
	env := newApplyEnv(t, func(cfg *types.ResolvedConfig) {
		cfg.Policy = types.PolicyForce
	})
	ops := []types.FileOperation{
		env.op(t, "doc.tpl.md", "CLAUDE.md", "dir {{AGENT_DIR}}\n", types.RenderText, types.CategoryAgentDoc),
		env.op(t, "settings.tpl.json", ".kiro/settings.json", `{"dir": "{{KIRO_DIR}}"}`, types.RenderJSON, types.CategoryToolSetting),
	}

	first := env.apply(nil, ops...)
	require.False(t, first.HasFailures())
	doc1 := testutil.ReadFile(t, env.cfg.ProjectDir, "CLAUDE.md")
	settings1 := testutil.ReadFile(t, env.cfg.ProjectDir, ".kiro/settings.json")

	second := env.apply(nil, ops...)
	require.False(t, second.HasFailures())
	assert.Equal(t, doc1, testutil.ReadFile(t, env.cfg.ProjectDir, "CLAUDE.md"))
	assert.Equal(t, settings1, testutil.ReadFile(t, env.cfg.ProjectDir, ".kiro/settings.json"))

	for _, res := range second.Results {
		assert.Equal(t, types.ActionOverwritten, res.Action)
	}
}

func TestApplyPrompterSeesOnlyConflicts(t *testing.T) {
	env := newApplyEnv(t, func(cfg *types.ResolvedConfig) {
		cfg.Policy = types.PolicyPrompt
	})
	testutil.WriteFile(t, env.cfg.ProjectDir, "exists.md", "old\n")

	prompter := &fakePrompter{answer: true}
	ops := []types.FileOperation{
		env.op(t, "a.md", "absent.md", "a\n", types.RenderStatic, types.CategoryOther),
		env.op(t, "b.md", "exists.md", "b\n", types.RenderStatic, types.CategoryOther),
	}

	report := env.apply(prompter, ops...)

	require.Len(t, report.Results, 2)
	assert.Equal(t, types.ActionWritten, report.Results[0].Action)
	assert.Equal(t, types.ActionOverwritten, report.Results[1].Action)
	assert.Equal(t, []string{"exists.md"}, prompter.asked)
}
