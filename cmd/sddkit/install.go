package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sddkit/sddkit/pkg/agent"
	installcmd "github.com/sddkit/sddkit/pkg/commands/install"
	"github.com/sddkit/sddkit/pkg/config"
	"github.com/sddkit/sddkit/pkg/install"
	"github.com/sddkit/sddkit/pkg/ui"
)

// installFlags collects every install flag. Values only override the
// loaded configuration when the flag was set on the command line.
type installFlags struct {
	agent        string
	lang         string
	osName       string
	projectDir   string
	templatesDir string
	manifest     string
	kiroDir      string
	overwrite    string
	dryRun       bool
	backup       bool
	backupDir    string
	strict       bool
	format       string
	yes          bool
}

func newInstallCmd() *cobra.Command {
	flags := &installFlags{}

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, flags)
		},
	}

	addInstallFlags(cmd, flags)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

// newPlanCmd is install with the dry run forced on.
func newPlanCmd() *cobra.Command {
	flags := &installFlags{}

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.dryRun = true
			return runInstall(cmd, flags)
		},
	}

	addInstallFlags(cmd, flags)
	return cmd
}

func addInstallFlags(cmd *cobra.Command, flags *installFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&flags.agent, "agent", "a", "", MsgFlagAgent)
	fl.StringVarP(&flags.lang, "lang", "l", "", MsgFlagLang)
	fl.StringVar(&flags.osName, "os", "", MsgFlagOS)
	fl.StringVarP(&flags.projectDir, "project-dir", "p", "", MsgFlagProjectDir)
	fl.StringVar(&flags.templatesDir, "templates-dir", "", MsgFlagTemplatesDir)
	fl.StringVar(&flags.manifest, "manifest", "", MsgFlagManifest)
	fl.StringVar(&flags.kiroDir, "kiro-dir", "", MsgFlagKiroDir)
	fl.StringVar(&flags.overwrite, "overwrite", "", MsgFlagOverwrite)
	fl.BoolVar(&flags.backup, "backup", false, MsgFlagBackup)
	fl.StringVar(&flags.backupDir, "backup-dir", "", MsgFlagBackupDir)
	fl.BoolVar(&flags.strict, "strict", false, MsgFlagStrict)
	fl.StringVarP(&flags.format, "format", "f", "", MsgFlagFormat)
	fl.BoolVarP(&flags.yes, "yes", "y", false, MsgFlagYes)
}

func runInstall(cmd *cobra.Command, flags *installFlags) error {
	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	projectDir, err := config.DetermineProjectDir(flags.projectDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg, flags)

	resolved, err := cfg.Resolve(projectDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Prompting needs a terminal. Without one, --yes overwrites and
	// anything else leaves conflicting files alone.
	var prompter install.Prompter
	if flags.yes {
		prompter = ui.AssumeYesPrompter{}
	} else if format.Resolve(out) == ui.FormatTerminal {
		prompter = ui.InteractivePrompter{}
	}

	result, err := installcmd.Run(cmd.Context(), installcmd.Options{
		Config:   resolved,
		Prompter: prompter,
	})
	if err != nil {
		// An interrupted run still produced a partial report
		if result != nil {
			_ = ui.RenderReport(out, result.Report, format)
		}
		return err
	}

	if err := ui.RenderReport(out, result.Report, format); err != nil {
		return err
	}

	if resolved.Strict && result.Report.HasFailures() {
		return fmt.Errorf(MsgErrStrictFailed, result.Report.Counts().Failed)
	}

	// Post-install pointers for the agent, skipped for machine output
	if !resolved.DryRun && !result.Report.HasFailures() && format.Resolve(out) != ui.FormatJSON {
		if def, err := agent.Parse(resolved.Agent); err == nil && def.Hint() != "" {
			fmt.Fprintln(out)
			fmt.Fprint(out, ui.RenderMarkdown(def.Hint(), format.Resolve(out)))
		}
	}

	return nil
}

// applyFlagOverrides copies explicitly set flags over the loaded
// configuration, so config file and environment keep their values for
// anything left untouched on the command line.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, flags *installFlags) {
	fl := cmd.Flags()
	if fl.Changed("agent") {
		cfg.Agent = flags.agent
	}
	if fl.Changed("lang") {
		cfg.Lang = flags.lang
	}
	if fl.Changed("os") {
		cfg.OS = flags.osName
	}
	if fl.Changed("templates-dir") {
		cfg.TemplatesDir = flags.templatesDir
	}
	if fl.Changed("manifest") {
		cfg.Manifest = flags.manifest
	}
	if fl.Changed("kiro-dir") {
		cfg.KiroDir = flags.kiroDir
	}
	if fl.Changed("overwrite") {
		cfg.Overwrite = flags.overwrite
	}
	if fl.Changed("dry-run") || flags.dryRun {
		cfg.DryRun = flags.dryRun
	}
	if fl.Changed("backup") {
		cfg.Backup = flags.backup
	}
	if fl.Changed("backup-dir") {
		cfg.BackupDir = flags.backupDir
	}
	if fl.Changed("strict") {
		cfg.Strict = flags.strict
	}
}
