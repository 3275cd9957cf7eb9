package types

// LayoutOverride selectively replaces fields of an agent's built-in
// layout. Empty fields keep the registry value.
type LayoutOverride struct {
	AgentDir    string
	CommandsDir string
	Doc         string
}

// ResolvedConfig is the fully validated input of one installer run.
// It is read-only once planning starts.
type ResolvedConfig struct {
	// Agent is the validated agent identifier
	Agent string

	// Lang is the validated language code, e.g. "en" or "zh-TW"
	Lang string

	// OS is the validated target platform: mac, linux or windows
	OS string

	// ProjectDir is the absolute path of the target project
	ProjectDir string

	// TemplatesDir is the absolute path of the templates root
	TemplatesDir string

	// ManifestPath is the absolute path of the manifest file
	ManifestPath string

	// KiroDir is the workflow directory relative to ProjectDir
	KiroDir string

	// Policy is the explicit overwrite policy. PolicyAuto defers to
	// per-category defaults.
	Policy OverwritePolicy

	// DryRun plans and reports without writing anything
	DryRun bool

	// Backup saves existing files before overwriting them
	Backup bool

	// BackupDir is the absolute directory for this run's backups
	BackupDir string

	// Strict makes any per-file failure fail the whole run
	Strict bool

	// Layout optionally overrides parts of the agent's layout
	Layout LayoutOverride
}
