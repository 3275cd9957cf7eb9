// Package config loads and validates installer configuration. Values
// are layered: embedded defaults, then the project's .sddkit.toml, then
// SDDKIT_* environment variables, with command line flags applied last
// by the CLI.
package config

// Config is the raw, merged configuration before validation. Field
// values are user input; Resolve turns them into a types.ResolvedConfig.
type Config struct {
	// Agent is the target coding agent identifier. Required.
	Agent string `koanf:"agent"`

	// Lang is the template language code
	Lang string `koanf:"lang"`

	// OS is the target platform, defaulting to the running one
	OS string `koanf:"os"`

	// TemplatesDir overrides the XDG template catalog location
	TemplatesDir string `koanf:"templates_dir"`

	// Manifest overrides manifest resolution inside the templates dir
	Manifest string `koanf:"manifest"`

	// KiroDir overrides the workflow directory name
	KiroDir string `koanf:"kiro_dir"`

	// Overwrite is the conflict policy: auto, prompt, skip or force
	Overwrite string `koanf:"overwrite"`

	// Backup saves existing files before overwriting
	Backup bool `koanf:"backup"`

	// BackupDir overrides the default backup location
	BackupDir string `koanf:"backup_dir"`

	// Strict fails the run on any per-file error
	Strict bool `koanf:"strict"`

	// DryRun plans without writing
	DryRun bool `koanf:"dry_run"`

	// Layout selectively overrides the agent's built-in layout
	Layout LayoutConfig `koanf:"layout"`
}

// LayoutConfig mirrors types.LayoutOverride for the config surface
type LayoutConfig struct {
	AgentDir    string `koanf:"agent_dir"`
	CommandsDir string `koanf:"commands_dir"`
	Doc         string `koanf:"doc"`
}
