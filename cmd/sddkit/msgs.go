package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install spec-driven development workflows for AI coding agents"
	MsgInstallShort    = "Install templates into the current project"
	MsgPlanShort       = "Preview an install without writing anything"
	MsgAgentsShort     = "List supported coding agents"
	MsgAgentsLong      = "Agents displays every supported coding agent with the layout the installer uses for it. Give a name for one agent's details and next steps."
	MsgVersionShort    = "Show version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAgent        = "Target coding agent (see 'sddkit agents')"
	MsgFlagLang         = "Language code for generated documents (en, ja, zh-TW, ...)"
	MsgFlagOS           = "Target platform: mac, linux or windows"
	MsgFlagProjectDir   = "Project directory to install into (default: discovered from cwd)"
	MsgFlagTemplatesDir = "Template catalog directory"
	MsgFlagManifest     = "Manifest file, absolute or relative to the templates dir"
	MsgFlagKiroDir      = "Workflow directory name inside the project"
	MsgFlagOverwrite    = "Conflict policy for existing files: auto, prompt, skip or force"
	MsgFlagDryRun       = "Plan the install without writing anything"
	MsgFlagBackup       = "Save existing files before overwriting them"
	MsgFlagBackupDir    = "Backup location, absolute or relative to the project dir"
	MsgFlagStrict       = "Exit non-zero if any file fails"
	MsgFlagFormat       = "Output format: auto, term, text or json"
	MsgFlagYes          = "Overwrite without prompting"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrStrictFailed = "install failed for %d file(s)"

	// Version output
	MsgVersionFormat = "sddkit version %s\ncommit: %s\nbuilt: %s\n"
)

// Long messages
const (
	MsgRootLong = `sddkit installs spec-driven development scaffolding for AI coding
agents: slash-command prompts, shared workflow settings and an agent
document, rendered from a template catalog into your project.

Pick an agent, optionally a language, and run install:

  sddkit install --agent claudecode --lang ja

Run 'sddkit plan' first to see what would be written.`

	MsgInstallLong = `Install renders the template catalog for one agent and writes the
result into the project directory.

The manifest in the templates dir declares what gets installed: command
prompts for the agent's command directory, shared settings for the
workflow directory, and the agent document at the project root.
Existing files are handled per the overwrite policy; by default,
settings and prompts are replaced while user-editable documents
prompt first.`

	MsgInstallExample = `  # Install for Claude Code, answers in Japanese
  sddkit install --agent claudecode --lang ja

  # Re-run keeping backups of anything replaced
  sddkit install --agent cursor --overwrite force --backup

  # Machine-readable result
  sddkit install --agent codex-cli --format json`

	MsgPlanLong = `Plan runs the full install pipeline but stops short of touching the
filesystem, reporting what each file would do. It is exactly
'install --dry-run' under another name.`

	MsgCompletionLong = `Generate a shell completion script for sddkit.

Load it in your current shell, e.g. for bash:

  source <(sddkit completion bash)`
)
