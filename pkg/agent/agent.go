// Package agent defines the closed set of supported coding agents and the
// filesystem layout each one expects inside a target project.
package agent

import (
	"sort"
	"strings"

	"github.com/sddkit/sddkit/pkg/errors"
	"github.com/sddkit/sddkit/pkg/types"
)

// Name identifies a supported coding agent
type Name string

const (
	ClaudeCode    Name = "claudecode"
	Cursor        Name = "cursor"
	GeminiCLI     Name = "gemini-cli"
	QwenCode      Name = "qwen-code"
	CodexCLI      Name = "codex-cli"
	GitHubCopilot Name = "github-copilot"
	Windsurf      Name = "windsurf"
)

// Layout describes where an agent keeps its files inside a project.
// All paths are slash paths relative to the project root.
type Layout struct {
	// AgentDir is the agent's own configuration directory
	AgentDir string
	// CommandsDir receives the slash-command prompt files
	CommandsDir string
	// Doc is the agent documentation file at the project root
	Doc string
}

// Def bundles an agent's identity with its default layout
type Def struct {
	Name        Name
	DisplayName string
	Layout      Layout
}

// The registry is compiled in: the agent set is closed and every agent
// must have a complete layout. Adding an agent means adding a row here
// and a hint in hints.go.
var registry = map[Name]Def{
	ClaudeCode: {
		Name:        ClaudeCode,
		DisplayName: "Claude Code",
		Layout:      Layout{AgentDir: ".claude", CommandsDir: ".claude/commands/kiro", Doc: "CLAUDE.md"},
	},
	Cursor: {
		Name:        Cursor,
		DisplayName: "Cursor",
		Layout:      Layout{AgentDir: ".cursor", CommandsDir: ".cursor/commands/kiro", Doc: "AGENTS.md"},
	},
	GeminiCLI: {
		Name:        GeminiCLI,
		DisplayName: "Gemini CLI",
		Layout:      Layout{AgentDir: ".gemini", CommandsDir: ".gemini/commands/kiro", Doc: "GEMINI.md"},
	},
	QwenCode: {
		Name:        QwenCode,
		DisplayName: "Qwen Code",
		Layout:      Layout{AgentDir: ".qwen", CommandsDir: ".qwen/commands/kiro", Doc: "QWEN.md"},
	},
	CodexCLI: {
		Name:        CodexCLI,
		DisplayName: "Codex CLI",
		Layout:      Layout{AgentDir: ".codex", CommandsDir: ".codex/prompts", Doc: "AGENTS.md"},
	},
	GitHubCopilot: {
		Name:        GitHubCopilot,
		DisplayName: "GitHub Copilot",
		Layout:      Layout{AgentDir: ".github", CommandsDir: ".github/prompts", Doc: "AGENTS.md"},
	},
	Windsurf: {
		Name:        Windsurf,
		DisplayName: "Windsurf",
		Layout:      Layout{AgentDir: ".windsurf", CommandsDir: ".windsurf/workflows", Doc: "AGENTS.md"},
	},
}

// Parse resolves a user-supplied agent identifier. Unknown identifiers
// are a hard error raised before any planning happens.
func Parse(s string) (Def, error) {
	name := Name(strings.ToLower(strings.TrimSpace(s)))
	def, ok := registry[name]
	if !ok {
		return Def{}, errors.Newf(errors.ErrAgentUnknown, "unknown agent %q (valid: %s)", s, strings.Join(Names(), ", ")).
			WithDetail("agent", s)
	}
	return def, nil
}

// All returns every registered agent, sorted by name
func All() []Def {
	defs := make([]Def, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Names returns the sorted agent identifiers
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// EffectiveLayout applies a config override on top of the default layout.
// Empty override fields keep the registry value.
func (d Def) EffectiveLayout(o types.LayoutOverride) Layout {
	layout := d.Layout
	if o.AgentDir != "" {
		layout.AgentDir = o.AgentDir
	}
	if o.CommandsDir != "" {
		layout.CommandsDir = o.CommandsDir
	}
	if o.Doc != "" {
		layout.Doc = o.Doc
	}
	return layout
}
