package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/ui"
)

func TestRenderAgentsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderAgents(&buf, agent.All(), ui.FormatText))
	out := buf.String()

	assert.Contains(t, out, "claudecode")
	assert.Contains(t, out, ".claude/commands/kiro")
	assert.Contains(t, out, "windsurf")
	assert.Contains(t, out, ".windsurf/workflows")
	assert.Contains(t, out, "CLAUDE.md")
}

func TestRenderAgentsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderAgents(&buf, agent.All(), ui.FormatJSON))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 7)

	byName := make(map[string]map[string]string, len(rows))
	for _, row := range rows {
		byName[row["name"]] = row
	}
	require.Contains(t, byName, "github-copilot")
	assert.Equal(t, ".github/prompts", byName["github-copilot"]["commands_dir"])
	assert.Equal(t, "AGENTS.md", byName["github-copilot"]["doc"])
}

func TestRenderAgentsTerm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderAgents(&buf, agent.All(), ui.FormatTerminal))

	assert.Contains(t, buf.String(), "Agent")
	assert.Contains(t, buf.String(), "codex-cli")
}

func TestRenderAgentDetailText(t *testing.T) {
	def, err := agent.Parse("claudecode")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ui.RenderAgentDetail(&buf, def, ui.FormatText))
	out := buf.String()

	assert.Contains(t, out, "Claude Code (claudecode)")
	assert.Contains(t, out, "commands dir: .claude/commands/kiro")
	assert.Contains(t, out, "doc file:     CLAUDE.md")
	assert.Contains(t, out, "Next steps")
}

func TestRenderAgentDetailJSON(t *testing.T) {
	def, err := agent.Parse("windsurf")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ui.RenderAgentDetail(&buf, def, ui.FormatJSON))

	var detail map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &detail))
	assert.Equal(t, "windsurf", detail["name"])
	assert.Equal(t, ".windsurf/workflows", detail["commands_dir"])
	assert.Contains(t, detail["hint"], "Next steps")
}
