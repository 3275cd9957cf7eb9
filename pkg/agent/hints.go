package agent

// Hint returns short post-install guidance for an agent, as markdown.
// The CLI renders it after a successful install and in `sddkit agents`.
func (d Def) Hint() string {
	if hint, ok := hints[d.Name]; ok {
		return hint
	}
	return ""
}

var hints = map[Name]string{
	ClaudeCode: `## Next steps

1. Open this project and start Claude Code (` + "`claude`" + `).
2. Run ` + "`/kiro:spec-init <feature description>`" + ` to start a spec.
3. Steering documents live under the workflow directory; regenerate them with ` + "`/kiro:steering`" + `.
`,
	Cursor: `## Next steps

1. Open this project in Cursor.
2. Trigger the kiro commands from the command palette or chat.
3. Project conventions are read from AGENTS.md.
`,
	GeminiCLI: `## Next steps

1. Start ` + "`gemini`" + ` in this project.
2. Run ` + "`/kiro:spec-init <feature description>`" + ` to start a spec.
3. Project conventions are read from GEMINI.md.
`,
	QwenCode: `## Next steps

1. Start ` + "`qwen`" + ` in this project.
2. Run ` + "`/kiro:spec-init <feature description>`" + ` to start a spec.
3. Project conventions are read from QWEN.md.
`,
	CodexCLI: `## Next steps

1. Start ` + "`codex`" + ` in this project.
2. Prompts are installed under .codex/prompts and show up in the prompt picker.
3. Project conventions are read from AGENTS.md.
`,
	GitHubCopilot: `## Next steps

1. Open this project in an editor with Copilot Chat.
2. Installed prompt files appear under .github/prompts.
3. Project conventions are read from AGENTS.md.
`,
	Windsurf: `## Next steps

1. Open this project in Windsurf.
2. Workflows are installed under .windsurf/workflows.
3. Project conventions are read from AGENTS.md.
`,
}
