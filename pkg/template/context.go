package template

import (
	"fmt"
	"sort"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/types"
)

// Placeholder token names. The vocabulary is closed: templates may use
// exactly these, anything else passes through untouched.
const (
	TokenKiroDir          = "KIRO_DIR"
	TokenLangCode         = "LANG_CODE"
	TokenDevGuidelines    = "DEV_GUIDELINES"
	TokenAgentDir         = "AGENT_DIR"
	TokenAgentDoc         = "AGENT_DOC"
	TokenAgentCommandsDir = "AGENT_COMMANDS_DIR"
)

// Context carries the fixed token values of one run. It is built once
// from the resolved configuration and never mutated.
type Context struct {
	agentName string
	tokens    map[string]string
}

// NewContext builds the substitution context for one run
func NewContext(cfg types.ResolvedConfig, layout agent.Layout) *Context {
	return &Context{
		agentName: cfg.Agent,
		tokens: map[string]string{
			TokenKiroDir:          cfg.KiroDir,
			TokenLangCode:         cfg.Lang,
			TokenDevGuidelines:    guidelines(cfg.Lang),
			TokenAgentDir:         layout.AgentDir,
			TokenAgentDoc:         layout.Doc,
			TokenAgentCommandsDir: layout.CommandsDir,
		},
	}
}

// Lookup returns a token's value
func (c *Context) Lookup(token string) (string, bool) {
	v, ok := c.tokens[token]
	return v, ok
}

// Tokens returns the sorted token names, mostly for logging
func (c *Context) Tokens() []string {
	names := make([]string, 0, len(c.tokens))
	for name := range c.tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// guidelines produces the language guidance block templates reference
// through {{DEV_GUIDELINES}}. Thinking stays in English; responses use
// the configured language.
func guidelines(lang string) string {
	if lang == "en" {
		return "- Think in English, generate responses in English"
	}
	return fmt.Sprintf("- Think in English, but generate responses in %s (%s)", agent.LanguageName(lang), lang)
}
