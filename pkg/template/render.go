package template

import (
	"regexp"
	"strings"

	"github.com/sddkit/sddkit/pkg/errors"
	"github.com/sddkit/sddkit/pkg/types"
)

// Render produces destination content for one render mode. Static mode
// returns the source bytes untouched; text and JSON run the template
// pipeline. This is the only dispatch point over render modes.
func (c *Context) Render(mode types.RenderMode, src []byte) ([]byte, error) {
	switch mode {
	case types.RenderStatic:
		return src, nil
	case types.RenderText:
		return []byte(c.RenderText(string(src))), nil
	case types.RenderJSON:
		return c.RenderJSON(src)
	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown render mode %q", mode)
	}
}

// RenderText renders text template content: agent-gated blocks are
// resolved first, then tokens are substituted. Rendering never fails;
// malformed markup passes through verbatim so a broken template shows
// up in the output instead of aborting the file.
func (c *Context) RenderText(content string) string {
	content = c.evalAgentBlocks(content)
	return c.Substitute(content)
}

// Substitute replaces every known {{TOKEN}} with its value. Unknown
// tokens are left untouched.
func (c *Context) Substitute(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	for token, value := range c.tokens {
		s = strings.ReplaceAll(s, "{{"+token+"}}", value)
	}
	return s
}

// Agent-gated block markers. Both markers must sit alone on their line:
//
//	{{#agent:claudecode,cursor}}
//	kept when the run's agent is listed
//	{{/agent}}
//
// Marker lines never reach the output. Blocks do not nest.
var agentBlockOpen = regexp.MustCompile(`^\s*\{\{#agent:([A-Za-z0-9-]+(?:\s*,\s*[A-Za-z0-9-]+)*)\}\}\s*$`)

const agentBlockClose = "{{/agent}}"

func (c *Context) evalAgentBlocks(content string) string {
	if !strings.Contains(content, "{{#agent:") {
		return content
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); {
		m := agentBlockOpen.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			i++
			continue
		}

		// Find the closing marker. Hitting another opener first means
		// the block is malformed, which falls through to passthrough.
		closeIdx := -1
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == agentBlockClose {
				closeIdx = j
				break
			}
			if agentBlockOpen.MatchString(lines[j]) {
				break
			}
		}
		if closeIdx == -1 {
			// Unclosed marker passes through verbatim
			out = append(out, lines[i])
			i++
			continue
		}

		if agentListed(m[1], c.agentName) {
			out = append(out, lines[i+1:closeIdx]...)
		}
		i = closeIdx + 1
	}
	return strings.Join(out, "\n")
}

func agentListed(list, agentName string) bool {
	for _, item := range strings.Split(list, ",") {
		if strings.TrimSpace(item) == agentName {
			return true
		}
	}
	return false
}
