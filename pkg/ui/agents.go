package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/sddkit/sddkit/pkg/agent"
)

// RenderAgents writes the agent registry to w in the requested format.
func RenderAgents(w io.Writer, defs []agent.Def, format Format) error {
	switch format.Resolve(w) {
	case FormatJSON:
		return renderAgentsJSON(w, defs)
	case FormatTerminal:
		return renderAgentsTerm(w, defs)
	default:
		return renderAgentsText(w, defs)
	}
}

func renderAgentsJSON(w io.Writer, defs []agent.Def) error {
	type row struct {
		Name        string `json:"name"`
		DisplayName string `json:"display_name"`
		AgentDir    string `json:"agent_dir"`
		CommandsDir string `json:"commands_dir"`
		Doc         string `json:"doc"`
	}
	rows := make([]row, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, row{
			Name:        string(d.Name),
			DisplayName: d.DisplayName,
			AgentDir:    d.Layout.AgentDir,
			CommandsDir: d.Layout.CommandsDir,
			Doc:         d.Layout.Doc,
		})
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func renderAgentsTerm(w io.Writer, defs []agent.Def) error {
	data := pterm.TableData{{"Agent", "Display name", "Commands dir", "Doc"}}
	for _, d := range defs {
		data = append(data, []string{string(d.Name), d.DisplayName, d.Layout.CommandsDir, d.Layout.Doc})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func renderAgentsText(w io.Writer, defs []agent.Def) error {
	for _, d := range defs {
		if _, err := fmt.Fprintf(w, "%-15s %-15s commands: %-25s doc: %s\n",
			d.Name, d.DisplayName, d.Layout.CommandsDir, d.Layout.Doc); err != nil {
			return err
		}
	}
	return nil
}

// RenderAgentDetail writes one agent's layout and its post-install hint.
func RenderAgentDetail(w io.Writer, def agent.Def, format Format) error {
	resolved := format.Resolve(w)

	if resolved == FormatJSON {
		detail := struct {
			Name        string `json:"name"`
			DisplayName string `json:"display_name"`
			AgentDir    string `json:"agent_dir"`
			CommandsDir string `json:"commands_dir"`
			Doc         string `json:"doc"`
			Hint        string `json:"hint,omitempty"`
		}{
			Name:        string(def.Name),
			DisplayName: def.DisplayName,
			AgentDir:    def.Layout.AgentDir,
			CommandsDir: def.Layout.CommandsDir,
			Doc:         def.Layout.Doc,
			Hint:        def.Hint(),
		}
		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	}

	name := def.DisplayName
	if resolved == FormatTerminal {
		name = titleStyle.Render(name)
	}
	fmt.Fprintf(w, "%s (%s)\n", name, def.Name)
	fmt.Fprintf(w, "  agent dir:    %s\n", def.Layout.AgentDir)
	fmt.Fprintf(w, "  commands dir: %s\n", def.Layout.CommandsDir)
	fmt.Fprintf(w, "  doc file:     %s\n", def.Layout.Doc)
	if hint := def.Hint(); hint != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, RenderMarkdown(hint, resolved))
	}
	return nil
}
