package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/sddkit/sddkit/pkg/types"
)

// RenderReport writes a run report to w in the requested format.
// FormatAuto resolves against w first.
func RenderReport(w io.Writer, report *types.RunReport, format Format) error {
	switch format.Resolve(w) {
	case FormatJSON:
		return renderReportJSON(w, report)
	case FormatTerminal:
		return renderReportTerm(w, report)
	default:
		return renderReportText(w, report)
	}
}

func renderReportJSON(w io.Writer, report *types.RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func renderReportTerm(w io.Writer, report *types.RunReport) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(reportTitle(report)) + "\n\n")

	for _, res := range report.Results {
		indicator, verb := actionBadge(res.Action)
		line := fmt.Sprintf("%s %-18s %s", indicator, verb, pathStyle.Render(res.RelPath))
		b.WriteString(line + "\n")
		if res.Warning != "" {
			b.WriteString("  " + warningIndicator + " " + warningStyle.Render(res.Warning) + "\n")
		}
		if res.Error != "" {
			b.WriteString("  " + errorStyle.Render(res.Error) + "\n")
		}
	}
	if len(report.Results) == 0 {
		b.WriteString(mutedStyle.Render("Nothing to install") + "\n")
	}

	summary, err := summaryTable(report)
	if err != nil {
		return err
	}
	b.WriteString("\n" + summary)

	if hasBackups(report) {
		b.WriteString(mutedStyle.Render("Backups in "+report.BackupDir) + "\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func summaryTable(report *types.RunReport) (string, error) {
	counts := report.Counts()
	data := pterm.TableData{
		{"Written", "Overwritten", "Skipped", "Failed"},
		{
			fmt.Sprintf("%d", counts.Written),
			fmt.Sprintf("%d", counts.Overwritten),
			fmt.Sprintf("%d", counts.Skipped),
			fmt.Sprintf("%d", counts.Failed),
		},
	}
	if report.DryRun {
		data = pterm.TableData{
			{"Planned"},
			{fmt.Sprintf("%d", counts.Planned)},
		}
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

func renderReportText(w io.Writer, report *types.RunReport) error {
	var b strings.Builder

	b.WriteString(reportTitle(report) + "\n")

	for _, res := range report.Results {
		_, verb := actionBadge(res.Action)
		b.WriteString(fmt.Sprintf("%-18s %s\n", verb, res.RelPath))
		if res.Warning != "" {
			b.WriteString(fmt.Sprintf("  warning: %s\n", res.Warning))
		}
		if res.Error != "" {
			b.WriteString(fmt.Sprintf("  error: %s\n", res.Error))
		}
	}
	if len(report.Results) == 0 {
		b.WriteString("Nothing to install\n")
	}

	counts := report.Counts()
	if report.DryRun {
		b.WriteString(fmt.Sprintf("Planned: %d\n", counts.Planned))
	} else {
		b.WriteString(fmt.Sprintf("Written: %d, Overwritten: %d, Skipped: %d, Failed: %d\n",
			counts.Written, counts.Overwritten, counts.Skipped, counts.Failed))
	}
	if hasBackups(report) {
		b.WriteString(fmt.Sprintf("Backups in %s\n", report.BackupDir))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// hasBackups reports whether any file was actually backed up. The
// configured backup dir alone does not mean anything was put there.
func hasBackups(report *types.RunReport) bool {
	for _, res := range report.Results {
		if res.BackupPath != "" {
			return true
		}
	}
	return false
}

func reportTitle(report *types.RunReport) string {
	if report.DryRun {
		return fmt.Sprintf("Dry run for %s (%s)", report.Agent, report.Lang)
	}
	return fmt.Sprintf("Installed for %s (%s)", report.Agent, report.Lang)
}

// actionBadge maps an outcome to its indicator and display verb.
func actionBadge(action types.OpAction) (string, string) {
	switch action {
	case types.ActionWritten:
		return writtenIndicator, "written"
	case types.ActionOverwritten:
		return writtenIndicator, "overwritten"
	case types.ActionSkippedExisting:
		return skippedIndicator, "skipped (exists)"
	case types.ActionSkippedDeclined:
		return declinedIndicator, "skipped (declined)"
	case types.ActionFailed:
		return failedIndicator, "failed"
	case types.ActionWouldWrite:
		return plannedIndicator, "would write"
	case types.ActionWouldOverwrite:
		return plannedIndicator, "would overwrite"
	case types.ActionWouldSkip:
		return plannedIndicator, "would skip"
	case types.ActionWouldPrompt:
		return plannedIndicator, "would prompt"
	default:
		return skippedIndicator, string(action)
	}
}
