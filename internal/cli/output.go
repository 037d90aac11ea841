package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains the run summary to be output
type OutputResult struct {
	Program     *schedule.Program      `json:"program"`
	OutputPath  string                 `json:"output_path"`
	NewSessions []*schedule.NewSession `json:"-"`
}

// jsonResult is the JSON-facing shape of a run summary; new sessions are
// flattened to IDs and titles so the document stays readable
type jsonResult struct {
	Meta        schedule.Meta    `json:"meta"`
	OutputPath  string           `json:"output_path"`
	Days        int              `json:"days"`
	Sessions    int              `json:"sessions"`
	Items       int              `json:"items"`
	NewSessions []jsonNewSession `json:"new_sessions"`
}

type jsonNewSession struct {
	DayLabel  string `json:"day_label"`
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	Start     string `json:"start,omitempty"`
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	out := jsonResult{
		Meta:        result.Program.Meta,
		OutputPath:  result.OutputPath,
		Days:        len(result.Program.Days),
		Sessions:    result.Program.SessionCount(),
		Items:       result.Program.ItemCount(),
		NewSessions: make([]jsonNewSession, 0, len(result.NewSessions)),
	}
	for _, ns := range result.NewSessions {
		out.NewSessions = append(out.NewSessions, jsonNewSession{
			DayLabel:  ns.DayLabel,
			SessionID: ns.Session.SessionID,
			Title:     ns.Session.Title,
			Start:     ns.Session.Start,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	p := result.Program
	fmt.Fprintf(w, "Wrote %s (%d days, %d sessions, %d items)\n",
		result.OutputPath, len(p.Days), p.SessionCount(), p.ItemCount())

	if verbose {
		for _, day := range p.Days {
			fmt.Fprintf(w, "  %s: %d sessions\n", day.Label, len(day.Sessions))
		}
	}

	if len(result.NewSessions) == 0 {
		fmt.Fprintln(w, "No new sessions since last run.")
		return nil
	}

	fmt.Fprintf(w, "\n%d new session(s):\n", len(result.NewSessions))
	currentDay := ""
	for _, ns := range result.NewSessions {
		if ns.DayLabel != currentDay {
			currentDay = ns.DayLabel
			fmt.Fprintf(w, "\n%s:\n", currentDay)
		}
		line := ns.Session.Title
		if ns.Session.Start != "" {
			line = ns.Session.Start + "  " + line
		}
		fmt.Fprintf(w, "  NEW: %s\n", line)
		if verbose {
			fmt.Fprintf(w, "       ID: %s\n", ns.Session.SessionID)
			if ns.Session.Room != "" {
				fmt.Fprintf(w, "       Room: %s\n", ns.Session.Room)
			}
		}
	}

	return nil
}
