package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/conf-schedule/internal/calendar"
	"github.com/pfrederiksen/conf-schedule/internal/extract"
	"github.com/pfrederiksen/conf-schedule/internal/fetch"
	"github.com/pfrederiksen/conf-schedule/internal/logger"
	"github.com/pfrederiksen/conf-schedule/internal/notifier"
	"github.com/pfrederiksen/conf-schedule/internal/schedule"
	"github.com/pfrederiksen/conf-schedule/internal/storage"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitNewSessions = 2
)

var (
	flagURL     string
	flagRaw     string
	flagOutput  string
	flagICS     string
	flagFormat  string
	flagRefresh bool
	flagNotify  bool
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conf-schedule",
		Short: "Build a normalized JSON schedule from a conference program page",
		Long: `Fetches (or reads from cache) a conference program HTML page, extracts
days, sessions, and talks through a cascade of structural parsers, and
writes a deterministically-identified JSON schedule. Sessions added since
the previous run can be announced via the notifier.`,
		RunE: runBuild,
	}

	cmd.Flags().StringVar(&flagURL, "url", fetch.DefaultProgramURL, "Program page URL")
	cmd.Flags().StringVar(&flagRaw, "raw", "~/.local/share/conf-schedule/raw.html", "Path to the cached raw HTML")
	cmd.Flags().StringVar(&flagOutput, "output", "~/.local/share/conf-schedule/program.json", "Path to write the program JSON")
	cmd.Flags().StringVar(&flagICS, "ics", "", "Also write an iCalendar file to this path")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Re-fetch the program HTML even when a cache exists")
	cmd.Flags().BoolVar(&flagNotify, "notify", false, "Post announcements for newly added sessions")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "With --notify, print posts instead of sending them")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runBuild is the main command logic
func runBuild(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	store, err := storage.New(flagRaw, flagOutput)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	// Step 1: obtain HTML, from the cache unless told otherwise
	html, err := obtainHTML(store)
	if err != nil {
		return err
	}

	// Step 2: parse
	logger.Debug("Parsing program HTML", logger.Fields{"bytes": len(html)})
	days, err := extract.Parse(html, flagURL)
	if err != nil {
		return fmt.Errorf("extracting program: %w", err)
	}

	// Step 3: diff against the previous output before overwriting it
	previous, err := store.LoadProgram()
	if err != nil {
		return fmt.Errorf("loading previous program: %w", err)
	}
	diff := schedule.Diff(previous, days)

	program := schedule.NewProgram(days, flagURL, html)

	if err := store.SaveProgram(program); err != nil {
		return fmt.Errorf("saving program: %w", err)
	}
	logger.Info("Wrote program", logger.Fields{
		"path":     store.ProgramPath(),
		"days":     len(program.Days),
		"sessions": program.SessionCount(),
		"items":    program.ItemCount(),
	})

	if flagICS != "" {
		if err := os.WriteFile(flagICS, []byte(calendar.GenerateICS(program)), 0644); err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
		logger.Info("Wrote calendar", logger.Fields{"path": flagICS})
	}

	if flagNotify && len(diff.NewSessions) > 0 {
		if err := notify(diff.NewSessions); err != nil {
			return fmt.Errorf("notifying: %w", err)
		}
	}

	result := &OutputResult{
		Program:     program,
		OutputPath:  store.ProgramPath(),
		NewSessions: diff.NewSessions,
	}
	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(diff.NewSessions) > 0 {
		os.Exit(ExitNewSessions)
	}
	return nil
}

// obtainHTML returns the cached program HTML, fetching and re-caching it
// when --refresh was given or no cache exists yet
func obtainHTML(store *storage.Storage) (string, error) {
	if !flagRefresh && store.HasRawHTML() {
		html, err := store.LoadRawHTML()
		if err != nil {
			return "", fmt.Errorf("loading cached HTML: %w", err)
		}
		logger.Debug("Using cached HTML", logger.Fields{"path": store.RawPath(), "bytes": len(html)})
		return html, nil
	}

	logger.Info("Fetching program page", logger.Fields{"url": flagURL})
	html, err := fetch.New().Fetch(context.Background(), flagURL)
	if err != nil {
		return "", fmt.Errorf("fetching program: %w", err)
	}
	if err := store.SaveRawHTML(html); err != nil {
		return "", fmt.Errorf("caching HTML: %w", err)
	}
	logger.Debug("Cached HTML", logger.Fields{"path": store.RawPath(), "bytes": len(html)})
	return html, nil
}

// notify posts announcements for newly added sessions
func notify(sessions []*schedule.NewSession) error {
	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier()
	} else {
		tn, err := notifier.NewTwitterNotifier()
		if err != nil {
			return err
		}
		n = tn
	}
	return n.Notify(sessions)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
