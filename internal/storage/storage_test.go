package storage

import (
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir := t.TempDir()
	store, err := New(filepath.Join(dir, "raw.html"), filepath.Join(dir, "program.json"))
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}
	return store
}

func TestRawHTMLRoundTrip(t *testing.T) {
	store := newTestStorage(t)

	if store.HasRawHTML() {
		t.Error("fresh storage should have no raw HTML cache")
	}

	const html = "<html><body>cached</body></html>"
	if err := store.SaveRawHTML(html); err != nil {
		t.Fatalf("SaveRawHTML failed: %v", err)
	}

	if !store.HasRawHTML() {
		t.Error("cache should exist after save")
	}

	got, err := store.LoadRawHTML()
	if err != nil {
		t.Fatalf("LoadRawHTML failed: %v", err)
	}
	if got != html {
		t.Errorf("expected %q, got %q", html, got)
	}
}

func TestLoadProgram_Missing(t *testing.T) {
	store := newTestStorage(t)

	program, err := store.LoadProgram()
	if err != nil {
		t.Fatalf("missing program should not be an error, got: %v", err)
	}
	if program != nil {
		t.Error("missing program should load as nil")
	}
}

func TestProgramRoundTrip(t *testing.T) {
	store := newTestStorage(t)

	days := []*schedule.Day{
		{
			DayID: schedule.StableID("tuesday", "2026-02-24"),
			Label: "Tuesday",
			Date:  "2026-02-24",
			Sessions: []*schedule.Session{
				{
					SessionID: schedule.StableID("Keynote", "09:00", "", "", "", ""),
					Start:     "09:00",
					Title:     "Keynote",
					Items:     []*schedule.Item{},
				},
			},
		},
	}
	program := schedule.NewProgram(days, "https://example.org/program/", "<html></html>")

	if err := store.SaveProgram(program); err != nil {
		t.Fatalf("SaveProgram failed: %v", err)
	}

	loaded, err := store.LoadProgram()
	if err != nil {
		t.Fatalf("LoadProgram failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a program, got nil")
	}
	if loaded.Meta.SourceURL != program.Meta.SourceURL {
		t.Errorf("source URL mismatch: %q vs %q", loaded.Meta.SourceURL, program.Meta.SourceURL)
	}
	if loaded.Meta.RawHTMLSHA256 != program.Meta.RawHTMLSHA256 {
		t.Error("raw HTML hash should survive the round trip")
	}
	if len(loaded.Days) != 1 || len(loaded.Days[0].Sessions) != 1 {
		t.Fatalf("unexpected structure after round trip: %+v", loaded)
	}
	if loaded.Days[0].Sessions[0].SessionID != days[0].Sessions[0].SessionID {
		t.Error("session ID should survive the round trip")
	}
}

func TestNew_ExpandsHome(t *testing.T) {
	store, err := New("~/.cache/conf-schedule-test/raw.html", "~/.cache/conf-schedule-test/program.json")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if store.RawPath()[0] == '~' {
		t.Errorf("path should be expanded, got %q", store.RawPath())
	}
}
