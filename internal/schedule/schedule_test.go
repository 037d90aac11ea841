package schedule

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sampleDays() []*Day {
	return []*Day{
		{
			DayID: StableID("tuesday", "2026-02-24"),
			Label: "Tuesday",
			Date:  "2026-02-24",
			Sessions: []*Session{
				{
					SessionID: StableID("Keynote", "09:00", "10:00", "", "", ""),
					Start:     "09:00",
					End:       "10:00",
					Title:     "Keynote",
					Items:     []*Item{},
				},
				{
					SessionID: StableID("Session 1A", "10:30", "12:00", "1A", "Salon A", ""),
					Start:     "10:30",
					End:       "12:00",
					Track:     "1A",
					Room:      "Salon A",
					Title:     "Session 1A",
					Items: []*Item{
						{ItemID: StableID("Paper One", "", "1"), Title: "Paper One", Order: 1},
						{ItemID: StableID("Paper Two", "", "2"), Title: "Paper Two", Order: 2},
					},
				},
			},
		},
	}
}

func TestNewProgram(t *testing.T) {
	rawHTML := "<html><body>program</body></html>"
	sourceURL := "https://www.example.org/program/"

	program := NewProgram(sampleDays(), sourceURL, rawHTML)

	if program.Meta.SourceURL != sourceURL {
		t.Errorf("expected source URL %q, got %q", sourceURL, program.Meta.SourceURL)
	}
	if program.Meta.GeneratedAt == "" {
		t.Error("generated_at should be set")
	}

	sum := sha256.Sum256([]byte(rawHTML))
	if program.Meta.RawHTMLSHA256 != hex.EncodeToString(sum[:]) {
		t.Errorf("raw_html_sha256 mismatch: got %q", program.Meta.RawHTMLSHA256)
	}

	if got := program.SessionCount(); got != 2 {
		t.Errorf("expected 2 sessions, got %d", got)
	}
	if got := program.ItemCount(); got != 2 {
		t.Errorf("expected 2 items, got %d", got)
	}
}
