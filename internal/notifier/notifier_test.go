package notifier

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

func newSession(title, start, end, room, url string) *schedule.NewSession {
	return &schedule.NewSession{
		DayLabel: "Tuesday, February 24, 2026",
		DayDate:  "2026-02-24",
		Session: &schedule.Session{
			SessionID: schedule.StableID(title, start, end, "", room, url),
			Start:     start,
			End:       end,
			Room:      room,
			Title:     title,
			URL:       url,
			Items:     []*schedule.Item{},
		},
	}
}

func TestFormatPost(t *testing.T) {
	post := formatPost(newSession(
		"Session 1A: Network Security",
		"10:30", "12:00", "Salon A",
		"https://example.org/sessions/1a",
	))

	for _, want := range []string{
		"Session 1A: Network Security",
		"Day: Tuesday, February 24, 2026",
		"Time: 10:30–12:00",
		"Room: Salon A",
		"https://example.org/sessions/1a",
	} {
		if !strings.Contains(post, want) {
			t.Errorf("post should contain %q, got:\n%s", want, post)
		}
	}
}

func TestFormatPost_MinimalSession(t *testing.T) {
	post := formatPost(newSession("Coffee Break", "", "", "", ""))

	if !strings.Contains(post, "Coffee Break") {
		t.Errorf("post should contain the title, got:\n%s", post)
	}
	if strings.Contains(post, "Time:") || strings.Contains(post, "Room:") {
		t.Errorf("empty fields should be omitted, got:\n%s", post)
	}
}

func TestFormatPost_Truncation(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"ascii", strings.Repeat("Very Long Session Title ", 30)},
		{"multibyte", strings.Repeat("Sécurité des Réseaux 電網安全 ", 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := formatPost(newSession(tt.title, "09:00", "10:00", "", ""))

			if n := utf8.RuneCountInString(post); n > maxPostLength {
				t.Errorf("post should be truncated to %d characters, got %d", maxPostLength, n)
			}
			if !strings.HasSuffix(post, "…") {
				t.Errorf("truncated post should end with an ellipsis, got %q", post)
			}
		})
	}
}

func TestDryRunNotifier(t *testing.T) {
	n := NewDryRunNotifier()

	err := n.Notify([]*schedule.NewSession{
		newSession("Session 1A", "10:30", "12:00", "", ""),
	})
	if err != nil {
		t.Errorf("dry run should never fail, got: %v", err)
	}
}

func TestNewTwitterNotifier_MissingCredentials(t *testing.T) {
	t.Setenv("TWITTER_API_KEY", "")
	t.Setenv("TWITTER_API_SECRET", "")
	t.Setenv("TWITTER_ACCESS_TOKEN", "")
	t.Setenv("TWITTER_ACCESS_SECRET", "")

	if _, err := NewTwitterNotifier(); err == nil {
		t.Error("expected error when credentials are missing")
	}
}
