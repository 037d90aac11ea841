package notifier

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// maxPostLength is the Twitter character limit
const maxPostLength = 280

// Notifier defines the interface for posting new-session notifications
type Notifier interface {
	// Notify posts notifications for the given newly added sessions
	Notify(sessions []*schedule.NewSession) error
}

// formatPost formats a newly added session as a short announcement post
func formatPost(ns *schedule.NewSession) string {
	s := ns.Session

	post := "New session on the program!\n\n"
	post += s.Title + "\n"

	if ns.DayLabel != "" {
		post += fmt.Sprintf("Day: %s\n", ns.DayLabel)
	}
	if s.Start != "" {
		when := s.Start
		if s.End != "" {
			when += "–" + s.End
		}
		post += fmt.Sprintf("Time: %s\n", when)
	}
	if s.Room != "" {
		post += fmt.Sprintf("Room: %s\n", s.Room)
	}
	if s.URL != "" {
		post += fmt.Sprintf("\n%s", s.URL)
	}

	// Twitter counts characters, not bytes; measure and cut in runes,
	// leaving one slot for the ellipsis
	if runes := []rune(post); len(runes) > maxPostLength {
		post = strings.TrimSpace(string(runes[:maxPostLength-1])) + "…"
	}

	return post
}
