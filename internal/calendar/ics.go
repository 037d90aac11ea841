// Package calendar exports a parsed conference program as an iCalendar
// (.ics) document, one VEVENT per session that carries a date and a start
// time.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// GenerateICS renders the program as an iCalendar document. Sessions on
// days without a parsed date, or without a start time, have no definite
// position on a calendar and are skipped.
func GenerateICS(program *schedule.Program) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//conf-schedule//conf-schedule//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := formatICSTime(time.Now().UTC())

	for _, day := range program.Days {
		if day.Date == "" {
			continue
		}
		for _, session := range day.Sessions {
			writeEvent(&ics, day, session, program.Meta.SourceURL, stamp)
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// writeEvent appends one VEVENT for a session, if it is schedulable
func writeEvent(ics *strings.Builder, day *schedule.Day, session *schedule.Session, sourceURL, stamp string) {
	start, ok := combine(day.Date, session.Start)
	if !ok {
		return
	}
	end, ok := combine(day.Date, session.End)
	if !ok {
		// No end time: default to one hour
		end = start.Add(time.Hour)
	}

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s@conf-schedule\r\n", session.SessionID)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", stamp)
	fmt.Fprintf(ics, "DTSTART:%s\r\n", formatICSTime(start))
	fmt.Fprintf(ics, "DTEND:%s\r\n", formatICSTime(end))
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(session.Title))

	description := day.Label
	if len(session.Items) > 0 {
		titles := make([]string, 0, len(session.Items))
		for _, item := range session.Items {
			titles = append(titles, item.Title)
		}
		description += "\n" + strings.Join(titles, "\n")
	}
	fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(description))

	if session.Room != "" {
		fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(session.Room))
	}
	url := session.URL
	if url == "" {
		url = sourceURL
	}
	if url != "" {
		fmt.Fprintf(ics, "URL:%s\r\n", url)
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// combine builds a concrete time from an ISO date and an HH:MM string
func combine(date, hhmm string) (time.Time, bool) {
	if date == "" || hhmm == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
