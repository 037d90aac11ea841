package schedule

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Day represents one calendar day of the conference program
type Day struct {
	DayID    string     `json:"day_id"`
	Label    string     `json:"label"`
	Date     string     `json:"date"` // ISO-8601 (YYYY-MM-DD) or empty
	Sessions []*Session `json:"sessions"`
}

// Session represents a scheduled block: a paper session, keynote,
// workshop, break, or registration slot
type Session struct {
	SessionID string  `json:"session_id"`
	Start     string  `json:"start"` // HH:MM 24-hour or empty
	End       string  `json:"end"`   // HH:MM 24-hour or empty
	Track     string  `json:"track"` // short code like "1A", or empty
	Room      string  `json:"room"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Items     []*Item `json:"items"`
}

// Item represents an individual paper or talk within a session
type Item struct {
	ItemID  string `json:"item_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Authors string `json:"authors"`
	Order   int    `json:"order"` // 1-based position within the session
}

// Meta describes the provenance of a generated program document
type Meta struct {
	SourceURL     string `json:"source_url"`
	GeneratedAt   string `json:"generated_at"`    // RFC3339 UTC
	RawHTMLSHA256 string `json:"raw_html_sha256"` // hash of the fetched document
}

// Program is the full output document: meta envelope plus the day list
type Program struct {
	Meta Meta   `json:"meta"`
	Days []*Day `json:"days"`
}

// NewProgram wraps a parsed day list in the output envelope. The raw HTML
// hash ties the generated document back to the exact input it was built from.
func NewProgram(days []*Day, sourceURL, rawHTML string) *Program {
	sum := sha256.Sum256([]byte(rawHTML))
	return &Program{
		Meta: Meta{
			SourceURL:     sourceURL,
			GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
			RawHTMLSHA256: hex.EncodeToString(sum[:]),
		},
		Days: days,
	}
}

// SessionCount returns the total number of sessions across all days
func (p *Program) SessionCount() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Sessions)
	}
	return n
}

// ItemCount returns the total number of talk items across all sessions
func (p *Program) ItemCount() int {
	n := 0
	for _, d := range p.Days {
		for _, s := range d.Sessions {
			n += len(s.Items)
		}
	}
	return n
}
