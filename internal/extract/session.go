package extract

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/conf-schedule/internal/normalize"
	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// itemClassKeywords hint that an element is an individual talk entry
var itemClassKeywords = []string{"paper", "talk", "item", "entry", "presentation"}

var (
	// Track label like "Session 1A" or "Track 2B"; at least one letter
	// required so time digits never match
	genericTrackRe = regexp.MustCompile(`\b(?:Session|Track)\s+([A-Z0-9]*[A-Z][A-Z0-9]*)\b`)

	// Room label, stopping at punctuation or end of text
	roomRe = regexp.MustCompile(`(?i)\b(?:Room|Hall|Salon)\s+([A-Z0-9 &]+?)(?:\s*[,.]|$)`)
)

// parseGenericDay extracts a day from an arbitrary container element using
// the shared session heuristics. The label comes from the first prominent
// heading, falling back to a text excerpt; the date is scanned from the
// label, then from the leading text of the container.
func parseGenericDay(container *goquery.Selection, baseURL string) *schedule.Day {
	label := ""
	if heading := firstMatch(container, "h1, h2, h3, h4"); heading != nil {
		label = text(heading)
	} else {
		label = truncate(text(container), 60)
	}

	date := normalize.ParseDate(label)
	if date == "" {
		date = normalize.ParseDate(truncate(text(container), 200))
	}

	return &schedule.Day{
		DayID:    schedule.StableID(labelOrUnknown(label), date),
		Label:    label,
		Date:     date,
		Sessions: parseSessions(container, baseURL),
	}
}

// parseSessions finds session blocks within a day container: elements
// whose class hints at "session", or, failing that, groups of content
// delimited by sub-headings.
func parseSessions(container *goquery.Selection, baseURL string) []*schedule.Session {
	sessions := make([]*schedule.Session, 0)

	sessionEls := containersWithClass(container, "div, article, section, li", "session")
	if len(sessionEls) == 0 {
		sessionEls = groupByHeadings(container, "h3, h4, h5")
	}

	for _, sel := range sessionEls {
		if s := extractSession(sel, baseURL); s != nil {
			sessions = append(sessions, s)
		}
	}

	return sessions
}

// containersWithClass returns the elements matching the tag selector whose
// class attribute contains the keyword, in document order.
func containersWithClass(container *goquery.Selection, selector, keyword string) []*goquery.Selection {
	var out []*goquery.Selection
	contentMatches(container, selector).Each(func(_ int, sel *goquery.Selection) {
		if classContains(sel, keyword) {
			out = append(out, sel)
		}
	})
	return out
}

// groupByHeadings synthesizes one session container per heading, spanning
// the heading and its trailing siblings up to the next heading. The
// containers are node slices over the existing tree; nothing is cloned or
// mutated. The sibling walk is clipped to the container's own nodes: in a
// synthetic day built from a node slice, the last heading's siblings
// continue into the next day's content on the real tree.
func groupByHeadings(container *goquery.Selection, selector string) []*goquery.Selection {
	headings := selectAll(container, selector)
	if headings.Length() == 0 {
		return nil
	}

	var out []*goquery.Selection
	headings.Each(func(_ int, h *goquery.Selection) {
		body := h.NextUntilSelection(headings).FilterFunction(func(_ int, s *goquery.Selection) bool {
			return within(container, s)
		})
		out = append(out, h.AddSelection(body))
	})
	return out
}

// extractSession pulls session metadata and items out of one session
// container. A container without a derivable title yields nil.
func extractSession(sel *goquery.Selection, baseURL string) *schedule.Session {
	titleEl := firstMatch(sel, "h2, h3, h4, h5, strong, b")
	titleText := text(titleEl)

	title := titleText
	if titleEl == nil {
		title = truncate(text(sel), 120)
	}
	if title == "" {
		return nil
	}

	url := ""
	if link := firstMatch(sel, "a[href]"); link != nil {
		url = normalize.AbsoluteURL(link.AttrOr("href", ""), baseURL)
	}

	fullText := text(sel)
	start, end := normalize.ParseTimeRange(fullText)

	track := ""
	if m := genericTrackRe.FindStringSubmatch(fullText); m != nil {
		track = m[1]
	}

	room := ""
	if m := roomRe.FindStringSubmatch(fullText); m != nil {
		room = normalize.Whitespace(m[0])
	}

	// A session without items is still valid (keynotes, breaks)
	return &schedule.Session{
		SessionID: schedule.StableID(title, start, end, track, room, url),
		Start:     start,
		End:       end,
		Track:     track,
		Room:      room,
		Title:     title,
		URL:       url,
		Items:     extractItems(sel, titleText, baseURL),
	}
}

// extractItems finds talk entries inside a session container, preferring
// elements whose class hints at a paper/talk entry and falling back to any
// list item. An entry is skipped when its derived title is empty or merely
// re-captures the session's own heading.
func extractItems(sel *goquery.Selection, sessionTitle, baseURL string) []*schedule.Item {
	items := make([]*schedule.Item, 0)

	var candidates []*goquery.Selection
	contentMatches(sel, "li, div, article").Each(func(_ int, cand *goquery.Selection) {
		if classContains(cand, itemClassKeywords...) {
			candidates = append(candidates, cand)
		}
	})
	if len(candidates) == 0 {
		contentMatches(sel, "li").Each(func(_ int, cand *goquery.Selection) {
			candidates = append(candidates, cand)
		})
	}

	order := 0
	for _, cand := range candidates {
		title := ""
		if titleEl := cand.Find("strong, b, h5, h6, a").First(); titleEl.Length() > 0 {
			title = text(titleEl)
		} else {
			title = truncate(text(cand), 200)
		}
		if title == "" || title == sessionTitle {
			continue
		}

		url := ""
		if link := cand.Find("a[href]").First(); link.Length() > 0 {
			url = normalize.AbsoluteURL(link.AttrOr("href", ""), baseURL)
		}

		// Authors usually sit in an emphasized sub-element after the
		// title; a value equal to the title is a mis-detection
		authors := text(cand.Find("em, i, span").First())
		if authors == title {
			authors = ""
		}

		order++
		items = append(items, &schedule.Item{
			ItemID:  schedule.StableID(title, url, strconv.Itoa(order)),
			Title:   title,
			URL:     url,
			Authors: authors,
			Order:   order,
		})
	}

	return items
}
