package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pfrederiksen/conf-schedule/internal/normalize"
	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// Track badge embedded in a session title, e.g. "Session 1A: ...". The code
// must contain at least one letter so bare time digits never match.
var cardTrackRe = regexp.MustCompile(`\bSession\s+([A-Z0-9]+[A-Z][A-Z0-9]*|[0-9]+[A-Z])\b`)

// CardLayout parses the Bootstrap card layout used on the live program
// page. Each conference day is a div.card whose header holds an h3 day
// label; three kinds of schedule items appear inside the card in document
// order:
//
//   - li.card-subheading-session — misc items (registration, breaks),
//     no href, no nested papers;
//   - a.card-subheading-workshop — workshops and keynotes, carry a real
//     href;
//   - a.card-subheading-session — paper sessions, followed by a sibling
//     ul.list-group-session holding the paper list.
type CardLayout struct{}

var _ Extractor = (*CardLayout)(nil)

func (e *CardLayout) Name() string { return "card-layout" }

// Extract returns one day per recognized card with at least one session,
// or nil when the document does not use the card convention.
func (e *CardLayout) Extract(doc *goquery.Document, baseURL string) []*schedule.Day {
	var days []*schedule.Day

	doc.Find("div.card").Each(func(_ int, card *goquery.Selection) {
		header := card.Find("div.card-header").First()
		if header.Length() == 0 {
			return
		}
		h3 := header.Find("h3").First()
		if h3.Length() == 0 {
			return
		}

		label := text(h3)
		date := normalize.ParseDate(label)
		dayID := schedule.StableID(labelOrUnknown(label), date)

		var sessions []*schedule.Session

		// All three item kinds share the subheading class convention;
		// selecting them together keeps the daily timeline in document
		// order across kinds.
		card.Find("a, li").Each(func(_ int, el *goquery.Selection) {
			if !classContains(el, "card-subheading-session", "card-subheading-workshop") {
				return
			}
			if s := e.parseScheduleItem(el, baseURL); s != nil {
				sessions = append(sessions, s)
			}
		})

		if len(sessions) > 0 {
			days = append(days, &schedule.Day{
				DayID:    dayID,
				Label:    label,
				Date:     date,
				Sessions: sessions,
			})
		}
	})

	return days
}

// parseScheduleItem extracts one session from a schedule item element of
// any of the three card item kinds. An item without a usable title is
// dropped, not emitted.
func (e *CardLayout) parseScheduleItem(el *goquery.Selection, baseURL string) *schedule.Session {
	timeText := text(el.Find("div.col-2").First())
	start, end := normalize.ParseTimeRange(timeText)

	col8 := el.Find("div.col-8").First()
	if col8.Length() == 0 {
		return nil
	}

	// Paper sessions wrap the canonical title in <strong>; misc items do
	// not. Prefer the first non-empty text node of the strong element so
	// trailing badges inside it are not glued onto the title.
	title := ""
	if strong := col8.Find("strong").First(); strong.Length() > 0 {
		title = firstTextNode(strong)
	}
	if title == "" {
		title = text(col8)
	}
	if title == "" {
		return nil
	}

	room := text(el.Find("div.text-right").First())

	track := ""
	if m := cardTrackRe.FindStringSubmatch(title); m != nil {
		track = m[1]
	}

	// Only linked elements carry a destination URL
	url := ""
	if el.Is("a") {
		url = normalize.AbsoluteURL(el.AttrOr("href", ""), baseURL)
	}

	return &schedule.Session{
		SessionID: schedule.StableID(title, start, end, track, room, url),
		Start:     start,
		End:       end,
		Track:     track,
		Room:      room,
		Title:     title,
		URL:       url,
		Items:     e.parsePaperList(el, baseURL),
	}
}

// parsePaperList walks the ul.list-group-session that immediately follows
// a paper-session anchor and extracts its papers. Other item kinds have no
// paper list and yield an empty slice.
func (e *CardLayout) parsePaperList(el *goquery.Selection, baseURL string) []*schedule.Item {
	items := make([]*schedule.Item, 0)

	if !el.Is("a") || !classContains(el, "card-subheading-session") {
		return items
	}

	paperList := el.NextAllFiltered("ul").First()
	if paperList.Length() == 0 || !classContains(paperList, "list-group-session") {
		return items
	}

	order := 0
	paperList.Find("li.list-group-item").Each(func(_ int, li *goquery.Selection) {
		link := li.Find("a[href]").First()
		if link.Length() == 0 {
			return
		}
		title := text(link)
		if title == "" {
			return
		}
		url := normalize.AbsoluteURL(link.AttrOr("href", ""), baseURL)
		authors := text(li.Find("i").First())

		// Order participates in the ID so identical titles at different
		// positions stay distinct
		order++
		items = append(items, &schedule.Item{
			ItemID:  schedule.StableID(title, url, strconv.Itoa(order)),
			Title:   title,
			URL:     url,
			Authors: authors,
			Order:   order,
		})
	})

	return items
}

// firstTextNode returns the first non-empty trimmed text node within the
// selection, in document order.
func firstTextNode(sel *goquery.Selection) string {
	for _, n := range sel.Nodes {
		if t := firstText(n); t != "" {
			return t
		}
	}
	return ""
}

func firstText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := firstText(c); t != "" {
			return t
		}
	}
	return ""
}

func labelOrUnknown(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
