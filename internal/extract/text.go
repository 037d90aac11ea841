package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pfrederiksen/conf-schedule/internal/normalize"
)

// text returns the normalized visible text of a selection, with a space
// between adjacent text nodes so that text from neighboring elements never
// runs together ("8:30<span>AM</span>" reads as "8:30 AM").
func text(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return normalize.Whitespace(strings.Join(parts, " "))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// truncate limits s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// classContains reports whether the element's class attribute, lowercased,
// contains any of the given keywords as a substring.
func classContains(sel *goquery.Selection, keywords ...string) bool {
	classes := strings.ToLower(sel.AttrOr("class", ""))
	for _, kw := range keywords {
		if strings.Contains(classes, kw) {
			return true
		}
	}
	return false
}

// firstMatch returns the first element matching selector, considering the
// container's own nodes before their descendants. Synthetic containers
// built from a heading plus its trailing siblings have the heading as a
// root node, where plain Find would miss it.
func firstMatch(container *goquery.Selection, selector string) *goquery.Selection {
	if m := container.Filter(selector); m.Length() > 0 {
		return m.First()
	}
	if m := container.Find(selector); m.Length() > 0 {
		return m.First()
	}
	return nil
}

// selectAll collects elements matching selector from the container's own
// nodes and their descendants.
func selectAll(container *goquery.Selection, selector string) *goquery.Selection {
	return container.Filter(selector).AddSelection(container.Find(selector))
}

// contentMatches collects elements matching selector from a container's
// content. A synthetic multi-root container contributes its root nodes as
// well as their descendants; a single-element container contributes
// descendants only, so an element never matches as its own content.
func contentMatches(container *goquery.Selection, selector string) *goquery.Selection {
	if len(container.Nodes) > 1 {
		return selectAll(container, selector)
	}
	return container.Find(selector)
}

// within reports whether the single node of sel is one of the container's
// nodes or a descendant of one.
func within(container, sel *goquery.Selection) bool {
	if len(sel.Nodes) == 0 {
		return false
	}
	for p := sel.Nodes[0]; p != nil; p = p.Parent {
		for _, root := range container.Nodes {
			if p == root {
				return true
			}
		}
	}
	return false
}
