package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// dayClassKeywords hint that a container element wraps one program day
var dayClassKeywords = []string{"day", "schedule-day", "program-day"}

// dayHeadingKeywords hint that a top-level heading starts a program day
var dayHeadingKeywords = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday",
	"saturday", "sunday", "february", "march", "day ",
}

// ClassHint groups days by container elements whose class attribute
// carries a day/schedule keyword. First fallback after the card layout.
type ClassHint struct{}

var _ Extractor = (*ClassHint)(nil)

func (e *ClassHint) Name() string { return "class-hint" }

func (e *ClassHint) Extract(doc *goquery.Document, baseURL string) []*schedule.Day {
	var days []*schedule.Day

	doc.Find("div, section, article").Each(func(_ int, sel *goquery.Selection) {
		if !classContains(sel, dayClassKeywords...) {
			return
		}
		day := parseGenericDay(sel, baseURL)
		if len(day.Sessions) > 0 {
			days = append(days, day)
		}
	})

	return days
}

// HeadingGroup synthesizes day boundaries at h2/h3 headings whose text
// mentions a weekday, a month, or the literal "day". Each synthetic day
// container spans the heading and its trailing siblings up to the next
// matching heading, modeled as a node slice rather than tree mutation.
type HeadingGroup struct{}

var _ Extractor = (*HeadingGroup)(nil)

func (e *HeadingGroup) Name() string { return "heading-group" }

func (e *HeadingGroup) Extract(doc *goquery.Document, baseURL string) []*schedule.Day {
	headings := doc.Find("h2, h3").FilterFunction(func(_ int, h *goquery.Selection) bool {
		txt := strings.ToLower(text(h))
		for _, kw := range dayHeadingKeywords {
			if strings.Contains(txt, kw) {
				return true
			}
		}
		return false
	})
	if headings.Length() == 0 {
		return nil
	}

	var days []*schedule.Day
	headings.Each(func(_ int, h *goquery.Selection) {
		container := h.AddSelection(h.NextUntilSelection(headings))
		day := parseGenericDay(container, baseURL)
		if len(day.Sessions) > 0 {
			days = append(days, day)
		}
	})

	return days
}

// WholeDocument treats the entire document body as a single day. Last
// resort before the placeholder.
type WholeDocument struct{}

var _ Extractor = (*WholeDocument)(nil)

func (e *WholeDocument) Name() string { return "whole-document" }

func (e *WholeDocument) Extract(doc *goquery.Document, baseURL string) []*schedule.Day {
	container := doc.Find("body")
	if container.Length() == 0 {
		container = doc.Selection
	}
	day := parseGenericDay(container, baseURL)
	if len(day.Sessions) == 0 {
		return nil
	}
	return []*schedule.Day{day}
}
