package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// Extractor is one self-contained strategy that attempts to recognize a
// particular document structure and produce day records. A strategy that
// does not recognize the document returns an empty slice; that is not an
// error, it just means the next strategy gets a turn.
type Extractor interface {
	Name() string
	Extract(doc *goquery.Document, baseURL string) []*schedule.Day
}

// DefaultPipeline returns the extractor cascade in priority order: the
// site-specific card layout first, then progressively more generic
// fallbacks.
func DefaultPipeline() []Extractor {
	return []Extractor{
		&CardLayout{},
		&ClassHint{},
		&HeadingGroup{},
		&WholeDocument{},
	}
}

// Parse runs the extractor cascade over an HTML document and returns the
// day list produced by the first strategy that yields results. When every
// strategy comes up empty it returns a single placeholder day, so the
// output is always structurally valid. The only error condition is input
// that cannot be parsed as markup at all.
func Parse(htmlText, baseURL string) ([]*schedule.Day, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, ex := range DefaultPipeline() {
		if days := ex.Extract(doc, baseURL); len(days) > 0 {
			return days, nil
		}
	}

	return []*schedule.Day{placeholderDay()}, nil
}

// placeholderDay is emitted when no strategy recognized any structure
func placeholderDay() *schedule.Day {
	return &schedule.Day{
		DayID:    schedule.StableID("unknown"),
		Label:    "Unknown",
		Date:     "",
		Sessions: []*schedule.Session{},
	}
}
