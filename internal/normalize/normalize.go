package normalize

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// DefaultYear is assumed for dates that omit the year, e.g. "24 February"
const DefaultYear = 2026

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Matches time ranges like "8:30 AM – 10:00 AM", "08:30-10:00",
	// "9:00am-11:30am" (en-dash or hyphen separator)
	timeRangeRe  = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(?:AM|PM)?(?:\s*[–\-]\s*)(\d{1,2}:\d{2})\s*(?:AM|PM)?`)
	timeSingleRe = regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2})\s*(?:AM|PM)?\b`)

	// Matches dates such as "February 24, 2026", "24 February 2026",
	// "Mon, Feb 24", "Tuesday, 24 February" (day may come before or
	// after the month name; weekday and year are optional)
	dateRe = regexp.MustCompile(`(?i)(?:(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun)[a-z]*[\s,]*)?(?:(\d{1,2})\s+)?` +
		`(January|February|March|April|May|June|July|August|September|October|November|December)` +
		`(?:\s+(\d{1,2}))?(?:,?\s+(\d{4}))?`)
)

var monthNumbers = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// Whitespace collapses any run of whitespace to a single space and trims
// both ends. Empty input yields an empty string.
func Whitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// AbsoluteURL makes href absolute using the scheme and host of baseURL.
// Already-absolute URLs pass through unchanged. Relative forms that are not
// root-relative ("foo/bar", "#anchor") are returned as-is rather than
// resolved against the base path; the program page never emits them.
func AbsoluteURL(href, baseURL string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		parsed, err := url.Parse(baseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return href
		}
		return fmt.Sprintf("%s://%s%s", parsed.Scheme, parsed.Host, href)
	}
	return href
}

// ParseDate scans text for a month-name date and returns it as an ISO
// YYYY-MM-DD string, or "" if no usable date is found. The day number may
// appear before or after the month name; a missing year defaults to
// DefaultYear; a missing day makes the match unusable.
func ParseDate(text string) string {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	dayBefore, monthName, dayAfter, year := m[1], m[2], m[3], m[4]

	day := dayBefore
	if day == "" {
		day = dayAfter
	}
	if day == "" {
		return ""
	}

	month, ok := monthNumbers[strings.ToLower(monthName)]
	if !ok {
		return ""
	}

	dayNum, err := strconv.Atoi(day)
	if err != nil {
		return ""
	}

	yearNum := DefaultYear
	if year != "" {
		yearNum, err = strconv.Atoi(year)
		if err != nil {
			return ""
		}
	}

	return fmt.Sprintf("%04d-%02d-%02d", yearNum, month, dayNum)
}

// ParseTimeRange extracts (start, end) as "HH:MM" 24-hour strings from
// free-form text. It first looks for an explicit range; failing that it
// takes the first two standalone times, or the first single time as start
// with an empty end. No time tokens yields ("", "").
func ParseTimeRange(text string) (start, end string) {
	if m := timeRangeRe.FindStringSubmatch(text); m != nil {
		return To24Hour(m[1], text), To24Hour(m[2], text)
	}
	singles := timeSingleRe.FindAllStringSubmatch(text, -1)
	if len(singles) >= 2 {
		return To24Hour(singles[0][1], text), To24Hour(singles[1][1], text)
	}
	if len(singles) == 1 {
		return To24Hour(singles[0][1], text), ""
	}
	return "", ""
}

// To24Hour converts an "H:MM" token to zero-padded 24-hour form, using an
// AM/PM marker that immediately follows the token in context to resolve the
// period. Without a marker the hour is taken as already 24-hour. Noon
// ("12:00 PM") stays 12; midnight ("12:00 AM") becomes 00.
func To24Hour(timeToken, context string) string {
	parts := strings.SplitN(timeToken, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ""
	}

	markerRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(timeToken) + `\s*(AM|PM)`)
	if err == nil {
		if m := markerRe.FindStringSubmatch(context); m != nil {
			switch strings.ToUpper(m[1]) {
			case "PM":
				if hour != 12 {
					hour += 12
				}
			case "AM":
				if hour == 12 {
					hour = 0
				}
			}
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute)
}
