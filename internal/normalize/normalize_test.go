package normalize

import "testing"

func TestWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"already clean", "Session 1A", "Session 1A"},
		{"collapses runs", "Session   1A:\n\tNetwork  Security", "Session 1A: Network Security"},
		{"trims ends", "  padded  ", "padded"},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Whitespace(tt.input); got != tt.expected {
				t.Errorf("Whitespace(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://www.ndss-symposium.org/ndss-program/symposium-2026/"

	tests := []struct {
		name     string
		href     string
		expected string
	}{
		{"empty", "", ""},
		{"absolute https unchanged", "https://example.org/paper", "https://example.org/paper"},
		{"absolute http unchanged", "http://example.org/paper", "http://example.org/paper"},
		{"root-relative rewritten", "/ndss-program/foo", "https://www.ndss-symposium.org/ndss-program/foo"},
		{"path-relative returned as-is", "papers/foo", "papers/foo"},
		{"fragment returned as-is", "#schedule", "#schedule"},
		{"surrounding whitespace trimmed", "  /ndss-program/foo  ", "https://www.ndss-symposium.org/ndss-program/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsoluteURL(tt.href, base); got != tt.expected {
				t.Errorf("AbsoluteURL(%q) = %q, expected %q", tt.href, got, tt.expected)
			}
		})
	}
}

func TestAbsoluteURL_BadBase(t *testing.T) {
	// An unusable base leaves root-relative hrefs untouched
	if got := AbsoluteURL("/foo", "not a url"); got != "/foo" {
		t.Errorf("expected /foo, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"weekday month day year", "Tuesday, February 24, 2026", "2026-02-24"},
		{"day before month no year", "24 February", "2026-02-24"},
		{"month day no year", "February 24", "2026-02-24"},
		{"abbreviated weekday", "Wed, February 25", "2026-02-25"},
		{"day month year", "24 February 2026", "2026-02-24"},
		{"explicit other year", "March 3, 2027", "2027-03-03"},
		{"case insensitive month", "24 FEBRUARY 2026", "2026-02-24"},
		{"embedded in text", "Sessions resume on Thursday, February 26, 2026 at 9 AM", "2026-02-26"},
		{"month without day", "See you in February", ""},
		{"no month at all", "Opening Remarks", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDate(tt.input); got != tt.expected {
				t.Errorf("ParseDate(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedStart string
		expectedEnd   string
	}{
		{"am range with en-dash", "8:30 AM – 10:00 AM", "08:30", "10:00"},
		{"24h range with hyphen", "13:00-14:30", "13:00", "14:30"},
		{"pm range", "1:30 PM - 3:00 PM", "13:30", "15:00"},
		{"noon stays twelve", "10:30 AM – 12:00 PM", "10:30", "12:00"},
		{"midnight becomes zero", "12:00 AM – 1:00 AM", "00:00", "01:00"},
		{"lowercase markers", "9:00am-11:30am", "09:00", "11:30"},
		{"two standalone times", "Doors open 9:00 AM, close 5:30 PM", "09:00", "17:30"},
		{"single time", "Keynote at 9:00 AM", "09:00", ""},
		{"no times", "Hallway track all day", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ParseTimeRange(tt.input)
			if start != tt.expectedStart || end != tt.expectedEnd {
				t.Errorf("ParseTimeRange(%q) = (%q, %q), expected (%q, %q)",
					tt.input, start, end, tt.expectedStart, tt.expectedEnd)
			}
		})
	}
}

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		context  string
		expected string
	}{
		{"pm marker", "1:30", "1:30 PM", "13:30"},
		{"am marker pads hour", "8:30", "8:30 AM", "08:30"},
		{"noon pm stays twelve", "12:00", "12:00 PM", "12:00"},
		{"midnight am becomes zero", "12:00", "12:00 AM", "00:00"},
		{"no marker left as 24h", "13:00", "13:00-14:30", "13:00"},
		{"no marker ambiguous hour unchanged", "9:30", "starts at 9:30 sharp", "09:30"},
		{"marker must follow the token", "9:30", "9:30 to 11:00 AM is the window", "09:30"},
		{"malformed token", "930", "930 AM", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := To24Hour(tt.token, tt.context); got != tt.expected {
				t.Errorf("To24Hour(%q, %q) = %q, expected %q", tt.token, tt.context, got, tt.expected)
			}
		})
	}
}
