package schedule

// NewSession is a session that was not present in the previous snapshot,
// tagged with the label of the day it appears under
type NewSession struct {
	DayLabel string
	DayDate  string
	Session  *Session
}

// DiffResult contains the results of comparing two program snapshots
type DiffResult struct {
	NewSessions []*NewSession
	ByDay       map[string][]*NewSession // new sessions grouped by day label
}

// Diff compares a freshly parsed day list against a previously stored
// program and returns the sessions whose IDs were not seen before, in
// document order. A nil previous program (first run) reports nothing as
// new: there is no baseline to compare against.
func Diff(previous *Program, current []*Day) *DiffResult {
	result := &DiffResult{
		NewSessions: make([]*NewSession, 0),
		ByDay:       make(map[string][]*NewSession),
	}

	if previous == nil {
		return result
	}

	seen := make(map[string]bool)
	for _, d := range previous.Days {
		for _, s := range d.Sessions {
			seen[s.SessionID] = true
		}
	}

	for _, d := range current {
		for _, s := range d.Sessions {
			if seen[s.SessionID] {
				continue
			}
			ns := &NewSession{DayLabel: d.Label, DayDate: d.Date, Session: s}
			result.NewSessions = append(result.NewSessions, ns)
			result.ByDay[d.Label] = append(result.ByDay[d.Label], ns)
		}
	}

	return result
}
