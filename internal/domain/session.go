package domain

import "time"

// TradingSession names a window of forex market hours in GMT.
type TradingSession string

const (
	SessionTokyo         TradingSession = "TOKYO"
	SessionSydney        TradingSession = "SYDNEY"
	SessionLondon        TradingSession = "LONDON"
	SessionNewYork       TradingSession = "NEW_YORK"
	SessionTokyoLondon   TradingSession = "TOKYO_LONDON"
	SessionLondonNewYork TradingSession = "LONDON_NEW_YORK"
	SessionSydneyTokyo   TradingSession = "SYDNEY_TOKYO"
	SessionNewYorkSydney TradingSession = "NEW_YORK_SYDNEY"
	// SessionNone marks trades logged without a session.
	SessionNone TradingSession = ""
)

// SessionWindow describes a session's GMT hours. Start and End are minutes
// from midnight; a window with Start > End spans midnight.
type SessionWindow struct {
	Name        TradingSession
	DisplayName string
	Start       int
	End         int
}

// SessionWindows lists the eight tracked market-hour windows in display
// order: the four primary sessions followed by their overlaps.
var SessionWindows = []SessionWindow{
	{Name: SessionTokyo, DisplayName: "Tokyo", Start: 0 * 60, End: 9 * 60},
	{Name: SessionSydney, DisplayName: "Sydney", Start: 22 * 60, End: 7 * 60},
	{Name: SessionLondon, DisplayName: "London", Start: 8 * 60, End: 17 * 60},
	{Name: SessionNewYork, DisplayName: "New York", Start: 13 * 60, End: 22 * 60},
	{Name: SessionTokyoLondon, DisplayName: "Tokyo-London", Start: 8 * 60, End: 9 * 60},
	{Name: SessionLondonNewYork, DisplayName: "London-New York", Start: 13 * 60, End: 17 * 60},
	{Name: SessionSydneyTokyo, DisplayName: "Sydney-Tokyo", Start: 0 * 60, End: 7 * 60},
	{Name: SessionNewYorkSydney, DisplayName: "New York-Sydney", Start: 22 * 60, End: 22 * 60},
}

// Contains reports whether the GMT minute-of-day m falls inside the window.
// Windows spanning midnight wrap; a window whose bounds are equal covers
// exactly that minute.
func (w SessionWindow) Contains(m int) bool {
	if w.Start > w.End {
		return m >= w.Start || m <= w.End
	}
	return m >= w.Start && m <= w.End
}

// DisplayName returns the human-readable label for a session, or "No Session"
// for trades logged without one.
func (s TradingSession) DisplayName() string {
	for _, w := range SessionWindows {
		if w.Name == s {
			return w.DisplayName
		}
	}
	return "No Session"
}

// IsValid reports whether s names a tracked session or is empty.
func (s TradingSession) IsValid() bool {
	if s == SessionNone {
		return true
	}
	for _, w := range SessionWindows {
		if w.Name == s {
			return true
		}
	}
	return false
}

// ActiveSessions returns every session whose window contains t (in GMT), in
// display order. Nil when t falls outside all windows.
func ActiveSessions(t time.Time) []TradingSession {
	utc := t.UTC()
	m := utc.Hour()*60 + utc.Minute()

	var active []TradingSession
	for _, w := range SessionWindows {
		if w.Contains(m) {
			active = append(active, w.Name)
		}
	}
	return active
}

// SessionAt returns the session a trade opened at t is attributed to. Overlap
// windows win over the primaries they are composed of, since they are the more
// specific classification; otherwise the first active primary wins. Returns
// SessionNone when t is outside every window.
func SessionAt(t time.Time) TradingSession {
	active := ActiveSessions(t)
	if len(active) == 0 {
		return SessionNone
	}
	overlaps := map[TradingSession]bool{
		SessionTokyoLondon:   true,
		SessionLondonNewYork: true,
		SessionSydneyTokyo:   true,
		SessionNewYorkSydney: true,
	}
	for _, s := range active {
		if overlaps[s] {
			return s
		}
	}
	return active[0]
}
