// Package week resolves a request's week intent against a group's
// schedule epoch. Pure date arithmetic, no I/O.
package week

import "time"

// Intent is the caller's declared reason for requesting a week.
type Intent int

const (
	IntentNone Intent = iota
	IntentExplicit
	IntentCurrent
	IntentNext
)

const (
	dayMS  int64 = 24 * 60 * 60 * 1000
	weekMS int64 = 7 * dayMS
)

// displayedSpanDays is the Monday–Saturday range shown in the caption.
// Saturday data exists as a sixth day slot but the range ends there.
const displayedSpanDays = 5

// ParseIntent derives a single intent from the raw request signals.
// Precedence: Current > Next > Explicit > None. The flags are
// presence-only; their values are never read. A client sending both
// current and next together is undefined upstream — current wins here.
func ParseIntent(explicitWeek *int, current, next bool) Intent {
	switch {
	case current:
		return IntentCurrent
	case next:
		return IntentNext
	case explicitWeek != nil:
		return IntentExplicit
	default:
		return IntentNone
	}
}

// Resolve converts an intent into a concrete week number. For
// IntentExplicit the given week is returned unchanged, with no
// correction of any kind. IntentCurrent computes the week containing
// now relative to epochMS; IntentNext is that week plus one. The second
// return is false when no week can be resolved (IntentNone).
func Resolve(now time.Time, epochMS int64, intent Intent, explicitWeek int) (int, bool) {
	switch intent {
	case IntentExplicit:
		return explicitWeek, true
	case IntentCurrent:
		return currentWeek(now, epochMS), true
	case IntentNext:
		return currentWeek(now, epochMS) + 1, true
	default:
		return 0, false
	}
}

// currentWeek is 1-based: the instant epochMS itself falls in week 1.
// The epoch is UTC-normalized, so the local zone offset is subtracted
// out (minutes-west convention) to make the subtraction timezone-naive.
// On Sundays a one-day forward push compensates for weeks that
// nominally roll over mid-cycle.
func currentWeek(now time.Time, epochMS int64) int {
	var dayOffset int64
	if now.Weekday() == time.Sunday {
		dayOffset = dayMS
	}
	_, zoneSec := now.Zone()
	tzOffset := -int64(zoneSec) * 1000
	delta := now.UnixMilli() - epochMS - tzOffset + dayOffset
	return int(ceilDiv(delta, weekMS))
}

// ceilDiv rounds the quotient toward positive infinity, b > 0.
func ceilDiv(a, b int64) int64 {
	if a > 0 {
		return (a + b - 1) / b
	}
	return a / b
}

// Start is the UTC date the given week begins on: epoch + 7×(week−1) days.
func Start(epochMS int64, week int) time.Time {
	return time.UnixMilli(epochMS + int64(week-1)*weekMS).UTC()
}

// End is the UTC date the displayed week range ends on, five days
// after Start.
func End(epochMS int64, week int) time.Time {
	return time.UnixMilli(epochMS + int64(week-1)*weekMS + displayedSpanDays*dayMS).UTC()
}
