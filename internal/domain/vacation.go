package domain

import "time"

// Phase is the time-relative state of a vacation interval.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseCurrent
	PhaseStartingSoon
	PhaseUpcoming
)

// Windows holds the business-rule constants of the relevance windows.
type Windows struct {
	VacationSoonDays   int // "starting soon" horizon, days
	VacationWindowDays int // outer bound of the "upcoming" window, days
}

// DefaultWindows returns the windows the bot has always used.
func DefaultWindows() Windows {
	return Windows{
		VacationSoonDays:   3,
		VacationWindowDays: 30,
	}
}

// VacationPhase classifies a vacation interval relative to today.
// For PhaseCurrent the returned count is days left including today;
// otherwise it is days until the start. The fetch layer already filters
// out ended and far-future intervals, but both bounds are re-checked
// here, and an inverted interval classifies as PhaseNone.
func VacationPhase(start, end, today time.Time, w Windows) (Phase, int) {
	s, e, t := midnight(start), midnight(end), midnight(today)
	if e.Before(s) {
		return PhaseNone, 0
	}
	if !t.Before(s) && !t.After(e) {
		return PhaseCurrent, daysBetween(t, e) + 1
	}
	until := daysBetween(t, s)
	switch {
	case until > 0 && until <= w.VacationSoonDays:
		return PhaseStartingSoon, until
	case until > w.VacationSoonDays && until <= w.VacationWindowDays:
		return PhaseUpcoming, until
	}
	return PhaseNone, 0
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
