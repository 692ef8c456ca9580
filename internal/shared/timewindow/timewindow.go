// Package timewindow evaluates wall-clock gates for attendance submission.
// A Gate is a pure function of the clock; it performs no I/O and holds no
// state, so policy checks stay independently testable.
package timewindow

import (
	"fmt"
	"time"
)

// Window is a closed minute-of-day interval. End may be 24*60 to mean
// "until midnight".
type Window struct {
	Start int // minutes since midnight, inclusive
	End   int // minutes since midnight, inclusive
	Label string
}

// New builds a window from clock components.
func New(startHour, startMin, endHour, endMin int, label string) Window {
	return Window{
		Start: startHour*60 + startMin,
		End:   endHour*60 + endMin,
		Label: label,
	}
}

// Before builds a window open from midnight up to, but not including, the
// given clock time.
func Before(hour, min int, label string) Window {
	return Window{Start: 0, End: hour*60 + min - 1, Label: label}
}

// Contains reports whether the instant falls inside the window.
func (w Window) Contains(now time.Time) bool {
	minutes := now.Hour()*60 + now.Minute()
	return minutes >= w.Start && minutes <= w.End
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", w.Start/60, w.Start%60, w.End/60, w.End%60)
}

// Gate is a set of windows; the gate is open when now falls in any of them.
type Gate struct {
	windows []Window
}

func NewGate(windows ...Window) Gate {
	return Gate{windows: windows}
}

// Open returns whether the gate admits the given instant, and when it does
// not, a human-readable reason listing the allowed windows.
func (g Gate) Open(now time.Time) (bool, string) {
	if len(g.windows) == 0 {
		return true, ""
	}
	for _, w := range g.windows {
		if w.Contains(now) {
			return true, ""
		}
	}

	reason := "allowed only "
	for i, w := range g.windows {
		if i > 0 {
			reason += " and "
		}
		if w.Label != "" {
			reason += w.Label
		} else {
			reason += w.String()
		}
	}
	return false, reason
}
