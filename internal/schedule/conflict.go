package schedule

import (
    "strings"

    "github.com/iliyamo/coworking-reservation/internal/model"
)

// Interval is a half-open [Start, End) time-of-day interval with
// "HH:MM:SS" bounds, the persistence-level format.  Because the format
// is fixed width, lexicographic comparison matches temporal order.
type Interval struct {
    Start string // inclusive, "HH:MM:SS"
    End   string // exclusive, "HH:MM:SS"
}

// Overlaps applies the half-open interval test: two intervals overlap
// when each one starts before the other ends.  Touching boundaries
// (a.End == b.Start) do not overlap, so adjacent bookings are allowed.
func Overlaps(a, b Interval) bool {
    return a.Start < b.End && a.End > b.Start
}

// Conflict identifies an existing reservation whose interval collides
// with a candidate booking.
//
// Fields:
//  ReservationID – the blocking reservation.
//  Interval      – its occupied [start, end) interval.
type Conflict struct {
    ReservationID uint64
    Interval      Interval
}

// FindConflicts filters the room's reservations down to those on the
// candidate date that still block their slot (anything not cancelled)
// and returns one Conflict per reservation overlapping the candidate
// interval.  An empty result means the slot is free.
func FindConflicts(existing []model.Reservation, date string, candidate Interval) []Conflict {
    var conflicts []Conflict
    for _, res := range existing {
        if res.Date != date || !res.Blocking() {
            continue
        }
        occupied := Interval{Start: res.StartTime, End: res.EndTime}
        if Overlaps(occupied, candidate) {
            conflicts = append(conflicts, Conflict{ReservationID: res.ID, Interval: occupied})
        }
    }
    return conflicts
}

// FormatConflicts renders conflicts for an error message: each occupied
// range as "HH:MM - HH:MM", comma-joined in input order.
func FormatConflicts(conflicts []Conflict) string {
    ranges := make([]string, 0, len(conflicts))
    for _, c := range conflicts {
        ranges = append(ranges, trimSeconds(c.Interval.Start)+" - "+trimSeconds(c.Interval.End))
    }
    return strings.Join(ranges, ", ")
}

// trimSeconds drops the ":SS" suffix from an "HH:MM:SS" clock.
func trimSeconds(clock string) string {
    if len(clock) == 8 {
        return clock[:5]
    }
    return clock
}

// WireTime widens a selection-level "HH:MM" clock to the "HH:MM:SS"
// persistence format.
func WireTime(clock string) string {
    if len(clock) == 5 {
        return clock + ":00"
    }
    return clock
}
