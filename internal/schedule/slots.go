// Package schedule implements the room availability and pricing engine:
// half-hour slot enumeration for the booking form, duration and price
// computation for a selected interval, and overlap detection against a
// room's existing reservations.  Clock values are "HH:MM" strings at the
// selection level and "HH:MM:SS" strings at the persistence level; both
// sort correctly as plain strings, which the conflict checker relies on.
package schedule

import (
    "fmt"
    "strconv"
    "strings"
)

// SlotMinutes is the booking granularity.  Every selectable time is a
// multiple of this many minutes past midnight.
const SlotMinutes = 30

// slotsPerDay is the number of half-hour boundaries in a day (48).
const slotsPerDay = 24 * 60 / SlotMinutes

// StartTimes returns the selectable start times for a booking: every
// half-hour boundary of the day, "00:00" through "23:30", in order.
func StartTimes() []string {
    slots := make([]string, 0, slotsPerDay)
    for hour := 0; hour < 24; hour++ {
        for _, minutes := range []int{0, 30} {
            slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minutes))
        }
    }
    return slots
}

// EndTimes returns the selectable end times reachable from the given
// start time: the 48 half-hour boundaries following it in circular
// order, (start+30m) through (start+24h).  The sequence wraps past
// midnight, so a booking may cross into the next day.  The final entry
// reads the same as the start time and denotes a full 24h booking
// ending at that clock on the following day.
func EndTimes(start string) ([]string, error) {
    startMinutes, err := ClockMinutes(start)
    if err != nil {
        return nil, err
    }
    times := make([]string, 0, slotsPerDay)
    for i := 1; i <= slotsPerDay; i++ {
        total := (startMinutes + i*SlotMinutes) % (24 * 60)
        times = append(times, MinutesClock(total))
    }
    return times, nil
}

// NormalizeEnd returns end unchanged when it is a member of the end-time
// domain for start; otherwise it returns the first entry of that domain
// (start+30m).  The booking form calls this whenever the start time
// changes so the selected end time never falls outside the domain.
func NormalizeEnd(start, end string) (string, error) {
    times, err := EndTimes(start)
    if err != nil {
        return "", err
    }
    for _, t := range times {
        if t == end {
            return end, nil
        }
    }
    return times[0], nil
}

// ClockMinutes parses an "HH:MM" clock into minutes past midnight.
// It rejects malformed input and out-of-range components.
func ClockMinutes(clock string) (int, error) {
    parts := strings.SplitN(clock, ":", 2)
    if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
        return 0, fmt.Errorf("schedule: malformed clock %q", clock)
    }
    hour, err := strconv.Atoi(parts[0])
    if err != nil || hour < 0 || hour > 23 {
        return 0, fmt.Errorf("schedule: bad hour in clock %q", clock)
    }
    minute, err := strconv.Atoi(parts[1])
    if err != nil || minute < 0 || minute > 59 {
        return 0, fmt.Errorf("schedule: bad minute in clock %q", clock)
    }
    return hour*60 + minute, nil
}

// MinutesClock renders minutes past midnight as an "HH:MM" clock.
func MinutesClock(total int) string {
    return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Aligned reports whether the clock sits on a slot boundary.
func Aligned(clock string) bool {
    m, err := ClockMinutes(clock)
    return err == nil && m%SlotMinutes == 0
}
