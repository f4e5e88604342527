package schedule

import (
    "errors"
    "time"
)

// Validation errors reported by NewCandidate.  Each maps to one field
// of the booking form so handlers can surface field-specific messages.
var (
    ErrNoRoom       = errors.New("schedule: room is required")
    ErrNoDate       = errors.New("schedule: date is required")
    ErrBadDate      = errors.New("schedule: date must be formatted 2006-01-02")
    ErrNoStart      = errors.New("schedule: start time is required")
    ErrNoEnd        = errors.New("schedule: end time is required")
    ErrBadStart     = errors.New("schedule: start time must be a half-hour boundary")
    ErrBadEnd       = errors.New("schedule: end time must be a half-hour boundary")
)

// Candidate is a validated, immutable booking interval: a room, a
// calendar date and a half-hour aligned start/end pair.  It is built
// only through NewCandidate, which rejects malformed input up front
// instead of leaving optional-field checks to later handlers.  A
// Candidate is transient – it is never persisted itself, only turned
// into a reservation draft after the conflict check and payment.
type Candidate struct {
    roomID uint64
    date   string // "2006-01-02"
    start  string // "HH:MM"
    end    string // "HH:MM"
}

// NewCandidate validates and builds a Candidate.  The end time is
// normalized into the end-time domain of the start time, mirroring the
// booking form's reset behavior when the start selection changes.
func NewCandidate(roomID uint64, date, start, end string) (Candidate, error) {
    if roomID == 0 {
        return Candidate{}, ErrNoRoom
    }
    if date == "" {
        return Candidate{}, ErrNoDate
    }
    if _, err := time.Parse("2006-01-02", date); err != nil {
        return Candidate{}, ErrBadDate
    }
    if start == "" {
        return Candidate{}, ErrNoStart
    }
    if !Aligned(start) {
        return Candidate{}, ErrBadStart
    }
    if end == "" {
        return Candidate{}, ErrNoEnd
    }
    if !Aligned(end) {
        return Candidate{}, ErrBadEnd
    }
    normalized, err := NormalizeEnd(start, end)
    if err != nil {
        return Candidate{}, err
    }
    return Candidate{roomID: roomID, date: date, start: start, end: normalized}, nil
}

// RoomID returns the targeted room.
func (c Candidate) RoomID() uint64 { return c.roomID }

// Date returns the booking date as "2006-01-02".
func (c Candidate) Date() string { return c.date }

// Start returns the selection-level "HH:MM" start time.
func (c Candidate) Start() string { return c.start }

// End returns the selection-level "HH:MM" end time.
func (c Candidate) End() string { return c.end }

// Interval returns the candidate as a persistence-level half-open
// interval with "HH:MM:SS" bounds.
func (c Candidate) Interval() Interval {
    return Interval{Start: WireTime(c.start), End: WireTime(c.end)}
}

// DurationHours returns the elapsed hours covered by the candidate.
func (c Candidate) DurationHours() (float64, error) {
    return DurationHours(c.start, c.end)
}

// PriceFor computes the candidate's total at a room's hourly rate.
func (c Candidate) PriceFor(hourlyRate *string) (*string, error) {
    return Price(c.start, c.end, hourlyRate)
}
