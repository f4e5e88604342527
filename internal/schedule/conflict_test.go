package schedule

import (
    "testing"

    "github.com/iliyamo/coworking-reservation/internal/model"
)

func reservation(id uint64, date, start, end, status string) model.Reservation {
    return model.Reservation{
        ID:        id,
        RoomID:    7,
        UserID:    3,
        Date:      date,
        StartTime: start,
        EndTime:   end,
        Status:    status,
    }
}

func TestOverlaps(t *testing.T) {
    cases := []struct {
        name string
        a, b Interval
        want bool
    }{
        {"partial overlap", Interval{"10:00:00", "11:00:00"}, Interval{"10:30:00", "11:30:00"}, true},
        {"contained", Interval{"10:00:00", "12:00:00"}, Interval{"10:30:00", "11:00:00"}, true},
        {"identical", Interval{"10:00:00", "11:00:00"}, Interval{"10:00:00", "11:00:00"}, true},
        {"touching is not overlapping", Interval{"10:00:00", "11:00:00"}, Interval{"11:00:00", "12:00:00"}, false},
        {"touching other side", Interval{"11:00:00", "12:00:00"}, Interval{"10:00:00", "11:00:00"}, false},
        {"disjoint", Interval{"08:00:00", "09:00:00"}, Interval{"10:00:00", "11:00:00"}, false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if got := Overlaps(tc.a, tc.b); got != tc.want {
                t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
            }
        })
    }
}

func TestFindConflicts(t *testing.T) {
    existing := []model.Reservation{
        reservation(1, "2024-01-01", "10:00:00", "11:00:00", model.ReservationStatusConfirmed),
        reservation(2, "2024-01-01", "14:00:00", "15:00:00", model.ReservationStatusCancelled),
        reservation(3, "2024-01-02", "10:00:00", "11:00:00", model.ReservationStatusPending),
    }

    // Overlapping candidate on the same date conflicts with the
    // confirmed reservation only.
    conflicts := FindConflicts(existing, "2024-01-01", Interval{"10:30:00", "11:30:00"})
    if len(conflicts) != 1 {
        t.Fatalf("FindConflicts returned %d conflicts, want 1", len(conflicts))
    }
    if conflicts[0].ReservationID != 1 {
        t.Errorf("conflict with reservation %d, want 1", conflicts[0].ReservationID)
    }

    // Touching at the boundary is allowed (half-open intervals).
    if got := FindConflicts(existing, "2024-01-01", Interval{"11:00:00", "12:00:00"}); len(got) != 0 {
        t.Errorf("touching candidate flagged as conflicting: %v", got)
    }

    // A cancelled reservation does not block its slot.
    if got := FindConflicts(existing, "2024-01-01", Interval{"14:00:00", "15:00:00"}); len(got) != 0 {
        t.Errorf("cancelled reservation flagged as conflicting: %v", got)
    }

    // Reservations on other dates are ignored.
    if got := FindConflicts(existing, "2024-01-03", Interval{"10:00:00", "11:00:00"}); len(got) != 0 {
        t.Errorf("other-date reservation flagged as conflicting: %v", got)
    }
}

func TestFormatConflicts(t *testing.T) {
    conflicts := []Conflict{
        {ReservationID: 1, Interval: Interval{"09:00:00", "10:00:00"}},
        {ReservationID: 2, Interval: Interval{"13:30:00", "15:00:00"}},
    }
    got := FormatConflicts(conflicts)
    want := "09:00 - 10:00, 13:30 - 15:00"
    if got != want {
        t.Errorf("FormatConflicts = %q, want %q", got, want)
    }
}

func TestCandidateValidation(t *testing.T) {
    cases := []struct {
        name    string
        roomID  uint64
        date    string
        start   string
        end     string
        wantErr error
    }{
        {"missing room", 0, "2024-06-01", "09:00", "10:30", ErrNoRoom},
        {"missing date", 7, "", "09:00", "10:30", ErrNoDate},
        {"malformed date", 7, "01/06/2024", "09:00", "10:30", ErrBadDate},
        {"missing start", 7, "2024-06-01", "", "10:30", ErrNoStart},
        {"unaligned start", 7, "2024-06-01", "09:10", "10:30", ErrBadStart},
        {"missing end", 7, "2024-06-01", "09:00", "", ErrNoEnd},
        {"unaligned end", 7, "2024-06-01", "09:00", "10:45", ErrBadEnd},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            _, err := NewCandidate(tc.roomID, tc.date, tc.start, tc.end)
            if err != tc.wantErr {
                t.Errorf("NewCandidate error = %v, want %v", err, tc.wantErr)
            }
        })
    }
}

func TestCandidateInterval(t *testing.T) {
    cand, err := NewCandidate(7, "2024-06-01", "09:00", "10:30")
    if err != nil {
        t.Fatalf("NewCandidate returned error: %v", err)
    }
    iv := cand.Interval()
    if iv.Start != "09:00:00" || iv.End != "10:30:00" {
        t.Errorf("Interval = %v, want [09:00:00, 10:30:00)", iv)
    }
    price, err := cand.PriceFor(strPtr("10.00"))
    if err != nil {
        t.Fatalf("PriceFor returned error: %v", err)
    }
    if price == nil || *price != "15.00" {
        t.Errorf("PriceFor(10.00) = %v, want %q", price, "15.00")
    }
}

func strPtr(s string) *string { return &s }
