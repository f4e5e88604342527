// Package booking sequences a reservation attempt: interval selection,
// validation, the availability check, simulated payment and submission.
// The Flow type is the portal's booking state machine; the Backend
// interface abstracts the three collaborator operations it consumes
// (load a room, list its reservations, persist a draft), so the same
// machine drives both the HTTP handler and the tests.
package booking

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/payment"
    "github.com/iliyamo/coworking-reservation/internal/schedule"
)

// State enumerates the phases of a booking attempt.
type State int

const (
    StateIdle State = iota
    StateIntervalSelected
    StateValidating
    StateAwaitingPayment
    StateSubmitting
    StateCompleted
    StateFailed
)

// String returns the lowercase name of the state for logs and errors.
func (s State) String() string {
    switch s {
    case StateIdle:
        return "idle"
    case StateIntervalSelected:
        return "interval_selected"
    case StateValidating:
        return "validating"
    case StateAwaitingPayment:
        return "awaiting_payment"
    case StateSubmitting:
        return "submitting"
    case StateCompleted:
        return "completed"
    case StateFailed:
        return "failed"
    default:
        return "unknown"
    }
}

// Backend is the set of collaborator operations the flow consumes.
// Submit must perform the authoritative overlap check atomically with
// the insert and return a ConflictError when the slot was lost.
type Backend interface {
    Room(ctx context.Context, roomID uint64) (model.Room, error)
    Reservations(ctx context.Context, roomID uint64) ([]model.Reservation, error)
    Submit(ctx context.Context, draft model.Reservation) (model.Reservation, error)
}

// Errors surfaced by the flow.
var (
    ErrNotAuthenticated  = errors.New("booking: sign in to make a reservation")
    ErrRoomNotBookable   = errors.New("booking: the room is not available for reservations")
    ErrAvailabilityCheck = errors.New("booking: could not verify room availability")
    ErrNoInterval        = errors.New("booking: select a date and time interval first")
    ErrPaymentNotReady   = errors.New("booking: availability has not been checked for this interval")
)

// ConflictError reports occupied time ranges that overlap the
// candidate interval.
type ConflictError struct {
    Ranges string // "HH:MM - HH:MM" ranges, comma-joined
}

func (e *ConflictError) Error() string {
    return "booking: the room is already reserved during: " + e.Ranges
}

// Flow is one booking attempt for one authenticated user.  It starts
// Idle with default selections (today, 00:00-00:30) and moves through
// the states as the user selects an interval, passes the availability
// check and submits payment.  Payment can never be reached without a
// fresh availability check for the exact selected interval: changing
// the selection drops the machine back to IntervalSelected.
type Flow struct {
    backend Backend
    userID  uint64
    now     func() time.Time

    state     State
    candidate schedule.Candidate
    room      model.Room
    total     *string
}

// NewFlow builds an Idle flow for the given user.  A zero userID is
// permitted here; validation rejects it when the user tries to book.
func NewFlow(backend Backend, userID uint64) *Flow {
    return &Flow{backend: backend, userID: userID, now: time.Now, state: StateIdle}
}

// State returns the machine's current phase.
func (f *Flow) State() State { return f.state }

// SelectInterval sets (or replaces) the candidate booking interval and
// computes the quote.  Malformed input keeps the previous selection
// and returns a field-specific error.  Any prior availability check is
// invalidated.
func (f *Flow) SelectInterval(ctx context.Context, roomID uint64, date, start, end string) error {
    cand, err := schedule.NewCandidate(roomID, date, start, end)
    if err != nil {
        return err
    }
    room, err := f.backend.Room(ctx, roomID)
    if err != nil {
        return fmt.Errorf("booking: load room: %w", err)
    }
    total, err := cand.PriceFor(room.HourlyPrice)
    if err != nil {
        return err
    }
    f.candidate = cand
    f.room = room
    f.total = total
    f.state = StateIntervalSelected
    return nil
}

// Quote returns the current candidate's duration in hours and total
// price (nil when the room has no hourly price).
func (f *Flow) Quote() (float64, *string, error) {
    if f.state == StateIdle {
        return 0, nil, ErrNoInterval
    }
    hours, err := f.candidate.DurationHours()
    if err != nil {
        return 0, nil, err
    }
    return hours, f.total, nil
}

// ProceedToPayment validates the attempt and runs the advisory
// availability check.  On success the machine is AwaitingPayment; on
// any failure it returns to IntervalSelected with the error surfaced
// to the caller.  No error is ever silently treated as "available".
func (f *Flow) ProceedToPayment(ctx context.Context) error {
    if f.state == StateIdle {
        return ErrNoInterval
    }
    f.state = StateValidating
    if err := f.check(ctx); err != nil {
        f.state = StateIntervalSelected
        return err
    }
    f.state = StateAwaitingPayment
    return nil
}

func (f *Flow) check(ctx context.Context) error {
    if f.userID == 0 {
        return ErrNotAuthenticated
    }
    if !f.room.Bookable() {
        return ErrRoomNotBookable
    }
    existing, err := f.backend.Reservations(ctx, f.candidate.RoomID())
    if err != nil {
        return ErrAvailabilityCheck
    }
    conflicts := schedule.FindConflicts(existing, f.candidate.Date(), f.candidate.Interval())
    if len(conflicts) > 0 {
        return &ConflictError{Ranges: schedule.FormatConflicts(conflicts)}
    }
    return nil
}

// SubmitPayment validates the simulated card, builds the reservation
// draft and submits it.  It is only legal from AwaitingPayment, i.e.
// after an availability check for the current interval.  On success
// the machine is Completed and the selection resets to its defaults;
// on failure it is Failed with the selection preserved so the user can
// retry.
func (f *Flow) SubmitPayment(ctx context.Context, card payment.Card) (model.Reservation, error) {
    if f.state != StateAwaitingPayment {
        return model.Reservation{}, ErrPaymentNotReady
    }
    if err := card.Validate(f.now()); err != nil {
        return model.Reservation{}, err
    }
    f.state = StateSubmitting

    payStatus := model.PaymentStatusCompleted
    payMethod := payment.MethodCreditCard
    lastDigits := card.LastDigits()
    iv := f.candidate.Interval()
    draft := model.Reservation{
        RoomID:         f.candidate.RoomID(),
        UserID:         f.userID,
        Date:           f.candidate.Date(),
        StartTime:      iv.Start,
        EndTime:        iv.End,
        Status:         model.ReservationStatusPending,
        TotalPrice:     f.total,
        PaymentStatus:  &payStatus,
        PaymentMethod:  &payMethod,
        CardLastDigits: &lastDigits,
    }
    created, err := f.backend.Submit(ctx, draft)
    if err != nil {
        f.state = StateFailed
        return model.Reservation{}, err
    }
    f.reset()
    f.state = StateCompleted
    return created, nil
}

// Retry re-arms a Failed flow so the preserved selection can be
// validated and submitted again.
func (f *Flow) Retry() error {
    if f.state != StateFailed {
        return fmt.Errorf("booking: nothing to retry in state %s", f.state)
    }
    f.state = StateIntervalSelected
    return nil
}

// reset clears the candidate back to the portal defaults: today,
// 00:00 - 00:30.
func (f *Flow) reset() {
    today := f.now().Format("2006-01-02")
    if cand, err := schedule.NewCandidate(f.room.ID, today, "00:00", "00:30"); err == nil {
        f.candidate = cand
    }
    f.total = nil
}
