package booking

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/payment"
    "github.com/iliyamo/coworking-reservation/internal/schedule"
)

type fakeBackend struct {
    room         model.Room
    roomErr      error
    reservations []model.Reservation
    listErr      error
    listCalls    int
    submitErr    error
    submitted    *model.Reservation
}

func (b *fakeBackend) Room(ctx context.Context, roomID uint64) (model.Room, error) {
    return b.room, b.roomErr
}

func (b *fakeBackend) Reservations(ctx context.Context, roomID uint64) ([]model.Reservation, error) {
    b.listCalls++
    return b.reservations, b.listErr
}

func (b *fakeBackend) Submit(ctx context.Context, draft model.Reservation) (model.Reservation, error) {
    if b.submitErr != nil {
        return model.Reservation{}, b.submitErr
    }
    draft.ID = 99
    b.submitted = &draft
    return draft, nil
}

func strp(s string) *string { return &s }

func pricedRoom() model.Room {
    return model.Room{ID: 7, CompanyID: 2, Name: "Boardroom", Capacity: 8,
        Status: model.RoomStatusAvailable, HourlyPrice: strp("10.00")}
}

func validCard() payment.Card {
    return payment.Card{Number: "4111111111111111", Expiry: "12/30", CVV: "123"}
}

func selectedFlow(t *testing.T, backend *fakeBackend) *Flow {
    t.Helper()
    f := NewFlow(backend, 3)
    f.now = func() time.Time { return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC) }
    if err := f.SelectInterval(context.Background(), 7, "2024-06-01", "09:00", "10:30"); err != nil {
        t.Fatalf("SelectInterval returned error: %v", err)
    }
    return f
}

func TestFlowQuote(t *testing.T) {
    f := selectedFlow(t, &fakeBackend{room: pricedRoom()})
    hours, total, err := f.Quote()
    if err != nil {
        t.Fatalf("Quote returned error: %v", err)
    }
    if hours != 1.5 {
        t.Errorf("Quote hours = %v, want 1.5", hours)
    }
    if total == nil || *total != "15.00" {
        t.Errorf("Quote total = %v, want 15.00", total)
    }
}

func TestFlowQuoteSuppressedWithoutPrice(t *testing.T) {
    room := pricedRoom()
    room.HourlyPrice = nil
    f := selectedFlow(t, &fakeBackend{room: room})
    _, total, err := f.Quote()
    if err != nil {
        t.Fatalf("Quote returned error: %v", err)
    }
    if total != nil {
        t.Errorf("Quote total = %q, want nil for unpriced room", *total)
    }
}

func TestFlowRejectsInvalidSelection(t *testing.T) {
    f := NewFlow(&fakeBackend{room: pricedRoom()}, 3)
    if err := f.SelectInterval(context.Background(), 7, "01/06/2024", "09:00", "10:30"); err != schedule.ErrBadDate {
        t.Errorf("SelectInterval error = %v, want %v", err, schedule.ErrBadDate)
    }
    if f.State() != StateIdle {
        t.Errorf("state = %v after invalid selection, want idle", f.State())
    }
}

func TestFlowRequiresAuthenticatedUser(t *testing.T) {
    backend := &fakeBackend{room: pricedRoom()}
    f := NewFlow(backend, 0)
    f.now = time.Now
    if err := f.SelectInterval(context.Background(), 7, "2024-06-01", "09:00", "10:30"); err != nil {
        t.Fatalf("SelectInterval returned error: %v", err)
    }
    if err := f.ProceedToPayment(context.Background()); err != ErrNotAuthenticated {
        t.Errorf("ProceedToPayment error = %v, want %v", err, ErrNotAuthenticated)
    }
    if f.State() != StateIntervalSelected {
        t.Errorf("state = %v, want interval_selected", f.State())
    }
    if backend.listCalls != 0 {
        t.Errorf("availability check ran %d times before validation passed, want 0", backend.listCalls)
    }
}

func TestFlowRejectsUnbookableRoom(t *testing.T) {
    room := pricedRoom()
    room.Status = model.RoomStatusMaintenance
    f := selectedFlow(t, &fakeBackend{room: room})
    if err := f.ProceedToPayment(context.Background()); err != ErrRoomNotBookable {
        t.Errorf("ProceedToPayment error = %v, want %v", err, ErrRoomNotBookable)
    }
}

func TestFlowConflictBlocksPayment(t *testing.T) {
    backend := &fakeBackend{
        room: pricedRoom(),
        reservations: []model.Reservation{{
            ID: 1, RoomID: 7, Date: "2024-06-01",
            StartTime: "09:00:00", EndTime: "10:00:00",
            Status: model.ReservationStatusConfirmed,
        }},
    }
    f := selectedFlow(t, backend)
    f.candidate, _ = schedule.NewCandidate(7, "2024-06-01", "09:30", "10:30")

    err := f.ProceedToPayment(context.Background())
    var conflict *ConflictError
    if !errors.As(err, &conflict) {
        t.Fatalf("ProceedToPayment error = %v, want ConflictError", err)
    }
    if conflict.Ranges != "09:00 - 10:00" {
        t.Errorf("conflict ranges = %q, want %q", conflict.Ranges, "09:00 - 10:00")
    }
    // The payment step must be unreachable after a conflict.
    if _, err := f.SubmitPayment(context.Background(), validCard()); err != ErrPaymentNotReady {
        t.Errorf("SubmitPayment error = %v, want %v", err, ErrPaymentNotReady)
    }
    if backend.submitted != nil {
        t.Error("a draft was submitted despite the conflict")
    }
}

func TestFlowCancelledReservationDoesNotConflict(t *testing.T) {
    backend := &fakeBackend{
        room: pricedRoom(),
        reservations: []model.Reservation{{
            ID: 1, RoomID: 7, Date: "2024-06-01",
            StartTime: "09:00:00", EndTime: "10:00:00",
            Status: model.ReservationStatusCancelled,
        }},
    }
    f := selectedFlow(t, backend)
    f.candidate, _ = schedule.NewCandidate(7, "2024-06-01", "09:30", "10:30")
    if err := f.ProceedToPayment(context.Background()); err != nil {
        t.Errorf("ProceedToPayment error = %v, want nil", err)
    }
}

func TestFlowAvailabilityCheckErrorNeverApproves(t *testing.T) {
    backend := &fakeBackend{room: pricedRoom(), listErr: errors.New("connection reset")}
    f := selectedFlow(t, backend)
    if err := f.ProceedToPayment(context.Background()); err != ErrAvailabilityCheck {
        t.Errorf("ProceedToPayment error = %v, want %v", err, ErrAvailabilityCheck)
    }
    if f.State() != StateIntervalSelected {
        t.Errorf("state = %v, want interval_selected", f.State())
    }
}

func TestFlowHappyPath(t *testing.T) {
    backend := &fakeBackend{room: pricedRoom()}
    f := selectedFlow(t, backend)

    if err := f.ProceedToPayment(context.Background()); err != nil {
        t.Fatalf("ProceedToPayment returned error: %v", err)
    }
    if f.State() != StateAwaitingPayment {
        t.Fatalf("state = %v, want awaiting_payment", f.State())
    }

    created, err := f.SubmitPayment(context.Background(), payment.Card{
        Number: "4111 1111 1111 1234", Expiry: "12/30", CVV: "123",
    })
    if err != nil {
        t.Fatalf("SubmitPayment returned error: %v", err)
    }
    if f.State() != StateCompleted {
        t.Errorf("state = %v, want completed", f.State())
    }

    d := backend.submitted
    if d == nil {
        t.Fatal("no draft was submitted")
    }
    if d.RoomID != 7 || d.UserID != 3 || d.Date != "2024-06-01" {
        t.Errorf("draft identity = room %d user %d date %s", d.RoomID, d.UserID, d.Date)
    }
    if d.StartTime != "09:00:00" || d.EndTime != "10:30:00" {
        t.Errorf("draft interval = [%s, %s)", d.StartTime, d.EndTime)
    }
    if d.Status != model.ReservationStatusPending {
        t.Errorf("draft status = %q, want pending", d.Status)
    }
    if d.TotalPrice == nil || *d.TotalPrice != "15.00" {
        t.Errorf("draft total = %v, want 15.00", d.TotalPrice)
    }
    if d.PaymentStatus == nil || *d.PaymentStatus != model.PaymentStatusCompleted {
        t.Errorf("draft payment status = %v, want completed", d.PaymentStatus)
    }
    if d.CardLastDigits == nil || *d.CardLastDigits != "1234" {
        t.Errorf("draft card digits = %v, want 1234", d.CardLastDigits)
    }
    if created.ID != 99 {
        t.Errorf("created ID = %d, want 99", created.ID)
    }

    // Success resets the selection to the portal defaults.
    if f.candidate.Start() != "00:00" || f.candidate.End() != "00:30" {
        t.Errorf("selection after success = %s-%s, want 00:00-00:30",
            f.candidate.Start(), f.candidate.End())
    }
    if f.candidate.Date() != "2024-06-01" {
        t.Errorf("date after success = %s, want today (2024-06-01)", f.candidate.Date())
    }
}

func TestFlowRejectsBadCard(t *testing.T) {
    backend := &fakeBackend{room: pricedRoom()}
    f := selectedFlow(t, backend)
    if err := f.ProceedToPayment(context.Background()); err != nil {
        t.Fatalf("ProceedToPayment returned error: %v", err)
    }
    if _, err := f.SubmitPayment(context.Background(), payment.Card{Number: "41", Expiry: "12/30", CVV: "123"}); err != payment.ErrCardNumber {
        t.Errorf("SubmitPayment error = %v, want %v", err, payment.ErrCardNumber)
    }
    // A rejected card leaves the machine awaiting payment for a retry.
    if f.State() != StateAwaitingPayment {
        t.Errorf("state = %v, want awaiting_payment", f.State())
    }
}

func TestFlowSubmitFailurePreservesSelection(t *testing.T) {
    backend := &fakeBackend{room: pricedRoom(), submitErr: errors.New("gateway timeout")}
    f := selectedFlow(t, backend)
    if err := f.ProceedToPayment(context.Background()); err != nil {
        t.Fatalf("ProceedToPayment returned error: %v", err)
    }
    if _, err := f.SubmitPayment(context.Background(), validCard()); err == nil {
        t.Fatal("SubmitPayment succeeded, want error")
    }
    if f.State() != StateFailed {
        t.Errorf("state = %v, want failed", f.State())
    }
    if f.candidate.Start() != "09:00" || f.candidate.End() != "10:30" {
        t.Errorf("selection after failure = %s-%s, want preserved 09:00-10:30",
            f.candidate.Start(), f.candidate.End())
    }

    // The user retries without re-entering data, but the conflict
    // check must run again before payment.
    if err := f.Retry(); err != nil {
        t.Fatalf("Retry returned error: %v", err)
    }
    if _, err := f.SubmitPayment(context.Background(), validCard()); err != ErrPaymentNotReady {
        t.Errorf("SubmitPayment after retry error = %v, want %v", err, ErrPaymentNotReady)
    }
    backend.submitErr = nil
    if err := f.ProceedToPayment(context.Background()); err != nil {
        t.Fatalf("ProceedToPayment after retry returned error: %v", err)
    }
    if _, err := f.SubmitPayment(context.Background(), validCard()); err != nil {
        t.Errorf("SubmitPayment after fresh check returned error: %v", err)
    }
}

func TestFlowReselectionInvalidatesCheck(t *testing.T) {
    backend := &fakeBackend{room: pricedRoom()}
    f := selectedFlow(t, backend)
    if err := f.ProceedToPayment(context.Background()); err != nil {
        t.Fatalf("ProceedToPayment returned error: %v", err)
    }
    if err := f.SelectInterval(context.Background(), 7, "2024-06-02", "14:00", "15:00"); err != nil {
        t.Fatalf("SelectInterval returned error: %v", err)
    }
    if f.State() != StateIntervalSelected {
        t.Errorf("state = %v after reselection, want interval_selected", f.State())
    }
    if _, err := f.SubmitPayment(context.Background(), validCard()); err != ErrPaymentNotReady {
        t.Errorf("SubmitPayment error = %v, want %v", err, ErrPaymentNotReady)
    }
}
