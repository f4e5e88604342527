package model

import "time"

// Reservation status values.  A reservation is created as pending,
// may be confirmed by an administrator and can be cancelled from
// either state.  Cancelled reservations no longer block their slot.
const (
    ReservationStatusPending   = "pending"
    ReservationStatusConfirmed = "confirmed"
    ReservationStatusCancelled = "cancelled"
)

// Payment status values recorded alongside a reservation.  Payment
// is simulated: the portal accepts any well-formed card and marks
// the payment completed before persisting the reservation.
const (
    PaymentStatusPending   = "pending"
    PaymentStatusCompleted = "completed"
    PaymentStatusFailed    = "failed"
)

// Reservation records a user's booking of a room for a calendar
// date and a half-hour aligned time interval.  The interval is
// half-open: [StartTime, EndTime) – adjacent bookings may touch
// without overlapping.  Times are stored as TIME columns with
// second granularity and handled as "HH:MM:SS" strings.
//
// Fields:
//  ID             – primary key identifier.
//  RoomID         – room being reserved.
//  UserID         – user who made the reservation.
//  Date           – calendar date of the booking ("2006-01-02").
//  StartTime      – inclusive start time of day ("HH:MM:SS").
//  EndTime        – exclusive end time of day ("HH:MM:SS").
//  Status         – pending, confirmed or cancelled.
//  TotalPrice     – total charged, decimal string (nil for unpriced rooms).
//  PaymentStatus  – pending, completed or failed (nil when unpaid).
//  PaymentMethod  – e.g. "credit_card" (nil when unpaid).
//  CardLastDigits – last four digits of the card used (nil when unpaid).
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Reservation struct {
    ID             uint64    // reservations.id
    RoomID         uint64    // reservations.room_id
    UserID         uint64    // reservations.user_id
    Date           string    // reservations.date (DATE)
    StartTime      string    // reservations.start_time (TIME)
    EndTime        string    // reservations.end_time (TIME)
    Status         string    // reservations.status
    TotalPrice     *string   // reservations.total_price (nullable, DECIMAL(10,2))
    PaymentStatus  *string   // reservations.payment_status (nullable)
    PaymentMethod  *string   // reservations.payment_method (nullable)
    CardLastDigits *string   // reservations.card_last_digits (nullable)
    CreatedAt      time.Time // reservations.created_at
    UpdatedAt      time.Time // reservations.updated_at
}

// Blocking reports whether this reservation still occupies its time
// slot for conflict purposes.  Cancelled reservations do not block.
func (r Reservation) Blocking() bool { return r.Status != ReservationStatusCancelled }
