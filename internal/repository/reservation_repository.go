package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/coworking-reservation/internal/model"
)

// ErrReservationNotFound is returned when a reservation lookup fails.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides access to reservations.  Reservations are
// immutable once created except for status transitions; the create
// path runs inside a transaction so the overlap check and the insert
// are atomic with respect to other bookings of the same room.
// Time-of-day columns are TIME; they are scanned as "HH:MM:SS"
// strings, and the DATE column as "2006-01-02", so string comparison
// matches temporal order throughout.
type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

const reservationColumns = `id, room_id, user_id, DATE_FORMAT(date,'%Y-%m-%d'), TIME_FORMAT(start_time,'%H:%i:%s'),
       TIME_FORMAT(end_time,'%H:%i:%s'), status, total_price, payment_status, payment_method, card_last_digits,
       created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (model.Reservation, error) {
    var res model.Reservation
    var totalPrice, payStatus, payMethod, lastDigits sql.NullString
    err := row.Scan(&res.ID, &res.RoomID, &res.UserID, &res.Date, &res.StartTime, &res.EndTime,
        &res.Status, &totalPrice, &payStatus, &payMethod, &lastDigits, &res.CreatedAt, &res.UpdatedAt)
    if totalPrice.Valid {
        v := totalPrice.String
        res.TotalPrice = &v
    }
    if payStatus.Valid {
        v := payStatus.String
        res.PaymentStatus = &v
    }
    if payMethod.Valid {
        v := payMethod.String
        res.PaymentMethod = &v
    }
    if lastDigits.Valid {
        v := lastDigits.String
        res.CardLastDigits = &v
    }
    return res, err
}

// CreateTx inserts a reservation within the scope of an existing
// transaction and populates the generated ID, defaults and timestamps
// on the provided struct.  The caller must commit or roll back.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
    result, err := tx.ExecContext(ctx,
        `INSERT INTO reservations
           (room_id, user_id, date, start_time, end_time, status, total_price, payment_status, payment_method, card_last_digits)
         VALUES (?,?,?,?,?,?,?,?,?,?)`,
        res.RoomID, res.UserID, res.Date, res.StartTime, res.EndTime, res.Status,
        res.TotalPrice, res.PaymentStatus, res.PaymentMethod, res.CardLastDigits)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    created, err := scanReservation(tx.QueryRowContext(ctx,
        "SELECT "+reservationColumns+" FROM reservations WHERE id=?", id))
    if err != nil {
        return err
    }
    *res = created
    return nil
}

// ListByRoomDateTx returns every reservation of a room on the given
// date, inside the provided transaction.  The conflict checker filters
// out cancelled entries and applies the overlap test; this method only
// narrows the working set.
func (r *ReservationRepo) ListByRoomDateTx(ctx context.Context, tx *sql.Tx, roomID uint64, date string) ([]model.Reservation, error) {
    rows, err := tx.QueryContext(ctx,
        "SELECT "+reservationColumns+" FROM reservations WHERE room_id=? AND date=? ORDER BY start_time",
        roomID, date)
    if err != nil {
        return nil, err
    }
    return collectReservations(rows)
}

// ListByRoom returns all reservations of a room, newest date first.
// The advisory availability check and the admin room view use it.
func (r *ReservationRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Reservation, error) {
    rows, err := r.DB.QueryContext(ctx,
        "SELECT "+reservationColumns+" FROM reservations WHERE room_id=? ORDER BY date DESC, start_time",
        roomID)
    if err != nil {
        return nil, err
    }
    return collectReservations(rows)
}

// GetByID fetches a reservation by id, returning ErrReservationNotFound
// when no row exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
    res, err := scanReservation(r.DB.QueryRowContext(ctx,
        "SELECT "+reservationColumns+" FROM reservations WHERE id=?", id))
    if errors.Is(err, sql.ErrNoRows) {
        return model.Reservation{}, ErrReservationNotFound
    }
    return res, err
}

func collectReservations(rows *sql.Rows) ([]model.Reservation, error) {
    defer rows.Close()
    out := make([]model.Reservation, 0)
    for rows.Next() {
        res, err := scanReservation(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    return out, rows.Err()
}

// Detail is a reservation joined with display information about its
// room, as returned to customers and the admin console.
type Detail struct {
    model.Reservation
    RoomName        string  `json:"room_name"`
    RoomCompanyID   uint64  `json:"room_company_id"`
    RoomCapacity    uint32  `json:"room_capacity"`
    RoomHourlyPrice *string `json:"room_hourly_price,omitempty"`
}

const detailColumns = `r.id, r.room_id, r.user_id, DATE_FORMAT(r.date,'%Y-%m-%d'),
       TIME_FORMAT(r.start_time,'%H:%i:%s'), TIME_FORMAT(r.end_time,'%H:%i:%s'),
       r.status, r.total_price, r.payment_status, r.payment_method, r.card_last_digits,
       r.created_at, r.updated_at,
       rm.name, rm.company_id, rm.capacity, rm.hourly_price`

func scanDetail(row interface{ Scan(...any) error }) (Detail, error) {
    var d Detail
    var totalPrice, payStatus, payMethod, lastDigits, roomPrice sql.NullString
    err := row.Scan(&d.ID, &d.RoomID, &d.UserID, &d.Date, &d.StartTime, &d.EndTime,
        &d.Status, &totalPrice, &payStatus, &payMethod, &lastDigits, &d.CreatedAt, &d.UpdatedAt,
        &d.RoomName, &d.RoomCompanyID, &d.RoomCapacity, &roomPrice)
    if totalPrice.Valid {
        v := totalPrice.String
        d.TotalPrice = &v
    }
    if payStatus.Valid {
        v := payStatus.String
        d.PaymentStatus = &v
    }
    if payMethod.Valid {
        v := payMethod.String
        d.PaymentMethod = &v
    }
    if lastDigits.Valid {
        v := lastDigits.String
        d.CardLastDigits = &v
    }
    if roomPrice.Valid {
        v := roomPrice.String
        d.RoomHourlyPrice = &v
    }
    return d, err
}

// ListDetailsByUser returns a user's reservations with room details,
// newest first.
func (r *ReservationRepo) ListDetailsByUser(ctx context.Context, userID uint64) ([]Detail, error) {
    rows, err := r.DB.QueryContext(ctx,
        `SELECT `+detailColumns+`
         FROM reservations r JOIN rooms rm ON rm.id = r.room_id
         WHERE r.user_id=?
         ORDER BY r.created_at DESC`, userID)
    if err != nil {
        return nil, err
    }
    return collectDetails(rows)
}

// ListDetails returns reservations with room details for the admin
// console.  All filters are optional; zero/empty values mean "any".
func (r *ReservationRepo) ListDetails(ctx context.Context, roomID, userID uint64, date, status string) ([]Detail, error) {
    query := `SELECT ` + detailColumns + `
              FROM reservations r JOIN rooms rm ON rm.id = r.room_id
              WHERE 1=1`
    args := make([]any, 0, 4)
    if roomID != 0 {
        query += " AND r.room_id=?"
        args = append(args, roomID)
    }
    if userID != 0 {
        query += " AND r.user_id=?"
        args = append(args, userID)
    }
    if date != "" {
        query += " AND r.date=?"
        args = append(args, date)
    }
    if status != "" {
        query += " AND r.status=?"
        args = append(args, status)
    }
    query += " ORDER BY r.created_at DESC"

    rows, err := r.DB.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    return collectDetails(rows)
}

func collectDetails(rows *sql.Rows) ([]Detail, error) {
    defer rows.Close()
    out := make([]Detail, 0)
    for rows.Next() {
        d, err := scanDetail(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, d)
    }
    return out, rows.Err()
}

// Confirm transitions a pending reservation to confirmed.  Any other
// starting status yields ErrBadTransition.
func (r *ReservationRepo) Confirm(ctx context.Context, id uint64) error {
    return r.transition(ctx, id, model.ReservationStatusConfirmed,
        []string{model.ReservationStatusPending})
}

// Cancel transitions a pending or confirmed reservation to cancelled.
// Cancelling an already-cancelled reservation is rejected.
func (r *ReservationRepo) Cancel(ctx context.Context, id uint64) error {
    return r.transition(ctx, id, model.ReservationStatusCancelled,
        []string{model.ReservationStatusPending, model.ReservationStatusConfirmed})
}

func (r *ReservationRepo) transition(ctx context.Context, id uint64, to string, from []string) error {
    // Existence first so a missing row is distinguishable from a
    // disallowed transition.
    var current string
    err := r.DB.QueryRowContext(ctx, "SELECT status FROM reservations WHERE id=?", id).Scan(&current)
    if errors.Is(err, sql.ErrNoRows) {
        return ErrReservationNotFound
    }
    if err != nil {
        return err
    }
    allowed := false
    for _, f := range from {
        if current == f {
            allowed = true
            break
        }
    }
    if !allowed {
        return ErrBadTransition
    }
    _, err = r.DB.ExecContext(ctx,
        "UPDATE reservations SET status=? WHERE id=? AND status=?", to, id, current)
    return err
}

// Delete removes a reservation outright.  Admin-only; customers cancel
// instead.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
    if err != nil {
        return err
    }
    return requireRow(res, ErrReservationNotFound)
}
