package booking

import (
    "context"
    "database/sql"
    "log"
    "time"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/queue"
    "github.com/iliyamo/coworking-reservation/internal/repository"
    "github.com/iliyamo/coworking-reservation/internal/schedule"
)

// Service is the database-backed Backend.  Room and Reservations serve
// the advisory availability check; Submit performs the authoritative
// one: it locks the room row, re-checks the interval against the
// room's reservations for the date and inserts, all in one
// transaction, so two requests racing for the same slot serialize and
// the loser gets a ConflictError instead of a double booking.
type Service struct {
    DB           *sql.DB
    Rooms        *repository.RoomRepo
    Reservation  *repository.ReservationRepo
    Publish      func(ctx context.Context, ev queue.ReservationCreatedEvent) error // nil disables events
}

// NewService wires a Service from its repositories.
func NewService(db *sql.DB, rooms *repository.RoomRepo, reservations *repository.ReservationRepo,
    publish func(ctx context.Context, ev queue.ReservationCreatedEvent) error) *Service {
    return &Service{DB: db, Rooms: rooms, Reservation: reservations, Publish: publish}
}

// Room loads a room for quoting and validation.
func (s *Service) Room(ctx context.Context, roomID uint64) (model.Room, error) {
    return s.Rooms.GetByID(ctx, roomID)
}

// Reservations lists a room's reservations for the advisory check.
func (s *Service) Reservations(ctx context.Context, roomID uint64) ([]model.Reservation, error) {
    return s.Reservation.ListByRoom(ctx, roomID)
}

// Submit persists a reservation draft.  The overlap check runs inside
// the same transaction as the insert, behind a FOR UPDATE lock on the
// room row.
func (s *Service) Submit(ctx context.Context, draft model.Reservation) (model.Reservation, error) {
    tx, err := s.DB.BeginTx(ctx, nil)
    if err != nil {
        return model.Reservation{}, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    room, err := s.Rooms.GetForUpdateTx(ctx, tx, draft.RoomID)
    if err != nil {
        return model.Reservation{}, err
    }
    if !room.Bookable() {
        return model.Reservation{}, ErrRoomNotBookable
    }

    existing, err := s.Reservation.ListByRoomDateTx(ctx, tx, draft.RoomID, draft.Date)
    if err != nil {
        return model.Reservation{}, ErrAvailabilityCheck
    }
    candidate := schedule.Interval{Start: draft.StartTime, End: draft.EndTime}
    if conflicts := schedule.FindConflicts(existing, draft.Date, candidate); len(conflicts) > 0 {
        return model.Reservation{}, &ConflictError{Ranges: schedule.FormatConflicts(conflicts)}
    }

    if err := s.Reservation.CreateTx(ctx, tx, &draft); err != nil {
        return model.Reservation{}, err
    }
    if err := tx.Commit(); err != nil {
        return model.Reservation{}, err
    }
    committed = true

    if s.Publish != nil {
        ev := queue.ReservationCreatedEvent{
            ReservationID: draft.ID,
            RoomID:        draft.RoomID,
            RoomName:      room.Name,
            UserID:        draft.UserID,
            Date:          draft.Date,
            StartTime:     draft.StartTime,
            EndTime:       draft.EndTime,
            TotalPrice:    draft.TotalPrice,
            CreatedAt:     time.Now().UTC().Format(time.RFC3339),
        }
        // Event delivery is best effort; the reservation is already
        // committed.
        if err := s.Publish(ctx, ev); err != nil {
            log.Printf("booking: publish reservation.created failed: %v", err)
        }
    }
    return draft, nil
}
